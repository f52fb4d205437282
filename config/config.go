package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/excelytics/excelytics/config/configkey"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var loadConfigMutex sync.Mutex
var configLoaded bool

var DefaultValues = map[string]interface{}{
	configkey.DebugMode:     false,
	configkey.LogLevel:      "info",
	configkey.RequestLogger: false,

	configkey.ServerPort: 8080,

	configkey.MinioHost:      "localhost:9000",
	configkey.MinioAccessKey: "user",
	configkey.MinioSecretKey: "password",
	configkey.MinioSecure:    false,
	configkey.MinioBucket:    "uploads",

	configkey.DatabaseUsername: "excelytics",
	configkey.DatabaseDatabase: "excelytics",
	configkey.DatabaseHost:     "localhost",
	configkey.DatabasePort:     5432,
	configkey.DatabaseSSLMode:  "disable",
	configkey.DatabaseTimezone: "UTC",
	configkey.DatabasePassword: "password",

	configkey.JWTValidityHours: 24 * 7,

	configkey.SummaryAPIURL: "https://api.groq.com/openai/v1/chat/completions",
	configkey.SummaryModel:  "llama-3.3-70b-versatile",

	configkey.AdmissionWindowSeconds: 60,
}

func LoadConfig() {
	loadConfigMutex.Lock()
	defer loadConfigMutex.Unlock()
	if !configLoaded {
		configLoaded = true

		explicitConfigFile := os.Getenv("CONFIG_FILE")
		if explicitConfigFile != "" {
			fmt.Printf("CONFIG_FILE: %s\n", explicitConfigFile)
			viper.SetConfigFile(explicitConfigFile)
		} else {
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
			viper.AddConfigPath("/opt/excelytics")

			otherPath := os.Getenv("CONFIG_FILE_PATH")
			viper.AddConfigPath(otherPath)
		}

		// set defaults first
		for key, val := range DefaultValues {
			viper.SetDefault(key, val)
		}

		viper.SetEnvPrefix("excelytics")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		err := viper.ReadInConfig()
		if err != nil {
			logrus.Warn("Config file not found, using defaults")
		}
	}
}

func MustGetString(key string) string {
	val := viper.GetString(key)
	if len(val) == 0 {
		panic(errors.New("failed to get " + key))
	}

	return val
}

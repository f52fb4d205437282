package main

import (
	"context"
	"time"

	"github.com/excelytics/excelytics/config"
	"github.com/excelytics/excelytics/config/configkey"
	"github.com/excelytics/excelytics/pkg/accounts"
	"github.com/excelytics/excelytics/pkg/admissions"
	"github.com/excelytics/excelytics/pkg/auth"
	"github.com/excelytics/excelytics/pkg/charts"
	"github.com/excelytics/excelytics/pkg/database"
	"github.com/excelytics/excelytics/pkg/objectstore"
	"github.com/excelytics/excelytics/pkg/realtime"
	"github.com/excelytics/excelytics/pkg/repositories"
	"github.com/excelytics/excelytics/pkg/server"
	"github.com/excelytics/excelytics/pkg/summary"
	"github.com/excelytics/excelytics/pkg/uploads"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

func main() {
	logrus.SetLevel(logrus.TraceLevel)
	config.LoadConfig()

	logLevelConfig := viper.GetString(configkey.LogLevel)
	l, errLevel := logrus.ParseLevel(logLevelConfig)
	if errLevel != nil {
		logrus.Error(errLevel)
	} else {
		logrus.SetLevel(l)
	}

	db, err := database.CreateDatabase()
	if err != nil {
		logrus.Fatal(err)
	}

	minioClient, err := objectstore.NewMinioClient()
	if err != nil {
		logrus.Fatal(err)
	}

	store := objectstore.New(minioClient, viper.GetString(configkey.MinioBucket))
	if err := store.EnsureBucket(context.Background()); err != nil {
		logrus.Fatal(err)
	}

	tokens := auth.NewIssuer(
		[]byte(config.MustGetString(configkey.JWTSecret)),
		time.Duration(viper.GetInt(configkey.JWTValidityHours))*time.Hour,
	)

	accountRepo := repositories.NewAccountRepository(db)
	uploadRepo := repositories.NewUploadRepository(db)
	chartRepo := repositories.NewChartRepository(db)

	hub := realtime.NewHub()
	window := time.Duration(viper.GetInt(configkey.AdmissionWindowSeconds)) * time.Second

	accountsSvc := accounts.NewService(accountRepo, tokens)
	admissionsSvc := admissions.NewService(accountRepo, hub, tokens, window)
	uploadsSvc := uploads.NewService(uploadRepo, store, hub, summary.NewClient())
	chartsSvc := charts.NewService(chartRepo)

	serverPort := viper.GetInt(configkey.ServerPort)
	useRequestLogger := viper.GetBool(configkey.RequestLogger)

	s := server.New(serverPort, useRequestLogger, accountRepo, tokens, hub,
		accountsSvc, admissionsSvc, uploadsSvc, chartsSvc)

	s.Run()
}

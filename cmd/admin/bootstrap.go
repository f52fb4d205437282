package admin

import (
	"strings"

	"github.com/excelytics/excelytics/pkg/crypto"
	"github.com/excelytics/excelytics/pkg/database"
	"github.com/excelytics/excelytics/pkg/models"
	"github.com/excelytics/excelytics/pkg/repositories"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var bootstrapName string
var bootstrapEmail string
var bootstrapPassword string

func init() {
	bootstrap.Flags().StringVarP(&bootstrapName, "name", "n", "Super Admin", "The display name of the account")
	bootstrap.Flags().StringVarP(&bootstrapEmail, "email", "e", "", "The email of the account")
	bootstrap.Flags().StringVarP(&bootstrapPassword, "password", "p", "", "The password of the account")
	_ = bootstrap.MarkFlagRequired("email")
	_ = bootstrap.MarkFlagRequired("password")
}

// bootstrap seeds the super-admin directly against the database. It is the
// only way to create the first account with that role.
var bootstrap = &cobra.Command{
	Use:   "bootstrap",
	Short: "Create the super-admin account if it does not exist",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := database.CreateDatabase()
		if err != nil {
			logrus.Fatal(err)
		}

		accounts := repositories.NewAccountRepository(db)

		email := strings.ToLower(strings.TrimSpace(bootstrapEmail))
		exists, err := accounts.EmailExists(email)
		if err != nil {
			logrus.Fatal(err)
		}
		if exists {
			logrus.Infof("Account %s already exists, nothing to do", email)
			return
		}

		hash, err := crypto.HashPassword(bootstrapPassword)
		if err != nil {
			logrus.Fatal(err)
		}

		account := &models.Account{
			Name:     bootstrapName,
			Email:    email,
			Password: hash,
			Role:     models.RoleSuperAdmin,
			Approved: true,
		}
		if err := accounts.Create(account); err != nil {
			logrus.Fatal(err)
		}

		logrus.Infof("Super admin %s created with id %d", email, account.ID)
	},
}

package admin

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/excelytics/excelytics/config"
	"github.com/excelytics/excelytics/config/configkey"
	"github.com/excelytics/excelytics/pkg/api/responses"
	resty "github.com/go-resty/resty/v2"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	users.AddCommand(usersList)
	users.AddCommand(usersDelete)
}

var users = &cobra.Command{
	Use:   "users",
	Short: "Manage accounts over the admin API",
}

func adminClient() (*resty.Client, string) {
	apiURL := config.MustGetString(configkey.AdminAPIURL)
	token := config.MustGetString(configkey.AdminToken)

	client := resty.New()
	client.SetAuthToken(token)
	return client, apiURL
}

var usersList = &cobra.Command{
	Use:   "list",
	Short: "List all users and admins",
	Run: func(cmd *cobra.Command, args []string) {
		client, apiURL := adminClient()

		resp, err := client.R().Get(apiURL + "/api/super-admin/all-users-admins")
		if err != nil {
			logrus.Fatal(err)
		}
		if resp.StatusCode() != 200 {
			logrus.Fatalf("Request failed: %s", resp.Status())
		}

		var accounts []responses.AccountInfo
		if err := json.Unmarshal(resp.Body(), &accounts); err != nil {
			logrus.Fatal(err)
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Id", "Name", "Email", "Role", "Approved"})
		for _, a := range accounts {
			table.Append([]string{
				strconv.FormatUint(uint64(a.ID), 10),
				a.Name,
				a.Email,
				string(a.Role),
				strconv.FormatBool(a.Approved),
			})
		}
		table.Render()
	},
}

var usersDelete = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an account by id",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client, apiURL := adminClient()

		resp, err := client.R().Delete(fmt.Sprintf("%s/api/super-admin/delete/%s", apiURL, args[0]))
		if err != nil {
			logrus.Fatal(err)
		}
		if resp.StatusCode() != 200 {
			logrus.Fatalf("Request failed: %s", resp.Status())
		}

		logrus.Infof("Account %s deleted", args[0])
	},
}

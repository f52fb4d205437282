package admin

import (
	"github.com/spf13/cobra"
)

func init() {
	Admin.AddCommand(bootstrap)
	Admin.AddCommand(users)
}

var Admin = &cobra.Command{
	Use:              "excelytics-admin",
	TraverseChildren: true,
}

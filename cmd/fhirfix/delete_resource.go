// cmd/fhirfix/delete_resource.go

package fhirfix

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fhirfix/fhirfix/fixtures"
)

var deleteResource = fixtures.DeleteResource

// cascade asks the server to also delete resources referencing the
// target. Only honored for Patient resources.
var cascade bool

// deleteResourceCmd represents the 'delete resource' subcommand.
var deleteResourceCmd = &cobra.Command{
	Use:   "resource <type> <id>",
	Short: "Delete one resource by type and id",
	Long:  `The 'resource' subcommand deletes a single resource, e.g. 'fhirfix delete resource Observation 99'. With --cascade, deleting a Patient also deletes every resource referencing it; cascade has no effect for other types.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		err := deleteResource(viper.GetString("config"), viper.GetString("token"), args[0], args[1], viper.GetBool("cascade"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

// init adds the deleteResourceCmd to the deleteCmd and binds its flags.
func init() {
	deleteCmd.AddCommand(deleteResourceCmd)

	deleteResourceCmd.Flags().BoolVar(&cascade, "cascade", false, "also delete resources referencing the target (Patient only)")
	viper.BindPFlag("cascade", deleteResourceCmd.Flags().Lookup("cascade"))
}

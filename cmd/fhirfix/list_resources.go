// cmd/fhirfix/list_resources.go

package fhirfix

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fhirfix/fhirfix/fixtures"
)

var listResources = fixtures.ListResources

// patientID restricts a listing to resources referencing one patient.
var patientID string

// listResourcesCmd represents the 'list resources' subcommand.
var listResourcesCmd = &cobra.Command{
	Use:   "resources <type>",
	Short: "List all resources of one type",
	Long:  `The 'resources' subcommand fetches all resources of one type, e.g. 'fhirfix list resources Immunization --patient 691' to see a patient's immunizations.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := listResources(viper.GetString("config"), viper.GetString("token"), args[0], viper.GetString("patient"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

// init adds the listResourcesCmd to the listCmd and binds its flags.
func init() {
	listCmd.AddCommand(listResourcesCmd)

	listResourcesCmd.Flags().StringVarP(&patientID, "patient", "p", "", "only resources referencing this patient id")
	viper.BindPFlag("patient", listResourcesCmd.Flags().Lookup("patient"))
}

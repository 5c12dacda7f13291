// cmd/fhirfix/delete_patient.go

package fhirfix

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fhirfix/fhirfix/fixtures"
)

var cascadeDeletePatient = fixtures.CascadeDeletePatient

// deletePatientCmd represents the 'delete patient' subcommand.
var deletePatientCmd = &cobra.Command{
	Use:   "patient <id>",
	Short: "Cascade-delete a patient and everything referencing it",
	Long:  `The 'patient' subcommand deletes a patient together with all resources referencing it (observations, immunizations, and so on). Equivalent to 'delete resource Patient <id> --cascade'.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := cascadeDeletePatient(viper.GetString("config"), viper.GetString("token"), args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

// init adds the deletePatientCmd to the deleteCmd.
func init() {
	deleteCmd.AddCommand(deletePatientCmd)
}

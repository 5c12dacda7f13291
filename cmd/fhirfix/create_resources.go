// cmd/fhirfix/create_resources.go

package fhirfix

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fhirfix/fhirfix/fixtures"
)

var createResourcesFromFile = fixtures.CreateResourcesFromFile

// fixtureFile is the path to the JSON fixture file to submit.
var fixtureFile string

// createResourcesCmd represents the 'create resources' subcommand.
var createResourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "Create a batch of resources from a JSON fixture file",
	Long:  `The 'resources' subcommand reads a JSON fixture file (a batch/transaction bundle) and submits it to the sandbox in a single POST.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := createResourcesFromFile(viper.GetString("config"), viper.GetString("token"), viper.GetString("file"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

// init adds the createResourcesCmd to the createCmd and binds its flags.
func init() {
	createCmd.AddCommand(createResourcesCmd)

	createResourcesCmd.Flags().StringVarP(&fixtureFile, "file", "f", "", "path to the JSON fixture file (e.g., patients/healthy-heinz-history.json)")
	createResourcesCmd.MarkFlagRequired("file")
	viper.BindPFlag("file", createResourcesCmd.Flags().Lookup("file"))
}

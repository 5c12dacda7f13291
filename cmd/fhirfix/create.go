// cmd/fhirfix/create.go

package fhirfix

import (
	"github.com/spf13/cobra"
)

// createCmd represents the 'create' command.
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Group commands for creating resources",
	Long:  `The 'create' command groups subcommands that submit new resources to the FHIR sandbox.`,
}

// init adds the create command to the root command.
func init() {
	rootCmd.AddCommand(createCmd)
}

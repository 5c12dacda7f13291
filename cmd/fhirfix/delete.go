// cmd/fhirfix/delete.go

package fhirfix

import (
	"github.com/spf13/cobra"
)

// deleteCmd represents the 'delete' command.
var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Group commands for deleting resources",
	Long:  `The 'delete' command groups subcommands that remove resources from the FHIR sandbox.`,
}

// init adds the delete command to the root command.
func init() {
	rootCmd.AddCommand(deleteCmd)
}

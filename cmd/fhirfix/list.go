// cmd/fhirfix/list.go

package fhirfix

import (
	"github.com/spf13/cobra"
)

// listCmd represents the 'list' command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Group commands for listing resources",
	Long:  `The 'list' command groups subcommands that fetch resources from the FHIR sandbox.`,
}

// init adds the list command to the root command.
func init() {
	rootCmd.AddCommand(listCmd)
}

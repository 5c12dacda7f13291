// cmd/fhirfix/root.go
package fhirfix

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cfgFile is the path to the JSON configuration file holding the sandbox
// endpoint and access token.
var cfgFile string

// tokenFlag overrides the configured access token for one invocation.
var tokenFlag string

// rootCmd is the base cobra command for the fhirfix application.
// All subcommands are attached to this root to form the complete CLI.
var rootCmd = &cobra.Command{
	Use:   "fhirfix",
	Short: "Manage fixture data on a hosted FHIR sandbox",
	Long:  `fhirfix seeds and cleans patient-related fixture data on a hosted FHIR sandbox: bulk-create resources from a JSON file, delete individual resources (cascading for patients), and list resources by type.`,
}

// Execute runs the root cobra command and all registered subcommands.
// It prints any returned error and exits the process with a non-zero
// status code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.json", "config file with server_url and access_token")
	rootCmd.PersistentFlags().StringVar(&tokenFlag, "token", "", "bearer token overriding the configured access_token")
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))
}

package fhirfix

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestRoot_SubcommandsPresent(t *testing.T) {
	have := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		have[c.Name()] = true
		sub := map[string]bool{}
		for _, sc := range c.Commands() {
			sub[sc.Name()] = true
		}
		switch c.Name() {
		case "create", "list":
			if !sub["resources"] {
				t.Fatalf("%s must have resources subcommand, have: %v", c.Name(), sub)
			}
		case "delete":
			if !sub["resource"] || !sub["patient"] {
				t.Fatalf("delete subcommands missing: %v", sub)
			}
		}
	}
	for _, want := range []string{"create", "delete", "list"} {
		if !have[want] {
			t.Fatalf("missing subcommand %s", want)
		}
	}
}

func TestCommands_HaveDescriptions(t *testing.T) {
	var check func(*cobra.Command)
	check = func(cmd *cobra.Command) {
		if cmd.Short == "" || cmd.Long == "" {
			t.Fatalf("command %s missing Short/Long", cmd.Name())
		}
		for _, sc := range cmd.Commands() {
			check(sc)
		}
	}
	check(rootCmd)
}

func TestRoot_PersistentFlags(t *testing.T) {
	if f := rootCmd.PersistentFlags().Lookup("config"); f == nil || f.DefValue != "config.json" {
		t.Fatalf("config flag missing or wrong default: %v", f)
	}
	if f := rootCmd.PersistentFlags().Lookup("token"); f == nil {
		t.Fatal("token flag missing")
	}
}

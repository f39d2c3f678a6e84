package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCommand_Flags(t *testing.T) {
	cmd := addCmd()

	assert.Equal(t, "add <name>", cmd.Use)

	for _, name := range []string{"close-date", "renewal-date", "sent-date", "opportunity-id", "notes", "amount"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag %s", name)
	}

	// Close date is mandatory; everything else defaults.
	required, found := cmd.Flags().Lookup("close-date").Annotations[cobra.BashCompOneRequiredFlag]
	assert.True(t, found && len(required) > 0, "close-date must be required")
	assert.Equal(t, "0", cmd.Flags().Lookup("amount").DefValue)
}

func TestCheckCommand_Flags(t *testing.T) {
	cmd := checkCmd()

	undo := cmd.Flags().Lookup("undo")
	require.NotNil(t, undo)
	assert.Equal(t, "false", undo.DefValue)
}

func TestSortCommand_Flags(t *testing.T) {
	cmd := sortCmd()

	desc := cmd.Flags().Lookup("desc")
	require.NotNil(t, desc)
	assert.Equal(t, "false", desc.DefValue)
}

func TestEditCommand_Flags(t *testing.T) {
	cmd := editCmd()

	for _, name := range []string{"name", "close-date", "renewal-date", "sent-date", "opportunity-id", "notes", "amount"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag %s", name)
	}
}

func TestYearCommand_Subcommands(t *testing.T) {
	cmd := yearCmd()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "list")
	assert.Contains(t, names, "switch")
	assert.Contains(t, names, "add")
}

func TestSetupLogging(t *testing.T) {
	t.Cleanup(func() {
		viper.Set("logging.level", "info")
		viper.Set("logging.format", "console")
	})

	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{name: "defaults", level: "info", format: "console"},
		{name: "debug json", level: "debug", format: "json"},
		{name: "invalid level", level: "loud", format: "console", wantErr: true},
		{name: "invalid format", level: "info", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Set("logging.level", tt.level)
			viper.Set("logging.format", tt.format)

			err := setupLogging()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	want := []string{
		"add", "edit", "delete", "check", "list", "summary", "goal",
		"search", "year", "sort", "export", "import", "browse", "version",
	}
	registered := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		registered[sub.Name()] = true
	}
	for _, name := range want {
		assert.True(t, registered[name], "missing subcommand %s", name)
	}
}

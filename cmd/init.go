package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quocvuong92/neosh/internal/config"
	"github.com/quocvuong92/neosh/internal/display"
)

// NewInitCmd creates the init command
func NewInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a default config file",
		Long: `Create a commented default config file in the user config directory.

An existing file is never overwritten.

Examples:
  neosh init`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	path, err := config.CreateDefaultConfigFile()
	if err != nil {
		display.ShowError(err.Error())
		return err
	}

	display.ShowSuccess(fmt.Sprintf("Created config file at %s", path))
	return nil
}

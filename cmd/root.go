package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/quocvuong92/neosh/internal/config"
	"github.com/quocvuong92/neosh/internal/display"
)

// App holds the application state
type App struct {
	cfg *config.Config
}

// NewApp creates a new App instance with default configuration
func NewApp() *App {
	return &App{
		cfg: config.NewConfig(),
	}
}

// Execute runs the root command
func Execute() {
	rootCmd := NewApp().newRootCmd()

	// Add subcommands
	rootCmd.AddCommand(NewInitCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func (app *App) newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "neosh",
		Short: "A small interactive shell",
		Long: `neosh is a small interactive shell with tab completion.

Type a program name and its arguments, then press enter. The builtins
cd, help, exit and history run inside the shell; everything else is
looked up on $PATH. Every entered line is appended to the history log.

Examples:
  neosh                       # Start the shell
  neosh -v                    # Log debug details to the error log
  neosh --config ./neosh.yaml # Use a specific config file
  neosh init                  # Write a default config file`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			os.Exit(app.run(cmd.Context()))
		},
	}

	rootCmd.Flags().StringVar(&app.cfg.ConfigPath, "config", "", "Config file (default: discovered)")
	rootCmd.Flags().StringVar(&app.cfg.Prompt, "prompt", "", "Prompt printed before each line")
	rootCmd.Flags().BoolVarP(&app.cfg.Verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().BoolVarP(&app.cfg.Render, "render", "r", false, "Render help as markdown")

	return rootCmd
}

// run starts the shell and returns the process exit status
func (app *App) run(ctx context.Context) int {
	if ctx == nil {
		ctx = context.Background()
	}

	if err := app.cfg.Validate(); err != nil {
		display.ShowError(err.Error())
		return 1
	}

	session, err := NewSession(app.cfg, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		display.ShowError(err.Error())
		return 1
	}
	return session.Run(ctx)
}

package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/pogpoggu3-cpu/ayursutra2/internal/config"
	"github.com/pogpoggu3-cpu/ayursutra2/internal/handlers"
	"github.com/pogpoggu3-cpu/ayursutra2/internal/live"
	"github.com/pogpoggu3-cpu/ayursutra2/internal/logger"
	"github.com/pogpoggu3-cpu/ayursutra2/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long:  "Run the landing page server until interrupted. Configuration is read from the environment and from .env / .env.local when present.",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	// .env.local overrides .env
	config.LoadDotEnv()

	app := newApp()
	if err := app.Err(); err != nil {
		return err
	}
	app.Run()
	return nil
}

func newApp(opts ...fx.Option) *fx.App {
	return fx.New(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		// Infrastructure modules
		logger.Module,
		config.Module,
		server.Module,

		// Page modules
		live.Module,
		handlers.Module,

		fx.Options(opts...),
	)
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/chromastudio/internal/adapters/memory"
	"github.com/emiliopalmerini/chromastudio/internal/infrastructure/config"
	"github.com/emiliopalmerini/chromastudio/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web workspace",
	Long: `Start the palette and accessibility web workspace.

The port defaults to CHROMASTUDIO_PORT (8080) and can be overridden with --port.

Examples:
  chromastudio serve              # Start on the configured port
  chromastudio serve --port 3000  # Start on port 3000`,
	RunE: runServe,
}

var servePort int

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "Port to listen on")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadServer()
	if err != nil {
		return fmt.Errorf("failed to load server config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	app, err := NewAppContext(ctx, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			app.Logger.Error("failed to flush metrics", "error", err)
		}
	}()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			app.Logger.Info("shutting down")
			cancel()
		case <-ctx.Done():
		}
	}()

	store := memory.NewWorkspaceStore(memory.WithCapacity(cfg.MaxWorkspaces))
	server := web.NewServer(cfg.Port, app.Checker, store, app.Logger).
		WithShutdownTimeout(cfg.ShutdownTimeout)
	return server.Start(ctx)
}

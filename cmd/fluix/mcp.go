package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/fluix/internal/config"
	"github.com/aretw0/fluix/pkg/adapters/mcp"
	"github.com/aretw0/fluix/pkg/machine"
	"github.com/aretw0/fluix/pkg/observability"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts a toaster as an MCP Server so AI agents can show, dismiss and inspect
toasts as tools.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		cfg, err := config.LoadServer()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("auto-dismiss") {
			cfg.AutoDismiss, _ = cmd.Flags().GetBool("auto-dismiss")
		}

		logger, err := newLogger(cmd, cfg.LogLevel)
		if err != nil {
			return err
		}
		file, err := loadFile(cmd, cfg.ConfigFile)
		if err != nil {
			return err
		}

		m := newMCPMachine(cfg, file, logger)
		defer m.Destroy()

		srv := mcp.NewServer(m, mcp.WithLogger(logger))

		switch transport {
		case "stdio":
			// Ensure logs don't corrupt JSON-RPC on Stdout
			log.SetOutput(os.Stderr)
			logger.Info("Starting Fluix MCP Server (Stdio)...")
			if err := srv.ServeStdio(); err != nil {
				return fmt.Errorf("MCP Server execution failed: %w", err)
			}
			return nil
		case "sse":
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			addr := fmt.Sprintf(":%d", port)
			baseURL := fmt.Sprintf("http://localhost:%d", port)
			if err := srv.ServeSSE(ctx, addr, baseURL); err != nil {
				return fmt.Errorf("MCP Server execution failed: %w", err)
			}
			logger.Info("MCP Server stopped gracefully")
			return nil
		default:
			return fmt.Errorf("unknown transport: %s. Supported: stdio, sse", transport)
		}
	},
}

// newMCPMachine builds the toaster behind the MCP server. No renderer runs
// next to it, so the machine owns auto-dismissal unless disabled.
func newMCPMachine(cfg config.Server, file *config.File, logger *slog.Logger, opts ...machine.Option) *machine.Machine {
	base := []machine.Option{
		machine.WithLogger(logger),
		machine.WithConfig(file.Config),
		machine.WithAutoDismiss(cfg.AutoDismiss),
		machine.WithLifecycleHooks(observability.LoggingHooks(logger)),
	}
	return machine.New(append(base, opts...)...)
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8081, "Port to listen on (only for SSE)")
	mcpCmd.Flags().Bool("auto-dismiss", true, "Dismiss toasts after their duration (FLUIX_AUTO_DISMISS)")
}

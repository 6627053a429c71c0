// Package main implements the clickup-mcp CLI application.
package main

// file: cmd/clickup-mcp/main.go

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkoosis/clickup-mcp/internal/clickup"
	"github.com/dkoosis/clickup-mcp/internal/config"
	"github.com/dkoosis/clickup-mcp/internal/logging"
	"github.com/dkoosis/clickup-mcp/internal/tools"
)

// Version information (populated at build time).
var version = "dev"

var rootCmd = &cobra.Command{
	Use:     "clickup-mcp",
	Short:   "MCP server exposing the ClickUp API to language-model agents",
	Version: version,
}

var configPath string

var stdioCmd = &cobra.Command{
	Use:   "stdio",
	Short: "Serve MCP over stdin/stdout",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := logging.Setup(cfg.Logging.Level)

		// Missing credential is fatal here, before any request is made.
		if err := cfg.Validate(); err != nil {
			return err
		}

		opts := []clickup.Option{
			clickup.WithTeamID(cfg.ClickUp.TeamID),
			clickup.WithLogger(logging.GetLogger("clickup_client")),
		}
		if cfg.ClickUp.BaseURL != "" {
			opts = append(opts, clickup.WithBaseURL(cfg.ClickUp.BaseURL))
		}
		client := clickup.NewClient(cfg.ClickUp.APIToken, opts...)

		defs := tools.DefaultToolset(client, cfg.ClickUp.TeamID, logging.GetLogger("tools"))
		srv, err := tools.NewServer(cfg.Server.Name, version, defs, logging.GetLogger("mcp_server"))
		if err != nil {
			return err
		}

		logger.Info("Serving MCP over stdio.", "server", cfg.Server.Name, "version", version, "tools", len(defs))
		return srv.ServeStdio()
	},
}

var storeTokenCmd = &cobra.Command{
	Use:   "store-token",
	Short: "Store the ClickUp API token in the OS keyring",
	Long:  "Reads CLICKUP_API_TOKEN and stores it in the OS keyring so later runs can start without the environment variable.",
	RunE: func(_ *cobra.Command, _ []string) error {
		token := os.Getenv("CLICKUP_API_TOKEN")
		if token == "" {
			return fmt.Errorf("CLICKUP_API_TOKEN is not set")
		}
		if err := config.StoreTokenInKeyring(token); err != nil {
			return err
		}
		fmt.Println("Token stored in OS keyring.")
		return nil
	},
}

// loadConfig loads the config file when one was given, defaults otherwise.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFromFile(configPath)
	}
	return config.DefaultConfig(), nil
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config file")
	rootCmd.AddCommand(stdioCmd)
	rootCmd.AddCommand(storeTokenCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

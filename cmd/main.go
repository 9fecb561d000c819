package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// configPath is the persistent -c flag shared by all subcommands.
var configPath string

// @title gw-user-identity API
// @version 1.0.0
// @description User identity service: registration, login, access tokens and networks
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd creates the root command with the serve and migrate subcommands.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gw-user-identity",
		Short:         "User identity service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			printBuildInfo(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.env", "Path to configuration file")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMigrateCmd())

	return cmd
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo(cmd *cobra.Command) {
	cmd.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

package cmd

import (
	"fmt"
	"os"

	"github.com/flowiq/ingest-api/pkg/config"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ingest-api",
	Short: "FlowIQ recording ingestion API server",
	Long: `FlowIQ Recording Ingestion API - webhook endpoint for Plaud voice recordings

Receives recording notifications relayed by the Zapier automation, resolves
the owning tenant, stores the recording, and dispatches the audio to the
external transcription capability.

Features:
  • Plaud/Zapier webhook ingestion with connectivity-test handling
  • Tenant resolution against active Plaud configurations
  • Voice recording persistence with full audit metadata
  • Best-effort transcription dispatch (SOAP notes, summaries)`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(loadConfig)
}

// loadConfig loads the configuration when a command needs it.
// Version and help never touch config so they work in a bare environment.
func loadConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}

package cmd

import (
	"os"

	"davsh/pkg/conf"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "davsh [server_url]",
	Short: "davsh - An interactive console for WebDAV file storage",
	Long: `Davsh opens an interactive console against the WebDAV files
endpoint of a Nextcloud style server, with shell-like commands for
browsing, transferring and reorganizing remote files.`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runConsole,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	// Define flags
	rootCmd.Flags().StringVar(&username, "user", "", "Username to authenticate as")
	rootCmd.Flags().BoolVar(&insecure, "insecure", false, "Skips server certificate verification")
	rootCmd.Flags().DurationVar(&timeout, "timeout", conf.Timeout, "Sets HTTP request timeout")
	rootCmd.Flags().StringVar(&verbose, "verbose", "off", "Adds verbosity [debug|info|warn|error|off]")
	rootCmd.Flags().BoolVar(&colorless, "colorless", false, "Disables output colors")
	rootCmd.Flags().BoolVar(&noSession, "no-session", false, "Skips loading and saving the session file")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Shows Binary Build info",
	Run: func(cmd *cobra.Command, args []string) {
		conf.PrintVersion()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Error is already printed by the command, just exit
		os.Exit(1)
	}
}

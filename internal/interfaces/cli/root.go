package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	ConfigDir   string
	BaseURL     string
	ShowVersion bool
)

var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "simplydns",
	Short: "Simply.com DNS record management tool",
	Long:  "Simplydns manages DNS records on Simply.com from declarative YAML zone files.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if ShowVersion {
			fmt.Println(Version)
			os.Exit(0)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse("")
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&ConfigDir, "config-dir", "c", ".", "Configuration directory")
	rootCmd.PersistentFlags().StringVar(&BaseURL, "base-url", "", "Override the Simply.com API base URL")
	rootCmd.PersistentFlags().BoolVarP(&ShowVersion, "version", "v", false, "Show version information")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is the service version reported by the CLI, the /health endpoint
// and the agent card.
const Version = "1.0.0"

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "telexdict",
		Short: "Dictionary agent speaking the A2A protocol for Telex",
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newWorkflowCmd())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(Version)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

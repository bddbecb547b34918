package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Adewale-tech/telex-dictionary-agent/internal/config"
	"github.com/Adewale-tech/telex-dictionary-agent/pkg/models"
)

func newWorkflowCmd() *cobra.Command {
	workflowCmd := &cobra.Command{
		Use:   "workflow",
		Short: "Manage the Telex workflow configuration",
	}

	var output string
	var baseURL string

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the importable Telex workflow JSON",
		Long: "Writes the workflow configuration that is imported into the Telex " +
			"workflow settings. Set --base-url to the public URL of the deployed agent.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			if baseURL == "" {
				baseURL = cfg.Server.BaseURL
			}
			if baseURL == "" {
				return fmt.Errorf("no base URL: set --base-url or server.base_url in config")
			}

			workflow := models.NewDictionaryWorkflow(cfg.Agent.Name, cfg.Agent.Description, cfg.Agent.Version, baseURL)

			data, err := json.MarshalIndent(workflow, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal workflow: %w", err)
			}
			data = append(data, '\n')

			if output == "-" {
				_, err = os.Stdout.Write(data)
				return err
			}

			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			fmt.Printf("workflow written to %s\n", output)
			return nil
		},
	}
	exportCmd.Flags().StringVarP(&output, "output", "o", "telex_workflow.json", "output file, or - for stdout")
	exportCmd.Flags().StringVar(&baseURL, "base-url", "", "public base URL of the deployed agent")

	workflowCmd.AddCommand(exportCmd)
	return workflowCmd
}

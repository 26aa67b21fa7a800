package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"term_harvester/internal/config"
	"term_harvester/internal/promote"
)

func newPromoteCmd() *cobra.Command {
	var (
		reportPath string
		termsPath  string
		selection  []string
	)

	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Move reviewed candidates from a report into the glossary",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")

			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if reportPath == "" {
				reportPath = cfg.Report.Output
			}
			if termsPath == "" {
				termsPath = cfg.Glossary.Path
			}

			logger := setupLogger(cfg.LogLevel)

			res, err := promote.New(logger).Promote(reportPath, termsPath, selection)
			if err != nil {
				return err
			}

			fmt.Printf("Added %d term(s), skipped %d\n", res.Added, res.Skipped)
			return nil
		},
	}

	cmd.Flags().StringVar(&reportPath, "report", "", "candidate report to promote from (defaults to the configured report output)")
	cmd.Flags().StringVar(&termsPath, "terms", "", "glossary file to append to (defaults to the configured glossary path)")
	cmd.Flags().StringSliceVar(&selection, "select", nil, "English forms to promote; empty promotes all new high confidence terms")

	return cmd
}

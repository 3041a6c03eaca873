package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"squeeze/internal/config"
	"squeeze/internal/deps"
)

func newDepsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check the external tools squeeze depends on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}

			statuses := deps.CheckBinaries(deps.Defaults(cfg.Tools.FFmpeg, cfg.Tools.FFprobe))

			rows := make([][]string, 0, len(statuses))
			missingRequired := false
			for _, status := range statuses {
				state := "ok"
				if !status.Available {
					state = "missing"
					if status.Detail != "" {
						state = status.Detail
					}
					if !status.Optional {
						missingRequired = true
					}
				}
				name := status.Name
				if status.Optional {
					name += " (optional)"
				}
				rows = append(rows, []string{name, status.Command, status.Description, state})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Dependency", "Command", "Purpose", "Status"}, rows))

			if missingRequired {
				return fmt.Errorf("required dependencies are missing")
			}
			return nil
		},
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/accplot/internal/pipeline"
	"github.com/Zuo-Peng/accplot/internal/tui"
)

func viewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Browse the parsed samples in an interactive panel",
		Long:  `Opens a TUI listing every sample in file order. Type a number to jump to that sample; Enter copies it as a serial monitor line.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := pipeline.Load(projectDir)
			if err != nil {
				return err
			}
			if len(res.Samples) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nenhum dado válido encontrado.")
				return nil
			}
			return tui.Run(res)
		},
	}
}

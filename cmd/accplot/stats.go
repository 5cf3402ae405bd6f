package main

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Zuo-Peng/accplot/internal/pipeline"
	"github.com/Zuo-Peng/accplot/internal/render"
	"github.com/Zuo-Peng/accplot/internal/summary"
)

type statsOutput struct {
	Source  string          `json:"source"`
	Format  string          `json:"format"`
	Lines   int             `json:"lines"`
	Skipped int             `json:"skipped"`
	Summary summary.Summary `json:"summary"`
}

func statsCmd() *cobra.Command {
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print per-axis statistics and the parsed samples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := pipeline.Load(projectDir)
			if err != nil {
				return err
			}
			sum := summary.Compute(res.Samples)
			out := cmd.OutOrStdout()

			if asJSON {
				data, err := sonic.ConfigStd.MarshalIndent(statsOutput{
					Source:  res.Source.Path,
					Format:  res.Source.Format,
					Lines:   res.Lines,
					Skipped: res.Skipped,
					Summary: sum,
				}, "", "  ")
				if err != nil {
					return fmt.Errorf("encode: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			opts := render.Options{
				Limit: limit,
				Color: term.IsTerminal(int(os.Stdout.Fd())),
			}
			fmt.Fprint(out, render.RenderSummary(res, sum, opts))
			if len(res.Samples) > 0 && limit >= 0 {
				fmt.Fprintln(out)
				fmt.Fprint(out, render.RenderSamples(res.Samples, opts))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Sample rows to print (0 = all, -1 = none)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the summary as JSON")

	return cmd
}

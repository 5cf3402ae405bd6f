package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Zuo-Peng/accplot/internal/history"
	"github.com/Zuo-Peng/accplot/internal/open"
	"github.com/Zuo-Peng/accplot/internal/pipeline"
)

type plotOptions struct {
	show      bool
	noHistory bool
}

func plotCmd() *cobra.Command {
	var opts plotOptions

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render the acceleration chart to analise/grafico_aceleracao.png",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(cmd, opts)
		},
	}
	addPlotFlags(cmd, &opts)

	return cmd
}

func addPlotFlags(cmd *cobra.Command, opts *plotOptions) {
	cmd.Flags().BoolVar(&opts.show, "show", false, "Open the chart in an image viewer after saving")
	cmd.Flags().BoolVar(&opts.noHistory, "no-history", false, "Do not record the run in the history database")
}

func runPlot(cmd *cobra.Command, opts plotOptions) error {
	cfg := loadConfig()

	rep, err := pipeline.Run(projectDir)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Gráfico de aceleração gerado e salvo como '%s'\n", rep.Output)
	slog.Debug("summary",
		"samples", rep.Summary.Count,
		"x_mean", rep.Summary.X.Mean,
		"y_mean", rep.Summary.Y.Mean,
		"z_mean", rep.Summary.Z.Mean,
		"magnitude_max", rep.Summary.MagnitudeMax,
	)

	if !opts.noHistory && cfg.HistoryDB != "" {
		recordRun(cfg.HistoryDB, rep)
	}

	if opts.show || cfg.Show {
		// no display to open on when piped or headless
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			slog.Debug("stdout is not a terminal, not opening viewer")
			return nil
		}
		if err := open.ShowImage(rep.Output, cfg.Viewer); err != nil {
			slog.Warn("could not open chart", "err", err)
		}
	}
	return nil
}

// recordRun appends rep to the history database. Failures only warn.
func recordRun(dbPath string, rep *pipeline.Report) {
	db, err := history.OpenDB(dbPath)
	if err != nil {
		slog.Warn("history unavailable", "path", dbPath, "err", err)
		return
	}
	defer db.Close()

	id, err := db.Record(history.Run{
		SourcePath: absPath(rep.Source.Path),
		Format:     rep.Source.Format,
		Samples:    rep.Samples,
		Skipped:    rep.Skipped,
		OutputPath: absPath(rep.Output),
	})
	if err != nil {
		slog.Warn("could not record run", "err", err)
		return
	}
	slog.Debug("run recorded", "id", id)
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

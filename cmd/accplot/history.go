package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Zuo-Peng/accplot/internal/history"
	"github.com/Zuo-Peng/accplot/internal/locate"
)

const (
	hColorReset = "\033[0m"
	hColorBlue  = "\033[1;34m"
	hColorGreen = "\033[1;32m"
	hColorDim   = "\033[2m"
)

func colorizeFormat(format string) string {
	switch format {
	case locate.FormatCSV:
		return hColorBlue + format + hColorReset
	case locate.FormatText:
		return hColorGreen + format + hColorReset
	default:
		return format
	}
}

func historyCmd() *cobra.Command {
	var format, since string
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List previous chart runs, newest first",
		Long: `Lists the runs recorded by "accplot plot". Output is TSV when piped:
  id, createdAt, format, samples, skipped, source, output`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "" && format != locate.FormatCSV && format != locate.FormatText {
				return fmt.Errorf("invalid --format %q (csv or text)", format)
			}

			var sinceTime time.Time
			if since != "" {
				t, err := history.ParseSince(since)
				if err != nil {
					return fmt.Errorf("--since: %w", err)
				}
				sinceTime = t
			}

			cfg := loadConfig()

			if _, err := os.Stat(cfg.HistoryDB); os.IsNotExist(err) {
				fmt.Fprintln(os.Stderr, "Nenhuma execução registrada.")
				return nil
			}

			db, err := history.OpenDB(cfg.HistoryDB)
			if err != nil {
				return err
			}
			defer db.Close()

			runs, err := db.List(history.Options{
				Format: format,
				Since:  sinceTime,
				Limit:  limit,
			})
			if err != nil {
				return err
			}

			if len(runs) == 0 {
				fmt.Fprintln(os.Stderr, "Nenhuma execução registrada.")
				return nil
			}

			color := term.IsTerminal(int(os.Stdout.Fd()))
			out := cmd.OutOrStdout()
			for _, r := range runs {
				created := r.CreatedAt.Local().Format("2006-01-02 15:04:05")
				if color {
					fmt.Fprintf(out, "%d\t%s%s%s\t%s\t%d\t%d\t%s\t%s\n",
						r.ID,
						hColorDim, created, hColorReset,
						colorizeFormat(r.Format),
						r.Samples,
						r.Skipped,
						filepath.Base(r.SourcePath),
						r.OutputPath,
					)
					continue
				}
				fmt.Fprintf(out, "%d\t%s\t%s\t%d\t%d\t%s\t%s\n",
					r.ID, created, r.Format, r.Samples, r.Skipped, r.SourcePath, r.OutputPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Filter by input format (csv/text)")
	cmd.Flags().StringVar(&since, "since", "", "Filter runs since date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&limit, "limit", 50, "Max results")

	return cmd
}

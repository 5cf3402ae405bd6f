package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/accplot/internal/config"
	"github.com/Zuo-Peng/accplot/internal/history"
	"github.com/Zuo-Peng/accplot/internal/locate"
	"github.com/Zuo-Peng/accplot/internal/parse"
	"github.com/Zuo-Peng/accplot/internal/render"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Self-check: verify inputs, output dir and history DB",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "=== Config ===")
			cfg, err := config.Load()
			if err != nil {
				fmt.Fprintf(out, "  Error: %v (using defaults)\n", err)
			} else if home, err := os.UserHomeDir(); err == nil {
				checkFile(out, "File", config.Path(home))
			}

			// check inputs in preference order
			fmt.Fprintln(out, "\n=== Inputs ===")
			for _, c := range locate.Candidates(projectDir) {
				checkFile(out, c.Format, c.Path)
			}

			src, err := locate.Find(projectDir)
			if err != nil {
				fmt.Fprintf(out, "  Selected: none (%v)\n", err)
			} else {
				fmt.Fprintf(out, "  Selected: %s [%s]\n", src.Path, src.Format)
				if res, err := parse.Load(*src); err != nil {
					fmt.Fprintf(out, "  Parse error: %v\n", err)
				} else {
					fmt.Fprintf(out, "  Samples: %d (lines %d, skipped %d)\n", len(res.Samples), res.Lines, res.Skipped)
				}
			}

			fmt.Fprintln(out, "\n=== Output ===")
			outPath := render.OutputPath(projectDir)
			fmt.Fprintf(out, "  Path: %s\n", outPath)
			checkDir(out, "Dir", filepath.Dir(outPath))
			if info, err := os.Stat(outPath); err == nil {
				fmt.Fprintf(out, "  Last chart: %s (%.1f KB)\n", info.ModTime().Format("2006-01-02 15:04:05"), float64(info.Size())/1024)
			}

			fmt.Fprintln(out, "\n=== History ===")
			if cfg.HistoryDB == "" {
				fmt.Fprintln(out, "  Status: DISABLED (no home directory)")
				return nil
			}
			fmt.Fprintf(out, "  Path: %s\n", cfg.HistoryDB)
			if _, err := os.Stat(cfg.HistoryDB); os.IsNotExist(err) {
				fmt.Fprintln(out, "  Status: NOT FOUND (created on first 'accplot plot')")
				return nil
			}

			db, err := history.OpenDB(cfg.HistoryDB)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			n, err := db.Count()
			if err != nil {
				return fmt.Errorf("count runs: %w", err)
			}
			fmt.Fprintf(out, "  Runs: %d\n", n)

			if ver, err := db.SchemaVersion(); err == nil {
				fmt.Fprintf(out, "  Schema: v%s\n", ver)
			}

			return nil
		},
	}
}

func checkFile(out io.Writer, name, path string) {
	if info, err := os.Stat(path); err != nil {
		fmt.Fprintf(out, "  %s: %s (NOT FOUND)\n", name, path)
	} else if info.IsDir() {
		fmt.Fprintf(out, "  %s: %s (IS A DIRECTORY)\n", name, path)
	} else {
		fmt.Fprintf(out, "  %s: %s (OK, %d bytes)\n", name, path, info.Size())
	}
}

func checkDir(out io.Writer, name, path string) {
	if info, err := os.Stat(path); err != nil {
		fmt.Fprintf(out, "  %s: %s (NOT FOUND, will be created)\n", name, path)
	} else if !info.IsDir() {
		fmt.Fprintf(out, "  %s: %s (NOT A DIRECTORY)\n", name, path)
	} else {
		fmt.Fprintf(out, "  %s: %s (OK)\n", name, path)
	}
}

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/accplot/internal/config"
	"github.com/Zuo-Peng/accplot/internal/locate"
	"github.com/Zuo-Peng/accplot/internal/pipeline"
)

var version = "dev"

const (
	msgNoInput = "Erro: Nenhum arquivo de dados simulados encontrado. Certifique-se de ter 'dados_simulados.csv' ou 'dados_simulados.txt' na pasta 'dados/'."
	msgNoData  = "Nenhum dado válido encontrado para gerar o gráfico."
)

var (
	projectDir string
	verbose    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		w := os.Stderr
		if isDataError(err) {
			w = os.Stdout
		}
		fmt.Fprintln(w, describeError(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts plotOptions

	rootCmd := &cobra.Command{
		Use:   "accplot",
		Short: "Gera o gráfico de aceleração a partir dos dados do MPU6050",
		Long: `Lê dados/dados_simulados.csv (ou, na falta dele, a saída do Monitor Serial
em dados/dados_simulados.txt) e salva o gráfico em analise/grafico_aceleracao.png.

Sem subcomando, equivale a "accplot plot".`,
		Version:           version,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupLogging,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(cmd, opts)
		},
	}
	addPlotFlags(rootCmd, &opts)

	rootCmd.PersistentFlags().StringVar(&projectDir, "dir", ".", "Project directory holding dados/ and analise/")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging on stderr")

	rootCmd.AddCommand(plotCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(viewCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(doctorCmd())

	return rootCmd
}

func setupLogging(cmd *cobra.Command, args []string) error {
	// load errors are reported by loadConfig once logging is set up
	cfg, _ := config.Load()

	level := cfg.Level()
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	return nil
}

// loadConfig returns the user config, or the defaults with a warning when
// it cannot be read. The chart never depends on it.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		slog.Warn("config unavailable, using defaults", "err", err)
	}
	return cfg
}

// isDataError reports whether err is one of the expected outcomes of a
// run over missing or empty data. Those messages go to stdout.
func isDataError(err error) bool {
	return errors.Is(err, locate.ErrNoInput) || errors.Is(err, pipeline.ErrNoData)
}

// describeError turns a command error into the console message.
func describeError(err error) string {
	switch {
	case errors.Is(err, locate.ErrNoInput):
		return msgNoInput
	case errors.Is(err, pipeline.ErrNoData):
		return msgNoData
	default:
		return "Erro: " + err.Error()
	}
}

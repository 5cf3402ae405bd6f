// Package pipeline runs the chart job: locate the input, parse it, check
// that it carries readings, then render the image.
package pipeline

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Zuo-Peng/accplot/internal/locate"
	"github.com/Zuo-Peng/accplot/internal/parse"
	"github.com/Zuo-Peng/accplot/internal/render"
	"github.com/Zuo-Peng/accplot/internal/summary"
)

// ErrNoData is returned when the input exists but holds no readings.
var ErrNoData = errors.New("no valid samples")

type Report struct {
	Source  locate.Source
	Samples int
	Skipped int
	Output  string
	Summary summary.Summary
}

// Load locates and parses the input of the project at root.
func Load(root string) (*parse.Result, error) {
	src, err := locate.Find(root)
	if err != nil {
		return nil, err
	}
	slog.Debug("input located", "path", src.Path, "format", src.Format, "size", src.Size)

	res, err := parse.Load(*src)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	slog.Debug("input parsed", "samples", len(res.Samples), "lines", res.Lines, "skipped", res.Skipped)

	return res, nil
}

// Run renders the chart for the project at root. Nothing is written when
// the input is missing or empty.
func Run(root string) (*Report, error) {
	res, err := Load(root)
	if err != nil {
		return nil, err
	}

	if len(res.Samples) == 0 {
		return nil, fmt.Errorf("%s: %w", res.Source.Path, ErrNoData)
	}

	out := render.OutputPath(root)
	if err := render.SaveChart(res.Samples, out); err != nil {
		return nil, err
	}
	slog.Debug("chart saved", "path", out)

	return &Report{
		Source:  res.Source,
		Samples: len(res.Samples),
		Skipped: res.Skipped,
		Output:  out,
		Summary: summary.Compute(res.Samples),
	}, nil
}

package locate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	DataDir  = "dados"
	CSVName  = "dados_simulados.csv"
	TextName = "dados_simulados.txt"
)

const (
	FormatCSV  = "csv"
	FormatText = "text"
)

// ErrNoInput is returned when neither candidate input file exists.
var ErrNoInput = errors.New("no input file found")

type Source struct {
	Path   string
	Format string // "csv" or "text"
	Mtime  int64
	Size   int64
}

type Candidate struct {
	Path   string
	Format string
}

// Candidates lists the input files in preference order.
func Candidates(root string) []Candidate {
	return []Candidate{
		{Path: filepath.Join(root, DataDir, CSVName), Format: FormatCSV},
		{Path: filepath.Join(root, DataDir, TextName), Format: FormatText},
	}
}

// Find returns the first candidate that exists under root. The tabular
// file always wins over the serial dump when both are present.
func Find(root string) (*Source, error) {
	for _, c := range Candidates(root) {
		info, err := os.Stat(c.Path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", c.Path, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("%s is a directory", c.Path)
		}
		return &Source{
			Path:   c.Path,
			Format: c.Format,
			Mtime:  info.ModTime().Unix(),
			Size:   info.Size(),
		}, nil
	}

	c := Candidates(root)
	return nil, fmt.Errorf("%w: tried %s and %s", ErrNoInput, c[0].Path, c[1].Path)
}

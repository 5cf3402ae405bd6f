package parse

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/Zuo-Peng/accplot/internal/locate"
)

// Column names expected in the header row, in X, Y, Z order.
var axisColumns = [3]string{"AccelX", "AccelY", "AccelZ"}

var ErrNoHeader = errors.New("no columns to parse from file")

// Cell spellings read as a missing value, as pandas does by default.
var missingCells = map[string]bool{
	"": true, "NA": true, "N/A": true, "n/a": true, "NaN": true, "nan": true,
	"-NaN": true, "-nan": true, "null": true, "NULL": true, "None": true,
	"#N/A": true, "<NA>": true,
}

// ParseCSV reads a tabular export with a header row naming the axes.
func ParseCSV(filePath string) (*Result, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	result, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filePath, err)
	}
	result.Source = locate.Source{
		Path:   filePath,
		Format: locate.FormatCSV,
		Mtime:  info.ModTime().Unix(),
		Size:   info.Size(),
	}
	return result, nil
}

// ReadCSV maps the AccelX/AccelY/AccelZ columns of r into samples. Columns
// may appear in any order and extra columns are ignored. Empty, NA and
// infinite cells become NaN and the row is kept.
func ReadCSV(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}

	cols, err := axisIndexes(header)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		result.Lines++
		line, _ := reader.FieldPos(0)

		var vals [3]float64
		for i, col := range cols {
			cell := strings.TrimSpace(rec[col])
			if missingCells[cell] {
				vals[i] = math.NaN()
				result.Missing++
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d column %s: invalid value %q", line, axisColumns[i], cell)
			}
			if !Finite(v) {
				v = math.NaN()
				result.Missing++
			}
			vals[i] = v
		}
		result.Samples = append(result.Samples, Sample{X: vals[0], Y: vals[1], Z: vals[2], Line: line})
	}

	return result, nil
}

func axisIndexes(header []string) ([3]int, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := pos[name]; !dup {
			pos[name] = i
		}
	}

	var cols [3]int
	for i, name := range axisColumns {
		idx, ok := pos[name]
		if !ok {
			return cols, fmt.Errorf("missing column %q", name)
		}
		cols[i] = idx
	}
	return cols, nil
}

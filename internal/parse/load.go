package parse

import (
	"fmt"

	"github.com/Zuo-Peng/accplot/internal/locate"
)

// Load parses the located source according to its format.
func Load(src locate.Source) (*Result, error) {
	var (
		result *Result
		err    error
	)
	switch src.Format {
	case locate.FormatCSV:
		result, err = ParseCSV(src.Path)
	case locate.FormatText:
		result, err = ParseText(src.Path)
	default:
		return nil, fmt.Errorf("unknown format: %s", src.Format)
	}
	if err != nil {
		return nil, err
	}
	result.Source = src
	return result, nil
}

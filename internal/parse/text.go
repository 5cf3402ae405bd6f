package parse

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/Zuo-Peng/accplot/internal/locate"
)

const maxLineSize = 1024 * 1024 // 1MB

// readingRe matches the line printed by the MPU6050 sketch, e.g.
//
//	AccelX: 1.20, AccelY: -0.30, AccelZ: 9.81 m/s^2
var readingRe = regexp.MustCompile(`AccelX: ([-+]?\d+\.\d+), AccelY: ([-+]?\d+\.\d+), AccelZ: ([-+]?\d+\.\d+) m/s\^2`)

// ParseText reads a serial monitor dump. Lines without a reading are skipped.
func ParseText(filePath string) (*Result, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	result, err := ScanText(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filePath, err)
	}
	result.Source = locate.Source{
		Path:   filePath,
		Format: locate.FormatText,
		Mtime:  info.ModTime().Unix(),
		Size:   info.Size(),
	}
	return result, nil
}

// ScanText extracts readings from r in line order.
func ScanText(r io.Reader) (*Result, error) {
	result := &Result{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		s, ok := ParseLine(scanner.Text())
		if !ok {
			result.Skipped++
			continue
		}
		s.Line = lineNum
		result.Samples = append(result.Samples, s)
	}
	result.Lines = lineNum

	return result, scanner.Err()
}

// ParseLine extracts a reading from a single line. ok is false when the
// line does not carry all three axes.
func ParseLine(line string) (s Sample, ok bool) {
	m := readingRe.FindStringSubmatch(line)
	if m == nil {
		return Sample{}, false
	}

	var vals [3]float64
	for i := range vals {
		v, err := strconv.ParseFloat(m[i+1], 64)
		if err != nil {
			return Sample{}, false
		}
		vals[i] = v
	}
	return Sample{X: vals[0], Y: vals[1], Z: vals[2]}, true
}

// FormatLine renders s the way the sketch prints it on the serial port.
func FormatLine(s Sample) string {
	return fmt.Sprintf("AccelX: %.2f, AccelY: %.2f, AccelZ: %.2f m/s^2", s.X, s.Y, s.Z)
}

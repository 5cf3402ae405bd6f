package parse

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zuo-Peng/accplot/internal/locate"
)

func TestReadCSV(t *testing.T) {
	input := "AccelX,AccelY,AccelZ\n1.20,-0.30,9.81\n0.00,0.00,9.80\n-2.50,1.10,8.95\n"

	result, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, result.Samples, 3)

	assert.Equal(t, Sample{X: 1.20, Y: -0.30, Z: 9.81, Line: 2}, result.Samples[0])
	assert.Equal(t, Sample{X: -2.50, Y: 1.10, Z: 8.95, Line: 4}, result.Samples[2])
	assert.Equal(t, 3, result.Lines)
}

func TestReadCSVColumnOrderAndExtras(t *testing.T) {
	input := "time, AccelZ, AccelX, GyroX, AccelY\n0.5, 9.8, 1, 0.01, -1e-1\n1.0, 9.7, 2, 0.02, 3\n"

	result, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, result.Samples, 2)
	assert.Equal(t, 1.0, result.Samples[0].X)
	assert.Equal(t, -0.1, result.Samples[0].Y)
	assert.Equal(t, 9.8, result.Samples[0].Z)
	assert.Equal(t, 3.0, result.Samples[1].Y)
}

func TestReadCSVByteOrderMark(t *testing.T) {
	input := "\ufeffAccelX,AccelY,AccelZ\n1,2,3\n"

	result, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, result.Samples, 1)
	assert.Equal(t, 1.0, result.Samples[0].X)
}

func TestReadCSVHeaderOnly(t *testing.T) {
	result, err := ReadCSV(strings.NewReader("AccelX,AccelY,AccelZ\n"))
	require.NoError(t, err)
	assert.Empty(t, result.Samples)
}

func TestReadCSVMissingCells(t *testing.T) {
	input := "AccelX,AccelY,AccelZ\n1.0,2.0,9.8\n1.1,,9.7\nNaN,0.5,inf\n NA ,0.6,9.6\n"

	result, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, result.Samples, 4, "rows with missing cells are kept")
	assert.Equal(t, 4, result.Missing)

	assert.True(t, result.Samples[0].Complete())

	gap := result.Samples[1]
	assert.Equal(t, 1.1, gap.X)
	assert.True(t, math.IsNaN(gap.Y))
	assert.Equal(t, 9.7, gap.Z)
	assert.Equal(t, 3, gap.Line)
	assert.False(t, gap.Complete())

	assert.True(t, math.IsNaN(result.Samples[2].X))
	assert.True(t, math.IsNaN(result.Samples[2].Z), "infinite values are treated as missing")
	assert.True(t, math.IsNaN(result.Samples[3].X))
	assert.Equal(t, 0.6, result.Samples[3].Y)
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"empty file", "", "no columns"},
		{"missing axis", "AccelX,AccelY\n1,2\n", `missing column "AccelZ"`},
		{"bad cell", "AccelX,AccelY,AccelZ\n1,2,3\n1,oops,3\n", `line 3 column AccelY`},
		{"ragged row", "AccelX,AccelY,AccelZ\n1,2\n", "wrong number of fields"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadDispatch(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "a.csv")
	txtPath := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(csvPath, []byte("AccelX,AccelY,AccelZ\n1,2,3\n"), 0o644))
	require.NoError(t, os.WriteFile(txtPath, []byte("AccelX: 4.00, AccelY: 5.00, AccelZ: 6.00 m/s^2\n"), 0o644))

	result, err := Load(locate.Source{Path: csvPath, Format: locate.FormatCSV, Size: 42})
	require.NoError(t, err)
	require.Len(t, result.Samples, 1)
	assert.Equal(t, 1.0, result.Samples[0].X)
	assert.Equal(t, int64(42), result.Source.Size, "Load keeps the located source")

	result, err = Load(locate.Source{Path: txtPath, Format: locate.FormatText})
	require.NoError(t, err)
	require.Len(t, result.Samples, 1)
	assert.Equal(t, 4.0, result.Samples[0].X)

	_, err = Load(locate.Source{Path: txtPath, Format: "xlsx"})
	assert.Error(t, err)
}

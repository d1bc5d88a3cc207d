// SPDX-License-Identifier: MIT
package arff_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvlearn/arff"
	"github.com/katalvlaran/lvlearn/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const weather = `% the classic toy set
@RELATION weather

@attribute outlook {sunny, overcast, rainy}
@attribute temperature REAL
@attribute 'wind speed' numeric
@attribute play {'yes', "no"}

@data
sunny, 85, 3.5, no
overcast,83,?,yes
% mid-data comment
rainy , 70 , 1 , 'yes'
`

func TestRead_Weather(t *testing.T) {
	t.Parallel()

	tb, err := arff.Read(strings.NewReader(weather))
	require.NoError(t, err)

	assert.Equal(t, "weather", tb.Relation())
	assert.Equal(t, 3, tb.Rows())
	assert.Equal(t, 4, tb.Cols())
	assert.Equal(t, 3, tb.ValueCount(0))
	assert.Equal(t, 0, tb.ValueCount(1))
	assert.Equal(t, "wind speed", tb.ColumnName(2))
	assert.Equal(t, []string{"yes", "no"}, tb.Column(3).Values)

	want := [][]float64{
		{0, 85, 3.5, 1},
		{1, 83, matrix.MissingValue, 0},
		{2, 70, 1, 0},
	}
	for i, row := range tb.All() {
		assert.Equal(t, want[i], row, "row %d", i)
	}
}

func TestRead_Errors(t *testing.T) {
	t.Parallel()

	head := "@relation r\n@attribute a {x,y}\n@attribute b real\n@data\n"
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"no data section", "@relation r\n@attribute a real\n", arff.ErrSyntax},
		{"data before attributes", "@relation r\n@data\n1\n", arff.ErrSyntax},
		{"string attribute", "@attribute s string\n@data\n", arff.ErrUnknownType},
		{"unknown keyword", "@foo bar\n", arff.ErrSyntax},
		{"unknown nominal", head + "z, 1\n", arff.ErrUnknownNominal},
		{"too few values", head + "x\n", arff.ErrColumnCount},
		{"bad number", head + "x, abc\n", arff.ErrSyntax},
		{"sparse row", head + "{0 x}\n", arff.ErrSyntax},
		{"unterminated quote", head + "'x, 1\n", arff.ErrSyntax},
		{"duplicate nominal", "@attribute a {x,x}\n@data\n", arff.ErrSyntax},
		{"open enumeration", "@attribute a {x,y\n@data\n", arff.ErrSyntax},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := arff.Read(strings.NewReader(tc.src))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRead_LineNumbers(t *testing.T) {
	t.Parallel()

	_, err := arff.Read(strings.NewReader("@attribute a {x}\n@data\nx\ny\n"))
	require.ErrorIs(t, err, arff.ErrUnknownNominal)
	assert.Contains(t, err.Error(), "line 4")
}

func TestRead_EmptyData(t *testing.T) {
	t.Parallel()

	tb, err := arff.Read(strings.NewReader("@attribute a real\n@data\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, tb.Rows())
	assert.Equal(t, matrix.DefaultRelation, tb.Relation())
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "w.arff")
	require.NoError(t, os.WriteFile(path, []byte(weather), 0o600))

	tb, err := arff.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, tb.Rows())

	_, err = arff.Load(filepath.Join(t.TempDir(), "missing.arff"))
	require.Error(t, err)
}

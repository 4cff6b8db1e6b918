package match

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewYearTable(t *testing.T) {
	cols := Columns{
		Home:  []string{"Brazil", "Uruguay", "Spain"},
		Score: []string{"2–1", "2–2", "v"},
		Away:  []string{"Argentina", "Spain", "Sweden"},
	}

	table, err := NewYearTable(cols, 1950)
	require.NoError(t, err)
	require.Len(t, table, 3)

	for i, m := range table {
		assert.Equal(t, 1950, m.Year, "row %d year", i)
		assert.Equal(t, cols.Home[i], m.Home)
		assert.Equal(t, cols.Score[i], m.Score)
		assert.Equal(t, cols.Away[i], m.Away)
	}
}

func TestNewYearTable_SingleMatch(t *testing.T) {
	var cols Columns
	cols.Append("Brazil", "2–1", "Argentina")

	table, err := NewYearTable(cols, 1950)
	require.NoError(t, err)
	assert.Equal(t, Table{{Home: "Brazil", Score: "2–1", Away: "Argentina", Year: 1950}}, table)
}

func TestNewYearTable_Empty(t *testing.T) {
	table, err := NewYearTable(Columns{}, 1930)
	require.NoError(t, err)
	assert.Empty(t, table)
}

func TestNewYearTable_Mismatch(t *testing.T) {
	cols := Columns{
		Home:  []string{"Brazil", "Italy"},
		Score: []string{"2–1"},
		Away:  []string{"Argentina", "Spain"},
	}

	table, err := NewYearTable(cols, 1950)
	assert.Nil(t, table)
	assert.True(t, errors.Is(err, ErrColumnMismatch))
}

func TestConcat(t *testing.T) {
	t1930 := Table{
		{Home: "France", Score: "4–1", Away: "Mexico", Year: 1930},
		{Home: "Argentina", Score: "1–0", Away: "France", Year: 1930},
	}
	t1934 := Table{}
	t1938 := Table{
		{Home: "Switzerland", Score: "1–1", Away: "Germany", Year: 1938},
		{Home: "Cuba", Score: "3–3", Away: "Romania", Year: 1938},
		{Home: "Italy", Score: "4–2", Away: "Hungary", Year: 1938},
	}

	combined := Concat(t1930, t1934, t1938)
	require.Len(t, combined, len(t1930)+len(t1934)+len(t1938))

	want := append(append(Table{}, t1930...), t1938...)
	assert.Equal(t, want, combined)
}

func TestConcat_NoTables(t *testing.T) {
	combined := Concat()
	assert.NotNil(t, combined)
	assert.Empty(t, combined)
}

func TestConcat_DoesNotAlias(t *testing.T) {
	t1 := Table{{Home: "A", Score: "1–0", Away: "B", Year: 1954}}
	combined := Concat(t1)
	combined[0].Home = "changed"

	assert.Equal(t, "A", t1[0].Home)
}

func TestConcat_KeepsDuplicates(t *testing.T) {
	row := Match{Home: "Hungary", Score: "8–3", Away: "West Germany", Year: 1954}
	combined := Concat(Table{row}, Table{row})
	assert.Equal(t, Table{row, row}, combined)
}

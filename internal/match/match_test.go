package match

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnsLen(t *testing.T) {
	tests := []struct {
		name    string
		cols    Columns
		want    int
		wantErr bool
	}{
		{
			name: "empty",
			cols: Columns{},
			want: 0,
		},
		{
			name: "equal lengths",
			cols: Columns{
				Home:  []string{"Uruguay", "France"},
				Score: []string{"4–2", "4–1"},
				Away:  []string{"Argentina", "Mexico"},
			},
			want: 2,
		},
		{
			name: "missing score",
			cols: Columns{
				Home:  []string{"Uruguay"},
				Score: []string{},
				Away:  []string{"Argentina"},
			},
			wantErr: true,
		},
		{
			name: "extra away",
			cols: Columns{
				Home:  []string{"Uruguay"},
				Score: []string{"4–2"},
				Away:  []string{"Argentina", "Peru"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := tt.cols.Len()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrColumnMismatch))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestColumnsAppend(t *testing.T) {
	var cols Columns
	cols.Append("Brazil", "2–1", "Argentina")
	cols.Append("Italy", "1–1", "Spain")

	n, err := cols.Len()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"Brazil", "Italy"}, cols.Home)
	assert.Equal(t, []string{"2–1", "1–1"}, cols.Score)
	assert.Equal(t, []string{"Argentina", "Spain"}, cols.Away)
}

func TestHeader(t *testing.T) {
	assert.Equal(t, []string{"home", "score", "away", "year"}, Header())
}

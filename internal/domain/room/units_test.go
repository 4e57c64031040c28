//go:build unit

package room_test

import (
	"testing"

	"stayline/internal/domain/room"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr error
	}{
		{
			name:  "single unit",
			input: "101",
			want:  []int{101},
		},
		{
			name:  "comma separated list",
			input: "101,102,205",
			want:  []int{101, 102, 205},
		},
		{
			name:  "inclusive range",
			input: "101-105",
			want:  []int{101, 102, 103, 104, 105},
		},
		{
			name:  "range overlapping single is deduplicated",
			input: "101-103,102,104",
			want:  []int{101, 102, 103, 104},
		},
		{
			name:  "whitespace around tokens",
			input: " 101 , 103 - 104 ",
			want:  []int{101, 103, 104},
		},
		{
			name:  "result is sorted regardless of input order",
			input: "205,101,150-151",
			want:  []int{101, 150, 151, 205},
		},
		{
			name:  "malformed token is skipped",
			input: "101,abc,103",
			want:  []int{101, 103},
		},
		{
			name:  "reversed range is skipped",
			input: "105-101,200",
			want:  []int{200},
		},
		{
			name:  "half-open dash token is skipped",
			input: "101-,102",
			want:  []int{102},
		},
		{
			name:  "empty tokens are ignored",
			input: "101,,102,",
			want:  []int{101, 102},
		},
		{
			name:  "empty input yields no units and no error",
			input: "",
			want:  nil,
		},
		{
			name:  "blank input yields no units and no error",
			input: "   ",
			want:  nil,
		},
		{
			name:    "entirely malformed input is an error",
			input:   "abc,x-y,-",
			wantErr: room.ErrInvalidUnitExpression,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := room.ParseUnits(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMergeUnits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{1, 2, 3, 4}, room.MergeUnits([]int{1, 3}, []int{2, 3, 4}))
	assert.Equal(t, []int{5}, room.MergeUnits(nil, []int{5}))
	assert.Equal(t, []int{5}, room.MergeUnits([]int{5}, []int{5}))
}

func TestRemoveUnits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{1, 4}, room.RemoveUnits([]int{1, 2, 3, 4}, []int{2, 3}))
	assert.Equal(t, []int{1, 2}, room.RemoveUnits([]int{1, 2}, []int{9}))
	assert.Empty(t, room.RemoveUnits([]int{1}, []int{1}))
}

package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var entrySortFields = map[string]string{
	"likes":     "like_count",
	"timestamp": "created_at",
}

func TestParseSort(t *testing.T) {
	fallback := Sort{Expression: "created_at", Descending: true}

	tests := []struct {
		name       string
		sortBy     string
		sortOrder  string
		sortOption string
		want       Sort
		wantErr    bool
	}{
		{
			name:   "split form ascending by default",
			sortBy: "likes",
			want:   Sort{Expression: "like_count", Descending: false},
		},
		{
			name:      "split form descending",
			sortBy:    "timestamp",
			sortOrder: "desc",
			want:      Sort{Expression: "created_at", Descending: true},
		},
		{
			name:      "sort order is case-insensitive",
			sortBy:    "likes",
			sortOrder: "DESC",
			want:      Sort{Expression: "like_count", Descending: true},
		},
		{
			name:       "combined form descending",
			sortOption: "-likes",
			want:       Sort{Expression: "like_count", Descending: true},
		},
		{
			name:       "combined form ascending",
			sortOption: "timestamp",
			want:       Sort{Expression: "created_at", Descending: false},
		},
		{
			name:       "combined form wins over split form",
			sortBy:     "timestamp",
			sortOrder:  "asc",
			sortOption: "-likes",
			want:       Sort{Expression: "like_count", Descending: true},
		},
		{
			name: "empty input falls back",
			want: fallback,
		},
		{
			name:    "unknown field is rejected",
			sortBy:  "like_count; DROP TABLE entries",
			wantErr: true,
		},
		{
			name:       "unknown combined field is rejected",
			sortOption: "-secret",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSort(tt.sortBy, tt.sortOrder, tt.sortOption, entrySortFields, fallback)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSortOrderBy(t *testing.T) {
	t.Run("secondary tie-break on created_at and id", func(t *testing.T) {
		s := Sort{Expression: "like_count", Descending: true}
		assert.Equal(t, "ORDER BY like_count DESC, created_at ASC, id ASC", s.OrderBy())
	})

	t.Run("created_at sort does not repeat itself", func(t *testing.T) {
		s := Sort{Expression: "created_at", Descending: true}
		assert.Equal(t, "ORDER BY created_at DESC, id ASC", s.OrderBy())
	})

	t.Run("ascending", func(t *testing.T) {
		s := Sort{Expression: "like_count"}
		assert.Equal(t, "ORDER BY like_count ASC, created_at ASC, id ASC", s.OrderBy())
	})
}

package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowSince(t *testing.T) {
	now := time.Date(2024, 5, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		window string
		want   time.Time
	}{
		{"today starts at midnight", WindowToday, time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)},
		{"lastWeek is seven days back", WindowLastWeek, time.Date(2024, 5, 8, 14, 30, 0, 0, time.UTC)},
		{"lastMonth is one calendar month back", WindowLastMonth, time.Date(2024, 4, 15, 14, 30, 0, 0, time.UTC)},
		{"lastYear is one year back", WindowLastYear, time.Date(2023, 5, 15, 14, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			since, err := WindowSince(tt.window, now)
			require.NoError(t, err)
			require.NotNil(t, since)
			assert.True(t, since.Equal(tt.want), "got %v, want %v", since, tt.want)
		})
	}

	t.Run("allTime has no lower bound", func(t *testing.T) {
		since, err := WindowSince(WindowAllTime, now)
		require.NoError(t, err)
		assert.Nil(t, since)
	})

	t.Run("unknown name is rejected", func(t *testing.T) {
		_, err := WindowSince("lastDecade", now)
		assert.Error(t, err)
	})

	t.Run("today respects the clock's location", func(t *testing.T) {
		loc := time.FixedZone("UTC+7", 7*3600)
		local := time.Date(2024, 5, 15, 1, 0, 0, 0, loc)

		since, err := WindowSince(WindowToday, local)
		require.NoError(t, err)
		assert.Equal(t, loc, since.Location())
		assert.Equal(t, time.Date(2024, 5, 15, 0, 0, 0, 0, loc), *since)
	})
}

package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationFallsBackToUTC(t *testing.T) {
	assert.Equal(t, time.UTC, Location(""))
	assert.Equal(t, time.UTC, Location("Mars/Olympus"))
	assert.False(t, IsValid("Mars/Olympus"))
	assert.True(t, IsValid("UTC"))
}

func TestParseDayIsLocalMidnight(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)

	day, err := ParseDay("2025-03-01", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 2, 28, 18, 30, 0, 0, time.UTC), day.UTC())

	_, err = ParseDay("01/03/2025", loc)
	assert.Error(t, err)
}

func TestStamp(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	ts := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, "2025-03-01 15:30:00", Stamp(ts, loc))
}

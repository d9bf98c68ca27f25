package invoice

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNumber(t *testing.T) {
	now := time.UnixMilli(1735689600123)
	generated := regexp.MustCompile(`^INV-1735689600123-[0-9A-F]{8}$`)

	assert.Regexp(t, generated, Number("", now))
	assert.Regexp(t, generated, Number("   ", now))
	assert.Equal(t, "A-42", Number(" A-42 ", now))
}

func TestNumber_SameMillisecondDiffers(t *testing.T) {
	now := time.UnixMilli(1735689600123)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		n := Number("", now)
		assert.False(t, seen[n], n)
		seen[n] = true
	}
}

package invoice

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Number returns the caller's invoice number or a generated
// INV-<millis>-<suffix>. The random suffix keeps numbers issued in the
// same millisecond apart.
func Number(requested string, now time.Time) string {
	if n := strings.TrimSpace(requested); n != "" {
		return n
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("INV-%d-%s", now.UnixMilli(), suffix)
}

package timezone

import "time"

// Default is used when APP_TIMEZONE is unset or unknown.
const Default = "UTC"

// IsValid reports whether tz names a zone known to the host.
func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolves an IANA zone name, falling back to UTC.
func Location(tz string) *time.Location {
	if tz == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ParseDay reads a YYYY-MM-DD date as local midnight in loc.
func ParseDay(day string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", day, loc)
}

// Stamp formats t in loc for reports.
func Stamp(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02 15:04:05")
}

// AngelaMos | 2026
// values.go

package core

import (
	"fmt"
	"strings"
	"time"
)

// StringValue returns "" for a nil pointer.
func StringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// NullString maps "" to a SQL NULL.
func NullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Now is the UTC wall clock every repository stamps rows with.
func Now() time.Time {
	return time.Now().UTC()
}

// FlexTime decodes RFC 3339 timestamps as well as the bare dates sent
// by HTML date inputs.
type FlexTime struct {
	time.Time
}

var flexLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func (f *FlexTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		f.Time = time.Time{}
		return nil
	}

	for _, layout := range flexLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			f.Time = t.UTC()
			return nil
		}
	}

	return fmt.Errorf("invalid date %q", s)
}

// Ptr returns nil for an absent or zero value.
func (f *FlexTime) Ptr() *time.Time {
	if f == nil || f.IsZero() {
		return nil
	}
	t := f.Time
	return &t
}

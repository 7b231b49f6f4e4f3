package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// dateLayout is the wire format of an expense date.
const dateLayout = "2006-01-02"

// Date is a day-precision timestamp. It serializes to JSON as "YYYY-MM-DD"
// and accepts either that form or a full RFC 3339 timestamp on input, so
// clients may send both "2024-02-15" and "2024-02-15T00:00:00Z".
//
// Date implements [driver.Valuer] and sql.Scanner so it can be stored in a
// DATE column directly.
type Date struct {
	time.Time
}

// NewDate builds a Date truncated to day precision in UTC.
func NewDate(year int, month time.Month, day int) *Date {
	return &Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON renders the date as a quoted "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON parses a quoted "YYYY-MM-DD" or RFC 3339 string.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
	}
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}

	d.Time = t
	return nil
}

// Value implements [driver.Valuer].
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// Scan implements sql.Scanner for DATE columns.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v
		return nil
	case nil:
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

// String returns the "YYYY-MM-DD" representation.
// It implements the [fmt.Stringer] interface.
func (d Date) String() string {
	return d.Format(dateLayout)
}

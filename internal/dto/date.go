package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
)

var errEmptyDate = errors.New("date must not be empty, use YYYY-MM-DD format")

// Date is a calendar date carried over JSON as "YYYY-MM-DD".
type Date struct {
	time.Time
}

func NewDate(d datatypes.Date) Date {
	return Date{Time: time.Time(d)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

// UnmarshalJSON leaves d untouched on null and rejects an empty string.
func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	s := strings.Trim(string(b), `"`)
	if s == "" {
		return errEmptyDate
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return fmt.Errorf("date must be in YYYY-MM-DD format: %q", s)
	}
	d.Time = t
	return nil
}

// Model converts the date to the column type; nil maps to the zero date.
func (d *Date) Model() datatypes.Date {
	if d == nil {
		return datatypes.Date{}
	}
	return datatypes.Date(d.Time)
}

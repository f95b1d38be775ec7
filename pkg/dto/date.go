package dto

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the wire format of Date.
const DateLayout = "2006-01-02"

// Date is a calendar date that marshals as YYYY-MM-DD.
type Date time.Time

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).UTC().Format(DateLayout))
}

// Time returns d as a time.Time.
func (d Date) Time() time.Time {
	return time.Time(d)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	*d = Date(t)
	return nil
}

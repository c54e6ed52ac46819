package models

import (
	"database/sql/driver"
	"fmt"
	"math"
	"strconv"
	"time"
)

// Booking is a persisted record of a contractor hiring an artist for an
// event on a date. Artist fields are copied from the external catalog at
// creation time and are immutable afterwards.
type Booking struct {
	ID             int64     `json:"id" db:"id"`
	ContractorName string    `json:"contractor_name" db:"contractor_name"`
	ArtistID       string    `json:"artist_id" db:"artist_id"`
	ArtistName     string    `json:"artist_name" db:"artist_name"`
	ArtistImageURL *string   `json:"artist_image_url" db:"artist_image_url"`
	EventDate      Date      `json:"event_date" db:"event_date"`
	CacheAmount    *Money    `json:"cache_amount" db:"cache_amount"`
	EventAddress   *string   `json:"event_address" db:"event_address"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// NewBooking is the validated input of a create operation.
type NewBooking struct {
	ContractorName string
	ArtistID       string
	ArtistName     string
	ArtistImageURL *string
	EventDate      Date
	CacheAmount    *Money
	EventAddress   *string
}

// Date is a calendar date without a time-of-day component. JSON accepts
// both "2006-01-02" and RFC3339 (the time part is discarded) and always
// emits "2006-01-02". Stored as a DATE column.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

func DateOf(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
		}
	}

	*d = DateOf(t)

	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.Format(dateLayout))), nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case []byte:
		t, err := time.Parse(dateLayout, string(v))
		if err != nil {
			return fmt.Errorf("failed to scan date: %w", err)
		}
		*d = Date{t}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// Money is a monetary amount kept at exactly two decimal digits. JSON
// unmarshalling rounds the incoming number, marshalling always renders
// two fractional digits. Stored as NUMERIC(10,2).
type Money float64

// round2 keeps two decimal digits and flushes negative zero, so tiny
// negative inputs can never render as "-0.00".
func round2(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		return 0
	}
	return r
}

func (m *Money) UnmarshalJSON(data []byte) error {
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q", string(data))
	}

	*m = Money(round2(v))

	return nil
}

func (m Money) MarshalJSON() ([]byte, error) {
	return strconv.AppendFloat(nil, round2(float64(m)), 'f', 2, 64), nil
}

func (m *Money) Scan(src any) error {
	switch v := src.(type) {
	case float64:
		*m = Money(v)
		return nil
	case []byte:
		f, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			return fmt.Errorf("failed to scan amount: %w", err)
		}
		*m = Money(f)
		return nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("failed to scan amount: %w", err)
		}
		*m = Money(f)
		return nil
	case int64:
		*m = Money(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Money", src)
	}
}

func (m Money) Value() (driver.Value, error) {
	return strconv.FormatFloat(round2(float64(m)), 'f', 2, 64), nil
}

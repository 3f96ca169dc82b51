package calendar

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DisplayLayout is the only format accepted from users (DD.MM.YYYY)
const DisplayLayout = "02.01.2006"

// StorageLayout is how dates are persisted (YYYY-MM-DD)
const StorageLayout = "2006-01-02"

// ErrInvalidFormat is returned when a text does not hold a DD.MM.YYYY calendar date
var ErrInvalidFormat = errors.New("invalid date format, expected DD.MM.YYYY")

// Date is a calendar date without time of day or time zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New builds a Date, normalizing overflowing fields the same way time.Date does.
func New(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime returns the calendar day of t in t's own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the calendar day of now in now's location.
func Today(now time.Time) Date {
	return FromTime(now)
}

// Parse accepts only DD.MM.YYYY with fixed field widths.
func Parse(text string) (Date, error) {
	text = strings.TrimSpace(text)

	parts := strings.Split(text, ".")
	if len(parts) != 3 || len(parts[0]) != 2 || len(parts[1]) != 2 || len(parts[2]) != 4 {
		return Date{}, ErrInvalidFormat
	}

	fields := make([]int, 3)
	for i, part := range parts {
		for _, r := range part {
			if r < '0' || r > '9' {
				return Date{}, ErrInvalidFormat
			}
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return Date{}, ErrInvalidFormat
		}
		fields[i] = n
	}

	day, month, year := fields[0], time.Month(fields[1]), fields[2]
	if month < time.January || month > time.December || day < 1 {
		return Date{}, ErrInvalidFormat
	}

	// time.Date normalizes 31.04 into 01.05, so a round trip detects impossible days
	d := New(year, month, day)
	if d.Day != day || d.Month != month || d.Year != year {
		return Date{}, ErrInvalidFormat
	}

	return d, nil
}

func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}

func (d Date) Equal(other Date) bool {
	return d == other
}

// DaysUntil returns the number of whole days from d to other (negative if other is earlier).
func (d Date) DaysUntil(other Date) int {
	return int(other.Time().Sub(d.Time()).Hours() / 24)
}

// AddDays returns the date n days after d.
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// Format renders the date the way users type it.
func (d Date) Format() string {
	return d.Time().Format(DisplayLayout)
}

func (d Date) String() string {
	return d.Time().Format(StorageLayout)
}

// Value implements driver.Valuer
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// Scan implements sql.Scanner for TEXT (YYYY-MM-DD) and DATE/DATETIME columns.
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = FromTime(v)
		return nil
	case string:
		return d.scanText(v)
	case []byte:
		return d.scanText(string(v))
	default:
		return fmt.Errorf("cannot scan %T into calendar.Date", src)
	}
}

func (d *Date) scanText(s string) error {
	s = strings.TrimSpace(s)
	if len(s) > len(StorageLayout) {
		s = s[:len(StorageLayout)]
	}
	t, err := time.Parse(StorageLayout, s)
	if err != nil {
		return fmt.Errorf("failed to parse stored date %q: %w", s, err)
	}
	*d = FromTime(t)
	return nil
}

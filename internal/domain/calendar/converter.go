package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Layout of alternate-calendar date strings.
const Layout = "YYYY-MM-DD"

// Converter translates between alternate-calendar date strings and Gregorian
// calendar days. Implementations must be safe for concurrent use.
type Converter interface {
	// ToStandard resolves an alternate-calendar date to midnight UTC of the
	// matching Gregorian day.
	ToStandard(alt string) (time.Time, error)
	// ToAlt formats the Gregorian calendar day of t. Only t's year, month and
	// day are used; its location is ignored.
	ToAlt(t time.Time) (string, error)
}

// BikramSambat converts using the built-in month table.
type BikramSambat struct{}

// NewBikramSambat returns the table-backed converter.
func NewBikramSambat() BikramSambat {
	return BikramSambat{}
}

var _ Converter = BikramSambat{}

// ToStandard implements Converter.
func (BikramSambat) ToStandard(alt string) (time.Time, error) {
	year, month, day, err := parse(alt)
	if err != nil {
		return time.Time{}, err
	}

	offset := 0
	for y := firstYear; y < year; y++ {
		offset += yearLength(y)
	}
	for m := 1; m < month; m++ {
		offset += daysInMonth(year, m)
	}
	offset += day - 1

	return epoch.AddDate(0, 0, offset), nil
}

// ToAlt implements Converter.
func (BikramSambat) ToAlt(t time.Time) (string, error) {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	offset := int(day.Sub(epoch).Hours() / 24)
	if offset < 0 {
		return "", &DateFormatError{Value: day.Format("2006-01-02"), Reason: "before supported range"}
	}

	for year := firstYear; year <= lastYear; year++ {
		if n := yearLength(year); offset >= n {
			offset -= n
			continue
		}
		for month := 1; month <= 12; month++ {
			n := daysInMonth(year, month)
			if offset < n {
				return fmt.Sprintf("%04d-%02d-%02d", year, month, offset+1), nil
			}
			offset -= n
		}
	}

	return "", &DateFormatError{Value: day.Format("2006-01-02"), Reason: "after supported range"}
}

func parse(alt string) (year, month, day int, err error) {
	raw := alt
	parts := strings.Split(strings.TrimSpace(alt), "-")
	if len(parts) != 3 {
		return 0, 0, 0, &DateFormatError{Value: raw, Reason: "expected " + Layout}
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, convErr := strconv.Atoi(p)
		if convErr != nil || p == "" || p[0] == '+' || p[0] == '-' {
			return 0, 0, 0, &DateFormatError{Value: raw, Reason: "non-numeric component"}
		}
		nums[i] = n
	}
	year, month, day = nums[0], nums[1], nums[2]

	if year < firstYear || year > lastYear {
		return 0, 0, 0, &DateFormatError{
			Value:  raw,
			Reason: fmt.Sprintf("year outside %d-%d", firstYear, lastYear),
		}
	}
	if month < 1 || month > 12 {
		return 0, 0, 0, &DateFormatError{Value: raw, Reason: "month outside 1-12"}
	}
	if limit := daysInMonth(year, month); day < 1 || day > limit {
		return 0, 0, 0, &DateFormatError{
			Value:  raw,
			Reason: fmt.Sprintf("day outside 1-%d", limit),
		}
	}
	return year, month, day, nil
}

// Today returns today's alternate-calendar date as seen in loc.
func Today(conv Converter, now time.Time, loc *time.Location) (string, error) {
	return conv.ToAlt(now.In(loc))
}

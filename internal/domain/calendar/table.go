package calendar

import "time"

// First and last Bikram Sambat years covered by monthDays.
const (
	firstYear = 2075
	lastYear  = 2090
)

// epoch is 2075-01-01 BS (Baisakh 1).
var epoch = time.Date(2018, time.April, 14, 0, 0, 0, 0, time.UTC)

// monthDays holds the published month lengths for each BS year, Baisakh first.
var monthDays = [lastYear - firstYear + 1][12]int{
	{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}, // 2075
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30}, // 2076
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}, // 2077
	{31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30}, // 2078
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}, // 2079
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30}, // 2080
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}, // 2081
	{31, 31, 32, 31, 31, 30, 30, 30, 29, 30, 30, 30}, // 2082
	{31, 31, 32, 31, 31, 30, 30, 30, 29, 30, 30, 30}, // 2083
	{31, 31, 32, 31, 31, 30, 30, 30, 29, 30, 30, 30}, // 2084
	{31, 32, 31, 32, 30, 31, 30, 30, 29, 30, 30, 30}, // 2085
	{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30}, // 2086
	{31, 31, 32, 31, 31, 31, 30, 30, 29, 30, 30, 30}, // 2087
	{30, 31, 32, 32, 30, 31, 30, 30, 29, 30, 30, 30}, // 2088
	{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30}, // 2089
	{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30}, // 2090
}

func yearLength(year int) int {
	total := 0
	for _, d := range monthDays[year-firstYear] {
		total += d
	}
	return total
}

// daysInMonth returns 0 when year or month is outside the table.
func daysInMonth(year, month int) int {
	if year < firstYear || year > lastYear || month < 1 || month > 12 {
		return 0
	}
	return monthDays[year-firstYear][month-1]
}

package tasklist

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	minYear = 0
	maxYear = 9999
)

// ParsePriority accepts c, h, n or l in any case and returns the lowercase code.
func ParsePriority(input string) (string, error) {
	switch p := strings.ToLower(strings.TrimSpace(input)); p {
	case PriorityCritical, PriorityHigh, PriorityNormal, PriorityLow:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, input)
	}
}

// ParseDate accepts year-month-day with unpadded decimal parts and returns the
// zero-padded yyyy-mm-dd form. The parts must name a real calendar date.
func ParseDate(input string) (string, error) {
	date, err := parseCalendarDate(input)
	if err != nil {
		return "", err
	}
	return formatDate(date), nil
}

// ParseTime accepts hour:minute with unpadded decimal parts and returns the
// zero-padded hh:mm form.
func ParseTime(input string) (string, error) {
	parts := strings.Split(strings.TrimSpace(input), ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTime, input)
	}

	hour, errHour := strconv.Atoi(parts[0])
	minute, errMinute := strconv.Atoi(parts[1])
	if errHour != nil || errMinute != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTime, input)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", fmt.Errorf("%w: %q out of range", ErrInvalidTime, input)
	}

	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

// ParseIndex converts a 1-based task number into a 0-based index for a list of size n.
func ParseIndex(input string, n int) (int, error) {
	number, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || number < 1 || number > n {
		return 0, fmt.Errorf("%w: %q (1-%d)", ErrInvalidIndex, input, n)
	}
	return number - 1, nil
}

func parseCalendarDate(input string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(input), "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, input)
	}

	var values [3]int
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, input)
		}
		values[i] = v
	}

	year, month, day := values[0], values[1], values[2]
	if year < minYear || year > maxYear || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("%w: %q out of range", ErrInvalidDate, input)
	}

	// time.Date normalizes overflow (Feb 30 -> Mar 2), so a mismatch means no such day.
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || int(date.Month()) != month || date.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %q is not a calendar day", ErrInvalidDate, input)
	}
	return date, nil
}

func formatDate(date time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", date.Year(), date.Month(), date.Day())
}

package tasklist

import "time"

const secondsPerDay = 24 * 60 * 60

// Clock reports the current instant. Due status only looks at its UTC calendar date.
type Clock func() time.Time

// SystemClock reads the wall clock.
func SystemClock() time.Time {
	return time.Now()
}

// DaysUntil returns the number of calendar days from the UTC date of now to date.
func DaysUntil(date string, now time.Time) (int, error) {
	target, err := parseCalendarDate(date)
	if err != nil {
		return 0, err
	}
	today := utcDate(now)
	// Unix seconds avoid the ~292 year limit of time.Duration.
	return int((target.Unix() - today.Unix()) / secondsPerDay), nil
}

// DueStatusOf classifies date against the UTC date of now.
func DueStatusOf(date string, now time.Time) (DueStatus, error) {
	days, err := DaysUntil(date, now)
	if err != nil {
		return DueToday, err
	}
	switch {
	case days > 0:
		return DueIncoming, nil
	case days < 0:
		return DueOverdue, nil
	default:
		return DueToday, nil
	}
}

func utcDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

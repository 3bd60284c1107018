package tasklist

import "errors"

var (
	// ErrInvalidPriority is returned when a priority is not one of C, H, N, L.
	ErrInvalidPriority = errors.New("invalid priority")
	// ErrInvalidDate is returned when a date is not a real yyyy-mm-dd calendar date.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidTime is returned when a time is not a valid hh:mm.
	ErrInvalidTime = errors.New("invalid time")
	// ErrBlankTask indicates a task body without any lines.
	ErrBlankTask = errors.New("task is blank")
	// ErrInvalidIndex indicates the caller referenced a task number outside the list bounds.
	ErrInvalidIndex = errors.New("task number out of range")
)

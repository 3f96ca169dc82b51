package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrOrderingViolation is returned when a vacation ends on or before its start date.
	ErrOrderingViolation = errors.New("vacation end date must be after the start date")

	// ErrDurationExceeded is matched by DurationExceededError with errors.Is.
	ErrDurationExceeded = errors.New("vacation is longer than allowed")

	// ErrPastStart is returned when a start date typed by the user is already in the past.
	ErrPastStart = errors.New("vacation start date is in the past")

	// ErrLapsedStart is returned when the start date became past while the dialogue was open.
	ErrLapsedStart = errors.New("vacation start date has lapsed")

	// ErrMissingIdentity is returned when the chat session never captured an employee id.
	ErrMissingIdentity = errors.New("employee identification number not found in session")

	// ErrPersistence wraps any store failure surfaced to users as a generic failure.
	ErrPersistence = errors.New("persistence failure")

	// ErrDispatchFailure marks a reminder that could not be delivered to one employee.
	ErrDispatchFailure = errors.New("reminder dispatch failed")

	// ErrEmployeeNotFound is returned when the staff directory has no such id.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrInvalidEmployeeID is returned when an identification number is not a positive integer.
	ErrInvalidEmployeeID = errors.New("invalid employee identification number")

	// ErrUnsupportedFile is returned when a submitted file is not an xlsx workbook.
	ErrUnsupportedFile = errors.New("unsupported file type, expected .xlsx")
)

// DurationExceededError carries the computed span of a rejected vacation.
type DurationExceededError struct {
	Days    int
	MaxDays int
}

func (e *DurationExceededError) Error() string {
	return fmt.Sprintf("vacation lasts %d days, maximum is %d", e.Days, e.MaxDays)
}

func (e *DurationExceededError) Is(target error) bool {
	return target == ErrDurationExceeded
}

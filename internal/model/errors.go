package model

import (
	"errors"

	"github.com/mcoot/stopwatch/internal/stopwatch"
)

// Common errors used across the application
var (
	// Roster errors
	ErrInvalidInput   = stopwatch.ErrInvalidInput
	ErrPersonNotFound = errors.New("person not found")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Clock errors
	ErrInvalidPenalty  = errors.New("penalty out of range")
	ErrClockRunning    = errors.New("clock is running")
	ErrNothingToRecord = errors.New("no elapsed time to record")
)

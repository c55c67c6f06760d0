package utils

import "errors"

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrDayNotFound      = errors.New("day not found")
	ErrPOINotFound      = errors.New("poi not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrPoorQualityInput = errors.New("input too vague to act on")
	ErrDatabaseError    = errors.New("database error")
	ErrGeodataError     = errors.New("geodata load error")
	ErrAIUnavailable    = errors.New("ai backend unavailable")
	ErrAIBadResponse    = errors.New("unexpected ai response")
	ErrExportFailed     = errors.New("itinerary export failed")
)

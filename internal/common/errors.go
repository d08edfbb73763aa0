// Package common defines shared constants and sentinel errors used across
// the uploader client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Orchestration errors.
	ErrBatchInProgress = errors.New("batch in progress")

	// Session errors.
	ErrSessionNotReady = errors.New("session not ready")

	// Auth errors (invalid or malformed identity token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

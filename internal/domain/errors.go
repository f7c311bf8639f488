package domain

import "errors"

var (
	// ErrNoActiveChallenge is returned when an outcome is recorded before a
	// challenge has been generated.
	ErrNoActiveChallenge = errors.New("no active challenge: generate a challenge first")

	// ErrResetNotConfirmed is returned when the user declines a reset.
	ErrResetNotConfirmed = errors.New("reset not confirmed")

	ErrUnknownChallengeType = errors.New("unknown challenge type")
	ErrUnknownOutcome       = errors.New("unknown outcome")
	ErrEmptyCatalog         = errors.New("catalog has no prompts")
)

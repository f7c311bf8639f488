package domain

import (
	"fmt"
	"strings"
)

type ChallengeType string

const (
	ChallengeConsumption ChallengeType = "consumption"
	ChallengeWaste       ChallengeType = "waste"
	ChallengeElectricity ChallengeType = "electricity"
	ChallengeFuel        ChallengeType = "fuel"
)

// AllChallengeTypes is the closed set of challenge types in display order.
var AllChallengeTypes = []ChallengeType{
	ChallengeConsumption,
	ChallengeWaste,
	ChallengeElectricity,
	ChallengeFuel,
}

// DefaultChallengeType is the type selected when no session state exists.
const DefaultChallengeType = ChallengeConsumption

// Valid reports whether t is one of the four known types.
func (t ChallengeType) Valid() bool {
	for _, known := range AllChallengeTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Label returns the capitalized display name.
func (t ChallengeType) Label() string {
	if t == "" {
		return ""
	}
	s := string(t)
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseChallengeType accepts a canonical type name in any case.
func ParseChallengeType(s string) (ChallengeType, error) {
	t := ChallengeType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%q: %w", s, ErrUnknownChallengeType)
	}
	return t, nil
}

type Outcome string

const (
	OutcomeCompleted Outcome = "completed"
	OutcomeFailed    Outcome = "failed"
)

// Valid reports whether o is completed or failed.
func (o Outcome) Valid() bool {
	return o == OutcomeCompleted || o == OutcomeFailed
}

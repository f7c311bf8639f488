package domain

import (
	"fmt"
	"strings"
)

// Catalog maps each challenge type to its ordered prompt list.
// A Catalog is never mutated after construction; accessors return copies.
type Catalog struct {
	prompts map[ChallengeType][]string
}

// NewCatalog builds a catalog from the given prompts. Blank prompts are
// dropped and surrounding whitespace is trimmed.
func NewCatalog(prompts map[ChallengeType][]string) Catalog {
	c := Catalog{prompts: make(map[ChallengeType][]string, len(AllChallengeTypes))}
	for t, list := range prompts {
		for _, p := range list {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			c.prompts[t] = append(c.prompts[t], p)
		}
	}
	return c
}

// DefaultCatalog returns the built-in prompts.
func DefaultCatalog() Catalog {
	return NewCatalog(map[ChallengeType][]string{
		ChallengeConsumption: {
			"Be a planet hero! Buy local, seasonal produce",
			"Special mission! Avoid single-use products today",
			"Green adventure! Choose products with recyclable packaging",
			"Swap champion! Share or trade clothes or toys",
			"Zero-waste mission! Buy in bulk to cut packaging",
		},
		ChallengeWaste: {
			"Become a recycling master! Separate organic and inorganic waste",
			"Creative mission! Reuse jars and containers in a fun way",
			"Community superhero! Join a local clean-up",
			"Compost adventure! Turn organic waste into fertilizer",
			"Paperless mission! Avoid printing unnecessary documents",
		},
		ChallengeElectricity: {
			"Energy guardian! Unplug devices you are not using",
			"Smart light mission! Use low-energy bulbs",
			"Solar adventure! Use natural light instead of artificial light",
			"Power of saving! Turn off your computer when you are not using it",
			"Efficiency mission! Put your devices in power-saving mode",
		},
		ChallengeFuel: {
			"Join the green transport club! Share a car ride",
			"Urban adventure! Take public transport today",
			"Maintenance mission! Service your vehicle to reduce emissions",
			"Expert planner! Organize efficient routes",
			"Explore alternatives! Try a sustainable way to get around",
		},
	})
}

// Prompts returns a copy of the prompts for t.
func (c Catalog) Prompts(t ChallengeType) []string {
	list := c.prompts[t]
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// Len returns the number of prompts for t.
func (c Catalog) Len(t ChallengeType) int {
	return len(c.prompts[t])
}

// Prompt returns the i-th prompt for t.
func (c Catalog) Prompt(t ChallengeType, i int) (string, bool) {
	list := c.prompts[t]
	if i < 0 || i >= len(list) {
		return "", false
	}
	return list[i], true
}

// Contains reports whether text is a prompt of type t.
func (c Catalog) Contains(t ChallengeType, text string) bool {
	for _, p := range c.prompts[t] {
		if p == text {
			return true
		}
	}
	return false
}

// Validate requires every challenge type to have at least one prompt and
// rejects types outside the closed set.
func (c Catalog) Validate() error {
	for t := range c.prompts {
		if !t.Valid() {
			return fmt.Errorf("catalog type %q: %w", t, ErrUnknownChallengeType)
		}
	}
	for _, t := range AllChallengeTypes {
		if len(c.prompts[t]) == 0 {
			return fmt.Errorf("catalog type %s: %w", t, ErrEmptyCatalog)
		}
	}
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/pflag"
)

// addBoundedIntFlag registers an int flag and returns a validator that
// rejects values below zero or above upper after parsing. An upper bound of
// zero or less leaves the flag unbounded above.
func addBoundedIntFlag(fs *pflag.FlagSet, target *int, name string, def, upper int, usage string) func() error {
	fs.IntVar(target, name, def, usage)
	return func() error {
		if *target < 0 {
			return fmt.Errorf("--%s must be zero or greater, got %d", name, *target)
		}
		if upper > 0 && *target > upper {
			return fmt.Errorf("--%s must be at most %d, got %d", name, upper, *target)
		}
		return nil
	}
}

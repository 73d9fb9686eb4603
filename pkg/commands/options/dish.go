package options

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// DishOptions
type DishOptions struct {
	ID int
	// Set reports whether an id was given on the command line.
	Set bool
}

// ParseArgs reads the optional dish id argument.
func (o *DishOptions) ParseArgs(args []string) error {
	if len(args) == 0 {
		return nil
	}
	id, err := ParseDishID(args[0])
	if err != nil {
		return err
	}
	o.ID = id
	o.Set = true
	return nil
}

// ParseDishID accepts "2" or "#2".
func ParseDishID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid dish id %q", s)
	}
	return id, nil
}

// DishArgs allows at most one dish id, which is required unless
// --interactive is set.
func DishArgs(i *InteractiveOptions) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > 1 {
			return fmt.Errorf("expected one dish id, got %d", len(args))
		}
		if len(args) == 0 && !i.Interactive {
			return fmt.Errorf("a dish id is required, see %q or use --interactive", "confusion menu")
		}
		return nil
	}
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skelly-dev/javadoclink/internal/errors"
)

func OptionalStringFlag(cmd *cobra.Command, name string) (string, error) {
	if cmd == nil || cmd.Flags().Lookup(name) == nil {
		return "", nil
	}
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", fmt.Errorf("failed to read --%s flag: %w", name, err)
	}
	return strings.TrimSpace(value), nil
}

func OptionalBoolFlag(cmd *cobra.Command, name string) (bool, error) {
	if cmd == nil || cmd.Flags().Lookup(name) == nil {
		return false, nil
	}
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false, fmt.Errorf("failed to read --%s flag: %w", name, err)
	}
	return value, nil
}

// usageArgs reports positional argument mistakes as validation errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return errors.Wrap(err, errors.CategoryValidation, "usage: "+cmd.UseLine())
		}
		return nil
	}
}

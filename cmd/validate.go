package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// validateRefArgs rejects arguments git would read as options or that are empty.
func validateRefArgs(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		if strings.TrimSpace(arg) == "" {
			return fmt.Errorf("argument must not be empty")
		}
		if strings.HasPrefix(arg, "-") {
			return fmt.Errorf("invalid argument %q: must not start with '-'", arg)
		}
	}
	return nil
}

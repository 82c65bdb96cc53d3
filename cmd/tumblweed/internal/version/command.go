package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tinyland-inc/tumblweed/cmd/tumblweed/internal"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("tumblweed %s (%s)\n", internal.FormatVersion(), internal.GoVersion())
		},
	}
}

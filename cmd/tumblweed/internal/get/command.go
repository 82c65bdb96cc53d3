package get

import (
	"github.com/spf13/cobra"

	"github.com/tinyland-inc/tumblweed/cmd/tumblweed/internal"
)

func NewGetCommand() *cobra.Command {
	var configPath string
	var blog string

	cmd := &cobra.Command{
		Use:   "get <post-id>",
		Short: "Fetch a post as JSON",
		Args:  cobra.ExactArgs(1),
		Example: `  tumblweed get 712345678901234567
  tumblweed get 712345678901234567 --blog someoneelse`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := internal.BuildClient(configPath)
			if err != nil {
				return err
			}
			resp, err := client.GetPost(cmd.Context(), blog, args[0])
			if err != nil {
				return err
			}
			return internal.PrintJSON(resp)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Config file path (default: ~/.tumblweed/config.json)")
	cmd.Flags().StringVar(&blog, "blog", "", "Blog to read from (default: the configured blog)")

	return cmd
}

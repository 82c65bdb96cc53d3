package poll

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/tinyland-inc/tumblweed/cmd/tumblweed/internal"
)

func NewPollCommand() *cobra.Command {
	var configPath string
	var blog string
	var pollID string

	cmd := &cobra.Command{
		Use:   "poll <post-id>",
		Short: "Fetch poll results for a post",
		Args:  cobra.ExactArgs(1),
		Example: `  tumblweed poll 712345678901234567
  tumblweed poll 712345678901234567 --poll-id 11111111-2222-3333-4444-555555555555`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := internal.BuildClient(configPath)
			if err != nil {
				return err
			}

			if pollID != "" {
				resp, err := client.RawPollResults(cmd.Context(), blog, args[0], pollID)
				if err != nil {
					return err
				}
				return internal.PrintJSON(resp)
			}

			merged, err := client.PollResults(cmd.Context(), blog, args[0])
			if err != nil {
				return err
			}
			out, err := json.Marshal(merged)
			if err != nil {
				return err
			}
			return internal.PrintJSON(out)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Config file path (default: ~/.tumblweed/config.json)")
	cmd.Flags().StringVar(&blog, "blog", "", "Blog the post belongs to (default: the configured blog)")
	cmd.Flags().StringVar(&pollID, "poll-id", "", "Fetch raw results for one poll client id instead of merging")

	return cmd
}

package reblog

import (
	"github.com/spf13/cobra"

	"github.com/tinyland-inc/tumblweed/cmd/tumblweed/internal"
	"github.com/tinyland-inc/tumblweed/pkg/postfile"
	"github.com/tinyland-inc/tumblweed/pkg/tumblr"
)

func NewReblogCommand() *cobra.Command {
	var configPath string
	var fromBlog string
	var toBlog string
	var tags []string

	cmd := &cobra.Command{
		Use:   "reblog <post-id> <document.yaml>",
		Short: "Reblog a post with new content",
		Args:  cobra.ExactArgs(2),
		Example: `  tumblweed reblog 712345678901234567 comment.yaml --from-blog someoneelse
  tumblweed reblog 712345678901234567 comment.yaml --from-blog someoneelse --to-blog sideblog`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := internal.BuildClient(configPath)
			if err != nil {
				return err
			}

			doc, err := postfile.ParseFile(args[1])
			if err != nil {
				return err
			}
			blocks, err := doc.NPFBlocks()
			if err != nil {
				return err
			}

			resp, err := client.Reblog(cmd.Context(), tumblr.ReblogRequest{
				FromBlog: fromBlog,
				FromID:   args[0],
				ToBlog:   toBlog,
				Content:  blocks,
				Tags:     append(doc.Tags, tags...),
			})
			if err != nil {
				return err
			}
			return internal.PrintJSON(resp)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Config file path (default: ~/.tumblweed/config.json)")
	cmd.Flags().StringVar(&fromBlog, "from-blog", "", "Blog the post is reblogged from (default: the configured blog)")
	cmd.Flags().StringVar(&toBlog, "to-blog", "", "Blog the reblog is posted to (default: the configured blog)")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "Additional tag (repeatable)")

	return cmd
}

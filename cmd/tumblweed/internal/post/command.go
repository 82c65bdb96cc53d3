package post

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/tinyland-inc/tumblweed/cmd/tumblweed/internal"
	"github.com/tinyland-inc/tumblweed/pkg/postfile"
	"github.com/tinyland-inc/tumblweed/pkg/tumblr"
)

func NewPostCommand() *cobra.Command {
	var configPath string
	var tags []string
	var queue bool
	var draft bool

	cmd := &cobra.Command{
		Use:   "post <document.yaml>",
		Short: "Create a post from a YAML document",
		Args:  cobra.ExactArgs(1),
		Example: `  tumblweed post mypost.yaml
  tumblweed post mypost.yaml --queue
  tumblweed post mypost.yaml --tag golang --tag photos`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if queue && draft {
				return errors.New("--queue and --draft are mutually exclusive")
			}

			client, _, err := internal.BuildClient(configPath)
			if err != nil {
				return err
			}

			doc, err := postfile.ParseFile(args[0])
			if err != nil {
				return err
			}
			blocks, err := doc.NPFBlocks()
			if err != nil {
				return err
			}

			opts := []tumblr.PostOption{
				tumblr.WithTags(append(doc.Tags, tags...)...),
			}
			switch {
			case queue:
				opts = append(opts, tumblr.WithState("queue"))
			case draft:
				opts = append(opts, tumblr.WithState("draft"))
			}

			resp, err := client.CreatePost(cmd.Context(), blocks, opts...)
			if err != nil {
				return err
			}
			return internal.PrintJSON(resp)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Config file path (default: ~/.tumblweed/config.json)")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "Additional tag (repeatable, merged with the document's tags)")
	cmd.Flags().BoolVar(&queue, "queue", false, "Add the post to the queue instead of publishing")
	cmd.Flags().BoolVar(&draft, "draft", false, "Save the post as a draft instead of publishing")

	return cmd
}

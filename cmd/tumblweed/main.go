package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tinyland-inc/tumblweed/cmd/tumblweed/internal"
	"github.com/tinyland-inc/tumblweed/cmd/tumblweed/internal/auth"
	"github.com/tinyland-inc/tumblweed/cmd/tumblweed/internal/get"
	"github.com/tinyland-inc/tumblweed/cmd/tumblweed/internal/poll"
	"github.com/tinyland-inc/tumblweed/cmd/tumblweed/internal/post"
	"github.com/tinyland-inc/tumblweed/cmd/tumblweed/internal/reblog"
	"github.com/tinyland-inc/tumblweed/cmd/tumblweed/internal/version"
)

func NewTumblweedCommand() *cobra.Command {
	short := fmt.Sprintf("tumblweed - Tumblr NPF client v%s", internal.GetVersion())

	cmd := &cobra.Command{
		Use:     "tumblweed",
		Short:   short,
		Example: "tumblweed post mypost.yaml",
	}

	cmd.AddCommand(
		auth.NewAuthCommand(),
		post.NewPostCommand(),
		get.NewGetCommand(),
		reblog.NewReblogCommand(),
		poll.NewPollCommand(),
		version.NewVersionCommand(),
	)

	return cmd
}

func main() {
	cmd := NewTumblweedCommand()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

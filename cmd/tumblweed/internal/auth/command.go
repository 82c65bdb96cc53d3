package auth

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tinyland-inc/tumblweed/pkg/auth"
	"github.com/tinyland-inc/tumblweed/pkg/config"
)

func NewAuthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage API credentials",
	}

	var configPath string
	var blog string

	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Store a pasted OAuth2 access token",
		Args:  cobra.NoArgs,
		Example: `  tumblweed auth login --blog myblog
  tumblweed auth login --blog myblog --config /tmp/config.json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if blog == "" {
				blog = cfg.Blog
			}
			if blog == "" {
				return errors.New("no blog given: pass --blog or set TUMBLWEED_BLOG")
			}

			cred, err := auth.LoginPasteToken(blog, os.Stdin)
			if err != nil {
				return err
			}

			cfg.Blog = cred.Blog
			cfg.AccessToken = cred.AccessToken
			if err := config.SaveConfig(configPath, cfg); err != nil {
				return err
			}
			fmt.Printf("Credential for %s saved.\n", cred.Blog)
			return nil
		},
	}

	loginCmd.Flags().StringVar(&configPath, "config", "", "Config file path (default: ~/.tumblweed/config.json)")
	loginCmd.Flags().StringVar(&blog, "blog", "", "Blog the token is authorized for")

	cmd.AddCommand(loginCmd)

	return cmd
}

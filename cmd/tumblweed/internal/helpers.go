package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/tinyland-inc/tumblweed/pkg/config"
	"github.com/tinyland-inc/tumblweed/pkg/tumblr"
)

var (
	version   = "dev"
	gitCommit string
)

// BuildClient loads and validates config, then builds an API client.
// An empty cfgPath means the default config location.
func BuildClient(cfgPath string) (*tumblr.Client, *config.Config, error) {
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("config: %w (run `tumblweed auth login` or set TUMBLWEED_* env vars)", err)
	}
	client := tumblr.NewClient(cfg.Blog, cfg.AccessToken, tumblr.WithBaseURL(cfg.APIBase))
	return client, cfg, nil
}

// PrintJSON writes raw API JSON to stdout, indented.
func PrintJSON(raw []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		// Not JSON after all; print as-is.
		_, werr := os.Stdout.Write(raw)
		return werr
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(os.Stdout)
	return err
}

// FormatVersion returns the version string with optional git commit
func FormatVersion() string {
	v := version
	if gitCommit != "" {
		v += fmt.Sprintf(" (git: %s)", gitCommit)
	}
	return v
}

// GetVersion returns the version string
func GetVersion() string {
	return version
}

// GoVersion returns the Go runtime version the binary was built with.
func GoVersion() string {
	return runtime.Version()
}

package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskcli/internal/backend/googletasks"
	"taskcli/internal/config"
	"taskcli/internal/exitcode"
)

func init() {
	Register(&LoginCmd{})
}

// LoginCmd implements the login command.
type LoginCmd struct{}

func (c *LoginCmd) Name() string      { return "login" }
func (c *LoginCmd) Aliases() []string { return nil }
func (c *LoginCmd) Synopsis() string  { return "Authenticate with Google for sync" }
func (c *LoginCmd) Usage() string     { return "task-cli login [common flags]" }
func (c *LoginCmd) NeedsAuth() bool   { return false }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *LoginCmd) Run(ctx context.Context, cfg *config.Config, deps Deps, args []string, out, errOut io.Writer) int {
	if !cfg.HasOAuthClient() {
		printOAuthSetup(errOut, cfg.Dir)
		return exitcode.AuthError
	}

	if cfg.HasToken() && googletasks.TokenValid(cfg) {
		if !cfg.Quiet {
			fmt.Fprintln(out, "already logged in")
		}
		return exitcode.Success
	}

	oauthConfig, err := googletasks.LoadOAuthConfig(cfg)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.AuthError
	}

	// The consent URL goes to stderr so stdout stays clean.
	token, err := googletasks.Authorize(ctx, oauthConfig, errOut)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.AuthError
	}

	if err := cfg.EnsureDir(); err != nil {
		fmt.Fprintf(errOut, "error: failed to create config directory: %v\n", err)
		return exitcode.AuthError
	}
	if err := googletasks.SaveToken(cfg.TokenPath(), token); err != nil {
		fmt.Fprintf(errOut, "error: failed to save token: %v\n", err)
		return exitcode.AuthError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

func printOAuthSetup(w io.Writer, dir string) {
	fmt.Fprintf(w, "error: oauth_client.json not found in %s\n\n", dir)
	fmt.Fprintln(w, "Syncing to Google Tasks needs OAuth credentials:")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "1. Go to https://console.cloud.google.com/apis/credentials")
	fmt.Fprintln(w, "2. Create a project (or select an existing one)")
	fmt.Fprintln(w, "3. Enable the Google Tasks API:")
	fmt.Fprintln(w, "   https://console.cloud.google.com/apis/library/tasks.googleapis.com")
	fmt.Fprintln(w, "4. Create an OAuth client ID of type 'Desktop app' and download the JSON")
	fmt.Fprintln(w, "5. Save it as:")
	fmt.Fprintf(w, "   %s/oauth_client.json\n", dir)
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Then run 'task-cli login' again.")
}

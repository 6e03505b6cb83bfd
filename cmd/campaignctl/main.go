// Command campaignctl validates campaign planning documents, submits them to
// the campaign loader API and follows job progress.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"campaign-loader/internal/client"
)

// settings are read from CAMPAIGNCTL_* variables; flags override them.
type settings struct {
	APIURL       string        `env:"API_URL"`
	Token        string        `env:"TOKEN"`
	PollInterval time.Duration `env:"POLL_INTERVAL" envDefault:"5s"`
}

func loadSettings() (settings, error) {
	var s settings
	err := env.ParseWithOptions(&s, env.Options{Prefix: "CAMPAIGNCTL_"})
	return s, err
}

func newRootCmd(s *settings) *cobra.Command {
	root := &cobra.Command{
		Use:   "campaignctl",
		Short: "Bulk-create Google Ads campaigns from Markdown planning documents",
		Long: `campaignctl reads a Markdown planning document, shows the campaigns it
describes with their budgets, and submits it to the campaign loader API.
Campaigns are created paused, one at a time, in the background.

Example:
  campaignctl validate plan.md
  campaignctl submit plan.md --account 123-456-7890 --watch`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&s.APIURL, "api-url", s.APIURL, "API base URL (or set CAMPAIGNCTL_API_URL)")
	root.PersistentFlags().StringVar(&s.Token, "token", s.Token, "Bearer token sent to the API (or set CAMPAIGNCTL_TOKEN)")
	root.PersistentFlags().DurationVar(&s.PollInterval, "interval", s.PollInterval, "Status polling interval")

	root.AddCommand(newValidateCmd())
	root.AddCommand(newPreviewCmd(s))
	root.AddCommand(newSubmitCmd(s))
	root.AddCommand(newStatusCmd(s))
	root.AddCommand(newWatchCmd(s))
	return root
}

func apiClient(s *settings) (*client.Client, error) {
	var opts []client.Option
	if s.Token != "" {
		opts = append(opts, client.WithToken(s.Token))
	}
	return client.New(s.APIURL, opts...)
}

func main() {
	s, err := loadSettings()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(&s).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

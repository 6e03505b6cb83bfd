package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"campaign-loader/internal/client"
	"campaign-loader/internal/core/domain"
	"campaign-loader/internal/core/mdparse"
	"campaign-loader/internal/core/port"
)

func readDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// localPreview validates and summarizes a document without the API.
func localPreview(text string) (*port.Preview, error) {
	if err := mdparse.Validate(text); err != nil {
		return nil, err
	}
	defs := mdparse.Parse(text)
	return &port.Preview{
		Campaigns: defs,
		Totals:    domain.TotalBudgets(defs),
		Tiers:     domain.GroupByTier(defs),
	}, nil
}

func newValidateCmd() *cobra.Command {
	var normalize bool
	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a planning document locally and print its campaigns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readDocument(args[0])
			if err != nil {
				return err
			}
			preview, err := localPreview(text)
			if err != nil {
				return err
			}
			if normalize {
				_, err = io.WriteString(cmd.OutOrStdout(), mdparse.Render(preview.Campaigns))
				return err
			}
			printPreview(cmd.OutOrStdout(), preview)
			return nil
		},
	}
	cmd.Flags().BoolVar(&normalize, "normalize", false, "Print the campaigns as a canonical planning document instead")
	return cmd
}

func newPreviewCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "preview [file]",
		Short: "Ask the API which campaigns a document describes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readDocument(args[0])
			if err != nil {
				return err
			}
			c, err := apiClient(s)
			if err != nil {
				return err
			}
			preview, err := c.Preview(cmd.Context(), text)
			if err != nil {
				return err
			}
			printPreview(cmd.OutOrStdout(), preview)
			return nil
		},
	}
}

func newSubmitCmd(s *settings) *cobra.Command {
	var (
		account string
		watch   bool
	)
	cmd := &cobra.Command{
		Use:   "submit [file]",
		Short: "Validate a document and create its campaigns",
		Long: `Validates the document locally, prints the campaigns it describes and
submits it. Campaigns are created paused in the given customer account.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readDocument(args[0])
			if err != nil {
				return err
			}
			preview, err := localPreview(text)
			if err != nil {
				return err
			}
			c, err := apiClient(s)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printPreview(out, preview)

			resp, err := c.Submit(cmd.Context(), text, account)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\n%s: job %s with %d campaigns\n", resp.Message, resp.JobID, resp.CampaignCount)

			if !watch {
				return nil
			}
			return watchJob(cmd, c, s, resp.JobID)
		},
	}
	cmd.Flags().StringVar(&account, "account", "", "Google Ads customer id, e.g. 123-456-7890 (required)")
	cmd.Flags().BoolVar(&watch, "watch", false, "Follow the job until it finishes")
	_ = cmd.MarkFlagRequired("account")
	return cmd
}

func newStatusCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "status [job-id]",
		Short: "Print the current state of a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := apiClient(s)
			if err != nil {
				return err
			}
			job, err := c.Status(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printJob(cmd.OutOrStdout(), job)
			return nil
		},
	}
}

func newWatchCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [job-id]",
		Short: "Follow a job until all its campaigns are processed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := apiClient(s)
			if err != nil {
				return err
			}
			return watchJob(cmd, c, s, args[0])
		},
	}
}

func watchJob(cmd *cobra.Command, c *client.Client, s *settings, jobID string) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	poller := client.NewPoller(c, s.PollInterval)
	poller.OnUpdate = func(job *domain.CampaignJob) {
		printProgress(out, job)
	}
	poller.OnError = func(err error) {
		fmt.Fprintln(errOut, "status check failed:", err)
	}

	job, err := poller.Watch(cmd.Context(), jobID)
	if err != nil {
		return err
	}
	printJob(out, job)
	if job.Status == domain.JobFailed {
		return errors.New("some campaigns failed")
	}
	return nil
}

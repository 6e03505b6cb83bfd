package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"campaign-loader/internal/core/domain"
	"campaign-loader/internal/core/port"
)

func printPreview(w io.Writer, p *port.Preview) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for tier := domain.MinTier; tier <= domain.MaxTier; tier++ {
		defs := p.Tiers[tier]
		if len(defs) == 0 {
			continue
		}
		fmt.Fprintf(tw, "TIER %d\t\t\n", tier)
		for _, d := range defs {
			fmt.Fprintf(tw, "  %s\t$%s/day\t$%s/month\n", d.Name, d.DailyBudget.StringFixed(2), d.MonthlyBudget.StringFixed(2))
		}
	}
	fmt.Fprintf(tw, "TOTAL (%d campaigns)\t$%s/day\t$%s/month\n",
		p.Totals.CampaignCount, p.Totals.TotalDaily.StringFixed(2), p.Totals.TotalMonthly.StringFixed(2))
	_ = tw.Flush()
}

// progress counts campaigns that are no longer waiting or being created.
func progress(job *domain.CampaignJob) (done, total int) {
	for _, c := range job.Campaigns {
		if c.Status.Terminal() {
			done++
		}
	}
	return done, len(job.Campaigns)
}

func printProgress(w io.Writer, job *domain.CampaignJob) {
	done, total := progress(job)
	pct := 0
	if total > 0 {
		pct = done * 100 / total
	}
	fmt.Fprintf(w, "[%3d%%] %s: %d/%d campaigns processed\n", pct, job.Status, done, total)
}

func printJob(w io.Writer, job *domain.CampaignJob) {
	fmt.Fprintf(w, "Job %s (account %s): %s\n", job.JobID, job.AccountID, job.Status)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, c := range job.Campaigns {
		fmt.Fprintf(tw, "  T%d\t%s\t$%s/day\t%s\n", c.Tier, c.Name, c.DailyBudget.StringFixed(2), c.Status)
		if c.Error != "" {
			fmt.Fprintf(tw, "\t\terror:\t%s\n", c.Error)
		}
	}
	_ = tw.Flush()

	totals := domain.TotalBudgets(job.Campaigns)
	fmt.Fprintf(w, "Total: $%s/day across %d campaigns\n", totals.TotalDaily.StringFixed(2), totals.CampaignCount)
	if job.CompletedAt != nil {
		fmt.Fprintf(w, "Completed at %s\n", job.CompletedAt.Format("2006-01-02 15:04:05 MST"))
	}
}

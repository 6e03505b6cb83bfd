package domain

import "github.com/shopspring/decimal"

// Budgeted is anything that carries a campaign definition.
type Budgeted interface {
	Definition() CampaignDefinition
}

// Totals summarizes the budgets of a campaign list.
type Totals struct {
	TotalDaily    decimal.Decimal `json:"totalDaily"`
	TotalMonthly  decimal.Decimal `json:"totalMonthly"`
	CampaignCount int             `json:"campaignCount"`
}

// TotalBudgets sums daily and monthly budgets. Rounding to cents happens
// once, on the sums.
func TotalBudgets[T Budgeted](items []T) Totals {
	daily, monthly := decimal.Zero, decimal.Zero
	for _, it := range items {
		def := it.Definition()
		daily = daily.Add(def.DailyBudget)
		monthly = monthly.Add(def.MonthlyBudget)
	}
	return Totals{
		TotalDaily:    daily.Round(2),
		TotalMonthly:  monthly.Round(2),
		CampaignCount: len(items),
	}
}

// GroupByTier buckets items by tier, keeping their relative order. Every
// tier from MinTier to MaxTier has an entry, empty or not. Items with an out
// of range tier are dropped.
func GroupByTier[T Budgeted](items []T) map[int][]T {
	grouped := make(map[int][]T, MaxTier-MinTier+1)
	for tier := MinTier; tier <= MaxTier; tier++ {
		grouped[tier] = []T{}
	}
	for _, it := range items {
		tier := it.Definition().Tier
		if _, ok := grouped[tier]; ok {
			grouped[tier] = append(grouped[tier], it)
		}
	}
	return grouped
}

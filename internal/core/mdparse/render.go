package mdparse

import (
	"fmt"
	"strings"

	"campaign-loader/internal/core/domain"
)

// Render writes defs back as a canonical single-line document that Parse
// reads into the same names, tiers and daily budgets.
func Render(defs []domain.CampaignDefinition) string {
	var b strings.Builder
	for tier, items := range sortedTiers(defs) {
		if len(items) == 0 {
			continue
		}
		fmt.Fprintf(&b, "### TIER %d CAMPAIGNS\n", tier)
		for _, d := range items {
			fmt.Fprintf(&b, "%s - $%s\n", d.Name, d.DailyBudget.String())
		}
		b.WriteString("\n")
	}
	return b.String()
}

// sortedTiers returns definitions grouped by tier, indexed by tier number.
func sortedTiers(defs []domain.CampaignDefinition) [domain.MaxTier + 1][]domain.CampaignDefinition {
	var out [domain.MaxTier + 1][]domain.CampaignDefinition
	grouped := domain.GroupByTier(defs)
	for tier := domain.MinTier; tier <= domain.MaxTier; tier++ {
		out[tier] = grouped[tier]
	}
	return out
}

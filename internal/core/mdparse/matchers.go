package mdparse

import (
	"regexp"
	"strconv"
	"strings"
)

// matcher recognizes one line convention. apply reports whether the line was
// consumed; an unconsumed line is offered to the next matcher.
type matcher struct {
	name    string
	pattern *regexp.Regexp
	apply   func(st *state, i int, m []string) bool
}

var (
	tierCampaignsRe = regexp.MustCompile(`(?i)TIER\s*([1-4])\s*CAMPAIGNS?`)
	tierPrefixRe    = regexp.MustCompile(`(?i)^[#*\s]*(?:tier\s*([1-4])|t([1-4]))\b(.*)$`)
	sectionRe       = regexp.MustCompile(`^##\s*[📝⚙🚀✅📊📞🎯🔧⚡]`)
	ordinalRe       = regexp.MustCompile(`^#{3,6}\s*\d+[.)]\s*(.+)$`)
	nameLabelRe     = regexp.MustCompile(`(?i)^[-*+]?\s*\**\s*campaign\s+name\s*:?\s*\**\s*:?\s*(.+)$`)
	dailyBudgetRe   = regexp.MustCompile(`(?i)\**\s*daily\s+budget\s*:?\s*\**\s*:?\s*\$?\s*([\d,]*\d(?:\.\d+)?)`)
	dollarLineRe    = regexp.MustCompile(`^(.+?)\s*[-:|]\s*\$\s*([\d,]*\d(?:\.\d+)?)(.*)$`)
	plainLineRe     = regexp.MustCompile(`^(.+?)(?:\s+[-:|]|[:|])\s*([\d,]*\d(?:\.\d+)?)(?:[\s/|].*)?$`)
	amountInNameRe  = regexp.MustCompile(`\$\s*\d`)
	boldLabelRe     = regexp.MustCompile(`^[-*+]?\s*\*\*[^*]*:\s*\*\*|^[-*+]?\s*\*\*[^*]*\*\*\s*:`)
	bulletRe        = regexp.MustCompile(`^[-*+]\s+`)
)

// matchers are tried in order for every non-blank line.
var matchers = []matcher{
	{name: "tier-campaigns", pattern: tierCampaignsRe, apply: applyTierCampaigns},
	{name: "tier-prefix", pattern: tierPrefixRe, apply: applyTierPrefix},
	{name: "section", pattern: sectionRe, apply: applySection},
	{name: "ordinal-heading", pattern: ordinalRe, apply: applyCampaignName},
	{name: "campaign-name", pattern: nameLabelRe, apply: applyCampaignName},
	{name: "daily-budget", pattern: dailyBudgetRe, apply: applyDailyBudget},
	{name: "single-line", pattern: dollarLineRe, apply: applySingleLine},
	{name: "single-line-plain", pattern: plainLineRe, apply: applyPlainLine},
}

func applyTierCampaigns(st *state, _ int, m []string) bool {
	tier, _ := strconv.Atoi(m[1])
	st.enterTier(tier)
	return true
}

func applyTierPrefix(st *state, i int, m []string) bool {
	// "Tier 2 Brand - $5" and "T1-Search-Auckland - $50" are records.
	rest := m[3]
	if strings.Contains(rest, "$") && !strings.HasPrefix(st.line(i), "#") {
		return false
	}
	if m[1] != "" {
		tier, _ := strconv.Atoi(m[1])
		st.enterTier(tier)
		return true
	}

	// A bare Tn is a marker only when it stands alone: "T1", "T1: Search",
	// "## T2 campaigns".
	if rest != "" && !strings.ContainsAny(rest[:1], " \t:*.)") {
		return false
	}
	tier, _ := strconv.Atoi(m[2])
	st.enterTier(tier)
	return true
}

func applySection(st *state, _ int, _ []string) bool {
	st.closeSection()
	return true
}

func applyCampaignName(st *state, i int, m []string) bool {
	if st.tier == 0 {
		return false
	}
	name := cleanName(m[1])
	if name == "" {
		return true
	}
	st.buffer(name, i)
	return true
}

func applyDailyBudget(st *state, i int, m []string) bool {
	p := st.pending
	if p == nil {
		return true
	}
	st.pending = nil
	if st.block != nil {
		st.block.done = true
	}
	if i-p.line > pairWindow {
		return true
	}
	amount, ok := parseAmount(m[1])
	if !ok {
		return true
	}
	window := st.window(p.line, i, isBlockEnd)
	st.emit(shapeBlock, p.tier, p.name, amount, window)
	return true
}

// applySingleLine reads "Name - $50" records. The first separator followed by
// a $ amount wins, so trailing table cells and notes stay out of the name.
func applySingleLine(st *state, i int, m []string) bool {
	if st.tier == 0 || st.block != nil {
		return false
	}
	if boldLabelRe.MatchString(st.line(i)) {
		return false
	}
	name := cleanName(m[1])
	if name == "" || amountInNameRe.MatchString(name) {
		return false
	}
	amount, ok := parseAmount(m[2])
	if !ok {
		return true
	}
	window := st.window(i, i, isRecordBoundary)
	st.emit(shapeSingleLine, st.tier, name, amount, window)
	return true
}

// applyPlainLine reads "Name: 300" style records on lines without a $ sign.
// The amount must be a standalone token, so "Launch date: 2024-05-01" is not a
// record.
func applyPlainLine(st *state, i int, m []string) bool {
	if strings.Contains(st.line(i), "$") {
		return false
	}
	return applySingleLine(st, i, m)
}

// isBlockBoundary reports whether line starts another campaign block or
// tier.
func isBlockBoundary(line string) bool {
	return strings.HasPrefix(line, "#") ||
		nameLabelRe.MatchString(line) ||
		tierCampaignsRe.MatchString(line) ||
		tierPrefixRe.MatchString(line)
}

// isBlockEnd reports whether line ends the trailing fields of a block.
func isBlockEnd(line string) bool {
	return isBlockBoundary(line) || (!isFieldLine(line) && isSingleLine(line))
}

// isRecordBoundary reports whether line may itself be another record.
func isRecordBoundary(line string) bool {
	return isBlockBoundary(line) || isSingleLine(line)
}

func isSingleLine(line string) bool {
	if strings.Contains(line, "$") {
		return dollarLineRe.MatchString(line)
	}
	return plainLineRe.MatchString(line)
}

// isFieldLine reports whether line is a bulleted or bold-labelled field.
func isFieldLine(line string) bool {
	return bulletRe.MatchString(line) || strings.HasPrefix(line, "**")
}

// cleanName strips list bullets, emphasis and dangling separators.
func cleanName(s string) string {
	s = strings.TrimSpace(s)
	s = bulletRe.ReplaceAllString(s, "")
	s = strings.Trim(s, "*_| \t")
	s = strings.TrimRight(s, " \t-:|")
	return strings.TrimSpace(s)
}

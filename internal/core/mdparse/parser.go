// Package mdparse extracts tiered campaign definitions from loosely formatted
// Markdown planning documents.
//
// The parser is tolerant by design of the documents it reads: unknown lines
// are skipped, and a document with nothing recognizable yields no campaigns
// rather than an error. Two record shapes are understood inside a tier:
//
//	Campaign Alpha - $1,200.50
//
// and the block form
//
//	#### 1. Search-Auckland
//	- **Daily Budget:** $50.00
package mdparse

import (
	"strings"

	"github.com/shopspring/decimal"

	"campaign-loader/internal/core/domain"
)

const (
	// pairWindow is how many lines after a campaign name its daily budget
	// may appear.
	pairWindow = 6
	// trailingWindow is how many lines after a record are searched for the
	// exclusion marker.
	trailingWindow = 4

	alreadyCreatedMarker = "ALREADY CREATED"
)

type recordKey struct {
	tier int
	name string
}

// recordShape tells the block form apart from the single-line form.
type recordShape int

const (
	shapeBlock recordShape = iota
	shapeSingleLine
)

type emitted struct {
	shape recordShape
	daily decimal.Decimal
}

// pendingName is a campaign name waiting for its budget line.
type pendingName struct {
	name string
	tier int
	line int
}

// openBlock is a block record whose field lines are still being read.
type openBlock struct {
	start int
	done  bool
}

// state is the accumulator folded over the document lines.
type state struct {
	lines   []string
	tier    int
	block   *openBlock
	pending *pendingName
	seen    map[recordKey][]emitted
	out     []domain.CampaignDefinition
}

// Parse returns the campaign definitions found in text, in document order.
func Parse(text string) []domain.CampaignDefinition {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	st := &state{
		lines: lines,
		seen:  make(map[recordKey][]emitted),
	}
	for i := range lines {
		st.step(i)
	}
	return st.out
}

func (st *state) step(i int) {
	line := st.line(i)
	st.track(i, line)
	if line == "" {
		return
	}
	for _, m := range matchers {
		sub := m.pattern.FindStringSubmatch(line)
		if sub == nil {
			continue
		}
		if m.apply(st, i, sub) {
			return
		}
	}
}

func (st *state) line(i int) string {
	return strings.TrimSpace(st.lines[i])
}

func (st *state) enterTier(tier int) {
	st.tier = tier
	st.pending = nil
	st.block = nil
}

func (st *state) closeSection() {
	st.enterTier(0)
}

func (st *state) buffer(name string, i int) {
	st.pending = &pendingName{name: name, tier: st.tier, line: i}
	st.block = &openBlock{start: i}
}

// track closes the open block once line i cannot belong to it: a blank or
// unbulleted line after the budget, or any line past pairWindow without one.
func (st *state) track(i int, line string) {
	b := st.block
	if b == nil {
		return
	}
	switch {
	case b.done && (line == "" || !isFieldLine(line)):
		st.block = nil
	case !b.done && i-b.start > pairWindow:
		st.block = nil
	}
}

// window joins lines[from..to] plus up to trailingWindow following lines,
// stopping before the first trailing line for which stop returns true.
func (st *state) window(from, to int, stop func(string) bool) string {
	end := to
	for j := to + 1; j < len(st.lines) && j <= to+trailingWindow; j++ {
		if stop(st.line(j)) {
			break
		}
		end = j
	}
	return strings.Join(st.lines[from:end+1], "\n")
}

// emit appends a record unless it is excluded or restates one already
// emitted. A restatement is the same tier and name seen either in the other
// record shape or with the same budget; a same-shape record with a different
// budget is kept so that validation reports the conflict.
func (st *state) emit(shape recordShape, tier int, name string, daily decimal.Decimal, window string) {
	if strings.Contains(window, alreadyCreatedMarker) {
		return
	}
	key := recordKey{tier: tier, name: name}
	// An identical repeat is dropped, so it never reaches duplicate detection.
	for _, prev := range st.seen[key] {
		if prev.shape != shape || prev.daily.Equal(daily) {
			return
		}
	}
	st.seen[key] = append(st.seen[key], emitted{shape: shape, daily: daily})
	st.out = append(st.out, domain.NewCampaignDefinition(name, tier, daily))
}

// parseAmount reads a currency amount such as "$1,200.50". Zero, negative,
// unparsable and unrepresentable amounts are rejected.
func parseAmount(s string) (decimal.Decimal, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	s = strings.TrimPrefix(s, "$")
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsPositive() {
		return decimal.Decimal{}, false
	}
	if _, err := domain.Micros(d); err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

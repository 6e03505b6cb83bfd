package domain

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// MonthDays is the multiplier used to derive a monthly budget from a daily
// one.
const MonthDays = 30

// MinTier and MaxTier bound the tier numbers a document may declare.
const (
	MinTier = 1
	MaxTier = 4
)

var (
	ErrInvalidTransition = errors.New("invalid campaign status transition")
	ErrBudgetOutOfRange  = errors.New("daily budget out of range")
)

var maxMicros = decimal.NewFromInt(math.MaxInt64)

// CampaignStatus is the lifecycle state of a single campaign within a job.
type CampaignStatus string

const (
	CampaignPending   CampaignStatus = "pending"
	CampaignCreating  CampaignStatus = "creating"
	CampaignCompleted CampaignStatus = "completed"
	CampaignFailed    CampaignStatus = "failed"
)

// Terminal reports whether no further transition is allowed.
func (s CampaignStatus) Terminal() bool {
	return s == CampaignCompleted || s == CampaignFailed
}

// CanTransition reports whether a campaign may move from s to next.
// pending -> creating -> completed|failed is the only path.
func (s CampaignStatus) CanTransition(next CampaignStatus) bool {
	switch s {
	case CampaignPending:
		return next == CampaignCreating
	case CampaignCreating:
		return next == CampaignCompleted || next == CampaignFailed
	default:
		return false
	}
}

// CampaignDefinition is a campaign as extracted from a document. Budgets are
// decimal currency amounts.
type CampaignDefinition struct {
	Name          string          `json:"name"`
	Tier          int             `json:"tier"`
	DailyBudget   decimal.Decimal `json:"dailyBudget"`
	MonthlyBudget decimal.Decimal `json:"monthlyBudget"`
}

// NewCampaignDefinition builds a definition and derives its monthly budget.
func NewCampaignDefinition(name string, tier int, daily decimal.Decimal) CampaignDefinition {
	return CampaignDefinition{
		Name:          name,
		Tier:          tier,
		DailyBudget:   daily,
		MonthlyBudget: daily.Mul(decimal.NewFromInt(MonthDays)),
	}
}

// Definition returns the definition itself. It lets aggregation helpers
// accept both definitions and job campaigns.
func (d CampaignDefinition) Definition() CampaignDefinition {
	return d
}

// BudgetMicros converts the daily budget into the remote platform's
// micro-currency unit, rounded to the nearest integer.
func (d CampaignDefinition) BudgetMicros() (int64, error) {
	return Micros(d.DailyBudget)
}

// Micros converts amount into millionths. Amounts that do not fit an int64
// fail with ErrBudgetOutOfRange.
func Micros(amount decimal.Decimal) (int64, error) {
	micros := amount.Shift(6).Round(0)
	if micros.IsNegative() || micros.GreaterThan(maxMicros) {
		return 0, fmt.Errorf("%w: %s", ErrBudgetOutOfRange, amount)
	}
	return micros.IntPart(), nil
}

// Campaign is a job-scoped campaign with mutable status. Error is only set
// when Status is CampaignFailed.
type Campaign struct {
	CampaignDefinition
	ID     string         `json:"id"`
	Status CampaignStatus `json:"status"`
	Error  string         `json:"error,omitempty"`
}

// CampaignID builds the identifier of the n-th (1-based) campaign of a job.
func CampaignID(jobID string, n int) string {
	return fmt.Sprintf("%s-campaign-%d", jobID, n)
}

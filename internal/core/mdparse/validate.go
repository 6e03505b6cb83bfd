package mdparse

import (
	"errors"
	"strings"
)

var (
	ErrEmptyDocument  = errors.New("file is empty")
	ErrNoCampaigns    = errors.New("no valid campaigns found")
	ErrDuplicateNames = errors.New("duplicate campaign names found")
)

// IsValidationError reports whether err is one of the document rejection
// reasons.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyDocument) ||
		errors.Is(err, ErrNoCampaigns) ||
		errors.Is(err, ErrDuplicateNames)
}

// Validate checks that text can be submitted: it must not be blank, it must
// yield at least one campaign, and campaign names must be unique across all
// tiers.
func Validate(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyDocument
	}

	defs := Parse(text)
	if len(defs) == 0 {
		return ErrNoCampaigns
	}

	names := make(map[string]struct{}, len(defs))
	for _, d := range defs {
		if _, ok := names[d.Name]; ok {
			return ErrDuplicateNames
		}
		names[d.Name] = struct{}{}
	}
	return nil
}

package mdparse

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{"empty", "", ErrEmptyDocument},
		{"whitespace", " \n\t\n ", ErrEmptyDocument},
		{"no campaigns", "# Plan\nnothing here - yet\n", ErrNoCampaigns},
		{"only already created", "TIER 1 CAMPAIGNS\nAlpha - $5 ALREADY CREATED\n", ErrNoCampaigns},
		{"same name same tier", "TIER 1 CAMPAIGNS\nAlpha - $50\nAlpha - $60\n", ErrDuplicateNames},
		{"same name across tiers", "TIER 1 CAMPAIGNS\nAlpha - $50\nTIER 2 CAMPAIGNS\nAlpha - $50\n", ErrDuplicateNames},
		{"identical repeat collapses", "TIER 1 CAMPAIGNS\nAlpha - $50\nAlpha - $50\n", nil},
		{"block restated as line", "TIER 1 CAMPAIGNS\n#### 1. Alpha\n- **Daily Budget:** $50\n\nAlpha - $60\n", nil},
		{"case differs", "TIER 1 CAMPAIGNS\nAlpha - $50\nalpha - $50\n", nil},
		{"valid", "TIER 1 CAMPAIGNS\n#### 1. Search-Auckland\n- **Daily Budget:** $50.00\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.doc)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil && !IsValidationError(err) {
				t.Fatalf("IsValidationError(%v) = false", err)
			}
		})
	}
}

func TestValidateMessages(t *testing.T) {
	if got := ErrDuplicateNames.Error(); got != "duplicate campaign names found" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := ErrEmptyDocument.Error(); got != "file is empty" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := ErrNoCampaigns.Error(); got != "no valid campaigns found" {
		t.Fatalf("unexpected message %q", got)
	}
}

package domain

// Targeting holds the criteria attached to every created campaign. The
// values are resource names of the remote platform's constants and come
// from configuration, never from the document.
type Targeting struct {
	GeoTargetConstant string `json:"geoTargetConstant"`
	LanguageConstant  string `json:"languageConstant"`
}

// DefaultTargeting targets New Zealand in English.
var DefaultTargeting = Targeting{
	GeoTargetConstant: "geoTargetConstants/2554",
	LanguageConstant:  "languageConstants/1000",
}

// CriterionKind selects which targeting constraint a criterion carries.
type CriterionKind string

const (
	CriterionLocation CriterionKind = "location"
	CriterionLanguage CriterionKind = "language"
)

// CriterionSpec describes one targeting criterion for a remote campaign.
type CriterionSpec struct {
	CampaignRef string
	Kind        CriterionKind
	Constant    string
}

// Criteria returns the criteria to attach to campaignRef, location first.
func (t Targeting) Criteria(campaignRef string) []CriterionSpec {
	return []CriterionSpec{
		{CampaignRef: campaignRef, Kind: CriterionLocation, Constant: t.GeoTargetConstant},
		{CampaignRef: campaignRef, Kind: CriterionLanguage, Constant: t.LanguageConstant},
	}
}

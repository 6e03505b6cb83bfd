package domain

// Credentials authorize calls against the remote advertising API.
type Credentials struct {
	ClientID       string `json:"client_id"`
	ClientSecret   string `json:"client_secret"`
	DeveloperToken string `json:"developer_token"`
	RefreshToken   string `json:"refresh_token"`
}

// BudgetSpec is the shape of a remote budget resource. AmountMicros is the
// daily amount in millionths of the account currency.
type BudgetSpec struct {
	Name           string
	AmountMicros   int64
	DeliveryMethod string
}

// CampaignSpec is the shape of a remote campaign resource.
type CampaignSpec struct {
	Name                  string
	BudgetRef             string
	Status                string
	ChannelType           string
	BiddingStrategy       string
	TargetGoogleSearch    bool
	TargetSearchNetwork   bool
	TargetContentNetwork  bool
	PositiveGeoTargetType string
	NegativeGeoTargetType string
}

// BudgetFor returns the budget resource to create for a campaign.
func BudgetFor(def CampaignDefinition) (BudgetSpec, error) {
	micros, err := def.BudgetMicros()
	if err != nil {
		return BudgetSpec{}, err
	}
	return BudgetSpec{
		Name:           def.Name + " - Budget",
		AmountMicros:   micros,
		DeliveryMethod: "STANDARD",
	}, nil
}

// SafeCampaignFor returns a paused search campaign bound to budgetRef.
// Campaigns are never created enabled.
func SafeCampaignFor(def CampaignDefinition, budgetRef string) CampaignSpec {
	return CampaignSpec{
		Name:                  def.Name,
		BudgetRef:             budgetRef,
		Status:                "PAUSED",
		ChannelType:           "SEARCH",
		BiddingStrategy:       "MAXIMIZE_CLICKS",
		TargetGoogleSearch:    true,
		TargetSearchNetwork:   true,
		TargetContentNetwork:  false,
		PositiveGeoTargetType: "PRESENCE_OR_INTEREST",
		NegativeGeoTargetType: "PRESENCE",
	}
}

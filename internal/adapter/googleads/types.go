package googleads

import (
	"encoding/json"
	"fmt"

	"campaign-loader/internal/core/domain"
)

type mutateRequest struct {
	Operations []operation `json:"operations"`
}

type operation struct {
	Create any `json:"create"`
}

type mutateResponse struct {
	Results []struct {
		ResourceName string `json:"resourceName"`
	} `json:"results"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

type campaignBudget struct {
	Name           string `json:"name"`
	AmountMicros   int64  `json:"amountMicros,string"`
	DeliveryMethod string `json:"deliveryMethod"`
}

type networkSettings struct {
	TargetGoogleSearch   bool `json:"targetGoogleSearch"`
	TargetSearchNetwork  bool `json:"targetSearchNetwork"`
	TargetContentNetwork bool `json:"targetContentNetwork"`
}

type geoTargetTypeSetting struct {
	PositiveGeoTargetType string `json:"positiveGeoTargetType"`
	NegativeGeoTargetType string `json:"negativeGeoTargetType"`
}

type campaign struct {
	Name                   string               `json:"name"`
	Status                 string               `json:"status"`
	AdvertisingChannelType string               `json:"advertisingChannelType"`
	CampaignBudget         string               `json:"campaignBudget"`
	NetworkSettings        networkSettings      `json:"networkSettings"`
	GeoTargetTypeSetting   geoTargetTypeSetting `json:"geoTargetTypeSetting"`
	// Bidding is a oneof; exactly one strategy field is set.
	TargetSpend *struct{} `json:"targetSpend,omitempty"`
	ManualCpc   *struct{} `json:"manualCpc,omitempty"`
}

type constantRef struct {
	GeoTargetConstant string `json:"geoTargetConstant,omitempty"`
	LanguageConstant  string `json:"languageConstant,omitempty"`
}

type campaignCriterion struct {
	Campaign string       `json:"campaign"`
	Location *constantRef `json:"location,omitempty"`
	Language *constantRef `json:"language,omitempty"`
}

func toBudget(b domain.BudgetSpec) campaignBudget {
	return campaignBudget{
		Name:           b.Name,
		AmountMicros:   b.AmountMicros,
		DeliveryMethod: b.DeliveryMethod,
	}
}

func toCampaign(c domain.CampaignSpec) (campaign, error) {
	out := campaign{
		Name:                   c.Name,
		Status:                 c.Status,
		AdvertisingChannelType: c.ChannelType,
		CampaignBudget:         c.BudgetRef,
		NetworkSettings: networkSettings{
			TargetGoogleSearch:   c.TargetGoogleSearch,
			TargetSearchNetwork:  c.TargetSearchNetwork,
			TargetContentNetwork: c.TargetContentNetwork,
		},
		GeoTargetTypeSetting: geoTargetTypeSetting{
			PositiveGeoTargetType: c.PositiveGeoTargetType,
			NegativeGeoTargetType: c.NegativeGeoTargetType,
		},
	}
	switch c.BiddingStrategy {
	case "MAXIMIZE_CLICKS":
		out.TargetSpend = &struct{}{}
	case "MANUAL_CPC":
		out.ManualCpc = &struct{}{}
	default:
		return campaign{}, fmt.Errorf("unsupported bidding strategy %q", c.BiddingStrategy)
	}
	return out, nil
}

func toCriterion(c domain.CriterionSpec) (campaignCriterion, error) {
	out := campaignCriterion{Campaign: c.CampaignRef}
	switch c.Kind {
	case domain.CriterionLocation:
		out.Location = &constantRef{GeoTargetConstant: c.Constant}
	case domain.CriterionLanguage:
		out.Language = &constantRef{LanguageConstant: c.Constant}
	default:
		return campaignCriterion{}, fmt.Errorf("unsupported criterion kind %q", c.Kind)
	}
	return out, nil
}

// decodeError extracts the API's error envelope. Bodies that are not an
// envelope are kept verbatim.
func decodeError(status int, endpoint string, body []byte) *APIError {
	e := &APIError{StatusCode: status, Endpoint: endpoint, Message: string(body)}
	var env errorResponse
	if json.Unmarshal(body, &env) == nil && env.Error.Message != "" {
		e.Message = env.Error.Message
		e.Status = env.Error.Status
	}
	return e
}

package models

// ScreeningRequest is the multi-criteria filter specification forwarded to
// the Kotlin screening engine. Field names match the engine's JSON contract.
//
// Each filter family carries an enable flag plus threshold fields. Threshold
// bounds are validated unconditionally, whether or not the family is
// enabled; a disabled family's thresholds are present but ignored by the
// engine. Min/max pairs are intentionally not cross-checked here.
type ScreeningRequest struct {
	// Korea Investment & Securities credentials
	AppKey       string `json:"appKey" validate:"required"`
	AppSecret    string `json:"appSecret" validate:"required"`
	IsProduction bool   `json:"isProduction"`

	// Moving average bands (percent of price relative to the MA line)
	MA60Enabled bool `json:"ma60Enabled"`
	MA60Min     int  `json:"ma60Min" default:"95" validate:"gte=0,lte=200"`
	MA60Max     int  `json:"ma60Max" default:"105" validate:"gte=0,lte=200"`

	MA112Enabled bool `json:"ma112Enabled" default:"true"`
	MA112Min     int  `json:"ma112Min" default:"95" validate:"gte=0,lte=200"`
	MA112Max     int  `json:"ma112Max" default:"105" validate:"gte=0,lte=200"`

	MA224Enabled bool `json:"ma224Enabled"`
	MA224Min     int  `json:"ma224Min" default:"95" validate:"gte=0,lte=200"`
	MA224Max     int  `json:"ma224Max" default:"105" validate:"gte=0,lte=200"`

	// Bollinger Bands
	BBEnabled    bool    `json:"bbEnabled"`
	BBPeriod     int     `json:"bbPeriod" default:"20" validate:"gte=5,lte=100"`
	BBMultiplier float64 `json:"bbMultiplier" default:"2.0" validate:"gte=0.5,lte=5.0"`
	BBPosition   string  `json:"bbPosition" default:"all" validate:"oneof=all upper middle lower"`
	BBUpperBreak bool    `json:"bbUpperBreak"`
	BBLowerBreak bool    `json:"bbLowerBreak"`

	// Volume surge
	VolumeEnabled  bool    `json:"volumeEnabled"`
	VolumeMultiple float64 `json:"volumeMultiple" default:"1.5" validate:"gte=0.1,lte=10.0"`

	// Price change (percent)
	PriceChangeEnabled bool    `json:"priceChangeEnabled"`
	PriceChangeMin     float64 `json:"priceChangeMin" default:"-100.0" validate:"gte=-100,lte=100"`
	PriceChangeMax     float64 `json:"priceChangeMax" default:"100.0" validate:"gte=-100,lte=100"`

	// Exclusions
	ExcludeETF        bool `json:"excludeETF" default:"true"`
	ExcludeETN        bool `json:"excludeETN" default:"true"`
	ExcludeManagement bool `json:"excludeManagement"`

	// Market capitalization (KRW)
	MarketCapEnabled bool  `json:"marketCapEnabled"`
	MarketCapMin     int64 `json:"marketCapMin" validate:"gte=0"`
	MarketCapMax     int64 `json:"marketCapMax" default:"1000000000000" validate:"gte=0"`

	// Price/earnings ratio
	PEREnabled bool    `json:"perEnabled"`
	PERMin     float64 `json:"perMin" validate:"gte=0"`
	PERMax     float64 `json:"perMax" default:"30.0" validate:"gte=0"`

	// Moving average alignment (60 > 112 > 224)
	MAAlignment bool `json:"maAlignment"`

	// Target stock codes; empty means the whole universe.
	TargetCodes []string `json:"targetCodes"`
}

// NormalizeTargetCodes replaces a nil slice with an empty one so the engine
// always receives "targetCodes": [] rather than null.
func (r *ScreeningRequest) NormalizeTargetCodes() {
	if r.TargetCodes == nil {
		r.TargetCodes = []string{}
	}
}

// CredentialsRequest carries the key pair for the validate-credentials call.
// Keys are never logged in full; see util.MaskKey.
type CredentialsRequest struct {
	AppKey    string `json:"appKey" validate:"required"`
	AppSecret string `json:"appSecret" validate:"required"`
}

// CredentialsResult is the gateway-level answer for credential validation.
// Validity is a query result, not a transport error, so it always rides a
// 200 response.
type CredentialsResult struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// ScreeningSummary is the slice of the engine's response the gateway reads.
// Used for logging and metrics only; the body itself is relayed untouched.
type ScreeningSummary struct {
	MatchedCount int `json:"matchedCount"`
}

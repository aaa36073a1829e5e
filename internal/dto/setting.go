package dto

// UpdateSettingRequest mutates a shop's settings. OpeningBalance is honored
// only the first time it is supplied; once the write-once guard is set,
// later values are ignored silently.
type UpdateSettingRequest struct {
	SiteName       *string  `json:"siteName"`
	LogoURL        *string  `json:"logoUrl"`
	Currency       *string  `json:"currency"`
	OpeningBalance *float64 `json:"openingBalance"`
}

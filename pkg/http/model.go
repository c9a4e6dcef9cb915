package http

// ValidationError represents one field constraint violation.
type ValidationError struct {
	Code    string                 `json:"code,omitempty" example:"ERR_GTE"`
	Field   string                 `json:"field,omitempty" example:"bbPeriod"`
	Message string                 `json:"message,omitempty" example:"bbPeriod must be at least 5"`
	Params  map[string]interface{} `json:"params,omitempty"`
}

package models

// DefaultPortalResponse answers whether a portal is the deployment default.
type DefaultPortalResponse struct {
	PortalID  string `json:"portalId"`
	IsDefault bool   `json:"isDefault"`
}

// ErrorResponse is the JSON body written for failed API requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

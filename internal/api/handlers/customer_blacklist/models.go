package customer_blacklist

// BlacklistRequest HTTP request model
type BlacklistRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

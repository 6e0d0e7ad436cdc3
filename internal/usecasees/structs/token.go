package structs

// TokenRequest is the body of POST /server. Exactly one of the two
// fields must be set.
type TokenRequest struct {
	Code         string `json:"code"`
	RefreshToken string `json:"refresh_token"`
}

// ErrorResponse is the error body relayed to the caller when an action
// fails; its shape matches what the frontend expects.
type ErrorResponse struct {
	Message   string `json:"Message"`
	ErrorCode string `json:"ErrorCode"`
}

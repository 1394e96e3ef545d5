package dto

// LoginResponse carries the access token issued after a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// RefreshTokenResponse carries the new access token issued on refresh.
type RefreshTokenResponse struct {
	Token string `json:"token"`
}

// Package dto holds the request and response shapes of the account API.
package dto

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required" example:"bituser"`
	Password string `json:"password" validate:"required" example:"abc456"`
} // @name LoginRequest

// TokenResponse is returned on a successful login.
type TokenResponse struct {
	AccessToken  string `json:"access_token"  example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string `json:"refresh_token" example:"3q2-7wAAAAA..."`
	TokenType    string `json:"token_type"    example:"Bearer"`
	ExpiresIn    int    `json:"expires_in"    example:"900"`
} // @name TokenResponse

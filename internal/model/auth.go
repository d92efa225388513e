package model

import "github.com/golang-jwt/jwt/v5"

// GuestUserID identifies chats started without a signed-in user.
const GuestUserID = "guest-user"

const BearerTokenType = "bearer"

type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt Timestamp `json:"created_at"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type AccessClaims struct {
	jwt.RegisteredClaims
}

// ErrorResponse is the error body returned by the API.
type ErrorResponse struct {
	Detail interface{} `json:"detail"`
}

package transfer

import "github.com/golang-jwt/jwt/v5"

type CustomClaims struct {
	ClientID string `json:"client_id"`
	jwt.RegisteredClaims
}

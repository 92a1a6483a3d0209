package auth

import "github.com/golang-jwt/jwt/v5"

// UserClaims is the identity attached to an authenticated request.
type UserClaims interface {
	UserID() string
	Name() string
	Email() string
	Source() string
}

// JWTClaims are issued by the identity provider. The subject is the user id.
type JWTClaims struct {
	DisplayName  string `json:"name,omitempty"`
	EmailAddress string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

func (c *JWTClaims) UserID() string { return c.Subject }
func (c *JWTClaims) Name() string   { return c.DisplayName }
func (c *JWTClaims) Email() string  { return c.EmailAddress }
func (c *JWTClaims) Source() string { return "JWT" }

package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the JWT claims carried by staff tokens.
type Claims struct {
	jwt.RegisteredClaims
	UserID    int64    `json:"user_id"`
	CompanyID int64    `json:"company_id,omitempty"`
	Roles     []string `json:"roles"`
}

// HasRole checks if the claims include the specified role.
func (c Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Role constants.
const (
	RoleAnalyst = "analyst"
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

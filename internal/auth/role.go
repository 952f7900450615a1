package auth

import "strings"

// Authorize reports whether the claims carry exactly the required role.
// There is no role hierarchy: staff is not implicitly allowed where
// student is required, nor the reverse.
func Authorize(claims Claims, requiredRole string) bool {
	if strings.TrimSpace(requiredRole) == "" {
		return true
	}
	return claims.Role == requiredRole
}

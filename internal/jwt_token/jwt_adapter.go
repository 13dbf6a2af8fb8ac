package jwttoken

import (
	"barhub/internal/platform/middleware"
)

func ToMiddlewareClaims(claims *Claims) *middleware.TenantClaims {
	return &middleware.TenantClaims{
		TenantID: claims.TenantID,
		Subject:  claims.Subject,
		JTI:      claims.ID,
	}
}

// JWTServiceAdapter lets RequireTenant validate tokens without importing jwt types.
type JWTServiceAdapter struct {
	service *JWTService
}

func NewJWTServiceAdapter(service *JWTService) *JWTServiceAdapter {
	return &JWTServiceAdapter{service: service}
}

func (a *JWTServiceAdapter) ValidateToken(tokenString string) (*middleware.TenantClaims, error) {
	claims, err := a.service.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return ToMiddlewareClaims(claims), nil
}

package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/biztime"
)

const issuer = "helpdesk"

// Claims identify the user. The role is informational only: the auth guard
// reloads the user on every request and trusts the stored role.
type Claims struct {
	UserID uint                   `json:"user_id"`
	Role   authorization.UserRole `json:"role"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret           []byte
	accessExpMinutes int
}

func NewJWTService(secret string, accessExpMinutes int) *JWTService {
	if accessExpMinutes <= 0 {
		accessExpMinutes = 7 * 24 * 60
	}
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
	}
}

// Generate signs an HS256 access token for the user.
func (s *JWTService) Generate(userID uint, role authorization.UserRole) (string, error) {
	now := biztime.NowUTC()
	exp := now.Add(time.Duration(s.accessExpMinutes) * time.Minute)

	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   fmt.Sprintf("%d", userID),
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(biztime.NowUTC))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid && claims.UserID != 0 {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// AccessExpMinutes returns the access token expiration time in minutes
func (s *JWTService) AccessExpMinutes() int {
	return s.accessExpMinutes
}

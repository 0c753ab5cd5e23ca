package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/fekuna/omnipos-terminal-service/internal/model"
)

type Claims struct {
	FullName   string `json:"full_name"`
	Role       string `json:"role"`
	LocationID string `json:"location_id,omitempty"`
	jwt.RegisteredClaims
}

func IssueToken(secret string, ttl time.Duration, p *model.Profile) (string, error) {
	now := time.Now()

	locationID := ""
	if p.AssignedLocationID != nil {
		locationID = *p.AssignedLocationID
	}

	claims := Claims{
		FullName:   p.FullName,
		Role:       p.Role,
		LocationID: locationID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseToken(secret, tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

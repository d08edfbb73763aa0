package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MayankTomar21/Python-Flask-Full-Stack-App-for-Google-Drive-Uploads/internal/common"
)

// subjectFromToken extracts the user id (the "sub" claim) from a custom
// identity token. With a secret the HS256 signature is verified; without one
// the token is only decoded. Expired tokens are refused either way.
func subjectFromToken(token string, secret []byte, now time.Time) (string, error) {
	claims := &jwt.RegisteredClaims{}

	if len(secret) > 0 {
		_, err := jwt.ParseWithClaims(token, claims,
			func(t *jwt.Token) (any, error) { return secret, nil },
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithTimeFunc(func() time.Time { return now }),
		)
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		if err != nil {
			return "", fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
		}
	} else {
		if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
			return "", fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
		}
		if claims.ExpiresAt != nil && !now.Before(claims.ExpiresAt.Time) {
			return "", common.ErrTokenExpired
		}
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", common.ErrInvalidToken)
	}
	return claims.Subject, nil
}

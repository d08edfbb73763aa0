package services

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MayankTomar21/Python-Flask-Full-Stack-App-for-Google-Drive-Uploads/internal/common"
)

var tokenNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.RegisteredClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func TestSubjectFromToken_Verified(t *testing.T) {
	secret := []byte("s3cret")
	tok := signToken(t, jwt.SigningMethodHS256, secret, jwt.RegisteredClaims{
		Subject:   "user-42",
		ExpiresAt: jwt.NewNumericDate(tokenNow.Add(time.Hour)),
	})

	sub, err := subjectFromToken(tok, secret, tokenNow)
	require.NoError(t, err)
	assert.Equal(t, "user-42", sub)
}

func TestSubjectFromToken_Errors(t *testing.T) {
	secret := []byte("s3cret")

	tests := []struct {
		name    string
		token   string
		secret  []byte
		wantErr error
	}{
		{
			name: "expired verified",
			token: signToken(t, jwt.SigningMethodHS256, secret, jwt.RegisteredClaims{
				Subject: "u", ExpiresAt: jwt.NewNumericDate(tokenNow.Add(-time.Minute)),
			}),
			secret:  secret,
			wantErr: common.ErrTokenExpired,
		},
		{
			name: "expired unverified",
			token: signToken(t, jwt.SigningMethodHS256, []byte("other"), jwt.RegisteredClaims{
				Subject: "u", ExpiresAt: jwt.NewNumericDate(tokenNow.Add(-time.Minute)),
			}),
			wantErr: common.ErrTokenExpired,
		},
		{
			name:    "wrong secret",
			token:   signToken(t, jwt.SigningMethodHS256, []byte("other"), jwt.RegisteredClaims{Subject: "u"}),
			secret:  secret,
			wantErr: common.ErrInvalidToken,
		},
		{
			name:    "wrong algorithm",
			token:   signToken(t, jwt.SigningMethodHS512, secret, jwt.RegisteredClaims{Subject: "u"}),
			secret:  secret,
			wantErr: common.ErrInvalidToken,
		},
		{
			name:    "missing subject",
			token:   signToken(t, jwt.SigningMethodHS256, secret, jwt.RegisteredClaims{}),
			secret:  secret,
			wantErr: common.ErrInvalidToken,
		},
		{
			name:    "garbage",
			token:   "not.a.jwt",
			wantErr: common.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := subjectFromToken(tt.token, tt.secret, tokenNow)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestSubjectFromToken_UnverifiedAcceptsAnySignature(t *testing.T) {
	tok := signToken(t, jwt.SigningMethodHS256, []byte("whatever"), jwt.RegisteredClaims{Subject: "firebase-uid"})

	sub, err := subjectFromToken(tok, nil, tokenNow)
	require.NoError(t, err)
	assert.Equal(t, "firebase-uid", sub)
}

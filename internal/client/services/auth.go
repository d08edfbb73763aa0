package services

import (
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/MayankTomar21/Python-Flask-Full-Stack-App-for-Google-Drive-Uploads/internal/common"
)

// AuthorizePath is the backend route that starts the Google Drive consent
// flow in the user's browser.
const AuthorizePath = "/authorize"

// AuthGate is the client's local belief that the backend holds Drive
// credentials for this user. It is never verified against the backend.
type AuthGate struct {
	authorized atomic.Bool
}

func NewAuthGate() *AuthGate {
	return &AuthGate{}
}

func (g *AuthGate) IsAuthorized() bool {
	return g.authorized.Load()
}

func (g *AuthGate) Authorize() {
	g.authorized.Store(true)
}

// Disconnect forgets the authorization locally and returns the notice to
// show. Backend credentials are left untouched.
func (g *AuthGate) Disconnect() string {
	g.authorized.Store(false)
	return MsgDisconnected
}

// AuthorizeURL is the address the user opens to start authorization.
func AuthorizeURL(backendURL string) string {
	return strings.TrimRight(backendURL, "/") + AuthorizePath
}

// ParseCallback reports whether u is the post-authorization redirect and
// returns the address to redirect to afterwards: the same path with the
// query removed.
func ParseCallback(u *url.URL) (bool, *url.URL) {
	if u.Query().Get(common.AuthCallbackParam) != "true" {
		return false, u
	}

	clean := &url.URL{Path: u.Path}
	if clean.Path == "" {
		clean.Path = "/"
	}
	return true, clean
}

package common

// AuthCallbackParam is the query parameter the backend appends to the
// frontend URL once the authorization flow has finished.
const AuthCallbackParam = "auth_success"

// AnonymousProvider and CustomTokenProvider name the ways a session identity
// can be established.
const (
	AnonymousProvider   = "anonymous"
	CustomTokenProvider = "custom_token"
)

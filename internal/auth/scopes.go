package auth

const (
	ScopeOpenID   = "openid"
	ScopeDictRead = "dict:read"
)

// AllScopes defines the full set of scopes understood by the history API.
var AllScopes = []string{
	ScopeOpenID,
	ScopeDictRead,
}

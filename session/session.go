// Package session holds the single source of truth for who is logged in: the
// current identity and its bearer token, persisted so it survives restarts.
package session

// Identity is the authenticated user as returned by the auth endpoints. Role
// is never part of the login payload; it only appears on separately fetched
// user listings.
type Identity struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role,omitempty"`
}

// Session pairs an identity with its bearer token. The two are always set and
// cleared together; a token without an identity (or the reverse) never occurs.
type Session struct {
	User  Identity `json:"user"`
	Token string   `json:"token"`
}

// Authenticated reports whether the session carries a token.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

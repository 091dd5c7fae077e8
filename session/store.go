package session

// Store is the application-wide session holder. Implementations guarantee
// readers always observe a fully-formed session, never a half-updated
// token/identity pair, and that Set/Clear persist synchronously where the
// implementation is durable.
type Store interface {
	// Current returns the session and whether the holder is authenticated.
	Current() (Session, bool)
	// Set replaces the session with a complete token/identity pair.
	Set(sess Session) error
	// Clear drops the session and its durable record.
	Clear() error
	// Token yields the bearer token for outgoing requests, if one exists.
	Token() (string, bool)
}

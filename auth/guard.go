package auth

import "github.com/jrsteele09/parkctl/session"

// Guard gates access to the authenticated section of the application. It is
// evaluated before every protected operation; redirect is invoked whenever an
// anonymous caller is turned away, so the surrounding UI can send the user to
// the login flow.
type Guard struct {
	store    session.Store
	redirect func()
}

// NewGuard creates a guard over the given store. redirect may be nil.
func NewGuard(store session.Store, redirect func()) *Guard {
	if redirect == nil {
		redirect = func() {}
	}
	return &Guard{store: store, redirect: redirect}
}

// Require returns nil when the store is Authenticated. When it is Anonymous
// the redirect runs and NotAuthenticatedErr is returned.
func (g *Guard) Require() error {
	if _, ok := g.store.Current(); ok {
		return nil
	}
	g.redirect()
	return NotAuthenticatedErr
}

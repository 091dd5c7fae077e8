package storefakes

import (
	"sync"

	"github.com/jrsteele09/parkctl/session"
)

var _ session.Store = (*FakeStore)(nil)

// FakeStore is an in-memory session.Store for tests.
type FakeStore struct {
	mu      sync.RWMutex
	current session.Session
	ok      bool

	SetCalls   int
	ClearCalls int
}

func NewFakeStore() *FakeStore {
	return &FakeStore{}
}

func (fs *FakeStore) Current() (session.Session, bool) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.current, fs.ok
}

func (fs *FakeStore) Token() (string, bool) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.current.Token, fs.ok
}

func (fs *FakeStore) Set(sess session.Session) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if sess.Token == "" || sess.User.Username == "" {
		return session.IncompleteSessionErr
	}
	fs.current = sess
	fs.ok = true
	fs.SetCalls++
	return nil
}

func (fs *FakeStore) Clear() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.current = session.Session{}
	fs.ok = false
	fs.ClearCalls++
	return nil
}

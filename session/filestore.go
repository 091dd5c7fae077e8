package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	credentialsFile = "credentials"
	sealSeedFile    = "seal.seed"
)

// FileStore is the durable Store. Every transition writes the new state (or
// its absence) to disk before it becomes visible to readers, so a restart
// never resurrects stale credentials and never loses a still-valid session.
// The credentials file is sealed at rest with a key derived from a
// per-install random seed kept next to it.
type FileStore struct {
	mu      sync.RWMutex
	current Session
	ok      bool

	dir     string
	sealKey []byte
}

var _ Store = (*FileStore)(nil)

// NewFileStore opens (or initialises) the store under dir and rehydrates any
// previously persisted session. A missing, corrupt or unreadable credentials
// file yields an anonymous store, never an error.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrap(err, "[NewFileStore] create data dir")
	}

	seed, err := loadOrCreateSeed(filepath.Join(dir, sealSeedFile))
	if err != nil {
		return nil, err
	}
	key, err := deriveSealKey(seed)
	if err != nil {
		return nil, err
	}

	fs := &FileStore{dir: dir, sealKey: key}
	fs.rehydrate()
	return fs, nil
}

// Current returns the session and whether the holder is authenticated.
func (fs *FileStore) Current() (Session, bool) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.current, fs.ok
}

// Token yields the bearer token for outgoing requests, if one exists.
func (fs *FileStore) Token() (string, bool) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.current.Token, fs.ok
}

// Set persists the new session and makes it visible to readers. The write
// happens before the in-memory swap, so a failed persist leaves the previous
// state intact.
func (fs *FileStore) Set(sess Session) error {
	if sess.Token == "" || sess.User.Username == "" {
		return IncompleteSessionErr
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := fs.persist(sess); err != nil {
		return err
	}

	fs.current = sess
	fs.ok = true
	return nil
}

// Clear drops the session in memory and removes the durable record. The
// in-memory state is cleared even when the file removal fails, so a local
// sign-out always takes effect.
func (fs *FileStore) Clear() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.current = Session{}
	fs.ok = false

	if err := os.Remove(fs.credentialsPath()); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "[Clear] remove credentials")
	}
	return nil
}

func (fs *FileStore) credentialsPath() string {
	return filepath.Join(fs.dir, credentialsFile)
}

// rehydrate loads the persisted session at startup. No network call is made;
// whatever was stored is trusted until the backend says otherwise.
func (fs *FileStore) rehydrate() {
	sealed, err := os.ReadFile(fs.credentialsPath())
	if err != nil {
		return
	}

	plaintext, err := open(fs.sealKey, sealed)
	if err != nil {
		log.Warn().Err(err).Msg("discarding unreadable credentials file")
		return
	}

	var sess Session
	if err := json.Unmarshal(plaintext, &sess); err != nil || !sess.Authenticated() {
		log.Warn().Msg("discarding malformed credentials file")
		return
	}

	fs.current = sess
	fs.ok = true
}

// persist writes the sealed session atomically: temp file, then rename.
func (fs *FileStore) persist(sess Session) error {
	plaintext, err := json.Marshal(sess)
	if err != nil {
		return errors.Wrap(err, "[persist] json.Marshal")
	}

	sealed, err := seal(fs.sealKey, plaintext)
	if err != nil {
		return err
	}

	tmp := fs.credentialsPath() + ".tmp"
	if err := os.WriteFile(tmp, sealed, 0o600); err != nil {
		return errors.Wrap(err, "[persist] write temp file")
	}
	if err := os.Rename(tmp, fs.credentialsPath()); err != nil {
		return errors.Wrap(err, "[persist] rename")
	}
	return nil
}

// loadOrCreateSeed reads the per-install seal seed, generating one on first
// use.
func loadOrCreateSeed(path string) ([]byte, error) {
	seed, err := os.ReadFile(path)
	if err == nil && len(seed) == sealSeedLength {
		return seed, nil
	}

	seed, err = newSealSeed()
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, seed, 0o600); err != nil {
		return nil, errors.Wrap(err, "[loadOrCreateSeed] write seed")
	}
	return seed, nil
}

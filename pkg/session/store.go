// Package session persists the server URL and credential across runs.
// The credential is sealed with a per-installation key so the session
// file never carries it in the clear.
package session

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"davsh/pkg/conf"

	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

// Session is the persisted login state
type Session struct {
	URL      string `json:"url"`
	Username string `json:"username"`
	// Creds is the opaque encoded credential used for Basic auth,
	// sealed on disk and only decoded in memory
	Creds string `json:"-"`
}

type sessionFile struct {
	URL      string `json:"url"`
	Username string `json:"username"`
	Sealed   string `json:"sealed"`
}

// Store reads and writes the session under a davsh home directory
type Store struct {
	home string
}

func NewStore() *Store {
	return &Store{home: conf.GetDavshHome()}
}

// NewStoreAt allows pointing the store at an arbitrary directory
func NewStoreAt(home string) *Store {
	return &Store{home: home}
}

func (s *Store) sessionPath() string {
	return filepath.Join(s.home, conf.SessionFile)
}

func (s *Store) keyPath() string {
	return filepath.Join(s.home, conf.SessionKeyFile)
}

// Exists reports whether a saved session is present
func (s *Store) Exists() bool {
	_, err := os.Stat(s.sessionPath())
	return err == nil
}

// Load returns the saved session, or nil when none is stored
func (s *Store) Load() (*Session, error) {
	raw, rErr := os.ReadFile(s.sessionPath())
	if rErr != nil {
		if errors.Is(rErr, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", rErr)
	}

	var sf sessionFile
	if jErr := json.Unmarshal(raw, &sf); jErr != nil {
		return nil, fmt.Errorf("malformed session file: %w", jErr)
	}

	key, kErr := s.loadKey()
	if kErr != nil {
		return nil, kErr
	}

	creds, oErr := open(sf.Sealed, key)
	if oErr != nil {
		return nil, oErr
	}

	return &Session{
		URL:      sf.URL,
		Username: sf.Username,
		Creds:    creds,
	}, nil
}

// Save seals the credential and writes the session file with 0600 perms
func (s *Store) Save(sess *Session) error {
	key, kErr := s.ensureKey()
	if kErr != nil {
		return kErr
	}

	sealed, sErr := seal(sess.Creds, key)
	if sErr != nil {
		return sErr
	}

	raw, jErr := json.Marshal(&sessionFile{
		URL:      sess.URL,
		Username: sess.Username,
		Sealed:   sealed,
	})
	if jErr != nil {
		return fmt.Errorf("failed to encode session: %w", jErr)
	}

	if wErr := os.WriteFile(s.sessionPath(), raw, 0600); wErr != nil {
		return fmt.Errorf("failed to write session file: %w", wErr)
	}
	return nil
}

// Clear removes the saved session, tolerating an already absent file
func (s *Store) Clear() error {
	if err := os.Remove(s.sessionPath()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

func (s *Store) loadKey() (*[32]byte, error) {
	raw, err := os.ReadFile(s.keyPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read session key: %w", err)
	}
	if len(raw) != 32 {
		return nil, fmt.Errorf("session key has wrong size")
	}
	var key [32]byte
	copy(key[:], raw)
	return &key, nil
}

func (s *Store) ensureKey() (*[32]byte, error) {
	if _, err := os.Stat(s.keyPath()); err == nil {
		return s.loadKey()
	}

	var key [32]byte
	if _, err := rand.Read(key[:]); err != nil {
		return nil, fmt.Errorf("failed to generate session key: %w", err)
	}
	if err := os.WriteFile(s.keyPath(), key[:], 0600); err != nil {
		return nil, fmt.Errorf("failed to write session key: %w", err)
	}
	return &key, nil
}

func seal(plain string, key *[32]byte) (string, error) {
	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}
	box := secretbox.Seal(nonce[:], []byte(plain), &nonce, key)
	return base64.StdEncoding.EncodeToString(box), nil
}

func open(sealed string, key *[32]byte) (string, error) {
	box, dErr := base64.StdEncoding.DecodeString(sealed)
	if dErr != nil {
		return "", fmt.Errorf("malformed sealed credential: %w", dErr)
	}
	if len(box) < nonceSize {
		return "", fmt.Errorf("malformed sealed credential")
	}
	var nonce [nonceSize]byte
	copy(nonce[:], box[:nonceSize])
	plain, ok := secretbox.Open(nil, box[nonceSize:], &nonce, key)
	if !ok {
		return "", fmt.Errorf("failed to unseal credential")
	}
	return string(plain), nil
}

// EncodeCreds builds the opaque encoded credential from a user and password
func EncodeCreds(username, password string) string {
	return base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
}

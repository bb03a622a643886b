// Package vault persists the whole data set as one encrypted file. The
// rest of the program treats it as an opaque synchronous load/save pair;
// key derivation and authentication live here and nowhere else.
package vault

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fdkeep-dev/fdkeep/internal/model"
)

// Version is the envelope version written by this build.
const Version = "4.0"

// Envelope is the complete persisted state, and also the shape of plain
// JSON backup files.
type Envelope struct {
	Version        string           `json:"version"`
	Records        []model.Record   `json:"records"`
	AccountHolders []string         `json:"accountHolders"`
	Templates      []model.Template `json:"templates"`
	Settings       model.Settings   `json:"settings"`
}

// NewEnvelope returns an empty envelope at the current version.
func NewEnvelope() *Envelope {
	return &Envelope{
		Version:        Version,
		Records:        []model.Record{},
		AccountHolders: []string{},
		Templates:      []model.Template{},
		Settings:       model.DefaultSettings(),
	}
}

// Store reads and writes the encrypted vault file.
type Store struct {
	path string
	pin  string
}

// NewStore creates a Store for the vault file at path, unlocked by pin.
func NewStore(path, pin string) *Store {
	return &Store{path: path, pin: pin}
}

// Path returns the vault file location.
func (s *Store) Path() string { return s.path }

// Exists reports whether the vault file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load decrypts and decodes the vault. A missing file returns (nil, nil)
// so first-run callers can distinguish "no vault yet" from a bad PIN.
func (s *Store) Load() (*Envelope, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading vault: %w", err)
	}

	plaintext, err := open(data, s.pin)
	if err != nil {
		return nil, err
	}

	var env Envelope
	if err := json.Unmarshal(plaintext, &env); err != nil {
		return nil, fmt.Errorf("decoding vault: %w", err)
	}
	return &env, nil
}

// Save encrypts and writes the envelope. The write goes through a
// temporary file and rename, so a failure partway leaves the previous
// vault intact and a merge is all-or-nothing.
func (s *Store) Save(env *Envelope) error {
	env.Version = Version

	plaintext, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding vault: %w", err)
	}

	sealed, err := seal(plaintext, s.pin)
	if err != nil {
		return fmt.Errorf("sealing vault: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating vault dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".vault-*")
	if err != nil {
		return fmt.Errorf("creating temp vault: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(sealed); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing vault: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing vault: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("setting vault mode: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing vault: %w", err)
	}
	return nil
}

package vault

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// WriteBackup writes the envelope as plain readable JSON. Backups are
// not encrypted; they are for the owner to move between machines.
func WriteBackup(path string, env *Envelope) error {
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding backup: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing backup: %w", err)
	}
	return nil
}

// ReadBackup reads and validates a plain JSON backup file.
func ReadBackup(path string) (*Envelope, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading backup: %w", err)
	}

	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, errors.New("invalid backup file format")
	}
	if env.Version == "" || env.Records == nil {
		return nil, errors.New("invalid backup file format")
	}
	return &env, nil
}

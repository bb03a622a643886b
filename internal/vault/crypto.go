package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/scrypt"
)

// Vault file layout: magic | salt | nonce | AES-256-GCM ciphertext.
const (
	magic    = "FDK1"
	saltSize = 16
	keySize  = 32
)

// scrypt cost parameters. Interactive-use profile; bumping N requires a
// new magic since old vaults would no longer open.
const (
	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
)

// ErrWrongPIN is returned when the vault cannot be authenticated, which
// means a wrong PIN or a tampered file. The two are indistinguishable.
var ErrWrongPIN = errors.New("wrong PIN or corrupted vault")

func deriveKey(pin string, salt []byte) ([]byte, error) {
	key, err := scrypt.Key([]byte(pin), salt, scryptN, scryptR, scryptP, keySize)
	if err != nil {
		return nil, fmt.Errorf("deriving key: %w", err)
	}
	return key, nil
}

// seal encrypts plaintext under a PIN-derived key.
func seal(plaintext []byte, pin string) ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generating salt: %w", err)
	}

	key, err := deriveKey(pin, salt)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generating nonce: %w", err)
	}

	out := make([]byte, 0, len(magic)+saltSize+gcm.NonceSize()+len(plaintext)+gcm.Overhead())
	out = append(out, magic...)
	out = append(out, salt...)
	out = append(out, nonce...)
	return gcm.Seal(out, nonce, plaintext, nil), nil
}

// open decrypts a sealed vault file.
func open(data []byte, pin string) ([]byte, error) {
	if len(data) < len(magic)+saltSize || string(data[:len(magic)]) != magic {
		return nil, fmt.Errorf("not a vault file")
	}
	data = data[len(magic):]

	salt := data[:saltSize]
	key, err := deriveKey(pin, salt)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}

	rest := data[saltSize:]
	if len(rest) < gcm.NonceSize() {
		return nil, fmt.Errorf("vault file truncated")
	}
	nonce, ciphertext := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrWrongPIN
	}
	return plaintext, nil
}

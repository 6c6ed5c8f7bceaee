package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
)

const secretLength = 32

// LoadOrCreateSecret returns the process secret key stored at path,
// generating and persisting a fresh one on first run. Deployments that supply
// the secret via configuration never hit this path; it exists so a dev
// instance does not fall back to a hardcoded literal.
func LoadOrCreateSecret(path string) (string, error) {
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", fmt.Errorf("create secret dir: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		buf := make([]byte, secretLength)
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("generate secret: %w", err)
		}
		secret := base64.RawURLEncoding.EncodeToString(buf)

		if err := os.WriteFile(path, []byte(secret), 0o600); err != nil {
			return "", fmt.Errorf("write secret file: %w", err)
		}
		return secret, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read secret file: %w", err)
	}
	return string(raw), nil
}

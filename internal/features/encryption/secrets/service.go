package secrets

import (
	"fmt"
	"os"
	"path/filepath"

	"spacehub-backend/internal/config"

	"github.com/google/uuid"
)

// SecretKeyService owns the signing key for session tokens. The key is
// generated on first use and kept in a file so it survives restarts.
type SecretKeyService struct {
	cachedKey *string
}

var secretKeyService = &SecretKeyService{}

func GetSecretKeyService() *SecretKeyService {
	return secretKeyService
}

func (s *SecretKeyService) GetSecretKey() (string, error) {
	if s.cachedKey != nil {
		return *s.cachedKey, nil
	}

	secretKeyPath := config.GetEnv().SecretKeyPath
	data, err := os.ReadFile(secretKeyPath)
	if err != nil {
		if os.IsNotExist(err) {
			newKey := s.generateNewSecretKey()

			if err := os.MkdirAll(filepath.Dir(secretKeyPath), 0700); err != nil {
				return "", fmt.Errorf("failed to create secret key directory: %w", err)
			}
			if err := os.WriteFile(secretKeyPath, []byte(newKey), 0600); err != nil {
				return "", fmt.Errorf("failed to write new secret key: %w", err)
			}

			s.cachedKey = &newKey
			return newKey, nil
		}
		return "", fmt.Errorf("failed to read secret key file: %w", err)
	}

	key := string(data)
	s.cachedKey = &key
	return key, nil
}

func (s *SecretKeyService) generateNewSecretKey() string {
	return uuid.New().String() + uuid.New().String()
}

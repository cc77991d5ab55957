// Package auth provides a high-level API for persisting and retrieving provider API keys from the system keyring.
package auth

import (
	"github.com/anishere/SocialReels/constant"
	"github.com/zalando/go-keyring"
)

const service = constant.App

// SetKey persists a provider's API key to the system keyring.
func SetKey(provider, apiKey string) error {
	return keyring.Set(service, provider, apiKey)
}

// GetKey retrieves a provider's API key from the system keyring.
// Returns an empty string when no key is stored.
func GetKey(provider string) (string, error) {
	apiKey, err := keyring.Get(service, provider)
	if err == keyring.ErrNotFound {
		return "", nil
	}
	return apiKey, err
}

// DeleteKey removes a provider's API key from the system keyring.
func DeleteKey(provider string) error {
	return keyring.Delete(service, provider)
}

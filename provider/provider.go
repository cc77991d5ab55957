// Package provider implements the closed set of stock-footage provider adapters.
package provider

import (
	"fmt"
	"strings"

	"github.com/anishere/SocialReels/auth"
	"github.com/anishere/SocialReels/color"
	"github.com/anishere/SocialReels/key"
	"github.com/anishere/SocialReels/log"
	"github.com/anishere/SocialReels/source"
	"github.com/anishere/SocialReels/style"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Canonical provider identifiers.
const (
	PexelsName  = "pexels"
	PixabayName = "pixabay"
)

// Names returns the identifiers of all supported providers, in canonical order.
func Names() []string {
	return []string{PexelsName, PixabayName}
}

// Credentials carries the API keys for all supported providers.
// An empty field disables the corresponding provider.
//
// Keys are threaded explicitly from here into the adapters rather than read
// from ambient process state, so tests can construct sources directly.
type Credentials struct {
	Pexels  string
	Pixabay string
}

// Any reports whether at least one provider has a usable credential.
func (c Credentials) Any() bool {
	return c.Pexels != "" || c.Pixabay != ""
}

// LoadCredentials resolves provider API keys from configuration (which
// includes the PEXELS_API_KEY / PIXABAY_API_KEY environment bindings) with
// the system keyring as fallback.
func LoadCredentials() Credentials {
	resolve := func(configKey, name string) string {
		if apiKey := viper.GetString(configKey); apiKey != "" {
			return apiKey
		}
		apiKey, err := auth.GetKey(name)
		if err != nil {
			log.Warnf("keyring lookup for %s failed: %v", name, err)
			return ""
		}
		return apiKey
	}

	return Credentials{
		Pexels:  resolve(key.PexelsKey, PexelsName),
		Pixabay: resolve(key.PixabayKey, PixabayName),
	}
}

// FromNames constructs sources for the requested provider names, preserving
// request order. Unknown names yield an error with a close-match suggestion.
func FromNames(names []string, creds Credentials) ([]source.Source, error) {
	sources := make([]source.Source, 0, len(names))

	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case PexelsName:
			sources = append(sources, NewPexels(creds.Pexels))
		case PixabayName:
			sources = append(sources, NewPixabay(creds.Pixabay))
		default:
			return nil, errUnknownProvider(name)
		}
	}

	return sources, nil
}

func errUnknownProvider(name string) error {
	closest := lo.MinBy(Names(), func(a string, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})

	return fmt.Errorf(
		"unknown provider %s, did you mean %s?",
		style.Fg(color.Red)(name),
		style.Fg(color.Yellow)(closest),
	)
}

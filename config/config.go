// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"strings"

	"github.com/anishere/SocialReels/constant"
	"github.com/anishere/SocialReels/filesystem"
	"github.com/anishere/SocialReels/key"
	"github.com/anishere/SocialReels/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer is a strings.Replacer used to normalize configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// CredentialEnvAliases maps provider credential keys to the canonical
// environment variable names the stock APIs document. These are honored in
// addition to the prefixed SOCIALREELS_* form.
var CredentialEnvAliases = map[string]string{
	key.PexelsKey:  "PEXELS_API_KEY",
	key.PixabayKey: "PIXABAY_API_KEY",
}

// Setup initializes the global configuration state, including defaults, environment bindings, and localized file resolution.
func Setup() error {
	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	// Synchronize environment variable bindings.
	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		if alias, ok := CredentialEnvAliases[env]; ok {
			viper.MustBindEnv(env, prefixed(env), alias)
			continue
		}
		viper.MustBindEnv(env)
	}

	// Initialize factory default values.
	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return nil
}

// prefixed converts a configuration key into its SOCIALREELS_* environment variable form.
func prefixed(k string) string {
	return strings.ToUpper(constant.App + "_" + EnvKeyReplacer.Replace(k))
}

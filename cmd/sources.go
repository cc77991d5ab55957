// Package cmd implements the command-line interface for socialreels.
package cmd

import (
	"os"

	"github.com/anishere/SocialReels/auth"
	"github.com/anishere/SocialReels/color"
	"github.com/anishere/SocialReels/key"
	"github.com/anishere/SocialReels/provider"
	"github.com/anishere/SocialReels/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(sourcesCmd)

	sourcesCmd.Flags().BoolP("raw", "r", false, "Suppress credential status and license descriptions in the output")
	sourcesCmd.SetOut(os.Stdout)
}

// credentialOrigin reports where a provider's API key was resolved from.
func credentialOrigin(name string) string {
	configKey := map[string]string{
		provider.PexelsName:  key.PexelsKey,
		provider.PixabayName: key.PixabayKey,
	}[name]

	if viper.GetString(configKey) != "" {
		return "config/env"
	}

	if apiKey, err := auth.GetKey(name); err == nil && apiKey != "" {
		return "keyring"
	}

	return ""
}

// sourcesCmd displays a summary of all built-in video providers.
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Display a collection of all built-in video providers",
	Run: func(cmd *cobra.Command, args []string) {
		raw := lo.Must(cmd.Flags().GetBool("raw"))

		if raw {
			for _, name := range provider.Names() {
				cmd.Println(name)
			}
			return
		}

		nameStyle := style.New().Foreground(color.HiBlue).Bold(true).Render
		sources := lo.Must(provider.FromNames(provider.Names(), provider.LoadCredentials()))

		for i, src := range sources {
			status := style.Fg(color.Red)("credentials missing")
			if src.Available() {
				status = style.Fg(color.Green)("ready") + style.Faint(" ("+credentialOrigin(src.Name())+")")
			}

			cmd.Printf("%s %s\n", nameStyle(src.Name()), status)
			cmd.Println(style.Faint(src.License()))

			if i < len(sources)-1 {
				cmd.Println()
			}
		}
	},
}

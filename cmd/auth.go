// Package cmd implements the command-line interface for socialreels.
package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/anishere/SocialReels/auth"
	"github.com/anishere/SocialReels/color"
	"github.com/anishere/SocialReels/icon"
	"github.com/anishere/SocialReels/provider"
	"github.com/anishere/SocialReels/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authSetCmd)
	authCmd.AddCommand(authRemoveCmd)
}

// completeProviderNames offers provider names for the positional argument.
func completeProviderNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return provider.Names(), cobra.ShellCompDirectiveNoFileComp
}

// authCmd manages provider API keys stored in the system keyring.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage provider API keys stored in the system keyring",
	Long: `Store or remove provider API keys in the operating system keyring.
Keys supplied via environment variables or the config file take precedence.`,
}

// authSetCmd prompts for a provider API key and stores it in the keyring.
var authSetCmd = &cobra.Command{
	Use:               "set <provider>",
	Short:             "Store an API key for the given provider",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeProviderNames,
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]
		if !lo.Contains(provider.Names(), name) {
			handleErr(fmt.Errorf("unknown provider %q", name))
		}

		prompt := &survey.Password{
			Message: fmt.Sprintf("API key for %s:", name),
		}

		var apiKey string
		handleErr(survey.AskOne(prompt, &apiKey, survey.WithValidator(survey.Required)))
		handleErr(auth.SetKey(name, apiKey))

		fmt.Printf("%s stored API key for %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(name))
	},
}

// authRemoveCmd deletes a provider API key from the keyring.
var authRemoveCmd = &cobra.Command{
	Use:               "remove <provider>",
	Short:             "Remove the stored API key for the given provider",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeProviderNames,
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]
		if !lo.Contains(provider.Names(), name) {
			handleErr(fmt.Errorf("unknown provider %q", name))
		}

		handleErr(auth.DeleteKey(name))
		fmt.Printf("%s removed API key for %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(name))
	},
}

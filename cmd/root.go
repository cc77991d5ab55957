// Package cmd implements the command-line interface for socialreels.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/anishere/SocialReels/constant"
	"github.com/anishere/SocialReels/icon"
	"github.com/anishere/SocialReels/key"
	"github.com/anishere/SocialReels/log"
	"github.com/anishere/SocialReels/pipeline"
	"github.com/anishere/SocialReels/provider"
	"github.com/anishere/SocialReels/query"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")
	rootCmd.Flags().BoolP("dry-run", "d", false, "List matched videos without downloading them")

	rootCmd.Flags().IntP("limit", "l", 10, "Maximum number of videos to fetch")
	lo.Must0(viper.BindPFlag(key.FetchLimit, rootCmd.Flags().Lookup("limit")))

	rootCmd.Flags().IntP("min-width", "w", 720, "Minimum acceptable video width in pixels")
	lo.Must0(viper.BindPFlag(key.FetchMinWidth, rootCmd.Flags().Lookup("min-width")))

	rootCmd.Flags().StringP("out", "o", "videos", "Root directory for downloaded videos")
	lo.Must0(viper.BindPFlag(key.DownloadDir, rootCmd.Flags().Lookup("out")))

	rootCmd.Flags().StringSliceP("provider", "p", provider.Names(), "Providers to query, in priority order")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("provider", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return provider.Names(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.DefaultProviders, rootCmd.Flags().Lookup("provider")))

	rootCmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}
}

// rootCmd defines the entry point for the socialreels application.
var rootCmd = &cobra.Command{
	Use:   constant.App + " [keyword]",
	Short: "Search stock-footage providers and download matching videos",
	Long: `Search the Pexels and Pixabay video APIs by keyword, merge and deduplicate
the results, and download the matching files with a metadata manifest.

Check each provider's license terms before reusing downloaded footage.`,
	Example: `  socialreels "ocean waves" --limit 5 --min-width 1080
  socialreels "city traffic" -p pixabay --dry-run`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		var keyword string
		if len(args) > 0 {
			keyword = args[0]
		}

		if strings.TrimSpace(keyword) == "" {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				handleErr(errors.New("keyword is required"))
			}

			prompt := &survey.Input{
				Message: "Search keyword:",
				Suggest: func(toComplete string) []string {
					return query.SuggestMany(toComplete)
				},
			}
			handleErr(survey.AskOne(prompt, &keyword, survey.WithValidator(survey.Required)))
		}

		sources, err := provider.FromNames(viper.GetStringSlice(key.DefaultProviders), provider.LoadCredentials())
		handleErr(err)

		handleErr(pipeline.Run(&pipeline.Options{
			Keyword:  keyword,
			Limit:    viper.GetInt(key.FetchLimit),
			MinWidth: viper.GetInt(key.FetchMinWidth),
			Out:      viper.GetString(key.DownloadDir),
			DryRun:   lo.Must(cmd.Flags().GetBool("dry-run")),
			Sources:  sources,
		}))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}

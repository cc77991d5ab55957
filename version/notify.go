// Package version provides unified mechanisms for application version tracking, update discovery, and compatibility validation.
package version

import (
	"fmt"

	"github.com/anishere/SocialReels/color"
	"github.com/anishere/SocialReels/constant"
	"github.com/anishere/SocialReels/icon"
	"github.com/anishere/SocialReels/key"
	"github.com/anishere/SocialReels/style"
	"github.com/anishere/SocialReels/util"
	"github.com/spf13/viper"
)

// Notify displays a terminal alert if a more recent stable application version is available.
// Lookup failures are silent; an update hint is never worth failing a run over.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	latest, err := Latest()
	erase()
	if err != nil {
		return
	}

	if comp, err := Compare(latest, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/anishere/SocialReels/releases/tag/v"+latest),
	)
}

// Package main is the entry point for the socialreels application.
package main

import (
	"github.com/anishere/SocialReels/cmd"
	"github.com/anishere/SocialReels/config"
	"github.com/anishere/SocialReels/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}

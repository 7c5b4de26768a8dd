// Package main is the entry point for the codeit application.
package main

import (
	"github.com/codeit-cli/codeit/cmd"
	"github.com/codeit-cli/codeit/config"
	"github.com/codeit-cli/codeit/internal/cache"
	"github.com/codeit-cli/codeit/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	// Prune expired catalog cache entries in the background.
	cache.CollectGarbage()

	cmd.Execute()
}

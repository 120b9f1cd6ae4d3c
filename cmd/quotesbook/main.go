package main

import (
	"os"
	"slices"

	"github.com/extrim/quotesbook/internal/adapters/driven/config/file"
	"github.com/extrim/quotesbook/internal/adapters/driven/storage/sqlite"
	"github.com/extrim/quotesbook/internal/adapters/driving/cli"
	"github.com/extrim/quotesbook/internal/bootstrap"
	"github.com/extrim/quotesbook/internal/core/ports/driven"
	"github.com/extrim/quotesbook/internal/core/services"
	"github.com/extrim/quotesbook/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Bootstrap logs before cobra has parsed --verbose.
	if slices.Contains(os.Args[1:], "--verbose") || slices.Contains(os.Args[1:], "-v") {
		logger.SetVerbose(true)
	}

	paths, err := bootstrap.Resolve(bootstrap.Options{})
	if err != nil {
		return cli.Report(os.Stderr, err)
	}
	logger.Debug("paths: %s", paths)

	var cfg driven.ConfigStore
	if fileCfg, err := file.NewConfigStore(paths.ConfigDir); err != nil {
		logger.Warn("ignoring config: %v", err)
	} else {
		cfg = fileCfg
		logger.Debug("config: %s", fileCfg.Path())
		if fileCfg.GetBool(file.KeyVerbose) {
			logger.SetVerbose(true)
		}
	}

	store := sqlite.NewStore(paths.StorePath)
	svc := services.NewQuoteService(store, cfg)

	return cli.Report(os.Stderr, cli.Execute(svc))
}

// Package bootstrap resolves where quotesbook keeps its data.
//
// Resolve runs once per process, before any command is dispatched, and
// returns the paths every other component is constructed with.
package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/extrim/quotesbook/internal/core/domain"
	"github.com/extrim/quotesbook/internal/logger"
)

const (
	// ProgramName is the official name of this program.
	ProgramName = "quotesbook"

	// StoreFileName is the database file inside the application directory.
	StoreFileName = "quotes.db"

	// SampleFileName is a bundled database adopted when no store exists yet.
	SampleFileName = "sample_quotes.db"

	// ConfigFileName is the optional TOML configuration file.
	ConfigFileName = "config.toml"
)

// Paths are the resolved locations used by the rest of the program.
type Paths struct {
	// ConfigDir is <home>/.quotesbook.
	ConfigDir string

	// StorePath is <home>/.quotesbook/quotes.db.
	StorePath string

	// ConfigFile is <home>/.quotesbook/config.toml.
	ConfigFile string
}

// Options override the environment Resolve reads from.
type Options struct {
	// HomeDir returns the user's home directory. Defaults to os.UserHomeDir.
	HomeDir func() (string, error)

	// WorkDir is where the sample database is looked for. Defaults to ".".
	WorkDir string
}

// Resolve determines the application paths, creates the application
// directory if needed and adopts a sample database when no store exists.
func Resolve(opts Options) (Paths, error) {
	homeDir := opts.HomeDir
	if homeDir == nil {
		homeDir = os.UserHomeDir
	}

	home, err := homeDir()
	if err != nil {
		return Paths{}, domain.E(domain.KindUserData, "resolve", err, "getting home directory")
	}
	if home == "" {
		return Paths{}, domain.E(domain.KindUserData, "resolve", nil, "home directory is not set")
	}

	dir := filepath.Join(home, "."+ProgramName)
	paths := Paths{
		ConfigDir:  dir,
		StorePath:  filepath.Join(dir, StoreFileName),
		ConfigFile: filepath.Join(dir, ConfigFileName),
	}

	// Creation failures surface later as a store open error.
	if _, err := os.Stat(dir); err != nil {
		if err := os.Mkdir(dir, 0o700); err != nil {
			logger.Debug("creating %s: %v", dir, err)
		}
	}

	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}
	AdoptSample(filepath.Join(workDir, SampleFileName), paths.StorePath)

	logger.Debug("store path: %s", paths.StorePath)
	return paths, nil
}

// AdoptSample moves sample into place as the store when the store does not
// exist and the sample does. It reports whether a move happened.
// Failures are logged and otherwise ignored.
func AdoptSample(sample, store string) bool {
	if _, err := os.Stat(store); err == nil || !os.IsNotExist(err) {
		return false
	}
	if _, err := os.Stat(sample); err != nil {
		return false
	}

	if err := os.Rename(sample, store); err != nil {
		logger.Warn("moving %s to %s: %v", sample, store, err)
		return false
	}
	logger.Info("adopted %s as %s", sample, store)
	return true
}

// String renders the paths for diagnostics.
func (p Paths) String() string {
	return fmt.Sprintf("dir=%s store=%s config=%s", p.ConfigDir, p.StorePath, p.ConfigFile)
}

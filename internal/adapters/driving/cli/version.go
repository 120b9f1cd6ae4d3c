package cli

// version is set at build time with -ldflags "-X .../cli.version=...".
var version = "dev"

// Version returns the build version.
func Version() string {
	return version
}

package pwquality

var Version = "v0.0.0-dev"

// WrapperVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-dev.
func WrapperVersion() string {
	return Version
}

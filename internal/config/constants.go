// Package config holds the ambient constants and the CLI's viper-backed
// settings loader shared by cmd/effectinfer.
package config

// Version is the current effectinfer version, set at build time via
// -ldflags "-X github.com/specterlang/effectcore/internal/config.Version=...".
var Version = "0.1.0"

// SourceFileExt is the canonical extension for the irtext fixture
// notation internal/irtext parses.
const SourceFileExt = ".irtext"

// SourceFileExtensions are every extension HasSourceExt and
// TrimSourceExt recognize. cmd/effectinfer takes a single file path
// and does not check its extension.
var SourceFileExtensions = []string{".irtext", ".ir"}

// HasSourceExt reports whether path ends in a recognized source
// extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// TrimSourceExt removes a recognized source extension from name, if
// present, e.g. for deriving a module name from a file path.
func TrimSourceExt(name string) string {
	for _, ext := range SourceFileExtensions {
		if len(name) >= len(ext) && name[len(name)-len(ext):] == ext {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

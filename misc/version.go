// Package misc provides program identity shared by logging, reporting and the
// command line surface.
package misc

// Stamped at build time, for example:
//
//	go build -ldflags "-X weft/misc.appVersion=1.2.3 -X weft/misc.gitHash=$(git rev-parse --short HEAD)"
var (
	appName    = "weft"
	appVersion = "development"
	gitHash    = "unknown"
)

// GetAppName returns the program name used for log prefixes and temporary files.
func GetAppName() string {
	return appName
}

// GetVersion returns the release version.
func GetVersion() string {
	return appVersion
}

// GetGitHash returns the source revision the binary was built from.
func GetGitHash() string {
	return gitHash
}

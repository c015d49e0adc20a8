package update

import (
	"fmt"
	"runtime"

	"github.com/hashicorp/go-version"

	"github.com/planguard/planguard/cli/internal/ui"
)

// latestKnownVersion is the newest release the binary knows about. Release
// automation rewrites this at build time; a fetch from the releases API can
// replace it at runtime later.
const latestKnownVersion = "0.1.0"

// CheckForUpdates compares the running version against the latest known
// release and notifies the user if an update is available.
func CheckForUpdates(currentVersion string) error {
	current, err := version.NewVersion(currentVersion)
	if err != nil {
		return fmt.Errorf("invalid version format: %w", err)
	}

	latest, err := version.NewVersion(latestKnownVersion)
	if err != nil {
		return fmt.Errorf("invalid latest version format: %w", err)
	}

	if current.LessThan(latest) {
		ui.PrintWarning("A new version is available!")
		fmt.Printf("Current version: %s\n", currentVersion)
		fmt.Printf("Latest version:  %s\n", latestKnownVersion)
		fmt.Printf("\nUpdate with: go install github.com/planguard/planguard/cli@latest\n")
	}

	return nil
}

// GetDownloadURL returns the download URL for the current platform
func GetDownloadURL(v string) string {
	return fmt.Sprintf("https://github.com/planguard/planguard/releases/download/v%s/planguard-%s-%s", v, runtime.GOOS, runtime.GOARCH)
}

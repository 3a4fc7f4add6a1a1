package version

import (
	"runtime/debug"
)

// Version is the tool version injected at build time via -ldflags.
// Default to empty string so we can detect unset state.
var Version = ""

// Value returns the most useful version string available: the injected
// Version variable, the module version from the build info, the VCS revision
// reported by the toolchain, or "dev" as a final fallback.
func Value() string {
	if Version != "" {
		return Version
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && setting.Value != "" {
				rev := setting.Value
				if len(rev) > 12 {
					rev = rev[:12]
				}
				return rev
			}
		}
	}

	return "dev"
}

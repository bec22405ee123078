package splash

import (
	"runtime"
	"strings"
)

// unsupportedFamily is matched case-insensitively against the platform name.
// The toolkit cannot open a second window before the host's main loop there.
const unsupportedFamily = "mac"

// HostOSName returns the platform name in the form launchers usually report
// it ("Windows", "Mac OS X", "Linux", ...).
func HostOSName() string {
	return osName(runtime.GOOS)
}

func osName(goos string) string {
	switch goos {
	case "windows":
		return "Windows"
	case "darwin":
		return "Mac OS X"
	case "linux":
		return "Linux"
	case "freebsd":
		return "FreeBSD"
	case "openbsd":
		return "OpenBSD"
	case "netbsd":
		return "NetBSD"
	}
	return goos
}

// Supported reports whether the splash window may be opened on the named platform.
func Supported(name string) bool {
	return !strings.Contains(strings.ToLower(name), unsupportedFamily)
}

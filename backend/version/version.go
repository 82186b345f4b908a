package version

import (
	"runtime"
	"runtime/debug"
)

// Set at build time with -ldflags "-X civicflow/backend/version.BuildVersion=...".
var (
	BuildVersion = "dev"
	GitSHA       = ""
)

type Info struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	GitSHA    string `json:"git_sha,omitempty"`
	GoVersion string `json:"go_version"`
}

// Get describes the running binary, falling back to VCS build info when GitSHA was not injected.
func Get(service string) Info {
	sha := GitSHA
	if sha == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			for _, s := range info.Settings {
				if s.Key == "vcs.revision" {
					sha = s.Value
				}
			}
		}
	}
	return Info{
		Service:   service,
		Version:   BuildVersion,
		GitSHA:    sha,
		GoVersion: runtime.Version(),
	}
}

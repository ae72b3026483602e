// Package version holds build information set via -ldflags.
package version

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// Info holds the build information reported by /health and `website version`.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildTime string `json:"build_time"`
}

func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
	}
}

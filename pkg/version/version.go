package version

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/Masterminds/semver/v3"
)

// Build information, set at link time:
//
//	go build -ldflags "-X github.com/goliatone/git-view/pkg/version.Version=v1.2.0"
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

// Info describes the running build.
type Info struct {
	Version   string
	Commit    string
	Date      string
	GoVersion string
}

// Get returns the build information, falling back to the module version
// recorded by the Go toolchain when Version was not set at link time.
func Get() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.Commit == "" {
					info.Commit = s.Value
				}
			case "vcs.time":
				if info.Date == "" {
					info.Date = s.Value
				}
			}
		}
	}

	info.Version = Normalize(info.Version)
	return info
}

// Normalize renders a semantic version as vMAJOR.MINOR.PATCH[-pre][+meta].
// Values that are not semantic versions, such as "dev", are returned as is.
func Normalize(v string) string {
	sv, err := semver.NewVersion(v)
	if err != nil {
		return v
	}
	return "v" + sv.String()
}

// Print writes the build information to w.
func Print(w io.Writer) error {
	info := Get()

	if _, err := fmt.Fprintf(w, "git-view %s\n", info.Version); err != nil {
		return err
	}
	if info.Commit != "" {
		if _, err := fmt.Fprintf(w, "  commit: %s\n", shortCommit(info.Commit)); err != nil {
			return err
		}
	}
	if info.Date != "" {
		if _, err := fmt.Fprintf(w, "  built:  %s\n", info.Date); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "  go:     %s\n", info.GoVersion)
	return err
}

func shortCommit(c string) string {
	if len(c) > 12 {
		return c[:12]
	}
	return c
}

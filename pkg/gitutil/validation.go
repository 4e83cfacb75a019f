package gitutil

import (
	"fmt"
	"strings"
)

// ValidateBranchName rejects names git could never resolve as a branch,
// following the rules of git check-ref-format.
func ValidateBranchName(name string) error {
	return validateRefName(name, "branch")
}

// ValidateRemoteName rejects names git refuses for a remote. A remote name
// becomes a ref component under refs/remotes, so the same rules apply.
func ValidateRemoteName(name string) error {
	return validateRefName(name, "remote")
}

func validateRefName(name, kind string) error {
	if len(name) == 0 {
		return fmt.Errorf("%s name cannot be empty", kind)
	}

	if strings.HasPrefix(name, "/") || strings.HasSuffix(name, "/") {
		return fmt.Errorf("%s name cannot start or end with '/'", kind)
	}
	if strings.HasPrefix(name, "-") {
		return fmt.Errorf("%s name cannot start with '-'", kind)
	}
	if strings.HasSuffix(name, ".") || strings.HasSuffix(name, ".lock") {
		return fmt.Errorf("%s name cannot end with '.' or '.lock'", kind)
	}

	for _, bad := range []string{"..", "//", "@{"} {
		if strings.Contains(name, bad) {
			return fmt.Errorf("%s name cannot contain '%s'", kind, bad)
		}
	}
	if name == "@" {
		return fmt.Errorf("%s name cannot be '@'", kind)
	}

	for _, c := range name {
		if c < 32 || c == 127 {
			return fmt.Errorf("%s name cannot contain control characters", kind)
		}
		switch c {
		case ' ', '~', '^', ':', '?', '*', '[', '\\':
			return fmt.Errorf("%s name cannot contain %q", kind, c)
		}
	}

	for _, component := range strings.Split(name, "/") {
		if strings.HasPrefix(component, ".") {
			return fmt.Errorf("%s name components cannot start with '.'", kind)
		}
	}

	return nil
}

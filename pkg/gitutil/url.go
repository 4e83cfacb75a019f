package gitutil

import (
	"fmt"
	"net/url"
	"strings"
)

// InvalidURLError is returned when a remote URL matches neither the URI nor
// the scp-like syntax.
type InvalidURLError struct {
	Raw string
	Err error
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("Sorry, couldn't parse git url '%s'", e.Raw)
}

func (e *InvalidURLError) Unwrap() error {
	return e.Err
}

// ParseRemoteURL parses a git remote URL into a RemoteURL.
// Handles the two families git accepts:
//   - ssh://[user@]host.xz[:port]/path/to/repo.git/
//   - git://host.xz[:port]/path/to/repo.git/
//   - http[s]://host.xz[:port]/path/to/repo.git/
//   - ftp[s]://host.xz[:port]/path/to/repo.git/
//   - [user@]host.xz:path/to/repo.git/
func ParseRemoteURL(raw string) (*RemoteURL, error) {
	if strings.Contains(raw, "://") {
		return parseURI(raw)
	}
	return parseScpLike(raw)
}

func parseURI(raw string) (*RemoteURL, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, &InvalidURLError{Raw: raw, Err: err}
	}

	host := parsed.Hostname()
	if host == "" {
		host = DefaultHost
	}

	return &RemoteURL{
		Protocol: parsed.Scheme,
		Domain:   ClassifyDomain(host),
		Path:     normalizePath(parsed.Path),
	}, nil
}

func parseScpLike(raw string) (*RemoteURL, error) {
	hostPart, path, ok := strings.Cut(raw, ":")
	if !ok {
		return nil, &InvalidURLError{Raw: raw}
	}

	// user info is irrelevant for browsing
	if _, host, found := strings.Cut(hostPart, "@"); found {
		hostPart = host
	}

	return &RemoteURL{
		Protocol: "https",
		Domain:   ClassifyDomain(hostPart),
		Path:     normalizePath(path),
	}, nil
}

func normalizePath(path string) string {
	path = strings.Trim(path, "/")
	return strings.TrimSuffix(path, ".git")
}

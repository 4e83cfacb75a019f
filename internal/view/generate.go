package view

import (
	"context"
	"strings"

	"github.com/goliatone/git-view/internal/executor"
	"github.com/goliatone/git-view/pkg/gitutil"
)

// Sentinel values a bare flag stands for.
const (
	// CommitCurrent browses the commit at HEAD
	CommitCurrent = "current"
	// IssueFromBranch derives the issue number from the remote ref
	IssueFromBranch = "branch"
	// PathCurrentDirectory browses the working directory
	PathCurrentDirectory = "current-working-directory"
)

// Options carries the user's overrides. Empty strings mean "not given".
type Options struct {
	Remote string
	Branch string
	Commit string
	Issue  string
	Path   string
	Suffix string
	Print  bool
}

// GenerateURL builds the browse URL for remoteRef on url. Exactly one of the
// issue, commit, path or plain ref forms applies, in that priority order.
// A suffix is appended last.
func GenerateURL(ctx context.Context, remoteRef string, url *gitutil.RemoteURL, opts Options, exec executor.Executor) (string, error) {
	var b strings.Builder
	b.WriteString(url.BaseURL())

	tree := "/" + url.Domain.TreeSegment() + "/"

	switch {
	case opts.Issue != "":
		b.WriteString("/" + url.Domain.IssuesSegment())
		issue := opts.Issue
		if issue == IssueFromBranch {
			issue, _ = CaptureDigits(remoteRef)
		}
		if issue != "" {
			b.WriteString("/" + issue)
		}

	case opts.Commit != "":
		commit := opts.Commit
		if commit == CommitCurrent {
			hash, err := exec.CurrentCommit(ctx)
			if err != nil {
				return "", fromExecutor(err)
			}
			commit = hash
		}
		b.WriteString(tree + commit)
		if opts.Path != "" {
			if err := appendPath(ctx, &b, "", opts.Path, exec); err != nil {
				return "", err
			}
		}

	case opts.Path != "":
		if err := appendPath(ctx, &b, tree+EscapeRef(remoteRef), opts.Path, exec); err != nil {
			return "", err
		}

	default:
		b.WriteString(tree + EscapeRef(remoteRef))
	}

	if opts.Suffix != "" {
		appendSuffix(&b, opts.Suffix)
	}
	return b.String(), nil
}

// appendPath writes prefix/path. The working directory sentinel asks git for
// the path relative to the repository root and writes nothing at the root.
func appendPath(ctx context.Context, b *strings.Builder, prefix, path string, exec executor.Executor) error {
	if path == PathCurrentDirectory {
		rel, err := exec.CurrentWorkingDirectory(ctx)
		if err != nil {
			return fromExecutor(err)
		}
		if rel == "" {
			return nil
		}
		path = rel
	}
	b.WriteString(prefix + "/" + path)
	return nil
}

func appendSuffix(b *strings.Builder, suffix string) {
	suffix = strings.TrimLeft(suffix, "/")
	if !strings.HasSuffix(b.String(), "/") {
		b.WriteString("/")
	}
	b.WriteString(suffix)
}

// EscapeRef percent-escapes the characters that would end a URL path early
// or be read as an escape: '%' and '#'. Everything else passes through.
func EscapeRef(ref string) string {
	if !strings.ContainsAny(ref, "%#") {
		return ref
	}
	return refEscaper.Replace(ref)
}

var refEscaper = strings.NewReplacer("%", "%25", "#", "%23")

// CaptureDigits returns the first maximal run of ASCII digits in s.
func CaptureDigits(s string) (string, bool) {
	start := strings.IndexFunc(s, isDigit)
	if start < 0 {
		return "", false
	}
	end := start
	for end < len(s) && isDigit(rune(s[end])) {
		end++
	}
	return s[start:end], true
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

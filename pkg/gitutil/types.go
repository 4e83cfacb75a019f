package gitutil

// DomainKind identifies the hosted service a remote points at.
// Only the services with a distinct URL layout are listed; every other
// host is rendered with the GitHub layout.
type DomainKind int

const (
	// GitHub covers github.com and any host that is not explicitly recognised
	GitHub DomainKind = iota
	// BitBucket covers bitbucket.org
	BitBucket
)

// BitBucketHost is the only host classified as BitBucket.
const BitBucketHost = "bitbucket.org"

// DefaultHost is used when a URI-style remote carries no host at all.
const DefaultHost = "github.com"

func (k DomainKind) String() string {
	switch k {
	case BitBucket:
		return "bitbucket"
	default:
		return "github"
	}
}

// Domain is a remote host together with its classification.
type Domain struct {
	Kind DomainKind
	Host string
}

// ClassifyDomain maps a host name onto a Domain.
func ClassifyDomain(host string) Domain {
	if host == BitBucketHost {
		return Domain{Kind: BitBucket, Host: host}
	}
	return Domain{Kind: GitHub, Host: host}
}

func (d Domain) String() string {
	return d.Host
}

// TreeSegment returns the path segment used to browse a ref on the host.
func (d Domain) TreeSegment() string {
	if d.Kind == BitBucket {
		return "src"
	}
	return "tree"
}

// IssuesSegment returns the path segment of the host's issue tracker.
func (d Domain) IssuesSegment() string {
	return "issues"
}

// RemoteURL represents a git remote URL reduced to what is needed to build
// a browsable link.
type RemoteURL struct {
	// Protocol is the URL scheme; scp-like remotes always report "https"
	Protocol string

	// Domain is the classified host
	Domain Domain

	// Path is the repository path without surrounding slashes or ".git"
	Path string
}

// BaseURL returns protocol://host/path.
func (u *RemoteURL) BaseURL() string {
	return u.Protocol + "://" + u.Domain.Host + "/" + u.Path
}

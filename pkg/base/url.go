package base

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultPort is the RTSP default port, omitted from a rendered URL when it
// matches the parsed port.
const DefaultPort = 554

var urlRegexp = regexp.MustCompile(`^([a-zA-Z][a-zA-Z0-9+.-]*)://(?:([^@/]+)@)?([^/:]+)(?::([^/]*))?(/.*)?$`)

// URL is a parsed RTSP URL: scheme, optional userinfo, host, port and path.
//
// Rendering a parsed URL back to text yields an equivalent URL; the port is
// omitted iff it equals DefaultPort.
type URL struct {
	Scheme   string
	User     string
	Password string
	HasUser  bool
	Host     string
	Port     int
	Path     string
}

// ParseURL parses a RTSP URL of the form
// scheme://[userinfo@]host[:port][path].
func ParseURL(s string) (*URL, error) {
	m := urlRegexp.FindStringSubmatch(s)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURLSyntax, s)
	}

	scheme := strings.ToLower(m[1])
	switch scheme {
	case "rtsp", "rtsps", "rtspu":
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidURLScheme, m[1])
	}

	u := &URL{Scheme: scheme, Port: DefaultPort}

	if m[2] != "" {
		u.HasUser = true
		userinfo := m[2]
		if idx := strings.IndexByte(userinfo, ':'); idx >= 0 {
			u.User = userinfo[:idx]
			u.Password = userinfo[idx+1:]
		} else {
			u.User = userinfo
		}
	}

	if m[3] == "" {
		return nil, fmt.Errorf("%w: empty host", ErrInvalidURLHost)
	}
	u.Host = m[3]

	if m[4] != "" {
		port, err := strconv.Atoi(m[4])
		if err != nil || port <= 0 || port > 65535 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidURLPort, m[4])
		}
		u.Port = port
	}

	if m[5] != "" {
		u.Path = m[5]
	} else {
		u.Path = "/"
	}

	return u, nil
}

// String renders the URL back to its wire form.
func (u *URL) String() string {
	var sb strings.Builder
	sb.WriteString(u.Scheme)
	sb.WriteString("://")
	if u.HasUser {
		sb.WriteString(u.User)
		if u.Password != "" {
			sb.WriteByte(':')
			sb.WriteString(u.Password)
		}
		sb.WriteByte('@')
	}
	sb.WriteString(u.Host)
	if u.Port != DefaultPort {
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(u.Port))
	}
	sb.WriteString(u.Path)
	return sb.String()
}

// CloneWithoutCredentials returns a copy of u with User/Password/HasUser
// cleared. Used when rendering a request line: credentials never go on the
// wire in the URL itself, only via the Authorization header.
func (u *URL) CloneWithoutCredentials() *URL {
	c := *u
	c.User = ""
	c.Password = ""
	c.HasUser = false
	return &c
}

// WithPath returns a copy of u with its path replaced by path, which may be
// an absolute RTSP URL, an absolute path, or a path segment relative to u's
// own path. Used to resolve a track's SDP control attribute against a
// session's base URL.
func (u *URL) WithPath(path string) *URL {
	if strings.Contains(path, "://") {
		if resolved, err := ParseURL(path); err == nil {
			return resolved
		}
	}

	c := *u
	if strings.HasPrefix(path, "/") {
		c.Path = path
		return &c
	}

	base := strings.TrimSuffix(c.Path, "/")
	c.Path = base + "/" + path
	return &c
}

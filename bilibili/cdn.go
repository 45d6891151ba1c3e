package bilibili

import (
	"net/url"
	"strings"
)

const (
	edgeDomain         = "akamaized.net"
	deprecatedLabel    = "mirrorcosov"
	DefaultMirrorHost  = "upos-sz-mirror08c.bilivideo.com"
	DefaultMirrorLabel = "mirror08c"
)

// CDN rewrites single-file URLs that point at third-party or stale edge nodes.
type CDN struct {
	// MirrorHost replaces any host under the third-party edge domain.
	MirrorHost string
	// MirrorLabel replaces the deprecated mirror label inside a host.
	MirrorLabel string
}

// DefaultCDN rewrites to the first-party mirror08c node.
var DefaultCDN = CDN{
	MirrorHost:  DefaultMirrorHost,
	MirrorLabel: DefaultMirrorLabel,
}

// RewriteCDN applies DefaultCDN to raw.
func RewriteCDN(raw string) string {
	return DefaultCDN.Rewrite(raw)
}

// Rewrite returns raw with its host substituted when it belongs to the edge
// domain or carries the deprecated mirror label. Path, query and scheme are
// left byte-for-byte intact. Anything else is returned unchanged.
func (c CDN) Rewrite(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}

	host := strings.ToLower(u.Hostname())
	var replacement string

	switch {
	case c.MirrorHost != "" && (host == edgeDomain || strings.HasSuffix(host, "."+edgeDomain)):
		replacement = c.MirrorHost
		if port := u.Port(); port != "" {
			replacement += ":" + port
		}
	case c.MirrorLabel != "" && strings.Contains(host, deprecatedLabel):
		lower := strings.ToLower(u.Host)
		i := strings.Index(lower, deprecatedLabel)
		if i < 0 || len(lower) != len(u.Host) {
			return raw
		}
		replacement = u.Host[:i] + c.MirrorLabel + u.Host[i+len(deprecatedLabel):]
	default:
		return raw
	}

	return strings.Replace(raw, u.Host, replacement, 1)
}

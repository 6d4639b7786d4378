// Package affiliate rewrites product URLs to carry a tracking parameter
// attributing the click to the operator. The rewrite is strip-then-append
// for every platform, so rewriting an already-rewritten URL yields the same
// URL and tracking parameters are never duplicated.
package affiliate

import "net/url"

// Rewrite sets param=value on rawURL, removing any existing occurrence of
// param first. An empty value (no tag configured for the platform) or an
// unparseable URL returns rawURL unchanged.
func Rewrite(rawURL, param, value string) string {
	if value == "" {
		return rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	q.Set(param, value)
	u.RawQuery = q.Encode()
	return u.String()
}

// RewriteAll applies Rewrite for each param in order. Used by platforms whose
// tracking convention spans several parameters (utm_source/utm_medium/
// utm_campaign).
func RewriteAll(rawURL string, params map[string]string, order []string) string {
	out := rawURL
	for _, param := range order {
		out = Rewrite(out, param, params[param])
	}
	return out
}

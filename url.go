package bookmirror

import "net/url"

// ResolveURL resolves a possibly-relative reference into an absolute URL.
// References that already carry an http or https scheme are returned
// unchanged. Otherwise the reference is resolved against pageURL, the page
// whose content contained it, falling back to baseURL when no page context
// is available. Returns "" when the reference cannot be resolved.
func ResolveURL(ref, pageURL, baseURL string) string {
	if ref == "" {
		return ""
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	if refURL.Scheme == "http" || refURL.Scheme == "https" {
		return ref
	}

	base := pageURL
	if base == "" {
		base = baseURL
	}
	parsed, err := url.Parse(base)
	if err != nil || !parsed.IsAbs() {
		return ""
	}
	return parsed.ResolveReference(refURL).String()
}

package locale

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// JumpTarget validates the destination picked in the language menu. Only
// relative URLs and absolute URLs on the request's host are accepted.
func JumpTarget(r *http.Request, target string) (string, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return "", ErrEmptyTarget
	}

	parsed, err := url.Parse(target)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrForeignTarget, err)
	}
	if parsed.Scheme != "" && parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("%w: scheme %q", ErrForeignTarget, parsed.Scheme)
	}
	if parsed.Host != "" && parsed.Host != r.Host {
		return "", fmt.Errorf("%w: host %q", ErrForeignTarget, parsed.Host)
	}
	if parsed.Host == "" && strings.HasPrefix(target, "//") {
		return "", ErrForeignTarget
	}
	return target, nil
}

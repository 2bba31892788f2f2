package business

import (
	"net/url"
	"strings"

	pkgerrors "github.com/courseflow/course-service/pkg/errors"
)

// validateVideoURL checks that the lesson video is hosted on one of the
// allowed domains. A nil or empty URL is fine; lessons without video are
// legal.
func validateVideoURL(raw *string, allowedHosts []string) error {
	if raw == nil || *raw == "" {
		return nil
	}

	parsed, err := url.Parse(*raw)
	if err != nil || parsed.Host == "" {
		return pkgerrors.NewValidationError("video_url: malformed URL")
	}

	host := strings.ToLower(parsed.Hostname())
	for _, allowed := range allowedHosts {
		allowed = strings.ToLower(strings.TrimSpace(allowed))
		if allowed == "" {
			continue
		}
		if host == allowed || strings.HasSuffix(host, "."+allowed) {
			return nil
		}
	}

	return pkgerrors.NewValidationError("video_url: this content cannot be added")
}

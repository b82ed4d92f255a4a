package valueobjects

import (
	"net"
	"net/url"
	"strings"

	apperrors "alphtip/internal/shared_kernel/errors"
)

// CallbackURL is where progress text for a long-running wallet operation is posted.
type CallbackURL struct {
	value string
	host  string
}

func ParseCallbackURL(raw string, allowedHosts []string) (CallbackURL, *apperrors.AppError) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return CallbackURL{}, invalidCallbackURL("status_callback_url is required")
	}

	parsed, err := url.Parse(trimmed)
	if err != nil || !parsed.IsAbs() || strings.TrimSpace(parsed.Host) == "" {
		return CallbackURL{}, invalidCallbackURL("status_callback_url must be a valid absolute URL")
	}
	if parsed.User != nil {
		return CallbackURL{}, invalidCallbackURL("status_callback_url must not contain user info")
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return CallbackURL{}, invalidCallbackURL("status_callback_url must use http or https")
	}

	host := strings.TrimSuffix(strings.ToLower(parsed.Hostname()), ".")
	if host == "" {
		return CallbackURL{}, invalidCallbackURL("status_callback_url host is required")
	}
	if len(allowedHosts) > 0 && !isCallbackHostAllowed(host, allowedHosts) {
		return CallbackURL{}, apperrors.NewValidation(
			"callback_host_not_allowed",
			"status_callback_url host is not allowed",
			map[string]any{"host": host},
		)
	}

	canonicalHost := host
	if port := parsed.Port(); port != "" {
		canonicalHost = net.JoinHostPort(host, port)
	}
	parsed.Scheme = scheme
	parsed.Host = canonicalHost
	parsed.Fragment = ""

	return CallbackURL{value: parsed.String(), host: host}, nil
}

func (u CallbackURL) String() string {
	return u.value
}

func (u CallbackURL) Host() string {
	return u.host
}

func (u CallbackURL) IsZero() bool {
	return u.value == ""
}

// isCallbackHostAllowed accepts exact hosts and "*.suffix" patterns; the wildcard
// matches subdomains only.
func isCallbackHostAllowed(host string, patterns []string) bool {
	for _, pattern := range patterns {
		normalized := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(pattern)), ".")
		if normalized == "" {
			continue
		}
		if suffix, ok := strings.CutPrefix(normalized, "*."); ok {
			if suffix != "" && host != suffix && strings.HasSuffix(host, "."+suffix) {
				return true
			}
			continue
		}
		if host == normalized {
			return true
		}
	}
	return false
}

func invalidCallbackURL(message string) *apperrors.AppError {
	return apperrors.NewValidation(
		"invalid_request",
		message,
		map[string]any{"field": "status_callback_url"},
	)
}

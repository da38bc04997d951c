package tui

import "strings"

// humanizeNetworkError replaces low-level transport noise with a single
// user-facing message. Any other error keeps the text the service produced.
func humanizeNetworkError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Pas de réseau ou serveur indisponible"
	}

	return err.Error()
}

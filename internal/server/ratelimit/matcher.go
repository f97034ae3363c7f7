package ratelimit

import "strings"

// MatchEndpoint finds the endpoint config for a request path and method.
// Paths match exactly, or by prefix when the configured path ends with "/"
// (so "/projects/" covers "/projects/latex"). The health check is always
// unlimited. Returns nil when nothing matches.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range configs {
		if configs[i].Path == path && configs[i].Method == method {
			return &configs[i]
		}
	}

	for i := range configs {
		if configs[i].Method == method && strings.HasSuffix(configs[i].Path, "/") &&
			strings.HasPrefix(path, configs[i].Path) {
			return &configs[i]
		}
	}

	return nil
}

package config

import (
	"net/url"
	"strings"
	"sync"
)

// DefaultAPIBase is used when neither NOTES_API_BASE nor NOTES_BACKEND_URL
// is set.
const DefaultAPIBase = "/api"

// BaseResolver picks the API base URL from the environment. The value is
// computed on first use and never changes afterwards.
type BaseResolver struct {
	primary   string
	secondary string
	fallback  string

	once  sync.Once
	value string
}

func NewBaseResolver(env EnvConfig, fallback string) *BaseResolver {
	return &BaseResolver{
		primary:   env.APIBase,
		secondary: env.BackendURL,
		fallback:  fallback,
	}
}

func (r *BaseResolver) Resolve() string {
	if r == nil {
		return DefaultAPIBase
	}
	r.once.Do(func() {
		r.value = resolveAPIBase(r.primary, r.secondary, r.fallback)
	})
	return r.value
}

func resolveAPIBase(primary, secondary, fallback string) string {
	raw := strings.TrimSpace(primary)
	if raw == "" {
		raw = strings.TrimSpace(secondary)
	}
	if raw == "" {
		raw = strings.TrimSpace(fallback)
	}
	if raw == "" {
		raw = DefaultAPIBase
	}
	return strings.TrimSuffix(raw, "/")
}

// ResolveURL turns a resolved base into something an HTTP client can dial.
// Absolute URLs are returned as-is; path prefixes such as "/api" are joined
// to origin.
func ResolveURL(base, origin string) string {
	if parsed, err := url.Parse(base); err == nil && parsed.Scheme != "" && parsed.Host != "" {
		return base
	}
	origin = strings.TrimRight(strings.TrimSpace(origin), "/")
	if origin == "" {
		origin = defaultServerOrigin
	}
	if base == "" {
		return origin
	}
	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	return origin + base
}

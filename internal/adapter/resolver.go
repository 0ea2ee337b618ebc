package adapter

import (
	"path/filepath"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	m "github.com/mouse-blink/lintel/internal/model"
)

const resolverCacheSize = 4096

// Resolver maps a path to the settings of its nearest configured scope.
type Resolver interface {
	// Resolve returns the settings of the closest enclosing scope. The boolean
	// is false when no scope matched; callers then use their defaults.
	Resolve(path m.Path) (*m.Settings, bool)
}

type lookup struct {
	settings *m.Settings
	found    bool
}

// ScopeResolver holds one Settings value per directory that carried a
// lintel.toml. Lookups are cached and safe for concurrent use.
type ScopeResolver struct {
	mu       sync.RWMutex
	scopes   map[m.Path]*m.Settings
	defaults *m.Settings
	cache    *lru.Cache[m.Path, lookup]
}

// NewScopeResolver creates an empty resolver. defaults is only used while
// discovering files, to decide exclusions above the first configured scope.
func NewScopeResolver(defaults *m.Settings) *ScopeResolver {
	cache, err := lru.New[m.Path, lookup](resolverCacheSize)
	if err != nil {
		panic(err)
	}

	return &ScopeResolver{
		scopes:   make(map[m.Path]*m.Settings),
		defaults: defaults,
		cache:    cache,
	}
}

// Add registers settings for dir and invalidates cached lookups.
func (r *ScopeResolver) Add(dir m.Path, settings *m.Settings) {
	r.mu.Lock()
	r.scopes[m.Path(filepath.Clean(string(dir)))] = settings
	r.mu.Unlock()

	r.cache.Purge()
}

// Resolve implements Resolver.
func (r *ScopeResolver) Resolve(path m.Path) (*m.Settings, bool) {
	if hit, ok := r.cache.Get(path); ok {
		return hit.settings, hit.found
	}

	settings, found := r.lookup(path)
	r.cache.Add(path, lookup{settings: settings, found: found})

	return settings, found
}

// Scopes returns the number of registered scopes.
func (r *ScopeResolver) Scopes() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.scopes)
}

// nearest is Resolve with the default fallback applied.
func (r *ScopeResolver) nearest(path m.Path) *m.Settings {
	if settings, ok := r.lookup(path); ok {
		return settings
	}

	return r.defaults
}

func (r *ScopeResolver) lookup(path m.Path) (*m.Settings, bool) {
	dir := filepath.Clean(string(path))

	r.mu.RLock()
	defer r.mu.RUnlock()

	for {
		if settings, ok := r.scopes[m.Path(dir)]; ok {
			return settings, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, false
		}

		dir = parent
	}
}

package cache

// ScopedKeyer namespaces the keys of another Keyer. The CLI passes the build
// scope so binaries never share renders with each other.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), buildinfo.Get().CacheScope())
type ScopedKeyer struct {
	inner Keyer
	scope string
}

var _ Keyer = (*ScopedKeyer)(nil)

// NewScopedKeyer returns a keyer that prefixes inner's keys with scope and a
// colon. A nil inner uses the default keyer; an empty scope adds nothing.
func NewScopedKeyer(inner Keyer, scope string) *ScopedKeyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, scope: scope}
}

// Scope returns the namespace.
func (k *ScopedKeyer) Scope() string { return k.scope }

// RenderKey implements Keyer.
func (k *ScopedKeyer) RenderKey(sceneHash string, opts RenderKeyOpts) string {
	key := k.inner.RenderKey(sceneHash, opts)
	if k.scope == "" {
		return key
	}
	return k.scope + ":" + key
}

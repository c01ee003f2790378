package registry

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/randalmurphal/aliasreg/pkg/aliasreg"
	"github.com/randalmurphal/aliasreg/pkg/aliasreg/observability"
)

// Factory is a case-aware registry of creators indexed by name, with alias
// support through an embedded aliasreg.Aliases layer. It implements
// aliasreg.Source over its own maps.
//
// Lookups use sync.RWMutex for read-heavy workloads. Registration must
// complete before concurrent read traffic begins.
type Factory[C any] struct {
	*aliasreg.Aliases[C]

	mu         sync.RWMutex
	name       string
	creators   map[string]C
	ciCreators map[string]C
}

// Compile-time interface check.
var _ aliasreg.Source[struct{}] = (*Factory[struct{}])(nil)

// New creates an empty factory with the given display name.
// The name appears in every diagnostic the factory produces.
func New[C any](name string, opts ...aliasreg.Option) *Factory[C] {
	f := &Factory[C]{
		name:       name,
		creators:   make(map[string]C),
		ciCreators: make(map[string]C),
	}
	f.Aliases = aliasreg.New(f, opts...)
	return f
}

// CreatorMap returns the canonical name -> creator map.
// The returned map is live and must not be mutated by callers.
func (f *Factory[C]) CreatorMap() map[string]C {
	return f.creators
}

// CaseInsensitiveCreatorMap returns the lowercase-folded map of names
// registered case-insensitively. The returned map is live and must not be
// mutated by callers.
func (f *Factory[C]) CaseInsensitiveCreatorMap() map[string]C {
	return f.ciCreators
}

// FactoryName returns the display name used in diagnostics.
func (f *Factory[C]) FactoryName() string {
	return f.name
}

// Register adds a creator under a canonical name.
//
// The name must not be empty, must not already be registered (exactly or
// through its lowercase-folded form), and must not be held by an alias.
// Case-insensitive registration additionally records the lowercased form so
// any casing of the name resolves.
func (f *Factory[C]) Register(name string, creator C, sensitivity aliasreg.Sensitivity) error {
	if name == "" {
		return fmt.Errorf("%s: creator name cannot be empty", f.name)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	lower := strings.ToLower(name)
	if _, ok := f.creators[name]; ok {
		return &aliasreg.DuplicateNameError{Factory: f.name, Name: name}
	}
	if _, ok := f.ciCreators[lower]; ok {
		return &aliasreg.DuplicateNameError{Factory: f.name, Name: name}
	}
	if f.Aliases.IsAlias(name) {
		return &aliasreg.NameCollisionError{Factory: f.name, Name: name, Existing: "alias"}
	}

	f.creators[name] = creator
	if sensitivity == aliasreg.CaseInsensitive {
		f.ciCreators[lower] = creator
	}
	f.InvalidateHints()

	observability.LogCreatorRegistered(f.Logger(), name, sensitivity == aliasreg.CaseInsensitive)
	return nil
}

// Get returns the creator for a name and whether it exists.
// The name is resolved through the alias table first, then looked up
// exactly, then through the case-insensitive map.
func (f *Factory[C]) Get(name string) (C, bool) {
	f.mu.RLock()
	c, ok := f.lookup(name)
	f.mu.RUnlock()

	f.Metrics().RecordLookup(context.Background(), f.name, ok)
	return c, ok
}

func (f *Factory[C]) lookup(name string) (C, bool) {
	resolved := f.AliasToOrName(name)
	if c, ok := f.creators[resolved]; ok {
		return c, true
	}
	if c, ok := f.ciCreators[strings.ToLower(resolved)]; ok {
		return c, true
	}
	var zero C
	return zero, false
}

// MustGet returns the creator for a name, panicking if not found.
func (f *Factory[C]) MustGet(name string) C {
	c, ok := f.Get(name)
	if !ok {
		panic(fmt.Sprintf("%s: name %q is not registered", f.name, name))
	}
	return c
}

// Has reports whether a name resolves to a creator.
func (f *Factory[C]) Has(name string) bool {
	_, ok := f.Get(name)
	return ok
}

// Names returns all canonical names in lexical order. Aliases are not
// included; use AllRegisteredNames for the full set.
func (f *Factory[C]) Names() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	names := make([]string, 0, len(f.creators))
	for name := range f.creators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of canonical names in the factory.
func (f *Factory[C]) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.creators)
}

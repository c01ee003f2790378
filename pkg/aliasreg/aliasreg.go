package aliasreg

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/randalmurphal/aliasreg/pkg/aliasreg/observability"
	"github.com/randalmurphal/aliasreg/pkg/aliasreg/prompt"
)

// Sensitivity controls whether a registered name also matches under
// lowercase folding.
type Sensitivity int

const (
	// CaseSensitive names match exactly as registered.
	CaseSensitive Sensitivity = iota

	// CaseInsensitive names additionally match their lowercase-folded form.
	CaseInsensitive
)

// String returns the sensitivity name.
func (s Sensitivity) String() string {
	switch s {
	case CaseSensitive:
		return "case_sensitive"
	case CaseInsensitive:
		return "case_insensitive"
	default:
		return "unknown"
	}
}

// Source exposes an existing canonical name -> creator mapping to the alias
// layer. The alias layer only reads from a Source, never mutates it.
//
// CreatorMap holds every canonical name under its registered casing.
// CaseInsensitiveCreatorMap holds the lowercase-folded form of every name
// that was registered case-insensitively. FactoryName is a display name used
// in diagnostics only.
type Source[C any] interface {
	CreatorMap() map[string]C
	CaseInsensitiveCreatorMap() map[string]C
	FactoryName() string
}

// Aliases maintains secondary names for the entries of a Source and resolves
// incoming names to their canonical form.
//
// Every alias targets a name that already exists in the Source, and a name
// can be either canonical or an alias, never both. A case-insensitive alias
// is tracked in both the exact and the lowercase-folded alias maps; a
// case-sensitive alias only in the exact map.
//
// Aliases is NOT safe for concurrent registration. See the package
// documentation for the concurrency contract.
type Aliases[C any] struct {
	src Source[C]
	id  string

	aliases    map[string]string // exact alias -> canonical name
	ciAliases  map[string]string // lowercased alias -> canonical name
	aliasOrder []string          // exact alias names in registration order

	logger   *slog.Logger
	metrics  observability.MetricsRecorder
	prompter *prompt.Prompter

	// Guards the lazily built name snapshot used by Hints. Everything else
	// is only written during the single-goroutine registration phase.
	snapMu   sync.Mutex
	snapshot []string
}

// New creates an alias layer over the given source.
//
// Panics if src is nil.
func New[C any](src Source[C], opts ...Option) *Aliases[C] {
	if src == nil {
		panic("aliasreg: source cannot be nil")
	}

	cfg := defaultSettings()
	for _, opt := range opts {
		opt(&cfg)
	}

	a := &Aliases[C]{
		src:       src,
		id:        uuid.NewString(),
		aliases:   make(map[string]string),
		ciAliases: make(map[string]string),
		metrics:   cfg.metrics,
		prompter:  prompt.New(cfg.maxHints),
	}
	if cfg.logger != nil {
		a.logger = observability.EnrichLogger(cfg.logger, src.FactoryName(), a.id)
	}
	return a
}

// Logger returns the enriched logger for this registry, or nil when logging
// is disabled.
func (a *Aliases[C]) Logger() *slog.Logger {
	return a.logger
}

// Metrics returns the metrics recorder for this registry. Never nil.
func (a *Aliases[C]) Metrics() observability.MetricsRecorder {
	return a.metrics
}

// RegisterAlias registers aliasName as an additional name for realName.
// realName must already be registered in the source; the resolved canonical
// form (not necessarily the caller's casing) becomes the alias target.
//
// Returns an error wrapping ErrUnknownRealName, ErrNameCollision, or
// ErrDuplicateAlias. A failed registration leaves the alias table unchanged.
func (a *Aliases[C]) RegisterAlias(aliasName, realName string, sensitivity Sensitivity) error {
	err := a.registerAlias(aliasName, realName, sensitivity)
	a.metrics.RecordAliasRegistration(context.Background(), a.src.FactoryName(), sensitivity == CaseInsensitive, err)
	if err != nil {
		observability.LogAliasRejected(a.logger, aliasName, realName, err)
		return err
	}
	observability.LogAliasRegistered(a.logger, aliasName, realName, sensitivity == CaseInsensitive)
	return nil
}

func (a *Aliases[C]) registerAlias(aliasName, realName string, sensitivity Sensitivity) error {
	creators := a.src.CreatorMap()
	ciCreators := a.src.CaseInsensitiveCreatorMap()
	factory := a.src.FactoryName()

	var target string
	if _, ok := creators[realName]; ok {
		target = realName
	} else if lower := strings.ToLower(realName); hasKey(ciCreators, lower) {
		target = lower
	} else {
		return &UnknownRealNameError{Factory: factory, Alias: aliasName, Real: realName}
	}

	aliasLower := strings.ToLower(aliasName)
	if hasKey(creators, aliasName) || hasKey(ciCreators, aliasLower) {
		return &NameCollisionError{Factory: factory, Name: aliasName, Existing: "real name"}
	}

	// Validate both alias maps before inserting into either so a failed
	// registration never mutates the table.
	if sensitivity == CaseInsensitive {
		if _, ok := a.ciAliases[aliasLower]; ok {
			return &DuplicateAliasError{Factory: factory, Alias: aliasName, Sensitivity: CaseInsensitive}
		}
	}
	if _, ok := a.aliases[aliasName]; ok {
		return &DuplicateAliasError{Factory: factory, Alias: aliasName, Sensitivity: CaseSensitive}
	}

	if sensitivity == CaseInsensitive {
		a.ciAliases[aliasLower] = target
	}
	a.aliases[aliasName] = target
	a.aliasOrder = append(a.aliasOrder, aliasName)

	a.InvalidateHints()
	return nil
}

// AliasToOrName resolves name through the alias table: exact alias match
// first, then case-insensitive match on the lowercase-folded form. Names
// that are not aliases are returned unchanged, since callers frequently
// resolve names that are already canonical.
func (a *Aliases[C]) AliasToOrName(name string) string {
	if target, ok := a.aliases[name]; ok {
		return target
	}
	if target, ok := a.ciAliases[strings.ToLower(name)]; ok {
		return target
	}
	return name
}

// AliasTo returns the canonical name that name is an alias for.
// Returns an error wrapping ErrNotAnAlias if name is in neither alias map.
func (a *Aliases[C]) AliasTo(name string) (string, error) {
	if target, ok := a.aliases[name]; ok {
		return target, nil
	}
	if target, ok := a.ciAliases[strings.ToLower(name)]; ok {
		return target, nil
	}
	return "", &NotAnAliasError{Factory: a.src.FactoryName(), Name: name}
}

// IsAlias reports whether name is registered as an alias, either exactly or
// through its lowercase-folded form.
func (a *Aliases[C]) IsAlias(name string) bool {
	if _, ok := a.aliases[name]; ok {
		return true
	}
	_, ok := a.ciAliases[strings.ToLower(name)]
	return ok
}

// IsCaseInsensitive reports whether the lowercase-folded form of name
// matches a case-insensitively registered canonical name or alias.
func (a *Aliases[C]) IsCaseInsensitive(name string) bool {
	lower := strings.ToLower(name)
	if hasKey(a.src.CaseInsensitiveCreatorMap(), lower) {
		return true
	}
	_, ok := a.ciAliases[lower]
	return ok
}

// AllRegisteredNames returns every canonical name and every alias, with no
// duplicates. Canonical names come first in lexical order, followed by
// aliases in registration order, so enumeration (and therefore hint
// tie-breaking) is deterministic.
func (a *Aliases[C]) AllRegisteredNames() []string {
	creators := a.src.CreatorMap()
	names := make([]string, 0, len(creators)+len(a.aliasOrder))
	for name := range creators {
		names = append(names, name)
	}
	sort.Strings(names)
	return append(names, a.aliasOrder...)
}

// Hints returns registered names close to name by edit distance, for
// "did you mean" diagnostics. At most MaxHints names are returned, nearest
// first.
//
// The registered-name snapshot is built lazily on the first call and reused
// until the next registration invalidates it, so hints always reflect the
// current name set.
func (a *Aliases[C]) Hints(name string) []string {
	start := time.Now()

	a.snapMu.Lock()
	if a.snapshot == nil {
		a.snapshot = a.AllRegisteredNames()
	}
	names := a.snapshot
	a.snapMu.Unlock()

	hints := a.prompter.Hints(name, names)

	duration := time.Since(start)
	a.metrics.RecordHintQuery(context.Background(), a.src.FactoryName(), len(hints), duration)
	observability.LogHintQuery(a.logger, name, hints, float64(duration.Milliseconds()))
	return hints
}

// InvalidateHints discards the cached name snapshot used by Hints. It is
// called automatically on every successful alias registration; canonical
// sources that gain names after the first hint query should call it too.
func (a *Aliases[C]) InvalidateHints() {
	a.snapMu.Lock()
	a.snapshot = nil
	a.snapMu.Unlock()
}

func hasKey[C any](m map[string]C, key string) bool {
	_, ok := m[key]
	return ok
}

package aliasreg

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// stubSource is a fixed canonical source for tests.
type stubSource struct {
	name       string
	creators   map[string]string
	ciCreators map[string]string
}

func (s *stubSource) CreatorMap() map[string]string                { return s.creators }
func (s *stubSource) CaseInsensitiveCreatorMap() map[string]string { return s.ciCreators }
func (s *stubSource) FactoryName() string                          { return s.name }

// newStubSource builds a source with the given case-sensitive canonical names.
func newStubSource(names ...string) *stubSource {
	s := &stubSource{
		name:       "TestFactory",
		creators:   make(map[string]string),
		ciCreators: make(map[string]string),
	}
	for _, name := range names {
		s.creators[name] = "creator:" + name
	}
	return s
}

// addCaseInsensitive registers a canonical name in both maps, the way a
// case-insensitive factory registration would.
func (s *stubSource) addCaseInsensitive(name string) {
	s.creators[name] = "creator:" + name
	s.ciCreators[strings.ToLower(name)] = "creator:" + name
}

func TestNewPanicsOnNilSource(t *testing.T) {
	assert.PanicsWithValue(t, "aliasreg: source cannot be nil", func() {
		New[string](nil)
	})
}

func TestRegisterAlias(t *testing.T) {
	a := New[string](newStubSource("sum", "avg"))

	require.NoError(t, a.RegisterAlias("total", "sum", CaseSensitive))

	assert.Equal(t, "sum", a.AliasToOrName("total"))
	assert.True(t, a.IsAlias("total"))
}

func TestRegisterAliasUnknownRealName(t *testing.T) {
	a := New[string](newStubSource("sum"))

	err := a.RegisterAlias("mean", "avg", CaseSensitive)
	require.ErrorIs(t, err, ErrUnknownRealName)

	var unknown *UnknownRealNameError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "TestFactory", unknown.Factory)
	assert.Equal(t, "mean", unknown.Alias)
	assert.Equal(t, "avg", unknown.Real)

	// The failed registration left no trace.
	assert.False(t, a.IsAlias("mean"))
}

func TestRegisterAliasResolvesTargetCaseInsensitively(t *testing.T) {
	src := newStubSource()
	src.addCaseInsensitive("max")
	a := New[string](src)

	// "MAX" is not an exact canonical name, but its lowercase form is
	// case-insensitively registered; the resolved form becomes the target.
	require.NoError(t, a.RegisterAlias("maximum", "MAX", CaseSensitive))

	target, err := a.AliasTo("maximum")
	require.NoError(t, err)
	assert.Equal(t, "max", target)
}

func TestRegisterAliasCollidesWithCanonical(t *testing.T) {
	src := newStubSource("sum")
	src.addCaseInsensitive("max")
	a := New[string](src)

	t.Run("exact canonical name", func(t *testing.T) {
		err := a.RegisterAlias("sum", "max", CaseSensitive)
		require.ErrorIs(t, err, ErrNameCollision)
	})

	t.Run("lowercase form of a case-insensitive canonical", func(t *testing.T) {
		err := a.RegisterAlias("MAX", "sum", CaseSensitive)
		require.ErrorIs(t, err, ErrNameCollision)
	})
}

func TestRegisterAliasDuplicate(t *testing.T) {
	t.Run("same alias twice", func(t *testing.T) {
		a := New[string](newStubSource("sum", "avg"))
		require.NoError(t, a.RegisterAlias("total", "sum", CaseSensitive))

		err := a.RegisterAlias("total", "avg", CaseSensitive)
		require.ErrorIs(t, err, ErrDuplicateAlias)

		// The original target survives.
		assert.Equal(t, "sum", a.AliasToOrName("total"))
	})

	t.Run("case-insensitive duplicate under different casing", func(t *testing.T) {
		a := New[string](newStubSource("avg"))
		require.NoError(t, a.RegisterAlias("Mean", "avg", CaseInsensitive))

		err := a.RegisterAlias("MEAN", "avg", CaseInsensitive)
		require.ErrorIs(t, err, ErrDuplicateAlias)

		var dup *DuplicateAliasError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, CaseInsensitive, dup.Sensitivity)

		// The rejected registration must not have touched the exact map
		// either: "MEAN" resolves only through the folded form.
		assert.Equal(t, "avg", a.AliasToOrName("MEAN"))
		assert.Equal(t, []string{"avg", "Mean"}, a.AllRegisteredNames())
	})
}

func TestCaseSensitiveAliasDoesNotFold(t *testing.T) {
	a := New[string](newStubSource("sum"))
	require.NoError(t, a.RegisterAlias("Sum", "sum", CaseSensitive))

	assert.Equal(t, "sum", a.AliasToOrName("Sum"))
	assert.True(t, a.IsAlias("Sum"))

	// The lowercase form is the canonical name itself, not an alias, and
	// other casings pass through unchanged.
	assert.False(t, a.IsAlias("SUM"))
	assert.Equal(t, "SUM", a.AliasToOrName("SUM"))
}

func TestCaseInsensitiveAliasMatchesAnyCasing(t *testing.T) {
	src := newStubSource()
	src.addCaseInsensitive("max")
	a := New[string](src)

	require.NoError(t, a.RegisterAlias("MAX2", "max", CaseInsensitive))

	for _, name := range []string{"MAX2", "max2", "Max2"} {
		assert.True(t, a.IsAlias(name), "IsAlias(%q)", name)
		assert.Equal(t, "max", a.AliasToOrName(name), "AliasToOrName(%q)", name)
	}
}

func TestAliasTo(t *testing.T) {
	a := New[string](newStubSource("sum"))
	require.NoError(t, a.RegisterAlias("total", "sum", CaseSensitive))

	target, err := a.AliasTo("total")
	require.NoError(t, err)
	assert.Equal(t, "sum", target)

	t.Run("not an alias", func(t *testing.T) {
		_, err := a.AliasTo("sum")
		require.ErrorIs(t, err, ErrNotAnAlias)

		var notAlias *NotAnAliasError
		require.ErrorAs(t, err, &notAlias)
		assert.Equal(t, "sum", notAlias.Name)
	})

	t.Run("never registered", func(t *testing.T) {
		_, err := a.AliasTo("median")
		require.ErrorIs(t, err, ErrNotAnAlias)
	})
}

func TestIsCaseInsensitive(t *testing.T) {
	src := newStubSource("sum")
	src.addCaseInsensitive("max")
	a := New[string](src)

	require.NoError(t, a.RegisterAlias("MAXIMUM", "max", CaseInsensitive))
	require.NoError(t, a.RegisterAlias("total", "sum", CaseSensitive))

	// Case-insensitive canonical name, any casing.
	assert.True(t, a.IsCaseInsensitive("max"))
	assert.True(t, a.IsCaseInsensitive("Max"))

	// Case-insensitive alias, any casing.
	assert.True(t, a.IsCaseInsensitive("maximum"))
	assert.True(t, a.IsCaseInsensitive("MaXiMuM"))

	// Case-sensitive entries are not.
	assert.False(t, a.IsCaseInsensitive("sum"))
	assert.False(t, a.IsCaseInsensitive("total"))
}

func TestResolveCaseInsensitiveExample(t *testing.T) {
	// Canonical "max" registered case-insensitively, alias "MAX2" -> "max".
	src := newStubSource()
	src.addCaseInsensitive("max")
	a := New[string](src)

	require.NoError(t, a.RegisterAlias("biggest", "max", CaseInsensitive))

	assert.True(t, a.IsCaseInsensitive("max"))
	assert.True(t, a.IsCaseInsensitive("Max"))
	assert.Equal(t, "max", a.AliasToOrName("BIGGEST"))
}

func TestAllRegisteredNames(t *testing.T) {
	a := New[string](newStubSource("sum", "avg"))

	require.NoError(t, a.RegisterAlias("total", "sum", CaseSensitive))
	require.NoError(t, a.RegisterAlias("Mean", "avg", CaseInsensitive))

	// Canonical names sorted, then aliases in registration order. The
	// lowercase form of a case-insensitive alias is not a separate entry.
	assert.Equal(t, []string{"avg", "sum", "total", "Mean"}, a.AllRegisteredNames())
}

func TestHints(t *testing.T) {
	a := New[string](newStubSource("Foo", "Bar", "Foobar"))

	// Distance 1 within cutoff floor((3+2)/3)=1; "Bar" and "Foobar" exceed it.
	assert.Equal(t, []string{"Foo"}, a.Hints("Fop"))
}

func TestHintsIncludeAliases(t *testing.T) {
	a := New[string](newStubSource("avg"))
	require.NoError(t, a.RegisterAlias("mean", "avg", CaseSensitive))

	assert.Equal(t, []string{"mean"}, a.Hints("maan"))
}

func TestHintsSnapshotInvalidatedByRegistration(t *testing.T) {
	src := newStubSource("sum")
	a := New[string](src)

	// Prime the snapshot.
	assert.Empty(t, a.Hints("mean"))

	// An alias registered after the first query is visible immediately.
	require.NoError(t, a.RegisterAlias("meen", "sum", CaseSensitive))
	assert.Equal(t, []string{"meen"}, a.Hints("mean"))
}

func TestHintsSnapshotInvalidatedExplicitly(t *testing.T) {
	src := newStubSource("sum")
	a := New[string](src)

	// Prime the snapshot, then grow the source behind the alias layer's back.
	assert.Empty(t, a.Hints("avk"))
	src.creators["avg"] = "creator:avg"

	// The snapshot is stale until explicitly invalidated.
	assert.Empty(t, a.Hints("avk"))
	a.InvalidateHints()
	assert.Equal(t, []string{"avg"}, a.Hints("avk"))
}

func TestWithMaxHints(t *testing.T) {
	a := New[string](newStubSource("max", "mix", "mox"), WithMaxHints(1))

	assert.Equal(t, []string{"max"}, a.Hints("mzx"))
}

func TestConcurrentReadsAfterFreeze(t *testing.T) {
	a := New[string](newStubSource("sum", "avg"))
	require.NoError(t, a.RegisterAlias("total", "sum", CaseSensitive))
	require.NoError(t, a.RegisterAlias("mean", "avg", CaseInsensitive))

	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "sum", a.AliasToOrName("total"))
			assert.True(t, a.IsAlias("MEAN"))
			assert.True(t, a.IsCaseInsensitive("Mean"))
			assert.Len(t, a.AllRegisteredNames(), 4)
			a.Hints("totl")
		}()
	}
	wg.Wait()
}

func TestPropertyRegisteredNamesInvariant(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		canonical := rapid.SliceOfNDistinct(
			rapid.StringMatching(`[a-z]{1,8}`), 1, 8, rapid.ID[string],
		).Draw(rt, "canonical")
		src := newStubSource(canonical...)
		a := New[string](src)

		aliasNames := rapid.SliceOfNDistinct(
			rapid.StringMatching(`[A-Za-z]{1,8}`), 0, 8, rapid.ID[string],
		).Draw(rt, "aliases")

		registered := 0
		for _, alias := range aliasNames {
			target := rapid.SampledFrom(canonical).Draw(rt, "target")
			sens := CaseSensitive
			if rapid.Bool().Draw(rt, "ci") {
				sens = CaseInsensitive
			}
			if err := a.RegisterAlias(alias, target, sens); err == nil {
				registered++
			}
		}

		names := a.AllRegisteredNames()

		// Size equals canonical count plus successful alias registrations.
		require.Len(rt, names, len(canonical)+registered)

		// No duplicates, and every name resolves into the canonical set.
		seen := make(map[string]bool, len(names))
		for _, name := range names {
			require.False(rt, seen[name], "duplicate name %q", name)
			seen[name] = true

			resolved := a.AliasToOrName(name)
			_, ok := src.creators[resolved]
			require.True(rt, ok, "name %q resolved to unknown %q", name, resolved)
		}

		// Every successfully registered alias answers IsAlias.
		for _, name := range names[len(canonical):] {
			require.True(rt, a.IsAlias(name))
		}
	})
}

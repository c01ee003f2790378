// Package aliasreg provides an alias-aware layer over a name -> creator registry.
//
// Many registries allow the same object to be reachable under several names:
// a canonical name plus any number of aliases, each of which may be
// case-sensitive or case-insensitive. Aliases sits in front of any canonical
// name -> creator mapping (the Source interface) and resolves incoming names
// to their canonical form, keeping canonical names and both alias classes
// mutually exclusive.
//
// # Basic Usage
//
// Implement Source on your registry (or use the registry subpackage), then
// wrap it:
//
//	type FunctionFactory struct {
//	    creators   map[string]Creator
//	    ciCreators map[string]Creator
//	}
//
//	func (f *FunctionFactory) CreatorMap() map[string]Creator                { return f.creators }
//	func (f *FunctionFactory) CaseInsensitiveCreatorMap() map[string]Creator { return f.ciCreators }
//	func (f *FunctionFactory) FactoryName() string                           { return "FunctionFactory" }
//
//	aliases := aliasreg.New[Creator](factory)
//	if err := aliases.RegisterAlias("mean", "avg", aliasreg.CaseInsensitive); err != nil {
//	    log.Fatal(err)
//	}
//
//	aliases.AliasToOrName("MEAN") // "avg"
//	aliases.AliasToOrName("avg")  // "avg" (pass-through)
//
// # Hints
//
// Unknown names can be matched against the full registered-name set with
// bounded edit distance, for "did you mean" diagnostics:
//
//	aliases.Hints("aug") // ["avg"]
//
// # Thread Safety
//
// Registration is a startup-phase activity: call RegisterAlias from a single
// goroutine before any concurrent read traffic begins. Once registration has
// completed, AliasToOrName, AliasTo, IsAlias, IsCaseInsensitive,
// AllRegisteredNames, and Hints are safe for concurrent callers.
package aliasreg

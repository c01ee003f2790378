// Package registry provides a concrete, case-aware name -> creator registry
// with alias support.
//
// Factory owns the canonical creator maps and embeds an aliasreg.Aliases
// layer over itself, giving one type the full surface: canonical
// registration, alias registration, alias-aware lookup, and hints.
//
// # Basic Usage
//
// Register creators under canonical names, then add aliases:
//
//	functions := registry.New[Creator]("FunctionFactory")
//
//	functions.Register("sum", sumCreator, aliasreg.CaseInsensitive)
//	functions.Register("avg", avgCreator, aliasreg.CaseInsensitive)
//	functions.RegisterAlias("mean", "avg", aliasreg.CaseInsensitive)
//
//	creator, ok := functions.Get("MEAN") // resolves to "avg"
//
// # Thread Safety
//
// Lookups are guarded by an RWMutex and safe for concurrent callers.
// Registration (canonical and alias) must finish before concurrent traffic
// starts; see the aliasreg package documentation.
package registry

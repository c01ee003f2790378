package aliasreg

import (
	"errors"
	"fmt"
)

// Sentinel errors for alias and creator registration. All of them indicate
// configuration mistakes detected eagerly at registration time; callers are
// expected to abort initialization rather than retry.
var (
	// ErrUnknownRealName indicates an alias target that is not a registered name.
	ErrUnknownRealName = errors.New("real name is not registered")

	// ErrNameCollision indicates a name that is already taken by the other
	// namespace: an alias colliding with a canonical name, or vice versa.
	ErrNameCollision = errors.New("name is already registered in another namespace")

	// ErrDuplicateAlias indicates an alias name registered twice within the
	// same sensitivity class.
	ErrDuplicateAlias = errors.New("alias name is not unique")

	// ErrNotAnAlias indicates AliasTo was called on a name that is not an alias.
	ErrNotAnAlias = errors.New("name is not an alias")

	// ErrDuplicateName indicates a canonical name registered twice.
	ErrDuplicateName = errors.New("name is already registered")
)

// UnknownRealNameError reports an alias whose target is not registered.
type UnknownRealNameError struct {
	// Factory is the display name of the owning registry.
	Factory string
	// Alias is the alias that was being registered.
	Alias string
	// Real is the target name that could not be resolved.
	Real string
}

// Error implements the error interface.
func (e *UnknownRealNameError) Error() string {
	return fmt.Sprintf("%s: can't create alias %q, the real name %q is not registered", e.Factory, e.Alias, e.Real)
}

// Unwrap returns ErrUnknownRealName for errors.Is support.
func (e *UnknownRealNameError) Unwrap() error {
	return ErrUnknownRealName
}

// NameCollisionError reports a name that already belongs to the other
// namespace. It covers both directions: registering an alias over a
// canonical name, and registering a canonical name over an alias.
type NameCollisionError struct {
	// Factory is the display name of the owning registry.
	Factory string
	// Name is the name being registered.
	Name string
	// Existing describes what the name is already registered as
	// ("real name" or "alias").
	Existing string
}

// Error implements the error interface.
func (e *NameCollisionError) Error() string {
	return fmt.Sprintf("%s: the name %q is already registered as %s", e.Factory, e.Name, e.Existing)
}

// Unwrap returns ErrNameCollision for errors.Is support.
func (e *NameCollisionError) Unwrap() error {
	return ErrNameCollision
}

// DuplicateAliasError reports an alias name that is already present in the
// alias map for its sensitivity class.
type DuplicateAliasError struct {
	// Factory is the display name of the owning registry.
	Factory string
	// Alias is the duplicate alias name.
	Alias string
	// Sensitivity is the class in which the duplicate was found.
	Sensitivity Sensitivity
}

// Error implements the error interface.
func (e *DuplicateAliasError) Error() string {
	if e.Sensitivity == CaseInsensitive {
		return fmt.Sprintf("%s: case insensitive alias name %q is not unique", e.Factory, e.Alias)
	}
	return fmt.Sprintf("%s: alias name %q is not unique", e.Factory, e.Alias)
}

// Unwrap returns ErrDuplicateAlias for errors.Is support.
func (e *DuplicateAliasError) Unwrap() error {
	return ErrDuplicateAlias
}

// NotAnAliasError reports a strict alias lookup on a non-alias name.
type NotAnAliasError struct {
	// Factory is the display name of the owning registry.
	Factory string
	// Name is the name that is not an alias.
	Name string
}

// Error implements the error interface.
func (e *NotAnAliasError) Error() string {
	return fmt.Sprintf("%s: name %q is not an alias", e.Factory, e.Name)
}

// Unwrap returns ErrNotAnAlias for errors.Is support.
func (e *NotAnAliasError) Unwrap() error {
	return ErrNotAnAlias
}

// DuplicateNameError reports a canonical name that is already registered,
// either exactly or through its lowercase-folded form.
type DuplicateNameError struct {
	// Factory is the display name of the owning registry.
	Factory string
	// Name is the duplicate name.
	Name string
}

// Error implements the error interface.
func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("%s: the name %q is already registered", e.Factory, e.Name)
}

// Unwrap returns ErrDuplicateName for errors.Is support.
func (e *DuplicateNameError) Unwrap() error {
	return ErrDuplicateName
}

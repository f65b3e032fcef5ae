// Package errors provides structured error handling for the strata core.
//
// Errors fall into four kinds. Configuration errors describe user mistakes
// such as an element without a resolvable width. Internal errors describe
// broken invariants (layout that never converges, dependency cycles). Asset
// errors are recoverable load failures. Value errors reject bad arguments at
// an API boundary without mutating state.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfiguration indicates an element or trait was configured in a way
	// that cannot be resolved.
	KindConfiguration
	// KindInternal indicates an invariant violation inside the core.
	KindInternal
	// KindAsset indicates an asset (font sheet, icon) could not be loaded.
	KindAsset
	// KindValue indicates an argument was rejected at an API boundary.
	KindValue
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindInternal:
		return "internal"
	case KindAsset:
		return "asset"
	case KindValue:
		return "value"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Sentinels usable with errors.Is. Each typed error in this package matches
// the sentinel of its kind.
var (
	ErrConfiguration = errors.New("configuration error")
	ErrInternal      = errors.New("internal error")
	ErrAsset         = errors.New("asset error")
	ErrValue         = errors.New("value error")
)

// Error is the envelope reported to an ErrorHandler.
type Error struct {
	// Op is the operation that failed (e.g., "view.Update").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Layer is the view layer the error happened in, if any.
	Layer string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	if e.Layer != "" {
		return fmt.Sprintf("%s [%s] layer=%s: %v", e.Op, e.Kind, e.Layer, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ConfigurationError reports a trait value that cannot be resolved for an element.
type ConfigurationError struct {
	// Element describes the offending element (usually its class and handle).
	Element string
	// Trait is the name of the offending trait.
	Trait string
	// Reason explains what is wrong.
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Trait == "" {
		return fmt.Sprintf("%s: %s", e.Element, e.Reason)
	}
	return fmt.Sprintf("%s.%s: %s", e.Element, e.Trait, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// InternalError reports a violated invariant. Correct programs never see one.
type InternalError struct {
	Op     string
	Reason string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error in %s: %s", e.Op, e.Reason)
}

func (e *InternalError) Is(target error) bool { return target == ErrInternal }

// AssetError reports an asset that could not be found or decoded.
type AssetError struct {
	// Name is the logical asset name (e.g., "fonts/small").
	Name string
	// Path is the path that was searched.
	Path string
	// Err is the underlying error, if any.
	Err error
}

func (e *AssetError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("asset %q (searched %s): %v", e.Name, e.Path, e.Err)
	}
	return fmt.Sprintf("asset %q not found (searched %s)", e.Name, e.Path)
}

func (e *AssetError) Unwrap() error { return e.Err }

func (e *AssetError) Is(target error) bool { return target == ErrAsset }

// ValueError reports an argument rejected at an API boundary.
type ValueError struct {
	Op     string
	Reason string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func (e *ValueError) Is(target error) bool { return target == ErrValue }

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "view.HandleEvent").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// KindOf returns the kind of err by inspecting its chain.
func KindOf(err error) ErrorKind {
	var env *Error
	switch {
	case err == nil:
		return KindUnknown
	case errors.As(err, &env):
		return env.Kind
	case errors.Is(err, ErrConfiguration):
		return KindConfiguration
	case errors.Is(err, ErrInternal):
		return KindInternal
	case errors.Is(err, ErrAsset):
		return KindAsset
	case errors.Is(err, ErrValue):
		return KindValue
	}
	var p *PanicError
	if errors.As(err, &p) {
		return KindPanic
	}
	return KindUnknown
}

// Wrap builds an Error envelope for err, inferring its kind.
// It returns nil when err is nil.
func Wrap(op string, err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Kind: KindOf(err), Err: err}
}

// ErrorHandler receives errors reported by the core.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// Is, As and New re-export the standard helpers so callers importing this
// package under the name errors keep access to them.
var (
	Is  = errors.Is
	As  = errors.As
	New = errors.New
)

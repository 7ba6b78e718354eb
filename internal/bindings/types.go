// Package bindings provides the cgo bindings to the libpwquality C library.
// This package should ONLY be imported by pkg/pwquality. All cgo complexity
// is isolated here.
package bindings

import (
	"errors"
	"fmt"
)

// Handle is the opaque pwquality_settings_t pointer returned by the native
// default-settings factory. A zero Handle is invalid.
type Handle uintptr

var (
	// ErrNotBuilt reports that the native bindings were not linked into the
	// current binary. Callers can use this to fall back to safer defaults.
	ErrNotBuilt = errors.New("pwquality/internal/bindings: native bindings not built")

	// ErrMemAlloc reports an allocation failure, either a NULL handle from the
	// settings factory or a PWQ_ERROR_MEM_ALLOC return code. It intentionally
	// carries no strerror message; the native formatter cannot be trusted to
	// allocate when the library already failed to.
	ErrMemAlloc = errors.New("pwquality/internal/bindings: memory allocation failed")
)

// CodeError carries a negative libpwquality return code together with the
// message decoded from pwquality_strerror.
type CodeError struct {
	Code    int
	Message string
}

func (e *CodeError) Error() string {
	return fmt.Sprintf("pwquality error %d: %s", e.Code, e.Message)
}

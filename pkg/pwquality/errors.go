package pwquality

import (
	"errors"
	"fmt"

	"github.com/abadger/go-pwquality/internal/bindings"
)

var (
	// ErrNotBuilt reports that the native bindings were not linked into the
	// current binary (cgo disabled or Windows).
	ErrNotBuilt = bindings.ErrNotBuilt

	// ErrMemAlloc indicates the native library failed to allocate memory,
	// either for the settings handle or inside an operation. No message
	// lookup is attempted for this code.
	ErrMemAlloc = errors.New("pwquality: memory allocation failed")

	// ErrSettingsClosed indicates an operation on a Settings whose native
	// handle has already been released.
	ErrSettingsClosed = errors.New("pwquality: settings closed")

	// ErrUnknownSetting indicates a configuration name the native library
	// does not recognize. Test with errors.Is.
	ErrUnknownSetting = errors.New("pwquality: unknown setting")

	// ErrNonIntSetting indicates a setting that expects an integer value.
	ErrNonIntSetting = errors.New("pwquality: setting expects an integer value")

	// ErrNonStrSetting indicates a setting that expects a string value.
	ErrNonStrSetting = errors.New("pwquality: setting expects a string value")
)

// Error is the structured error produced for every negative native return
// code. Code is the libpwquality error code and Message the text obtained
// from the native strerror formatter. Both are fixed at construction.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("pwquality: %s (code %d)", e.Message, e.Code)
}

// Is maps the configuration error codes onto the exported sentinels so that
// callers can distinguish them with errors.Is without inspecting Code.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnknownSetting:
		return e.Code == CodeUnknownSetting
	case ErrNonIntSetting:
		return e.Code == CodeNonIntSetting
	case ErrNonStrSetting:
		return e.Code == CodeNonStrSetting
	}
	return false
}

// remapError converts bindings layer errors to public API errors.
func remapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, bindings.ErrMemAlloc) {
		return ErrMemAlloc
	}
	var ce *bindings.CodeError
	if errors.As(err, &ce) {
		return &Error{Code: ErrorCode(ce.Code), Message: ce.Message}
	}
	return err
}

//go:build cgo && !windows

package bindings

/*
#cgo LDFLAGS: -lpwquality
#include <stdlib.h>
#include <pwquality.h>
*/
import "C"

import "unsafe"

func settings(h Handle) *C.pwquality_settings_t {
	return (*C.pwquality_settings_t)(unsafe.Pointer(uintptr(h)))
}

// translate converts a negative native return code into a CodeError. The
// auxiliary context produced by check or read-config is only valid for the
// duration of the translating call; it is handed to pwquality_strerror and
// never dereferenced or retained.
func translate(rc C.int, aux unsafe.Pointer) error {
	if rc == C.PWQ_ERROR_MEM_ALLOC {
		return ErrMemAlloc
	}

	buf := (*C.char)(C.malloc(C.PWQ_MAX_ERROR_MESSAGE_LEN))
	if buf == nil {
		return ErrMemAlloc
	}
	defer C.free(unsafe.Pointer(buf))

	msg := C.pwquality_strerror(buf, C.size_t(C.PWQ_MAX_ERROR_MESSAGE_LEN), rc, aux)
	if msg == nil {
		return &CodeError{Code: int(rc), Message: "unknown error"}
	}
	return &CodeError{Code: int(rc), Message: C.GoString(msg)}
}

// DefaultSettings acquires a settings handle populated with the library's
// built-in defaults. The caller owns the handle and must release it with
// FreeSettings exactly once.
func DefaultSettings() (Handle, error) {
	h := C.pwquality_default_settings()
	if h == nil {
		return 0, ErrMemAlloc
	}
	return Handle(uintptr(unsafe.Pointer(h))), nil
}

// FreeSettings releases a handle obtained from DefaultSettings. A zero
// handle is ignored.
func FreeSettings(h Handle) {
	if h == 0 {
		return
	}
	C.pwquality_free_settings(settings(h))
}

// ReadConfig loads settings from a configuration file. An empty path maps to
// NULL, which makes the library read its default configuration file.
func ReadConfig(h Handle, path string) error {
	var cPath *C.char
	if path != "" {
		cPath = C.CString(path)
		defer C.free(unsafe.Pointer(cPath))
	}

	var aux unsafe.Pointer
	rc := C.pwquality_read_config(settings(h), cPath, &aux)
	if rc < 0 {
		return translate(rc, aux)
	}
	return nil
}

// SetOption applies a single name=value pair to the handle.
func SetOption(h Handle, option string) error {
	cOption := C.CString(option)
	defer C.free(unsafe.Pointer(cOption))

	rc := C.pwquality_set_option(settings(h), cOption)
	if rc < 0 {
		return translate(rc, nil)
	}
	return nil
}

// SetInt sets an integer-valued setting on the handle.
func SetInt(h Handle, setting int, value int) error {
	rc := C.pwquality_set_int_value(settings(h), C.int(setting), C.int(value))
	if rc < 0 {
		return translate(rc, nil)
	}
	return nil
}

// SetStr sets a string-valued setting on the handle. An empty value maps to
// NULL, which clears the setting.
func SetStr(h Handle, setting int, value string) error {
	var cValue *C.char
	if value != "" {
		cValue = C.CString(value)
		defer C.free(unsafe.Pointer(cValue))
	}

	rc := C.pwquality_set_str_value(settings(h), C.int(setting), cValue)
	if rc < 0 {
		return translate(rc, nil)
	}
	return nil
}

// GetInt reads an integer-valued setting from the handle.
func GetInt(h Handle, setting int) (int, error) {
	var value C.int
	rc := C.pwquality_get_int_value(settings(h), C.int(setting), &value)
	if rc < 0 {
		return 0, translate(rc, nil)
	}
	return int(value), nil
}

// GetStr reads a string-valued setting from the handle. The native library
// owns the returned pointer; the text is copied out and an unset value comes
// back as the empty string.
func GetStr(h Handle, setting int) (string, error) {
	var value *C.char
	rc := C.pwquality_get_str_value(settings(h), C.int(setting), &value)
	if rc < 0 {
		return "", translate(rc, nil)
	}
	if value == nil {
		return "", nil
	}
	return C.GoString(value), nil
}

// Generate produces a random password with the requested entropy. The native
// library allocates the out-parameter; it is copied into a Go string and
// freed before returning.
func Generate(h Handle, bits int) (string, error) {
	var out *C.char
	rc := C.pwquality_generate(settings(h), C.int(bits), &out)
	if rc < 0 {
		return "", translate(rc, nil)
	}
	if out == nil {
		return "", &CodeError{Code: int(C.PWQ_ERROR_FATAL_FAILURE), Message: "generate returned no password"}
	}
	password := C.GoString(out)
	C.free(unsafe.Pointer(out))
	return password, nil
}

// Check scores a password against the handle's settings. Optional old
// password and username are nil when absent, which marshals to C NULL rather
// than an empty string. Negative return codes are translated together with
// the auxiliary error context while it is still live.
func Check(h Handle, password string, oldPassword, username *string) (int, error) {
	cPassword := C.CString(password)
	defer C.free(unsafe.Pointer(cPassword))

	var cOld, cUser *C.char
	if oldPassword != nil {
		cOld = C.CString(*oldPassword)
		defer C.free(unsafe.Pointer(cOld))
	}
	if username != nil {
		cUser = C.CString(*username)
		defer C.free(unsafe.Pointer(cUser))
	}

	var aux unsafe.Pointer
	rc := C.pwquality_check(settings(h), cPassword, cOld, cUser, &aux)
	if rc < 0 {
		return 0, translate(rc, aux)
	}
	return int(rc), nil
}

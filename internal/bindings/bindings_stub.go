//go:build !cgo || windows

package bindings

// Stub implementations for non-cgo builds or Windows. These allow the
// package to compile but return ErrNotBuilt when called.

func DefaultSettings() (Handle, error) {
	return 0, ErrNotBuilt
}

func FreeSettings(Handle) {}

func ReadConfig(Handle, string) error {
	return ErrNotBuilt
}

func SetOption(Handle, string) error {
	return ErrNotBuilt
}

func SetInt(Handle, int, int) error {
	return ErrNotBuilt
}

func SetStr(Handle, int, string) error {
	return ErrNotBuilt
}

func GetInt(Handle, int) (int, error) {
	return 0, ErrNotBuilt
}

func GetStr(Handle, int) (string, error) {
	return "", ErrNotBuilt
}

func Generate(Handle, int) (string, error) {
	return "", ErrNotBuilt
}

func Check(Handle, string, *string, *string) (int, error) {
	return 0, ErrNotBuilt
}

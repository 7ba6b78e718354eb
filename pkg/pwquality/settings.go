package pwquality

import (
	"runtime"
	"sync"

	"github.com/abadger/go-pwquality/internal/bindings"
)

// Settings owns one opaque native settings handle. The handle is acquired by
// New and released exactly once, by the first Close or by a finalizer when
// the value becomes unreachable unclosed. The zero value is not usable.
type Settings struct {
	mu     sync.Mutex
	handle bindings.Handle
	closed bool
}

// New acquires a settings handle populated with the library's built-in
// defaults. Call ReadConfig to apply the system configuration file on top.
func New() (*Settings, error) {
	h, err := bindings.DefaultSettings()
	if err != nil {
		return nil, remapError(err)
	}
	s := &Settings{handle: h}
	runtime.SetFinalizer(s, (*Settings).finalize)
	return s, nil
}

func (s *Settings) finalize() {
	_ = s.Close()
}

// Close releases the native handle. It is idempotent and always returns nil;
// only the first call frees the handle. Operations after Close report
// ErrSettingsClosed.
func (s *Settings) Close() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	bindings.FreeSettings(s.handle)
	s.handle = 0
	s.closed = true
	runtime.SetFinalizer(s, nil)
	return nil
}

// ReadConfig loads settings from a configuration file. An empty path makes
// the native library read its default configuration file.
func (s *Settings) ReadConfig(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSettingsClosed
	}
	return remapError(bindings.ReadConfig(s.handle, path))
}

// SetOption applies a single "name=value" pair, using the same names the
// configuration file does. Unknown names and mistyped values are reported as
// errors matching ErrUnknownSetting, ErrNonIntSetting or ErrNonStrSetting.
func (s *Settings) SetOption(option string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSettingsClosed
	}
	return remapError(bindings.SetOption(s.handle, option))
}

// SetInt sets an integer-valued setting.
func (s *Settings) SetInt(setting Setting, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSettingsClosed
	}
	return remapError(bindings.SetInt(s.handle, int(setting), value))
}

// SetString sets a string-valued setting. An empty value clears it.
func (s *Settings) SetString(setting Setting, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSettingsClosed
	}
	return remapError(bindings.SetStr(s.handle, int(setting), value))
}

// GetInt reads an integer-valued setting.
func (s *Settings) GetInt(setting Setting) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrSettingsClosed
	}
	value, err := bindings.GetInt(s.handle, int(setting))
	if err != nil {
		return 0, remapError(err)
	}
	return value, nil
}

// GetString reads a string-valued setting. An unset value is returned as the
// empty string.
func (s *Settings) GetString(setting Setting) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", ErrSettingsClosed
	}
	value, err := bindings.GetStr(s.handle, int(setting))
	if err != nil {
		return "", remapError(err)
	}
	return value, nil
}

// Generate produces a random password carrying the requested number of
// entropy bits. The length of the result is roughly proportional to bits but
// may vary by a character depending on the alphabet the library picks.
func (s *Settings) Generate(bits int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", ErrSettingsClosed
	}
	password, err := bindings.Generate(s.handle, bits)
	if err != nil {
		return "", remapError(err)
	}
	return password, nil
}

// CheckOption supplies optional context for Check.
type CheckOption func(*checkParams)

type checkParams struct {
	oldPassword *string
	username    *string
}

// WithOldPassword enables the similarity checks against the user's previous
// password. An empty string counts as absent and marshals to NULL.
func WithOldPassword(old string) CheckOption {
	return func(p *checkParams) {
		if old == "" {
			return
		}
		p.oldPassword = &old
	}
}

// WithUser enables the username and passwd-entry based checks. An empty
// string counts as absent and marshals to NULL.
func WithUser(name string) CheckOption {
	return func(p *checkParams) {
		if name == "" {
			return
		}
		p.username = &name
	}
}

// Check scores the password against the current settings and returns the
// non-negative quality score. Any negative native return code comes back as
// a *Error carrying the code and the decoded message.
func (s *Settings) Check(password string, opts ...CheckOption) (int, error) {
	var p checkParams
	for _, opt := range opts {
		opt(&p)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrSettingsClosed
	}
	score, err := bindings.Check(s.handle, password, p.oldPassword, p.username)
	if err != nil {
		return 0, remapError(err)
	}
	return score, nil
}

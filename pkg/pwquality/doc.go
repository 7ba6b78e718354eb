// Package pwquality wraps libpwquality, the native password quality
// checking library. The scoring, dictionary and pattern heuristics, and
// entropy-based generation all run inside the shared library; this package
// only marshals text across the C boundary and translates native return
// codes into structured errors.
//
// A Settings value owns one opaque native handle:
//
//	settings, err := pwquality.New()
//	if err != nil {
//		return err
//	}
//	defer settings.Close()
//
//	score, err := settings.Check("hunter2", pwquality.WithUser("alice"))
//
// Settings is safe for concurrent use; a mutex serializes access to the
// handle because the native library makes no thread-safety guarantees.
//
// Binaries built without cgo (or on Windows) compile but every operation
// reports ErrNotBuilt.
package pwquality

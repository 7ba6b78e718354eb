//go:build !cgo || windows

package pwquality_test

import (
	"errors"
	"testing"

	"github.com/abadger/go-pwquality/pkg/pwquality"
)

func TestNewReportsNotBuilt(t *testing.T) {
	_, err := pwquality.New()
	if !errors.Is(err, pwquality.ErrNotBuilt) {
		t.Fatalf("expected ErrNotBuilt, got %v", err)
	}
}

// Package internalcheck provides internal validation and testing utilities.
//
// This package contains static policy checks run as tests over the public
// pwquality package. It is not intended for external use and the API may
// change without notice. Use the public API provided by pkg/pwquality
// instead.
package internalcheck

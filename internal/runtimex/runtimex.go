// Package runtimex contains runtime extensions. Functions in this package
// panic and are meant for programmer errors and test code only.
package runtimex

import "fmt"

// PanicOnError calls panic() if err is not nil.
func PanicOnError(err error, message string) {
	if err != nil {
		panic(fmt.Errorf("%s: %w", message, err))
	}
}

// Try1 returns value when err is nil and panics otherwise.
func Try1[T any](value T, err error) T {
	PanicOnError(err, "Try1")
	return value
}

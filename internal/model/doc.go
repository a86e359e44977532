// Package model contains the interfaces and data structures shared
// by the finboard packages.
//
// Keep logic out of this package, except for small helpers strictly
// tied to a data structure (e.g., [*FinboardAlert.IsEnabled]).
//
// The files are organized as follows:
//
// - finboard.go: FinBoard API request and response bodies;
//
// - http.go: the HTTP client abstraction and header constants;
//
// - keyvaluestore.go: the key-value store used to persist the token;
//
// - logger.go: the apex/log compatible logger interface.
package model

// Package apiclient implements a client for the FinBoard REST API.
//
// A [*Client] reads the bearer token from a [*tokenstore.Store] before
// every request, so a token set with [*Client.SetToken] applies to all
// the subsequent calls, including calls made by other clients sharing
// the same store.
//
// # Contracts
//
// Each client follows exactly one [Contract], chosen at construction:
//
// - [ContractError] (the default) returns an error for transport
// failures and for non-2xx responses (a [*HTTPError]). Any 2xx response
// yields its parsed JSON body;
//
// - [ContractResult] never returns an error and reports every outcome
// inside the [*Result], which the caller inspects using [Result.OK]. A
// 200 response whose body denies authorization is not OK, and
// [Result.AsError] maps it to a [*HTTPError] matching [ErrDenied].
//
// Use [As] to convert the outcome of either contract into a typed value.
package apiclient

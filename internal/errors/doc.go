// Package errors defines the typed errors and sentinels used across the
// module. The root package re-exports these as aliases for public use.
package errors

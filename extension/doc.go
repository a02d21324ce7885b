// Package extension provides run-time registries that allow gemkit to work
// with user-defined model utilities and their Go input/output types.
//
// The registries are normally modified through the public APIs under the
// root gemkit package, therefore most applications do not need to import
// this package directly.
package extension

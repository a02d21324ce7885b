// Package executor invokes registered model utilities by service and method
// name.  It is effectively a glue layer between generic invocations (service
// name, method name, loosely-typed input) and the typed utility
// implementations registered in the extension registry.
package executor

// Package error provides the structured error type used across netext.
//
// Package: error
// Title: netext Error Handling
// Description: Implements a coded error with severity, details, operation
//              context and a captured stack trace. Every error returned by the
//              stringx, observable and config packages is an *Error, so callers
//              can branch on Code() instead of matching message text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// Usage:
//   import nxerror "github.com/msto63/netext/core/error"
//
//   err := nxerror.New("length must be greater than zero").
//     WithCode(nxerror.CodeValueOutOfRange).
//     WithDetail("value", 0)
//
//   if nxerror.HasCode(err, nxerror.CodeValueOutOfRange) {
//     // reject the request
//   }
package error

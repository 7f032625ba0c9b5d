// Package errors provides the shared error constructors used by every netext
// module.
//
// Package: errors
// Title: Standardized Error Construction
// Description: Wraps core/error with module-keyed constructors (InvalidInput,
//              InvalidFormat, OutOfRange, NotFound, OperationFailed) and a
//              fluent ErrorBuilder. Use these instead of fmt.Errorf or
//              errors.New inside the library so callers can rely on
//              Code(), Operation() and the "module" detail.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
package errors

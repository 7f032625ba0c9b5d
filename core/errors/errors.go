// File: errors.go
// Title: Shared Error Constructors
// Description: Module-keyed constructors so that every netext package builds
//              its errors the same way: module and operation in the details,
//              a code from core/error, and a predictable message.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package errors

import (
	"errors"
	"fmt"

	nxerror "github.com/msto63/netext/core/error"
)

// Module identifiers used in error details
const (
	ModuleStringx    = "stringx"
	ModuleObservable = "observable"
	ModuleConfig     = "config"
	ModuleCLI        = "cli"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  *nxerror.Severity
	code      nxerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:  module,
		details: make(map[string]interface{}),
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity overrides the severity derived from the code
func (eb *ErrorBuilder) Severity(severity nxerror.Severity) *ErrorBuilder {
	eb.severity = &severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code nxerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *nxerror.Error {
	if eb.code == "" {
		eb.code = nxerror.CodeOperationFailed
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module

	var err *nxerror.Error
	if eb.cause != nil {
		err = nxerror.Wrap(eb.cause, eb.message)
	} else {
		err = nxerror.New(eb.message)
	}

	err = err.WithCode(eb.code).WithDetails(eb.details)
	if eb.operation != "" {
		err = err.WithOperation(eb.operation)
	}
	if eb.severity != nil {
		err = err.WithSeverity(*eb.severity)
	}
	return err
}

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *nxerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s: expected %s", module, operation, expected).
		Code(nxerror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Build()
}

// InvalidFormat creates a standardized format error
func InvalidFormat(module, operation string, input interface{}, reason string) *nxerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid format in %s.%s: %s", module, operation, reason).
		Code(nxerror.CodeInvalidFormat).
		Detail("input", input).
		Detail("reason", reason).
		Build()
}

// OutOfRange creates a standardized out of range error. A nil bound is
// omitted from the details.
func OutOfRange(module, operation string, value, min, max interface{}) *nxerror.Error {
	b := NewErrorBuilder(module).
		Operation(operation).
		Messagef("value out of range in %s.%s: %v", module, operation, value).
		Code(nxerror.CodeValueOutOfRange).
		Detail("value", value)
	if min != nil {
		b.Detail("min", min)
	}
	if max != nil {
		b.Detail("max", max)
	}
	return b.Build()
}

// NotFound creates a standardized not found error
func NotFound(module, operation string, identifier interface{}) *nxerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("item not found in %s.%s: %v", module, operation, identifier).
		Code(nxerror.CodeNotFound).
		Detail("identifier", identifier).
		Build()
}

// OperationFailed creates a standardized operation failure error
func OperationFailed(module, operation string, cause error) *nxerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Cause(cause).
		Code(nxerror.CodeOperationFailed).
		Severity(nxerror.SeverityHigh).
		Build()
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	var e *nxerror.Error
	if errors.As(err, &e) {
		if module, ok := e.Details()["module"].(string); ok {
			return module
		}
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	var e *nxerror.Error
	if errors.As(err, &e) {
		return e.Operation()
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}

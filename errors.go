package jsonapi

import (
	"errors"
	"fmt"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidAttribute          = "invalid_attribute"
	CodeMissingAttribute          = "missing_attribute"
	CodeMissingResourceIdentifier = "missing_resource_identifier"
	CodeMissingInclude            = "missing_include"
)

// ResourceError classifies the failure of a single resource-entry decode
// attempt. Identifier is populated only for missing_include, where it names
// the relationship reference that resolved to nothing in the includes index.
type ResourceError struct {
	Code       string
	Key        string // Offending attribute or relationship key.
	Identifier *ResourceIdentifier
}

// Error renders as `<code> at "<key>"`, appending the unresolved identifier
// when one is recorded.
func (e *ResourceError) Error() string {
	if e.Identifier != nil {
		return fmt.Sprintf("%s at %q (unresolved %s/%s)", e.Code, e.Key, e.Identifier.Type, e.Identifier.ID)
	}
	return fmt.Sprintf("%s at %q", e.Code, e.Key)
}

// InvalidAttribute reports an attribute that is present but semantically
// invalid for its domain meaning. Reserved for variant-specific validation
// beyond shape checks.
func InvalidAttribute(key string) error {
	return &ResourceError{Code: CodeInvalidAttribute, Key: key}
}

// MissingAttribute reports an attribute that is absent or of the wrong
// underlying shape.
func MissingAttribute(key string) error {
	return &ResourceError{Code: CodeMissingAttribute, Key: key}
}

// MissingResourceIdentifier reports a required relationship with no
// identifier in the relationships map: the server never told us about the
// relation.
func MissingResourceIdentifier(key string) error {
	return &ResourceError{Code: CodeMissingResourceIdentifier, Key: key}
}

// MissingInclude reports a required relationship whose identifier resolved to
// no decoded resource of the expected type: the server told us about the
// relation but did not send the related object.
func MissingInclude(key string, ident ResourceIdentifier) error {
	return &ResourceError{Code: CodeMissingInclude, Key: key, Identifier: &ident}
}

// AsResourceError extracts a *ResourceError from err using errors.As internally.
func AsResourceError(err error) (*ResourceError, bool) {
	if err == nil {
		return nil, false
	}
	var re *ResourceError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

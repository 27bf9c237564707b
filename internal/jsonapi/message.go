package jsonapi

import (
	"fmt"
	"strings"
)

// Rule names a validation rule a document member can fail.
type Rule string

// Rules understood by RenderMessage.
const (
	RuleRequired Rule = "required"
	RuleIn       Rule = "in"
	RuleString   Rule = "string"
	RuleArray    Rule = "array"
)

// RenderMessage returns the human readable message for a failed rule.
// The pointer is shown as a dotted path: "/data/attributes/name" becomes
// "data.attributes.name".
func RenderMessage(pointer string, rule Rule) string {
	field := DottedPath(pointer)

	switch rule {
	case RuleRequired:
		return fmt.Sprintf("The %s field is required.", field)
	case RuleIn:
		return fmt.Sprintf("The selected %s is invalid.", field)
	case RuleString:
		return fmt.Sprintf("The %s must be a string.", field)
	case RuleArray:
		return fmt.Sprintf("The %s must be an array.", field)
	default:
		return fmt.Sprintf("The %s is invalid.", field)
	}
}

// DottedPath converts a document pointer into a dotted member path.
func DottedPath(pointer string) string {
	return strings.ReplaceAll(strings.TrimPrefix(pointer, "/"), "/", ".")
}

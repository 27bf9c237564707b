package api

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/authors-api/internal/jsonapi"
)

// AuthorResourceType is the JSON:API type of author resources.
const AuthorResourceType = "authors"

// Operation selects the rule set applied to an author document.
type Operation int

const (
	OperationCreate Operation = iota
	OperationUpdate
)

// Document member pointers checked by ValidateAuthorDocument, in evaluation order.
const (
	PointerType       = "/data/type"
	PointerID         = "/data/id"
	PointerAttributes = "/data/attributes"
	PointerName       = "/data/attributes/name"
)

var validate = validator.New()

// ValidateAuthorDocument checks a decoded request document and returns one
// error object per failing member. Members are checked independently in a
// fixed order (type, id on update, attributes, name); within a member only
// the first failing rule is reported. An empty result means the document is
// valid.
func ValidateAuthorDocument(doc map[string]any, op Operation) []jsonapi.ErrorObject {
	data, _ := doc["data"].(map[string]any)

	var errs []jsonapi.ErrorObject
	fail := func(pointer string, rule jsonapi.Rule) {
		errs = append(errs, jsonapi.NewValidationError(pointer, rule))
	}

	typ, present := data["type"]
	switch {
	case !present || isEmpty(typ):
		fail(PointerType, jsonapi.RuleRequired)
	case !isAuthorType(typ):
		fail(PointerType, jsonapi.RuleIn)
	}

	if op == OperationUpdate {
		id, present := data["id"]
		switch {
		case !present || isEmpty(id):
			fail(PointerID, jsonapi.RuleRequired)
		case !isString(id):
			fail(PointerID, jsonapi.RuleString)
		}
	}

	rawAttrs, present := data["attributes"]
	attrs, isObject := rawAttrs.(map[string]any)
	switch {
	case !present || isEmpty(rawAttrs):
		fail(PointerAttributes, jsonapi.RuleRequired)
	case !isObject:
		fail(PointerAttributes, jsonapi.RuleArray)
	}

	name, present := attrs["name"]
	switch {
	case !present || isEmpty(name):
		fail(PointerName, jsonapi.RuleRequired)
	case !isString(name):
		fail(PointerName, jsonapi.RuleString)
	}

	return errs
}

// isEmpty reports whether a decoded JSON value fails the "required" rule:
// null, a blank string or an empty list. Objects, numbers and booleans are
// always present.
func isEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return validate.Var(strings.TrimSpace(val), "required") != nil
	case []any:
		return validate.Var(val, "required,min=1") != nil
	default:
		return false
	}
}

func isAuthorType(v any) bool {
	s, ok := v.(string)
	return ok && validate.Var(s, "oneof="+AuthorResourceType) == nil
}

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

package api

import (
	"encoding/json"
	"testing"

	"github.com/phrazzld/authors-api/internal/jsonapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseDoc(t *testing.T, raw string) map[string]any {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return doc
}

type wantErr struct {
	pointer string
	details string
}

func collect(errs []jsonapi.ErrorObject) []wantErr {
	out := make([]wantErr, 0, len(errs))
	for _, e := range errs {
		out = append(out, wantErr{pointer: e.Source.Pointer, details: e.Details})
	}
	return out
}

var (
	typeRequired       = wantErr{PointerType, "The data.type field is required."}
	typeInvalid        = wantErr{PointerType, "The selected data.type is invalid."}
	idRequired         = wantErr{PointerID, "The data.id field is required."}
	idNotString        = wantErr{PointerID, "The data.id must be a string."}
	attributesRequired = wantErr{PointerAttributes, "The data.attributes field is required."}
	attributesNotArray = wantErr{PointerAttributes, "The data.attributes must be an array."}
	nameRequired       = wantErr{PointerName, "The data.attributes.name field is required."}
	nameNotString      = wantErr{PointerName, "The data.attributes.name must be a string."}
)

func TestValidateAuthorDocument_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want []wantErr
	}{
		{
			name: "valid",
			doc:  `{"data":{"type":"authors","attributes":{"name":"John Doe"}}}`,
			want: []wantErr{},
		},
		{
			name: "id is ignored on create",
			doc:  `{"data":{"type":"authors","id":5,"attributes":{"name":"John Doe"}}}`,
			want: []wantErr{},
		},
		{
			name: "empty document",
			doc:  `{}`,
			want: []wantErr{typeRequired, attributesRequired, nameRequired},
		},
		{
			name: "data is not an object",
			doc:  `{"data":"authors"}`,
			want: []wantErr{typeRequired, attributesRequired, nameRequired},
		},
		{
			name: "missing type",
			doc:  `{"data":{"attributes":{"name":"John Doe"}}}`,
			want: []wantErr{typeRequired},
		},
		{
			name: "null type",
			doc:  `{"data":{"type":null,"attributes":{"name":"John Doe"}}}`,
			want: []wantErr{typeRequired},
		},
		{
			name: "empty type",
			doc:  `{"data":{"type":"","attributes":{"name":"John Doe"}}}`,
			want: []wantErr{typeRequired},
		},
		{
			name: "wrong type",
			doc:  `{"data":{"type":"books","attributes":{"name":"John Doe"}}}`,
			want: []wantErr{typeInvalid},
		},
		{
			name: "non-string type",
			doc:  `{"data":{"type":42,"attributes":{"name":"John Doe"}}}`,
			want: []wantErr{typeInvalid},
		},
		{
			name: "type is case sensitive",
			doc:  `{"data":{"type":"Authors","attributes":{"name":"John Doe"}}}`,
			want: []wantErr{typeInvalid},
		},
		{
			name: "missing attributes",
			doc:  `{"data":{"type":"authors"}}`,
			want: []wantErr{attributesRequired, nameRequired},
		},
		{
			name: "empty attributes object",
			doc:  `{"data":{"type":"authors","attributes":{}}}`,
			want: []wantErr{nameRequired},
		},
		{
			name: "empty attributes list",
			doc:  `{"data":{"type":"authors","attributes":[]}}`,
			want: []wantErr{attributesRequired, nameRequired},
		},
		{
			name: "attributes not an object",
			doc:  `{"data":{"type":"authors","attributes":"John Doe"}}`,
			want: []wantErr{attributesNotArray, nameRequired},
		},
		{
			name: "blank name",
			doc:  `{"data":{"type":"authors","attributes":{"name":"   "}}}`,
			want: []wantErr{nameRequired},
		},
		{
			name: "null name",
			doc:  `{"data":{"type":"authors","attributes":{"name":null}}}`,
			want: []wantErr{nameRequired},
		},
		{
			name: "numeric name",
			doc:  `{"data":{"type":"authors","attributes":{"name":42}}}`,
			want: []wantErr{nameNotString},
		},
		{
			name: "object name",
			doc:  `{"data":{"type":"authors","attributes":{"name":{"first":"John"}}}}`,
			want: []wantErr{nameNotString},
		},
		{
			name: "every member wrong",
			doc:  `{"data":{"type":"books","attributes":"x"}}`,
			want: []wantErr{typeInvalid, attributesNotArray, nameRequired},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			errs := ValidateAuthorDocument(parseDoc(t, tt.doc), OperationCreate)
			assert.Equal(t, tt.want, collect(errs))
			for _, e := range errs {
				assert.Equal(t, jsonapi.ValidationErrorTitle, e.Title)
			}
		})
	}
}

func TestValidateAuthorDocument_Update(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want []wantErr
	}{
		{
			name: "valid",
			doc:  `{"data":{"type":"authors","id":"1","attributes":{"name":"Jane Doe"}}}`,
			want: []wantErr{},
		},
		{
			name: "missing id",
			doc:  `{"data":{"type":"authors","attributes":{"name":"Jane Doe"}}}`,
			want: []wantErr{idRequired},
		},
		{
			name: "empty id",
			doc:  `{"data":{"type":"authors","id":"","attributes":{"name":"Jane Doe"}}}`,
			want: []wantErr{idRequired},
		},
		{
			name: "numeric id",
			doc:  `{"data":{"type":"authors","id":1,"attributes":{"name":"Jane Doe"}}}`,
			want: []wantErr{idNotString},
		},
		{
			name: "empty document reports id between type and attributes",
			doc:  `{}`,
			want: []wantErr{typeRequired, idRequired, attributesRequired, nameRequired},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			errs := ValidateAuthorDocument(parseDoc(t, tt.doc), OperationUpdate)
			assert.Equal(t, tt.want, collect(errs))
		})
	}
}

package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDocument(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		want      map[string]any
		malformed bool
	}{
		{
			name: "object",
			body: `{"data":{"type":"authors"}}`,
			want: map[string]any{"data": map[string]any{"type": "authors"}},
		},
		{name: "trailing whitespace", body: "{}\n  ", want: map[string]any{}},
		{name: "array top level", body: `[1,2]`, want: map[string]any{}},
		{name: "null top level", body: `null`, want: map[string]any{}},
		{name: "empty body", body: ``, malformed: true},
		{name: "truncated", body: `{"data":`, malformed: true},
		{name: "not json", body: `name=Jane`, malformed: true},
		{name: "two documents", body: `{}{}`, malformed: true},
		{name: "trailing garbage", body: `{"data":{}}}`, malformed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodPost, "/authors", strings.NewReader(tt.body))
			doc, err := DecodeDocument(httptest.NewRecorder(), r)

			if tt.malformed {
				assert.ErrorIs(t, err, ErrMalformedDocument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, doc)
		})
	}
}

func TestDecodeDocumentTooLarge(t *testing.T) {
	t.Parallel()

	body := `{"data":"` + strings.Repeat("a", MaxBodyBytes) + `"}`
	r := httptest.NewRequest(http.MethodPost, "/authors", strings.NewReader(body))

	_, err := DecodeDocument(httptest.NewRecorder(), r)
	assert.ErrorIs(t, err, ErrMalformedDocument)
}

package api

import (
	"github.com/phrazzld/authors-api/internal/domain"
	"github.com/phrazzld/authors-api/internal/jsonapi"
)

// AuthorAttributes is the attributes member of a serialized author.
type AuthorAttributes struct {
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// AuthorResource serializes an author as a JSON:API resource object.
func AuthorResource(a *domain.Author) jsonapi.ResourceObject {
	return jsonapi.ResourceObject{
		ID:   a.StringID(),
		Type: AuthorResourceType,
		Attributes: AuthorAttributes{
			Name:      a.Name,
			CreatedAt: jsonapi.FormatTime(a.CreatedAt),
			UpdatedAt: jsonapi.FormatTime(a.UpdatedAt),
		},
	}
}

// AuthorCollection serializes authors in order. The result is never nil, so
// an empty collection renders as [].
func AuthorCollection(authors []*domain.Author) []jsonapi.ResourceObject {
	out := make([]jsonapi.ResourceObject, 0, len(authors))
	for _, a := range authors {
		out = append(out, AuthorResource(a))
	}
	return out
}

// Package fixtures builds randomized test data for the authors API: valid
// author attributes, stored authors, and users holding a personal access
// token. It is imported only by tests.
package fixtures

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/authors-api/internal/domain"
	"github.com/phrazzld/authors-api/internal/service/auth"
	"github.com/phrazzld/authors-api/internal/store"
	"github.com/stretchr/testify/require"
)

var (
	firstNames = []string{"Ada", "Chinua", "Clarice", "Gabriel", "Haruki", "Isabel", "Jorge", "Mary", "Toni", "Wisława"}
	lastNames  = []string{"Achebe", "Allende", "Borges", "Lispector", "Márquez", "Morrison", "Murakami", "Shelley", "Szymborska", "Woolf"}
)

// AuthorName returns a random plausible author name.
func AuthorName() string {
	return fmt.Sprintf("%s %s",
		firstNames[rand.IntN(len(firstNames))],
		lastNames[rand.IntN(len(lastNames))])
}

// AuthorAttributes returns valid attributes with a random name.
func AuthorAttributes() domain.AuthorAttributes {
	return domain.AuthorAttributes{Name: AuthorName()}
}

// CreateAuthors stores n random authors and returns them in creation order.
func CreateAuthors(ctx context.Context, t *testing.T, authors store.AuthorStore, n int) []*domain.Author {
	t.Helper()
	out := make([]*domain.Author, 0, n)
	for i := 0; i < n; i++ {
		a, err := authors.Create(ctx, AuthorAttributes())
		require.NoError(t, err, "failed to create fixture author")
		out = append(out, a)
	}
	return out
}

// Principal is a stored user with a personal access client and a token minted for it.
type Principal struct {
	User   *domain.User
	Client *domain.Client
	Token  string
}

// CreatePrincipal stores a random user and personal access client and mints a
// token for them.
func CreatePrincipal(
	ctx context.Context,
	t *testing.T,
	users store.UserStore,
	clients store.ClientStore,
	tokens auth.TokenService,
) *Principal {
	t.Helper()

	suffix := uuid.New().String()[:8]
	user, err := domain.NewUser(
		"Test User "+suffix,
		"user-"+suffix+"@example.com",
		"password",
	)
	require.NoError(t, err)
	require.NoError(t, users.Create(ctx, user), "failed to create fixture user")

	client, err := domain.NewPersonalAccessClient(user.ID, "Personal Access Client")
	require.NoError(t, err)
	require.NoError(t, clients.Create(ctx, client), "failed to create fixture client")

	token, err := tokens.IssuePersonalAccessToken(ctx, user, client, "Test Token")
	require.NoError(t, err, "failed to issue fixture token")

	return &Principal{User: user, Client: client, Token: token.AccessToken}
}

package devsetup

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/phrazzld/authors-api/internal/config"
	"github.com/phrazzld/authors-api/internal/domain"
	"github.com/phrazzld/authors-api/internal/platform/postgres"
	"github.com/phrazzld/authors-api/internal/service/auth"
	"github.com/phrazzld/authors-api/internal/store"
	"golang.org/x/oauth2"
)

// Names given to the records the bootstrap creates.
const (
	PersonalAccessClientName = "Personal Access Client"
	DevelopmentTokenName     = "Development Token"
)

// Reporter receives operator-facing progress messages. Line carries values
// meant to be copied verbatim, such as the issued token.
type Reporter interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Line(format string, args ...any)
}

// TxFunc receives user and client stores bound to a single unit of work.
type TxFunc func(users store.UserStore, clients store.ClientStore) error

// Bootstrapper performs the setup steps against abstract stores.
type Bootstrapper struct {
	Dev      config.DevConfig
	Reporter Reporter
	Log      *slog.Logger

	Migrate func(ctx context.Context) error
	Authors store.AuthorStore
	InTx    func(ctx context.Context, fn TxFunc) error
	Tokens  auth.TokenService
}

// NewPostgres builds a Bootstrapper that rebuilds the schema from scratch and
// creates the user and client in one transaction.
func NewPostgres(cfg *config.Config, db *sql.DB, reporter Reporter, log *slog.Logger) (*Bootstrapper, error) {
	users := postgres.NewPostgresUserStore(db, cfg.Auth.BCryptCost)
	clients := postgres.NewPostgresClientStore(db)

	tokens, err := auth.NewTokenService(cfg.Auth, clients)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}

	return &Bootstrapper{
		Dev:      cfg.Dev,
		Reporter: reporter,
		Log:      log,
		Migrate: func(ctx context.Context) error {
			return postgres.RunMigrations(ctx, db, postgres.MigrateFresh, log)
		},
		Authors: postgres.NewPostgresAuthorStore(db),
		InTx: func(ctx context.Context, fn TxFunc) error {
			return store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
				return fn(users.WithTx(tx), clients.WithTx(tx))
			})
		},
		Tokens: tokens,
	}, nil
}

// NewMemory builds a Bootstrapper over already constructed stores that have
// no schema and no transactions.
func NewMemory(
	dev config.DevConfig,
	authors store.AuthorStore,
	users store.UserStore,
	clients store.ClientStore,
	tokens auth.TokenService,
	reporter Reporter,
	log *slog.Logger,
) *Bootstrapper {
	return &Bootstrapper{
		Dev:      dev,
		Reporter: reporter,
		Log:      log,
		Migrate:  func(context.Context) error { return nil },
		Authors:  authors,
		InTx: func(_ context.Context, fn TxFunc) error {
			return fn(users, clients)
		},
		Tokens: tokens,
	}
}

// Run executes the bootstrap steps in order and stops at the first failure.
// It returns the issued development token.
func (b *Bootstrapper) Run(ctx context.Context) (*oauth2.Token, error) {
	b.Reporter.Info("Setting up development environment")

	if err := b.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := SeedAuthors(ctx, b.Authors, b.Dev.SeedAuthors); err != nil {
		return nil, err
	}
	b.Log.Info("Seeded authors", slog.Int("count", b.Dev.SeedAuthors))

	var (
		user   *domain.User
		client *domain.Client
	)
	err := b.InTx(ctx, func(users store.UserStore, clients store.ClientStore) error {
		u, err := domain.NewUser(b.Dev.UserName, b.Dev.UserEmail, b.Dev.UserPassword)
		if err != nil {
			return fmt.Errorf("invalid development user: %w", err)
		}
		if err := users.Create(ctx, u); err != nil {
			return fmt.Errorf("failed to create development user: %w", err)
		}

		c, err := domain.NewPersonalAccessClient(u.ID, PersonalAccessClientName)
		if err != nil {
			return fmt.Errorf("invalid personal access client: %w", err)
		}
		if err := clients.Create(ctx, c); err != nil {
			return fmt.Errorf("failed to create personal access client: %w", err)
		}

		user, client = u, c
		return nil
	})
	if err != nil {
		return nil, err
	}

	b.Reporter.Info("%s created", user.Name)
	b.Reporter.Warn("Email: %s", user.Email)
	b.Reporter.Warn("Password: %s", b.Dev.UserPassword)

	token, err := b.Tokens.IssuePersonalAccessToken(ctx, user, client, DevelopmentTokenName)
	if err != nil {
		return nil, fmt.Errorf("failed to issue personal access token: %w", err)
	}

	b.Reporter.Info("Personal access token created successfully.")
	b.Reporter.Warn("Personal access token:")
	b.Reporter.Line("%s", token.AccessToken)

	b.Reporter.Info("All done. Bye!")
	return token, nil
}

var (
	sampleFirstNames = []string{
		"Ada", "Chinua", "Clarice", "Gabriel", "Haruki", "Isabel",
		"Jorge", "Margaret", "Octavia", "Orhan", "Toni", "Virginia",
	}
	sampleLastNames = []string{
		"Achebe", "Allende", "Atwood", "Borges", "Butler", "Lispector",
		"Márquez", "Morrison", "Murakami", "Pamuk", "Woolf", "Lovelace",
	}
)

// SeedAuthors stores n authors with random sample names.
func SeedAuthors(ctx context.Context, authors store.AuthorStore, n int) error {
	for i := 0; i < n; i++ {
		name := sampleFirstNames[rand.IntN(len(sampleFirstNames))] + " " +
			sampleLastNames[rand.IntN(len(sampleLastNames))]
		if _, err := authors.Create(ctx, domain.AuthorAttributes{Name: name}); err != nil {
			return fmt.Errorf("failed to seed author %d of %d: %w", i+1, n, err)
		}
	}
	return nil
}

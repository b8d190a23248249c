package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tadelakiran/Book-Library-Management/internal/lending"
	"github.com/tadelakiran/Book-Library-Management/internal/repository"
	"github.com/tadelakiran/Book-Library-Management/internal/store"
	"github.com/tadelakiran/Book-Library-Management/internal/utils"
)

func TestEnsurePopulatesEmptyStore(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	require.NoError(t, Ensure(ctx, s, bcrypt.MinCost))

	books := repository.NewBookRepo(s)
	categories := repository.NewCategoryRepo(s, books)
	users := repository.NewUserRepo(s)
	records := repository.NewBorrowRepo(s)

	cats, err := categories.All(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, 5)

	bs, err := books.All(ctx)
	require.NoError(t, err)
	require.Len(t, bs, 6)
	for _, b := range bs {
		assert.NotEmpty(t, b.CategoryID, "book %q must reference a seeded category", b.Title)
	}

	us, err := users.All(ctx)
	require.NoError(t, err)
	require.Len(t, us, 3)
	admin, err := users.GetByEmail(ctx, "admin@library.com")
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Role)
	assert.True(t, utils.VerifyPassword(admin.PasswordHash, DemoPassword))

	rs, err := records.All(ctx)
	require.NoError(t, err)
	require.Len(t, rs, 2)

	engine := lending.NewEngine(books, categories, users, records)
	stats, err := engine.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 40, stats.TotalBooks)
	assert.Equal(t, 25, stats.AvailableBooks)
	assert.Equal(t, 2, stats.TotalBorrowedBooks)
	assert.Equal(t, 1, stats.OverdueBooks)

	overdue, err := engine.OverdueRecords(ctx)
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, 1, overdue[0].RenewalCount)
}

func TestEnsureIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	require.NoError(t, Ensure(ctx, s, bcrypt.MinCost))

	books := repository.NewBookRepo(s)
	bs, err := books.All(ctx)
	require.NoError(t, err)
	bs[0].Title = "Renamed After Seeding"
	require.NoError(t, books.ReplaceAll(ctx, bs))

	// A second run must leave existing collections untouched.
	require.NoError(t, Ensure(ctx, s, bcrypt.MinCost))
	again, err := books.All(ctx)
	require.NoError(t, err)
	require.Len(t, again, 6)
	assert.Equal(t, "Renamed After Seeding", again[0].Title)
}

func TestEnsureSeedsOnlyAbsentCollections(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()

	// Pre-write an empty users collection; Ensure must leave it alone
	// while still seeding the other keys.
	require.NoError(t, s.Write(ctx, store.KeyUsers, []byte(`[]`)))
	require.NoError(t, Ensure(ctx, s, bcrypt.MinCost))

	us, err := repository.NewUserRepo(s).All(ctx)
	require.NoError(t, err)
	assert.Empty(t, us)

	bs, err := repository.NewBookRepo(s).All(ctx)
	require.NoError(t, err)
	assert.Len(t, bs, 6)

	// Records referencing the absent users resolve to empty IDs but the
	// fixture is still written.
	rs, err := repository.NewBorrowRepo(s).All(ctx)
	require.NoError(t, err)
	require.Len(t, rs, 2)
	assert.Empty(t, rs[0].UserID)
	assert.NotEmpty(t, rs[0].BookID)
}

package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialgraph/internal/domain"
)

func TestCollection_InsertionOrder(t *testing.T) {
	c := NewCollection[int](func(v string) string { return v })

	require.NoError(t, c.Insert(3, "three"))
	require.NoError(t, c.Insert(1, "one"))
	require.NoError(t, c.Insert(2, "two"))

	assert.Equal(t, []string{"three", "one", "two"}, c.List())

	_, ok := c.Delete(1)
	require.True(t, ok)
	assert.Equal(t, []string{"three", "two"}, c.List())
}

func TestCollection_DuplicateKey(t *testing.T) {
	c := NewCollection[int](func(v string) string { return v })

	require.NoError(t, c.Insert(1, "one"))
	assert.ErrorIs(t, c.Insert(1, "uno"), ErrDuplicateID)
}

func TestCollection_SelectAndFirst(t *testing.T) {
	c := NewCollection[int](func(v int) int { return v })
	for i := 1; i <= 5; i++ {
		require.NoError(t, c.Insert(i, i*10))
	}

	even := c.Select(func(v int) bool { return v%20 == 0 })
	assert.Equal(t, []int{20, 40}, even)

	first, ok := c.First(func(v int) bool { return v > 25 })
	require.True(t, ok)
	assert.Equal(t, 30, first)

	_, ok = c.First(func(v int) bool { return v > 100 })
	assert.False(t, ok)
}

func TestCollection_ReplaceMissing(t *testing.T) {
	c := NewCollection[int](func(v string) string { return v })
	assert.False(t, c.Replace(9, "nine"))

	_, ok := c.Delete(9)
	assert.False(t, ok)
}

func TestUserRepo_CopiesAreIsolated(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo()

	target := uuid.New()
	u := &domain.User{
		ID:                  uuid.New(),
		FirstName:           "Ada",
		SubscribedToUserIDs: []uuid.UUID{target},
	}
	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	// Mutating the returned record must not leak into the store.
	got.FirstName = "Mutated"
	got.SubscribedToUserIDs[0] = uuid.New()

	again, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", again.FirstName)
	assert.Equal(t, target, again.SubscribedToUserIDs[0])
}

func TestUserRepo_ListSubscribedTo(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo()

	target := uuid.New()
	follower := &domain.User{ID: uuid.New(), SubscribedToUserIDs: []uuid.UUID{target}}
	bystander := &domain.User{ID: uuid.New(), SubscribedToUserIDs: []uuid.UUID{}}
	require.NoError(t, repo.Create(ctx, follower))
	require.NoError(t, repo.Create(ctx, bystander))

	subs, err := repo.ListSubscribedTo(ctx, target)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, follower.ID, subs[0].ID)
}

package adapters

import (
	"testing"

	"github.com/143WaysToLooseUrSelf/eventdesign/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestMapStoreEventRowToDomainEvent(t *testing.T) {
	e := MapStoreEventRowToDomainEvent(store.EventRow{
		ID:          5,
		Name:        "Tech Summit",
		CategoryID:  int64Ptr(2),
		Category:    strPtr("Conferences"),
		Location:    "Main hall",
		Date:        strPtr("2024-06-01"),
		Description: "Annual summit",
		Favorite:    true,
	})

	assert.Equal(t, int64(5), e.ID)
	require.NotNil(t, e.CategoryID)
	assert.Equal(t, int64(2), *e.CategoryID)
	assert.Equal(t, "Conferences", e.Category)
	require.NotNil(t, e.Date)
	assert.Equal(t, "2024-06-01", e.Date.Format(dateLayout))
	assert.True(t, e.Favorite)
}

func TestMapStoreEventRowToDomainEvent_Nulls(t *testing.T) {
	e := MapStoreEventRowToDomainEvent(store.EventRow{ID: 1, Name: "Meetup"})

	assert.Nil(t, e.CategoryID)
	assert.Empty(t, e.Category)
	assert.Nil(t, e.Date)
}

func TestMapStoreCategoryRowToDomainCategory(t *testing.T) {
	c := MapStoreCategoryRowToDomainCategory(store.CategoryRow{
		ID:          3,
		Name:        "Workshops",
		Description: strPtr("Hands-on sessions"),
	})
	assert.Equal(t, "Workshops", c.Name)
	assert.Equal(t, "Hands-on sessions", c.Description)

	bare := MapStoreCategoryRowToDomainCategory(store.CategoryRow{ID: 4, Name: "Misc"})
	assert.Empty(t, bare.Description)
}

func TestMapStoreUserRowToDomainUser(t *testing.T) {
	u := MapStoreUserRowToDomainUser(store.UserRow{
		ID:    1,
		Name:  "alice",
		Login: "alice",
		Email: "alice@example.com",
	})
	assert.Equal(t, "alice", u.Name)
	assert.Equal(t, "alice@example.com", u.Email)
}

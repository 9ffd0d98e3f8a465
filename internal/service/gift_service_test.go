package service_test

import (
	"context"
	"testing"

	"github.com/CHARUMATHIBALA/giftshop-backend/internal/domain"
	"github.com/CHARUMATHIBALA/giftshop-backend/internal/repository/postgres"
	"github.com/CHARUMATHIBALA/giftshop-backend/internal/service"
	"github.com/CHARUMATHIBALA/giftshop-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGiftService_CreateAndList(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	giftService := service.NewGiftService(repos.Gift)
	ctx := context.Background()

	alice, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	bob, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	created, err := giftService.Create(ctx, alice.ID, service.GiftInput{
		Title:       "wool scarf",
		Description: "hand knitted",
		Price:       24.99,
		Category:    "clothing",
		Image:       "https://example.com/scarf.jpg",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, alice.ID, created.OwnerID)

	// Round-trip: the listing contains the created record verbatim.
	gifts, err := giftService.List(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, gifts, 1)
	assert.Equal(t, created.ID, gifts[0].ID)
	assert.Equal(t, "wool scarf", gifts[0].Title)
	assert.Equal(t, 24.99, gifts[0].Price)

	// Bob never sees Alice's gifts.
	bobGifts, err := giftService.List(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobGifts)
}

func TestGiftService_UpdateOwnershipScoped(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	giftService := service.NewGiftService(repos.Gift)
	ctx := context.Background()

	alice, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	bob, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	gift := testutil.NewGiftBuilder().WithOwner(alice).WithPrice(10).Build(t, testDB.DB)

	input := service.GiftInput{Title: "renamed", Price: 12}

	_, err := giftService.Update(ctx, bob.ID, gift.ID, input)
	assert.ErrorIs(t, err, domain.ErrGiftNotFound)

	updated, err := giftService.Update(ctx, alice.ID, gift.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, float64(12), updated.Price)
	// Update is a full replace of the mutable fields.
	assert.Empty(t, updated.Description)
	assert.Equal(t, alice.ID, updated.OwnerID)
}

func TestGiftService_DeleteOwnershipScoped(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	giftService := service.NewGiftService(repos.Gift)
	ctx := context.Background()

	alice, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	bob, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	gift := testutil.NewGiftBuilder().WithOwner(alice).Build(t, testDB.DB)

	assert.ErrorIs(t, giftService.Delete(ctx, bob.ID, gift.ID), domain.ErrGiftNotFound)
	require.NoError(t, giftService.Delete(ctx, alice.ID, gift.ID))
	assert.ErrorIs(t, giftService.Delete(ctx, alice.ID, gift.ID), domain.ErrGiftNotFound)
}

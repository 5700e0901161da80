package identity

import (
	"testing"
	"time"

	"sommelier/config"
	"sommelier/internal/domain/constants"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Defaults(t *testing.T) {
	gen, err := NewGenerator(&config.Config{})
	require.NoError(t, err)

	drinkID := uuid.New()
	assert.Equal(t, gen.ReviewID("alice", drinkID), gen.ReviewID("alice", drinkID))
	assert.NotEqual(t, gen.ReviewID("alice", drinkID), gen.ReviewID("bob", drinkID))
	assert.Equal(t, gen.WishID("alice", drinkID), gen.WishID("alice", drinkID))

	now := time.Now()
	assert.NotEqual(t, gen.DrinkID("Cass", now), gen.DrinkID("Cass", now))
}

func TestGenerator_DerivedMatchesUUIDv5(t *testing.T) {
	gen, err := NewGenerator(&config.Config{Identity: &config.IdentityConfig{Drink: constants.IDModeDerived}})
	require.NoError(t, err)

	drinkID := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	want := uuid.NewSHA1(uuid.NameSpaceDNS, []byte("alice"+drinkID.String()))
	got := gen.ReviewID("alice", drinkID)

	assert.Equal(t, want, got)
	assert.Equal(t, uuid.Version(5), got.Version())

	createdAt := time.Unix(0, 1700000000000000000)
	assert.Equal(t, gen.DrinkID("Cass", createdAt), gen.DrinkID("Cass", createdAt))
	assert.NotEqual(t, gen.DrinkID("Cass", createdAt), gen.DrinkID("Cass", createdAt.Add(time.Nanosecond)))
}

func TestGenerator_RandomMode(t *testing.T) {
	gen, err := NewGenerator(&config.Config{Identity: &config.IdentityConfig{Review: constants.IDModeRandom, Wish: constants.IDModeRandom}})
	require.NoError(t, err)

	drinkID := uuid.New()
	assert.NotEqual(t, gen.ReviewID("alice", drinkID), gen.ReviewID("alice", drinkID))
	assert.Equal(t, uuid.Version(4), gen.WishID("alice", drinkID).Version())
}

func TestGenerator_UnknownMode(t *testing.T) {
	_, err := NewGenerator(&config.Config{Identity: &config.IdentityConfig{Wish: "sequential"}})
	assert.Error(t, err)
}

// internal/session/redis_test.go
package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edilia-assistant/internal/models"
)

func newMiniredisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, ttl), mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store, _ := newMiniredisStore(t, time.Hour)
	ctx := context.Background()

	err := store.Put(ctx, "c1", &State{
		Intent: models.IntentBusinessPlan,
		Slots: models.SlotMap{
			"businessType": models.EnumValue("ristorazione"),
			"budget":       models.MoneyValue(200_000),
		},
	})
	require.NoError(t, err)

	state, err := store.Get(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, models.IntentBusinessPlan, state.Intent)
	assert.Equal(t, "ristorazione", state.Slots.Get("businessType").Text)
	assert.Equal(t, 200_000.0, state.Slots.Get("budget").Money)
}

func TestRedisStoreMissReturnsNil(t *testing.T) {
	store, _ := newMiniredisStore(t, time.Hour)

	state, err := store.Get(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestRedisStoreDelete(t *testing.T) {
	store, _ := newMiniredisStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "c1", &State{Intent: models.IntentDesign, Slots: models.SlotMap{}}))
	require.NoError(t, store.Delete(ctx, "c1"))

	state, err := store.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestRedisStoreTTLExpiry(t *testing.T) {
	store, mr := newMiniredisStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "c1", &State{Intent: models.IntentDesign, Slots: models.SlotMap{}}))
	mr.FastForward(2 * time.Minute)

	state, err := store.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestRedisStoreGetFailureWrapsError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectGet(keyPrefix + "c1").SetErr(assert.AnError)

	store := NewRedisStore(client, time.Hour)
	state, err := store.Get(context.Background(), "c1")

	assert.Nil(t, state)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_STORE_FAILED")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStoreCorruptPayload(t *testing.T) {
	store, mr := newMiniredisStore(t, time.Hour)
	require.NoError(t, mr.Set(keyPrefix+"c1", "not-json"))

	state, err := store.Get(context.Background(), "c1")
	assert.Nil(t, state)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_DECODE_FAILED")
}

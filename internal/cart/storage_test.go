package cart

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopsbuzz/shopsbuzz-backend/pkg/config"
)

type fakeKV struct {
	data     map[string]string
	setCalls []struct {
		key string
		ttl time.Duration
	}
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string]string)}
}

func (f *fakeKV) Get(ctx context.Context, key string) (string, error) {
	v, ok := f.data[key]
	if !ok {
		return "", goredis.Nil
	}
	return v, nil
}

func (f *fakeKV) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	f.data[key] = value.(string)
	f.setCalls = append(f.setCalls, struct {
		key string
		ttl time.Duration
	}{key, ttl})
	return nil
}

func (f *fakeKV) CartKey(sessionID string) string {
	return "sbz:cart:" + sessionID
}

func (f *fakeKV) LoginStateKey(sessionID string) string {
	return "sbz:auth:" + sessionID
}

func TestRedisStorageCartRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	storage := &redisStorage{client: kv, cartTTL: time.Hour}

	items := []LineItem{
		{ProductID: 101, Name: "Floral Summer Dress", Category: "women", Price: price("49.99"), Quantity: 2},
		{ProductID: 102, Name: "Premium Cotton Tee", Category: "men", Price: price("24.99"), Quantity: 1},
	}
	require.NoError(t, storage.SaveCart(ctx, "s1", items))

	restored, found, err := storage.LoadCart(ctx, "s1")
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, restored, 2)
	assert.Equal(t, 101, restored[0].ProductID)
	assert.Equal(t, 2, restored[0].Quantity)
	assert.True(t, restored[0].Price.Equal(price("49.99")))
	assert.Equal(t, 102, restored[1].ProductID)

	require.Len(t, kv.setCalls, 1)
	assert.Equal(t, "sbz:cart:s1", kv.setCalls[0].key)
	assert.Equal(t, time.Hour, kv.setCalls[0].ttl)
}

func TestRedisStorageMissingRecords(t *testing.T) {
	ctx := context.Background()
	storage := &redisStorage{client: newFakeKV()}

	_, found, err := storage.LoadCart(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = storage.LoadLoginState(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisStorageCorruptCartTreatedAsMissing(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	kv.data["sbz:cart:s1"] = "{not json"
	storage := &redisStorage{client: kv}

	_, found, err := storage.LoadCart(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisStorageLoginFlagRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	storage := &redisStorage{client: kv}

	require.NoError(t, storage.SaveLoginState(ctx, "s1", true))
	loggedIn, found, err := storage.LoadLoginState(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, loggedIn)

	require.NoError(t, storage.SaveLoginState(ctx, "s1", false))
	loggedIn, found, err = storage.LoadLoginState(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.False(t, loggedIn)

	// Records are independent: login exists, cart does not.
	_, cartFound, err := storage.LoadCart(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, cartFound)
}

func TestNewRedisStorageRequiresClient(t *testing.T) {
	_, err := NewRedisStorage(nil, config.CartConfig{})
	require.Error(t, err)
}

package pubcache

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	srv := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: srv.Addr()}), srv
}

func TestKeyShape(t *testing.T) {
	assert.Equal(t, "pub:/api/public/menus", Key("pub", "/api/public/menus", ""))
	assert.Equal(t, "pub:/api/public/menus?category=2", Key("pub", "/api/public/menus", "category=2"))
}

func TestRevalidatePurgesRouteVariants(t *testing.T) {
	rdb, srv := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, rdb.Set(ctx, Key("pub", RouteMenus, ""), "cached", 0).Err())
	require.NoError(t, rdb.Set(ctx, Key("pub", RouteMenus, "category=2"), "cached", 0).Err())
	require.NoError(t, rdb.Set(ctx, Key("pub", RouteStores, ""), "cached", 0).Err())

	NewRevalidator(rdb, "pub").Revalidate(ctx, RouteMenus)

	assert.False(t, srv.Exists(Key("pub", RouteMenus, "")))
	assert.False(t, srv.Exists(Key("pub", RouteMenus, "category=2")))
	assert.True(t, srv.Exists(Key("pub", RouteStores, "")))
}

func TestRevalidateSwallowsScanErrors(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectScan(0, "pub:"+RouteMenus+"*", 100).SetErr(errors.New("connection refused"))

	assert.NotPanics(t, func() {
		NewRevalidator(rdb, "pub").Revalidate(context.Background(), RouteMenus)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevalidateDeletesScannedKeys(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	key := Key("pub", RouteEvents, "")
	mock.ExpectScan(0, "pub:"+RouteEvents+"*", 100).SetVal([]string{key}, 0)
	mock.ExpectDel(key).SetVal(1)

	NewRevalidator(rdb, "pub").Revalidate(context.Background(), RouteEvents)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevalidateNilClientIsNoOp(t *testing.T) {
	var r *Revalidator
	assert.NotPanics(t, func() { r.Revalidate(context.Background(), RouteMenus) })
	assert.NotPanics(t, func() { NewRevalidator(nil, "pub").Revalidate(context.Background(), RouteMenus) })
}

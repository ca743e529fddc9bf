package cache_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"cinepass/pkg/cache"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestGet_Hit(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	svc := cache.NewService(db)

	payload, _ := json.Marshal([]string{"A1", "B2"})
	mockRedis.ExpectGet("cinepass:showtimes:booked:st-1").SetVal(string(payload))

	var seats []string
	err := svc.Get(context.Background(), "cinepass:showtimes:booked:st-1", &seats)

	assert.NoError(t, err)
	assert.Equal(t, []string{"A1", "B2"}, seats)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestGet_MissReturnsErrCacheMiss(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	svc := cache.NewService(db)

	mockRedis.ExpectGet("missing-key").RedisNil()

	var dest string
	err := svc.Get(context.Background(), "missing-key", &dest)

	assert.ErrorIs(t, err, cache.ErrCacheMiss)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestSet_MarshalsValue(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	svc := cache.NewService(db)

	payload, _ := json.Marshal(map[string]int{"rows": 10})
	mockRedis.ExpectSet("layout-key", payload, time.Minute).SetVal("OK")

	err := svc.Set(context.Background(), "layout-key", map[string]int{"rows": 10}, time.Minute)

	assert.NoError(t, err)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestGetOrSet_MissCallsFetcher(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	svc := cache.NewService(db)

	mockRedis.ExpectGet("booked-key").RedisNil()
	// The async write-back is fire and forget; the mock may or may not see
	// it before the test ends, so it is not asserted here.
	payload, _ := json.Marshal([]string{"C3"})
	mockRedis.ExpectSet("booked-key", payload, 30*time.Second).SetVal("OK")

	fetched := false
	var seats []string
	err := svc.GetOrSet(context.Background(), "booked-key", 30*time.Second, func() (interface{}, error) {
		fetched = true
		return []string{"C3"}, nil
	}, &seats)

	assert.NoError(t, err)
	assert.True(t, fetched)
	assert.Equal(t, []string{"C3"}, seats)
}

func TestGetOrSet_HitSkipsFetcher(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	svc := cache.NewService(db)

	payload, _ := json.Marshal([]string{"A1"})
	mockRedis.ExpectGet("booked-key").SetVal(string(payload))

	var seats []string
	err := svc.GetOrSet(context.Background(), "booked-key", 30*time.Second, func() (interface{}, error) {
		t.Fatal("fetcher must not run on a cache hit")
		return nil, nil
	}, &seats)

	assert.NoError(t, err)
	assert.Equal(t, []string{"A1"}, seats)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestGetOrSet_FetcherErrorPropagates(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	svc := cache.NewService(db)

	mockRedis.ExpectGet("booked-key").RedisNil()

	var seats []string
	err := svc.GetOrSet(context.Background(), "booked-key", 30*time.Second, func() (interface{}, error) {
		return nil, errors.New("database down")
	}, &seats)

	assert.Error(t, err)
	assert.Empty(t, seats)
}

func TestDelete(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	svc := cache.NewService(db)

	mockRedis.ExpectDel("stale-key").SetVal(1)

	assert.NoError(t, svc.Delete(context.Background(), "stale-key"))
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestDeletePattern(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	svc := cache.NewService(db)

	mockRedis.ExpectKeys("cinepass:movies:list:*").SetVal([]string{
		"cinepass:movies:list:all",
		"cinepass:movies:list:drama",
	})
	mockRedis.ExpectDel("cinepass:movies:list:all", "cinepass:movies:list:drama").SetVal(2)

	assert.NoError(t, svc.DeletePattern(context.Background(), "cinepass:movies:list:*"))
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

package holidays

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
	"github.com/m04kA/SMC-StudioSchedule/pkg/logger"
)

var week = domain.WeekRange(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC))

type fakeRedis struct {
	data  map[string]string
	gets  int
	fails bool
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	f.gets++
	if f.fails {
		return redis.NewStringResult("", errors.New("connection refused"))
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	if f.fails {
		return redis.NewStatusResult("", errors.New("connection refused"))
	}
	f.data[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

type countingProvider struct {
	holidays []domain.Holiday
	err      error
	calls    int
}

func (p *countingProvider) GetHolidays(_ context.Context, _ domain.DateRange) ([]domain.Holiday, error) {
	p.calls++
	return p.holidays, p.err
}

func TestClient_GetHolidays(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/holidays", r.URL.Path)
		assert.Equal(t, "2025-06-02", r.URL.Query().Get("from"))
		assert.Equal(t, "2025-06-08", r.URL.Query().Get("to"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"date":"2025-06-05","scope":"national","name":"Corpus Christi"},
			{"date":"not-a-date","scope":"national","name":"broken"},
			{"date":"2025-06-06","scope":"state","name":"unknown scope"},
			{"date":"2025-07-01","scope":"custom","name":"outside"}
		]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, logger.NewNop())
	got, err := c.GetHolidays(context.Background(), week)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Corpus Christi", got[0].Name)
	assert.Equal(t, domain.HolidayNational, got[0].Scope)
}

func TestClient_GetHolidays_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, logger.NewNop())
	_, err := c.GetHolidays(context.Background(), week)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestCache_HitAfterMiss(t *testing.T) {
	next := &countingProvider{holidays: []domain.Holiday{
		{Date: time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), Scope: domain.HolidayNational, Name: "Corpus Christi"},
	}}
	rdb := &fakeRedis{data: map[string]string{}}
	cache := NewCache(next, rdb, time.Hour, logger.NewNop())

	first, err := cache.GetHolidays(context.Background(), week)
	require.NoError(t, err)
	second, err := cache.GetHolidays(context.Background(), week)
	require.NoError(t, err)

	assert.Equal(t, 1, next.calls)
	assert.Equal(t, first, second)
}

func TestCache_RedisDownFallsThrough(t *testing.T) {
	next := &countingProvider{}
	cache := NewCache(next, &fakeRedis{fails: true}, time.Hour, logger.NewNop())

	_, err := cache.GetHolidays(context.Background(), week)
	require.NoError(t, err)
	_, err = cache.GetHolidays(context.Background(), week)
	require.NoError(t, err)
	assert.Equal(t, 2, next.calls)
}

func TestComposite_MergesAndDegrades(t *testing.T) {
	day := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	static := NewStatic([]domain.Holiday{
		{Date: day, Scope: domain.HolidayCustom, Name: "Studio"},
		{Date: day.AddDate(0, 1, 0), Scope: domain.HolidayCustom, Name: "outside"},
	})
	remote := &countingProvider{err: ErrInternal}
	national := &countingProvider{holidays: []domain.Holiday{
		{Date: day, Scope: domain.HolidayNational, Name: "Corpus Christi"},
		{Date: day.AddDate(0, 0, 1), Scope: domain.HolidayMunicipal, Name: "City"},
	}}

	got, err := NewComposite(logger.NewNop(), static, remote, national).GetHolidays(context.Background(), week)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Studio", got[0].Name)
	assert.Equal(t, "City", got[1].Name)
}

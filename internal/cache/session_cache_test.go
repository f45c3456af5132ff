package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"videosurvey/internal/model"
)

func sampleSession() *model.Session {
	cfg := model.DefaultConfiguration()
	s := &model.Session{
		ID:       "abc",
		UserName: "Taro",
		Step:     model.SurveyStep(2),
		Config:   &cfg,
		Draft:    []string{"満足", ""},
	}
	s.Answers.Set(1, []string{"満足", "不満"})
	return s
}

func TestRedisSessionCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	c := NewSessionCache(client, time.Minute)
	ctx := context.Background()

	got, err := c.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, c.Set(ctx, sampleSession()))
	got, err = c.Get(ctx, "abc")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "survey2", got.Step.String())
	assert.Equal(t, "Taro", got.UserName)
	assert.Equal(t, sampleSession().Answers, got.Answers)
	assert.Equal(t, 3, got.VideoCount())

	mr.FastForward(2 * time.Minute)
	got, err = c.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisSessionCacheDelete(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	c := NewSessionCache(client, time.Minute)
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, sampleSession()))
	require.NoError(t, c.Delete(ctx, "abc"))

	got, err := c.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemorySessionCache(t *testing.T) {
	c := NewMemorySessionCache(time.Minute).(*memorySessionCache)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, sampleSession()))
	got, err := c.Get(ctx, "abc")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "survey2", got.Step.String())

	// stored sessions are copies
	got.UserName = "changed"
	again, _ := c.Get(ctx, "abc")
	assert.Equal(t, "Taro", again.UserName)

	now = now.Add(time.Minute)
	got, err = c.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, got)
}

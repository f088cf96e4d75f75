package adapters

import (
	"context"
	"testing"
	"time"

	"consignment-tracker/internal/core/cache"
	"consignment-tracker/internal/features/advisories/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*RedisAdvisoryRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	c, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	return NewRedisAdvisoryRepository(c), mr
}

func TestRedisAdvisoryRepository_SaveGet(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	advisory, err := domain.NewAdvisory("Monsoon delays", "Coastal routes affected", domain.AdvisorySeverityWarning, "Chattogram", 0)
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, advisory))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, advisory.Title, got.Title)
	assert.Equal(t, advisory.Severity, got.Severity)
	assert.Equal(t, advisory.Region, got.Region)
}

func TestRedisAdvisoryRepository_GetMissing(t *testing.T) {
	repo, _ := newTestRepository(t)

	got, err := repo.Get(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisAdvisoryRepository_Delete(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	advisory, err := domain.NewAdvisory("Temporary", "", domain.AdvisorySeverityInfo, "", 0)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, advisory))

	require.NoError(t, repo.Delete(ctx))

	got, err := repo.Get(ctx)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisAdvisoryRepository_DurationExpires(t *testing.T) {
	repo, mr := newTestRepository(t)
	ctx := context.Background()

	advisory, err := domain.NewAdvisory("Short lived", "", domain.AdvisorySeverityInfo, "", 1)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, advisory))

	mr.FastForward(2 * time.Second)

	got, err := repo.Get(ctx)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

package database

import (
	"context"
	"testing"

	"zyberian-site/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedAdmin_Idempotent(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	created, err := SeedAdmin(ctx, s, "admin", "admin123", logger.Nop())
	require.NoError(t, err)
	assert.True(t, created)

	created, err = SeedAdmin(ctx, s, "admin", "different", logger.Nop())
	require.NoError(t, err)
	assert.False(t, created)

	u, err := s.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", u.Password)
}

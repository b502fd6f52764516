package storage_test

import (
	"context"
	"testing"

	"career-platform-backend/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Should stay disabled without credentials", func(t *testing.T) {
		store, err := storage.New(ctx, storage.Config{Enabled: true})
		require.NoError(t, err)
		assert.False(t, store.IsConfigured())
	})

	t.Run("Should stay disabled when not enabled", func(t *testing.T) {
		store, err := storage.New(ctx, storage.Config{
			Enabled:         false,
			AccessKeyID:     "key",
			SecretAccessKey: "secret",
			Bucket:          "resumes",
		})
		require.NoError(t, err)
		assert.False(t, store.IsConfigured())
	})

	t.Run("Should ignore writes and pings while disabled", func(t *testing.T) {
		store, err := storage.New(ctx, storage.Config{})
		require.NoError(t, err)

		assert.NoError(t, store.Put(ctx, "resumes/1/a.pdf", []byte("%PDF"), "application/pdf"))
		assert.NoError(t, store.Ping(ctx))
	})
}

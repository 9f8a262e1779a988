package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionContext(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		want := Session{Username: "abena", IsAdmin: true}
		ctx := NewContext(context.Background(), want)

		got, ok := FromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	})

	t.Run("absent session", func(t *testing.T) {
		got, ok := FromContext(context.Background())
		assert.False(t, ok)
		assert.Zero(t, got)
	})
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"usb hub", "usb hub"},
		{"100%", `100\%`},
		{"snake_case", `snake\_case`},
		{`back\slash`, `back\\slash`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, escapeLike(tt.in), tt.in)
	}
}

func TestQueryCtx(t *testing.T) {
	t.Run("no timeout", func(t *testing.T) {
		ctx, cancel := queryCtx(context.Background(), 0)
		defer cancel()
		_, ok := ctx.Deadline()
		assert.False(t, ok)
	})

	t.Run("adds deadline", func(t *testing.T) {
		ctx, cancel := queryCtx(context.Background(), time.Second)
		defer cancel()
		dl, ok := ctx.Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(time.Second), dl, 100*time.Millisecond)
	})

	t.Run("keeps tighter deadline", func(t *testing.T) {
		parent, cancelParent := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancelParent()
		ctx, cancel := queryCtx(parent, time.Minute)
		defer cancel()
		assert.Equal(t, parent, ctx)
	})
}

func TestIsForeignKeyViolation(t *testing.T) {
	wrapped := fmt.Errorf("insert: %w", &pgconn.PgError{Code: foreignKeyViolation})
	assert.True(t, isForeignKeyViolation(wrapped))
	assert.False(t, isForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isForeignKeyViolation(errors.New("boom")))
}

package registry

import (
	"bytes"
	"sync"
	"testing"

	"webhook-gateway/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndResolve(t *testing.T) {
	r := New(logger.Discard())

	r.Register("order.created", func(data map[string]any) any {
		return map[string]any{"id": data["id"]}
	})

	h, ok := r.Resolve("order.created")
	require.True(t, ok)

	body := h(map[string]any{"id": 7})
	assert.Equal(t, map[string]any{"id": 7}, body)
}

func TestRegistry_ResolveUnregistered(t *testing.T) {
	r := New(logger.Discard())

	h, ok := r.Resolve("ghost.topic")
	assert.False(t, ok)
	assert.Nil(t, h)
}

func TestRegistry_DuplicateIsLastWriteWins(t *testing.T) {
	var buf bytes.Buffer
	r := New(logger.NewWithWriter("warn", &buf))

	r.Register("order.created", func(map[string]any) any { return "first" })
	r.Register("order.created", func(map[string]any) any { return "second" })

	h, ok := r.Resolve("order.created")
	require.True(t, ok)
	assert.Equal(t, "second", h(nil))
	assert.Contains(t, buf.String(), "duplicate topic registration")
}

func TestRegistry_Topics_Sorted(t *testing.T) {
	r := New(logger.Discard())
	r.Register("user.deleted", func(map[string]any) any { return nil })
	r.Register("order.created", func(map[string]any) any { return nil })
	r.Register("user.created", func(map[string]any) any { return nil })

	assert.Equal(t, []string{"order.created", "user.created", "user.deleted"}, r.Topics())
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := New(logger.Discard())
	r.Register("order.created", func(map[string]any) any { return nil })

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			r.Register("user.created", func(map[string]any) any { return nil })
		}()
		go func() {
			defer wg.Done()
			_, _ = r.Resolve("order.created")
			_ = r.Topics()
		}()
	}
	wg.Wait()
}

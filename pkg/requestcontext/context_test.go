package requestcontext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	t.Run("returns empty string when not set", func(t *testing.T) {
		assert.Equal(t, "", RequestID(context.Background()))
	})

	t.Run("round trips through context", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "req-1")
		assert.Equal(t, "req-1", RequestID(ctx))
	})
}

func TestClientMetadata(t *testing.T) {
	ctx := WithClientMetadata(context.Background(), "192.168.1.1", "curl/8.0", "bot")

	assert.Equal(t, "192.168.1.1", ClientIP(ctx))
	assert.Equal(t, "curl/8.0", UserAgent(ctx))
	assert.Equal(t, "bot", ClientClass(ctx))
	assert.Equal(t, "", RequestID(ctx))
}

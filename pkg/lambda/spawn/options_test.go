package spawn

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestGetLogger(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	nop := zap.NewNop()
	custom := zap.NewExample()

	assert.Same(t, zap.L(), GetLogger(ctx, nil))
	assert.Same(t, nop, GetLogger(ctx, nop))
	assert.Same(t, custom, GetLogger(WithLogger(ctx, custom), nop))
	assert.Same(t, nop, GetLogger(WithLogger(ctx, nil), nop))
}

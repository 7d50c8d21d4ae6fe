package service_test

import (
	"context"
	"testing"

	"github.com/helixml/wikitree/application/service"
	"github.com/stretchr/testify/assert"
)

func TestViewerFrom(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, service.ViewerFrom(ctx))

	ctx = service.WithViewer(ctx, "alice")
	assert.Equal(t, "alice", service.ViewerFrom(ctx))
	assert.Equal(t, "bob", service.ViewerFrom(service.WithViewer(ctx, "bob")))
}

package service

import "context"

type viewerKey struct{}

// WithViewer returns a context that identifies the user a request is
// answered for.
func WithViewer(ctx context.Context, viewerID string) context.Context {
	return context.WithValue(ctx, viewerKey{}, viewerID)
}

// ViewerFrom returns the viewer stored by WithViewer. An empty result is an
// anonymous viewer, who sees public pages only.
func ViewerFrom(ctx context.Context) string {
	id, _ := ctx.Value(viewerKey{}).(string)
	return id
}

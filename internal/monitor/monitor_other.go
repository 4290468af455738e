//go:build !darwin && !linux

package monitor

import (
	"context"

	"github.com/alexanderramin/drift/internal/domain"
)

type stubObserver struct{}

func newPlatformObserver() Observer {
	return &stubObserver{}
}

// CurrentActivity returns a fixed placeholder identity on platforms without
// a real observer implementation.
func (o *stubObserver) CurrentActivity(ctx context.Context) (*domain.ActivityIdentity, error) {
	id := domain.SimpleActivity("Generic App")
	return &id, nil
}

package service

import (
	"context"
	"io"

	"github.com/kingrain94/rental-manager-api/internal/domain"
)

//go:generate mockery --name SQSService --output ../mocks
type SQSService interface {
	SendRoomIndexMessage(ctx context.Context, room *domain.Room) error
	SendRoomDeleteMessage(ctx context.Context, roomID string) error
	SendReconcileMessage(ctx context.Context, reason string) error
	SendArchiveMessage(ctx context.Context, year, month int) error
}

// ChangeNotifier is told after a write commits so subscribers can be sent a fresh snapshot.
//
//go:generate mockery --name ChangeNotifier --output ../mocks
type ChangeNotifier interface {
	CollectionChanged(ctx context.Context, kind domain.CollectionKind)
}

//go:generate mockery --name ImageUploader --output ../mocks
type ImageUploader interface {
	UploadRoomImage(ctx context.Context, filename string, r io.Reader) (string, error)
}

// notifier lets services be built before the snapshot service exists
type notifier struct {
	target ChangeNotifier
}

// SetNotifier sets the change notifier
func (n *notifier) SetNotifier(target ChangeNotifier) {
	n.target = target
}

func (n *notifier) changed(ctx context.Context, kinds ...domain.CollectionKind) {
	if n.target == nil {
		return
	}
	for _, kind := range kinds {
		n.target.CollectionChanged(ctx, kind)
	}
}

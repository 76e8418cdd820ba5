package worker

import (
	"context"
	"time"

	"github.com/kingrain94/rental-manager-api/internal/repository"
	"github.com/kingrain94/rental-manager-api/internal/service/queue"
	"github.com/kingrain94/rental-manager-api/pkg/logger"
)

// IndexWorker mirrors room writes into the search index
type IndexWorker struct {
	*poller
	search repository.SearchRepository
	logger *logger.Logger
}

func NewIndexWorker(
	mq MessageQueue,
	queueURL string,
	search repository.SearchRepository,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
) *IndexWorker {
	w := &IndexWorker{search: search, logger: logger}
	w.poller = newPoller("Index", mq, queueURL, w.processMessage, logger, workerCount, pollInterval)
	return w
}

func (w *IndexWorker) processMessage(ctx context.Context, msg queue.Message) error {
	w.logger.Infof("Processing message of type %s for room %s", msg.Type, msg.RoomID)

	switch msg.Type {
	case queue.MessageTypeRoomIndex:
		if msg.Room == nil {
			return poison("ROOM_INDEX message for %s carries no room", msg.RoomID)
		}
		return w.search.IndexRoom(ctx, msg.Room)

	case queue.MessageTypeRoomDelete:
		if msg.RoomID == "" {
			return poison("ROOM_DELETE message without room id")
		}
		return w.search.DeleteRoom(ctx, msg.RoomID)

	default:
		return poison("unknown message type: %s", msg.Type)
	}
}

package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/kingrain94/rental-manager-api/internal/service"
	"github.com/kingrain94/rental-manager-api/internal/service/queue"
	"github.com/kingrain94/rental-manager-api/pkg/logger"
)

//go:generate mockery --name Reconciler --output ../mocks
type Reconciler interface {
	Reconcile(ctx context.Context) (*service.ReconcileResult, error)
}

// ReconcileWorker repairs persisted room statuses that drifted from the tenant records
type ReconcileWorker struct {
	*poller
	reconciler Reconciler
	logger     *logger.Logger
}

func NewReconcileWorker(
	mq MessageQueue,
	queueURL string,
	reconciler Reconciler,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
) *ReconcileWorker {
	w := &ReconcileWorker{reconciler: reconciler, logger: logger}
	w.poller = newPoller("Reconcile", mq, queueURL, w.processMessage, logger, workerCount, pollInterval)
	return w
}

func (w *ReconcileWorker) processMessage(ctx context.Context, msg queue.Message) error {
	if msg.Type != queue.MessageTypeReconcile {
		return poison("unknown message type: %s", msg.Type)
	}

	w.logger.Infof("Processing reconcile message (reason: %s)", msg.Reason)

	result, err := w.reconciler.Reconcile(ctx)
	if err != nil {
		return fmt.Errorf("reconcile failed: %w", err)
	}

	w.logger.Infof("Reconcile checked %d rooms, repaired %d", result.RoomsChecked, len(result.Repaired))
	return nil
}

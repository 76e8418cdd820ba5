package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/kingrain94/rental-manager-api/internal/service/queue"
	"github.com/kingrain94/rental-manager-api/pkg/logger"
)

//go:generate mockery --name MessageQueue --output ../mocks
type MessageQueue interface {
	ReceiveMessages(ctx context.Context, queueURL string, maxMessages int32, waitTimeSeconds int32) ([]queue.ReceivedMessage, []*string, error)
	DeleteMessage(ctx context.Context, queueURL string, receiptHandle *string) error
}

type handlerFunc func(ctx context.Context, msg queue.Message) error

// errPoisonMessage marks a message that can never succeed. The poller deletes it.
var errPoisonMessage = errors.New("poison message")

func poison(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errPoisonMessage, fmt.Sprintf(format, args...))
}

// poller runs workerCount goroutines that long-poll one queue and hand each message to handle.
// A message is deleted after handle succeeds or rejects it as poison, otherwise SQS redelivers it.
type poller struct {
	name         string
	queue        MessageQueue
	queueURL     string
	handle       handlerFunc
	logger       *logger.Logger
	workerCount  int
	pollInterval time.Duration
	maxMessages  int32
	waitTime     int32
	shutdownChan chan struct{}
	waitGroup    sync.WaitGroup
}

func newPoller(
	name string,
	mq MessageQueue,
	queueURL string,
	handle handlerFunc,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
) *poller {
	return &poller{
		name:         name,
		queue:        mq,
		queueURL:     queueURL,
		handle:       handle,
		logger:       logger,
		workerCount:  workerCount,
		pollInterval: pollInterval,
		maxMessages:  10, // Process up to 10 messages at a time
		waitTime:     20, // Long polling: wait up to 20 seconds for messages
		shutdownChan: make(chan struct{}),
	}
}

func (p *poller) Start() {
	p.logger.Infof("Starting %s workers...", p.name)

	for i := 0; i < p.workerCount; i++ {
		p.waitGroup.Add(1)
		go p.runWorker(i)
	}
}

func (p *poller) Stop() {
	p.logger.Infof("Stopping %s workers...", p.name)
	close(p.shutdownChan)
	p.waitGroup.Wait()
	p.logger.Infof("All %s workers stopped", p.name)
}

func (p *poller) runWorker(workerID int) {
	defer p.waitGroup.Done()

	p.logger.Infof("%s worker %d started", p.name, workerID)

	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.shutdownChan:
			p.logger.Infof("%s worker %d shutting down", p.name, workerID)
			return
		case <-ticker.C:
			if err := p.processMessages(context.Background()); err != nil {
				p.logger.Errorf("%s worker %d failed to process messages: %v", p.name, workerID, err)
			}
		}
	}
}

func (p *poller) processMessages(ctx context.Context) error {
	messages, undecodable, err := p.queue.ReceiveMessages(ctx, p.queueURL, p.maxMessages, p.waitTime)
	if err != nil {
		return fmt.Errorf("failed to receive messages: %w", err)
	}

	for _, handle := range undecodable {
		p.logger.Warnf("%s worker dropping undecodable message", p.name)
		if err := p.queue.DeleteMessage(ctx, p.queueURL, handle); err != nil {
			p.logger.Errorf("Failed to delete message: %v", err)
		}
	}

	for _, msg := range messages {
		if err := p.handle(ctx, msg.Message); err != nil {
			if !errors.Is(err, errPoisonMessage) {
				p.logger.Errorf("Failed to process %s message: %v", msg.Message.Type, err)
				continue
			}
			p.logger.Warnf("%s worker dropping message: %v", p.name, err)
		}

		if err := p.queue.DeleteMessage(ctx, p.queueURL, msg.ReceiptHandle); err != nil {
			p.logger.Errorf("Failed to delete message: %v", err)
		}
	}

	return nil
}

package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/kingrain94/rental-manager-api/internal/api/dto"
	"github.com/kingrain94/rental-manager-api/internal/domain"
	"github.com/kingrain94/rental-manager-api/pkg/logger"
)

const defaultChannelPrefix = "rental:snapshots:"

// RedisPubSub fans collection snapshots out across API instances, one channel per collection.
type RedisPubSub struct {
	client        *redis.Client
	logger        *logger.Logger
	channelPrefix string
	subscribers   map[domain.CollectionKind]*redis.PubSub
	subscriberMu  sync.RWMutex
}

func NewRedisPubSub(client *redis.Client, channelPrefix string, logger *logger.Logger) *RedisPubSub {
	if channelPrefix == "" {
		channelPrefix = defaultChannelPrefix
	}
	return &RedisPubSub{
		client:        client,
		logger:        logger,
		channelPrefix: channelPrefix,
		subscribers:   make(map[domain.CollectionKind]*redis.PubSub),
	}
}

func (ps *RedisPubSub) channelName(kind domain.CollectionKind) string {
	return ps.channelPrefix + string(kind)
}

// Publish sends the snapshot on its collection channel
func (ps *RedisPubSub) Publish(ctx context.Context, snapshot *dto.Snapshot) error {
	message, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	channel := ps.channelName(domain.CollectionKind(snapshot.Collection))
	if err := ps.client.Publish(ctx, channel, message).Err(); err != nil {
		return fmt.Errorf("failed to publish to Redis channel %s: %w", channel, err)
	}

	return nil
}

// Subscribe delivers every snapshot published for kind to callback until ctx ends or
// Unsubscribe is called. Subscribing twice to the same kind is a no-op.
func (ps *RedisPubSub) Subscribe(ctx context.Context, kind domain.CollectionKind, callback func(*dto.Snapshot)) error {
	channel := ps.channelName(kind)

	ps.subscriberMu.Lock()
	if _, exists := ps.subscribers[kind]; exists {
		ps.subscriberMu.Unlock()
		return nil
	}
	sub := ps.client.Subscribe(ctx, channel)
	ps.subscribers[kind] = sub
	ps.subscriberMu.Unlock()

	// Wait for the subscription to be confirmed so no publish is missed after we return
	if _, err := sub.Receive(ctx); err != nil {
		ps.Unsubscribe(kind)
		return fmt.Errorf("failed to subscribe to %s: %w", channel, err)
	}

	go func() {
		defer ps.remove(kind, sub)

		ch := sub.Channel()
		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var snapshot dto.Snapshot
				if err := json.Unmarshal([]byte(msg.Payload), &snapshot); err != nil {
					ps.logger.Errorf("Failed to unmarshal snapshot from channel %s: %v", channel, err)
					continue
				}
				callback(&snapshot)

			case <-ctx.Done():
				return
			}
		}
	}()

	ps.logger.Infof("Subscribed to snapshot channel: %s", channel)
	return nil
}

// remove closes sub and forgets it unless a newer subscription replaced it
func (ps *RedisPubSub) remove(kind domain.CollectionKind, sub *redis.PubSub) {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	sub.Close()
	if current, ok := ps.subscribers[kind]; ok && current == sub {
		delete(ps.subscribers, kind)
	}
}

func (ps *RedisPubSub) Unsubscribe(kind domain.CollectionKind) {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	if sub, exists := ps.subscribers[kind]; exists {
		sub.Close()
		delete(ps.subscribers, kind)
		ps.logger.Infof("Unsubscribed from snapshot channel: %s", ps.channelName(kind))
	}
}

func (ps *RedisPubSub) Close() {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	for kind, sub := range ps.subscribers {
		sub.Close()
		delete(ps.subscribers, kind)
	}
}

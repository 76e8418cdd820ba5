package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/kingrain94/rental-manager-api/internal/config"
	"github.com/kingrain94/rental-manager-api/internal/domain"
)

type MessageType string

const (
	MessageTypeRoomIndex     MessageType = "ROOM_INDEX"
	MessageTypeRoomDelete    MessageType = "ROOM_DELETE"
	MessageTypeReconcile     MessageType = "RECONCILE"
	MessageTypeReportArchive MessageType = "REPORT_ARCHIVE"
)

type Message struct {
	Type      MessageType  `json:"type"`
	Room      *domain.Room `json:"room,omitempty"`
	RoomID    string       `json:"room_id,omitempty"`
	Timestamp time.Time    `json:"timestamp"`

	// Reason explains why a reconcile sweep was requested
	Reason string `json:"reason,omitempty"`

	// Year and Month select the revenue report to archive
	Year  int `json:"year,omitempty"`
	Month int `json:"month,omitempty"`
}

type ReceivedMessage struct {
	Message       Message
	ReceiptHandle *string
}

// Client is the subset of the SQS API used here
type Client interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

type SQSService struct {
	client            Client
	indexQueueURL     string
	reconcileQueueURL string
	archiveQueueURL   string
}

func NewSQSService(client Client, config *config.SQSConfig) *SQSService {
	return &SQSService{
		client:            client,
		indexQueueURL:     config.IndexQueueURL,
		reconcileQueueURL: config.ReconcileQueueURL,
		archiveQueueURL:   config.ArchiveQueueURL,
	}
}

func (s *SQSService) IndexQueueURL() string     { return s.indexQueueURL }
func (s *SQSService) ReconcileQueueURL() string { return s.reconcileQueueURL }
func (s *SQSService) ArchiveQueueURL() string   { return s.archiveQueueURL }

func (s *SQSService) SendRoomIndexMessage(ctx context.Context, room *domain.Room) error {
	msg := Message{
		Type:      MessageTypeRoomIndex,
		Room:      room,
		RoomID:    room.ID,
		Timestamp: time.Now(),
	}

	return s.sendMessage(ctx, msg, s.indexQueueURL)
}

func (s *SQSService) SendRoomDeleteMessage(ctx context.Context, roomID string) error {
	msg := Message{
		Type:      MessageTypeRoomDelete,
		RoomID:    roomID,
		Timestamp: time.Now(),
	}

	return s.sendMessage(ctx, msg, s.indexQueueURL)
}

func (s *SQSService) SendReconcileMessage(ctx context.Context, reason string) error {
	msg := Message{
		Type:      MessageTypeReconcile,
		Reason:    reason,
		Timestamp: time.Now(),
	}

	return s.sendMessage(ctx, msg, s.reconcileQueueURL)
}

func (s *SQSService) SendArchiveMessage(ctx context.Context, year, month int) error {
	if err := domain.ValidateMonth(month); err != nil {
		return err
	}
	msg := Message{
		Type:      MessageTypeReportArchive,
		Year:      year,
		Month:     month,
		Timestamp: time.Now(),
	}

	return s.sendMessage(ctx, msg, s.archiveQueueURL)
}

func (s *SQSService) sendMessage(ctx context.Context, msg Message, queueURL string) error {
	msgBody, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	input := &sqs.SendMessageInput{
		MessageBody: aws.String(string(msgBody)),
		QueueUrl:    aws.String(queueURL),
	}

	if _, err := s.client.SendMessage(ctx, input); err != nil {
		return fmt.Errorf("failed to send %s message: %w", msg.Type, err)
	}

	return nil
}

// ReceiveMessages long-polls queueURL. Bodies that fail to decode are returned as
// undecodable so the caller can delete them instead of receiving them forever.
func (s *SQSService) ReceiveMessages(ctx context.Context, queueURL string, maxMessages int32, waitTimeSeconds int32) ([]ReceivedMessage, []*string, error) {
	input := &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(queueURL),
		MaxNumberOfMessages: maxMessages,
		WaitTimeSeconds:     waitTimeSeconds,
	}

	output, err := s.client.ReceiveMessage(ctx, input)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to receive messages: %w", err)
	}

	var (
		messages    []ReceivedMessage
		undecodable []*string
	)
	for _, msg := range output.Messages {
		var message Message
		if msg.Body == nil || json.Unmarshal([]byte(*msg.Body), &message) != nil {
			undecodable = append(undecodable, msg.ReceiptHandle)
			continue
		}
		messages = append(messages, ReceivedMessage{
			Message:       message,
			ReceiptHandle: msg.ReceiptHandle,
		})
	}

	return messages, undecodable, nil
}

func (s *SQSService) DeleteMessage(ctx context.Context, queueURL string, receiptHandle *string) error {
	input := &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(queueURL),
		ReceiptHandle: receiptHandle,
	}

	if _, err := s.client.DeleteMessage(ctx, input); err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	return nil
}

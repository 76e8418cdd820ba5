package queue

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/rental-manager-api/internal/config"
	"github.com/kingrain94/rental-manager-api/internal/domain"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(*sqs.SendMessageOutput), args.Error(1)
}

func (m *mockClient) ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(*sqs.ReceiveMessageOutput), args.Error(1)
}

func (m *mockClient) DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(*sqs.DeleteMessageOutput), args.Error(1)
}

type SQSServiceTestSuite struct {
	suite.Suite
	client  *mockClient
	service *SQSService
}

func (s *SQSServiceTestSuite) SetupTest() {
	s.client = new(mockClient)
	s.service = NewSQSService(s.client, &config.SQSConfig{
		IndexQueueURL:     "index-url",
		ReconcileQueueURL: "reconcile-url",
		ArchiveQueueURL:   "archive-url",
	})
}

func TestSQSService(t *testing.T) {
	suite.Run(t, new(SQSServiceTestSuite))
}

func decodeBody(input *sqs.SendMessageInput) Message {
	var msg Message
	_ = json.Unmarshal([]byte(aws.ToString(input.MessageBody)), &msg)
	return msg
}

func (s *SQSServiceTestSuite) TestSendRoomIndexMessage() {
	ctx := context.Background()
	room := &domain.Room{ID: "r1", Name: "101"}

	s.client.On("SendMessage", ctx, mock.MatchedBy(func(in *sqs.SendMessageInput) bool {
		msg := decodeBody(in)
		return aws.ToString(in.QueueUrl) == "index-url" &&
			msg.Type == MessageTypeRoomIndex && msg.Room != nil && msg.Room.Name == "101"
	})).Return(&sqs.SendMessageOutput{}, nil)

	s.NoError(s.service.SendRoomIndexMessage(ctx, room))
	s.client.AssertExpectations(s.T())
}

func (s *SQSServiceTestSuite) TestSendReconcileMessage() {
	ctx := context.Background()

	s.client.On("SendMessage", ctx, mock.MatchedBy(func(in *sqs.SendMessageInput) bool {
		msg := decodeBody(in)
		return aws.ToString(in.QueueUrl) == "reconcile-url" && msg.Reason == "daily"
	})).Return(&sqs.SendMessageOutput{}, nil)

	s.NoError(s.service.SendReconcileMessage(ctx, "daily"))
	s.client.AssertExpectations(s.T())
}

func (s *SQSServiceTestSuite) TestSendArchiveMessage_InvalidMonth() {
	err := s.service.SendArchiveMessage(context.Background(), 2024, 13)

	s.ErrorIs(err, domain.ErrValidation)
	s.client.AssertNotCalled(s.T(), "SendMessage", mock.Anything, mock.Anything)
}

func (s *SQSServiceTestSuite) TestReceiveMessages_SplitsUndecodable() {
	ctx := context.Background()
	body, _ := json.Marshal(Message{Type: MessageTypeReportArchive, Year: 2024, Month: 1})

	s.client.On("ReceiveMessage", ctx, mock.Anything).Return(&sqs.ReceiveMessageOutput{
		Messages: []types.Message{
			{Body: aws.String(string(body)), ReceiptHandle: aws.String("good")},
			{Body: aws.String("{not json"), ReceiptHandle: aws.String("bad")},
		},
	}, nil)

	messages, undecodable, err := s.service.ReceiveMessages(ctx, "archive-url", 10, 1)

	s.NoError(err)
	s.Len(messages, 1)
	s.Equal(2024, messages[0].Message.Year)
	s.Equal("good", aws.ToString(messages[0].ReceiptHandle))
	s.Len(undecodable, 1)
	s.Equal("bad", aws.ToString(undecodable[0]))
}

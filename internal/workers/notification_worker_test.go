package workers_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Yeizermarrugo/BankSystem/internal/core/domain"
	portssvc "github.com/Yeizermarrugo/BankSystem/internal/core/ports/services"
	"github.com/Yeizermarrugo/BankSystem/internal/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock NotificationService ---
type MockNotificationService struct {
	mock.Mock
}

var _ portssvc.NotificationSvcFacade = (*MockNotificationService)(nil)

func (m *MockNotificationService) Enqueue(ctx context.Context, message string) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockNotificationService) PopNext(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockNotificationService) RecordDelivery(ctx context.Context, message string, status domain.NotificationStatus) (*domain.Notification, error) {
	args := m.Called(ctx, message, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *MockNotificationService) ListNotifications(ctx context.Context, limit, offset int) ([]domain.Notification, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

// --- Test Suite ---
type NotificationWorkerTestSuite struct {
	suite.Suite
	mockSvc *MockNotificationService
	logger  *slog.Logger
}

func (suite *NotificationWorkerTestSuite) SetupTest() {
	suite.mockSvc = new(MockNotificationService)
	suite.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

// runUntilDone runs the worker in a goroutine and waits for it to exit.
func (suite *NotificationWorkerTestSuite) runUntilDone(ctx context.Context, w *workers.NotificationWorker) {
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		suite.FailNow("worker did not stop in time")
	}
}

func (suite *NotificationWorkerTestSuite) TestRun_DeliversAndRecordsSent() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	suite.mockSvc.On("PopNext", mock.Anything).Return("hello there", nil).Once()
	suite.mockSvc.On("PopNext", mock.Anything).Return("", nil).Maybe()
	suite.mockSvc.On("RecordDelivery", mock.Anything, "hello there", domain.NotificationSent).
		Return(&domain.Notification{Message: "hello there", Status: domain.NotificationSent}, nil).
		Run(func(args mock.Arguments) { cancel() }).
		Once()

	w := workers.NewNotificationWorker(suite.mockSvc, nil, suite.logger)
	suite.runUntilDone(ctx, w)

	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *NotificationWorkerTestSuite) TestRun_SendFailureRecordsFailed() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	suite.mockSvc.On("PopNext", mock.Anything).Return("doomed message", nil).Once()
	suite.mockSvc.On("PopNext", mock.Anything).Return("", nil).Maybe()
	suite.mockSvc.On("RecordDelivery", mock.Anything, "doomed message", domain.NotificationFailed).
		Return(&domain.Notification{Message: "doomed message", Status: domain.NotificationFailed}, nil).
		Run(func(args mock.Arguments) { cancel() }).
		Once()

	send := func(ctx context.Context, message string) error {
		return assert.AnError
	}

	w := workers.NewNotificationWorker(suite.mockSvc, send, suite.logger)
	suite.runUntilDone(ctx, w)

	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *NotificationWorkerTestSuite) TestRun_PollTimeoutIsNotDelivered() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// An empty pop means the poll timed out with nothing queued.
	suite.mockSvc.On("PopNext", mock.Anything).Return("", nil).
		Run(func(args mock.Arguments) { cancel() }).
		Once()
	suite.mockSvc.On("PopNext", mock.Anything).Return("", nil).Maybe()

	w := workers.NewNotificationWorker(suite.mockSvc, nil, suite.logger)
	suite.runUntilDone(ctx, w)

	suite.mockSvc.AssertNotCalled(suite.T(), "RecordDelivery", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *NotificationWorkerTestSuite) TestRun_StopsOnCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := workers.NewNotificationWorker(suite.mockSvc, nil, suite.logger)
	suite.runUntilDone(ctx, w)

	suite.mockSvc.AssertNotCalled(suite.T(), "PopNext", mock.Anything)
}

func TestNotificationWorker(t *testing.T) {
	suite.Run(t, new(NotificationWorkerTestSuite))
}

package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Yeizermarrugo/BankSystem/internal/apperrors"
	"github.com/Yeizermarrugo/BankSystem/internal/core/domain"
	portsrepo "github.com/Yeizermarrugo/BankSystem/internal/core/ports/repositories"
	portssvc "github.com/Yeizermarrugo/BankSystem/internal/core/ports/services"
	"github.com/Yeizermarrugo/BankSystem/internal/core/services"
	"github.com/Yeizermarrugo/BankSystem/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LogRepository ---
type MockLogRepository struct {
	mock.Mock
}

var _ portsrepo.LogRepositoryFacade = (*MockLogRepository)(nil)

func (m *MockLogRepository) SaveLog(ctx context.Context, entry domain.LogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLogRepository) FindLogs(ctx context.Context, filter portsrepo.LogFilter) ([]domain.LogEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LogEntry), args.Error(1)
}

func (m *MockLogRepository) FindLogsByEntityID(ctx context.Context, entityID string) ([]domain.LogEntry, error) {
	args := m.Called(ctx, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LogEntry), args.Error(1)
}

// --- Test Suite ---
type LogServiceTestSuite struct {
	suite.Suite
	mockLogRepo *MockLogRepository
	service     portssvc.LogSvcFacade
	ctx         context.Context
}

func (suite *LogServiceTestSuite) SetupTest() {
	suite.mockLogRepo = new(MockLogRepository)
	suite.service = services.NewLogService(suite.mockLogRepo)
	suite.ctx = context.Background()
}

func (suite *LogServiceTestSuite) TestRecord_FillsIDAndTimestamp() {
	suite.mockLogRepo.On("SaveLog", mock.Anything, mock.MatchedBy(func(entry domain.LogEntry) bool {
		return entry.LogID != "" && !entry.CreatedAt.IsZero() && entry.Service == "accounts"
	})).Return(nil).Once()

	err := suite.service.Record(suite.ctx, domain.LogEntry{
		Service:  "accounts",
		EntityID: "acc-1",
		Action:   "create",
		Status:   "success",
		Message:  "account created",
	})

	assert.NoError(suite.T(), err)
	suite.mockLogRepo.AssertExpectations(suite.T())
}

func (suite *LogServiceTestSuite) TestListLogs_NoFilters() {
	rows := []domain.LogEntry{{LogID: "log-1"}, {LogID: "log-2"}}

	suite.mockLogRepo.On("FindLogs", mock.Anything, portsrepo.LogFilter{Limit: 20}).Return(rows, nil).Once()

	entries, err := suite.service.ListLogs(suite.ctx, dto.ListLogsParams{Limit: 20})

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), entries, 2)
}

func (suite *LogServiceTestSuite) TestListLogs_ServiceAndActionFilters() {
	suite.mockLogRepo.On("FindLogs", mock.Anything, mock.MatchedBy(func(filter portsrepo.LogFilter) bool {
		return filter.Service == "transactions" && filter.Action == "create" &&
			filter.From == nil && filter.To == nil
	})).Return([]domain.LogEntry{}, nil).Once()

	entries, err := suite.service.ListLogs(suite.ctx, dto.ListLogsParams{
		Service: "transactions",
		Action:  "create",
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), entries)
	suite.mockLogRepo.AssertExpectations(suite.T())
}

func (suite *LogServiceTestSuite) TestListLogs_DateRangeCoversWholeEndDay() {
	suite.mockLogRepo.On("FindLogs", mock.Anything, mock.MatchedBy(func(filter portsrepo.LogFilter) bool {
		if filter.From == nil || filter.To == nil {
			return false
		}
		wantFrom := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		// The end bound reaches the last instant of the To day.
		wantTo := time.Date(2026, 8, 15, 23, 59, 59, 999999999, time.UTC)
		return filter.From.Equal(wantFrom) && filter.To.Equal(wantTo)
	})).Return([]domain.LogEntry{}, nil).Once()

	_, err := suite.service.ListLogs(suite.ctx, dto.ListLogsParams{
		From: "2026-08-01",
		To:   "2026-08-15",
	})

	assert.NoError(suite.T(), err)
	suite.mockLogRepo.AssertExpectations(suite.T())
}

func (suite *LogServiceTestSuite) TestListLogs_HalfOpenDateRangeRejected() {
	_, err := suite.service.ListLogs(suite.ctx, dto.ListLogsParams{From: "2026-08-01"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.mockLogRepo.AssertNotCalled(suite.T(), "FindLogs", mock.Anything, mock.Anything)
}

func (suite *LogServiceTestSuite) TestListLogs_MalformedDateRejected() {
	_, err := suite.service.ListLogs(suite.ctx, dto.ListLogsParams{From: "01/08/2026", To: "2026-08-15"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func (suite *LogServiceTestSuite) TestListLogs_InvertedDateRangeRejected() {
	_, err := suite.service.ListLogs(suite.ctx, dto.ListLogsParams{From: "2026-08-15", To: "2026-08-01"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func (suite *LogServiceTestSuite) TestListRecentLogs_ReachesSevenDaysBack() {
	suite.mockLogRepo.On("FindLogs", mock.Anything, mock.MatchedBy(func(filter portsrepo.LogFilter) bool {
		if filter.From == nil || filter.To != nil || filter.Service != "" || filter.Action != "" {
			return false
		}
		sevenDaysAgo := time.Now().Add(-7 * 24 * time.Hour)
		return filter.From.Sub(sevenDaysAgo).Abs() < time.Minute
	})).Return([]domain.LogEntry{{LogID: "log-1"}}, nil).Once()

	entries, err := suite.service.ListRecentLogs(suite.ctx)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), entries, 1)
	suite.mockLogRepo.AssertExpectations(suite.T())
}

func (suite *LogServiceTestSuite) TestListLogsByEntity_EmptyIsNotNil() {
	suite.mockLogRepo.On("FindLogsByEntityID", mock.Anything, "acc-1").Return(nil, nil).Once()

	entries, err := suite.service.ListLogsByEntity(suite.ctx, "acc-1")

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), entries)
	assert.Empty(suite.T(), entries)
}

func TestLogService(t *testing.T) {
	suite.Run(t, new(LogServiceTestSuite))
}

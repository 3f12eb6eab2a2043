package services_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Yeizermarrugo/BankSystem/internal/apperrors"
	"github.com/Yeizermarrugo/BankSystem/internal/core/domain"
	portsrepo "github.com/Yeizermarrugo/BankSystem/internal/core/ports/repositories"
	portssvc "github.com/Yeizermarrugo/BankSystem/internal/core/ports/services"
	"github.com/Yeizermarrugo/BankSystem/internal/core/services"
	"github.com/Yeizermarrugo/BankSystem/internal/dto"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

// Ensure MockTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) SaveTransactions(ctx context.Context, transactions []domain.Transaction) error {
	args := m.Called(ctx, transactions)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, accountID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Transaction), returnedNextToken, args.Error(2)
}

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

// Ensure MockAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) AccountNumberExists(ctx context.Context, accountNumber string) (bool, error) {
	args := m.Called(ctx, accountNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	args := m.Called(ctx, accountID, userID, now)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

// --- Mock UserReader ---
type MockUserReader struct {
	mock.Mock
}

var _ portssvc.UserReaderSvc = (*MockUserReader)(nil)

func (m *MockUserReader) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserReader) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserReader) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// --- Mock LogWriter ---
type MockLogWriter struct {
	mock.Mock
}

var _ portssvc.LogWriterSvc = (*MockLogWriter)(nil)

func (m *MockLogWriter) Record(ctx context.Context, entry domain.LogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// --- Mock NotificationPublisher ---
type MockNotificationPublisher struct {
	mock.Mock
}

var _ portssvc.NotificationPublisherSvc = (*MockNotificationPublisher)(nil)

func (m *MockNotificationPublisher) Enqueue(ctx context.Context, message string) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo     *MockTransactionRepository
	mockAccountRepo *MockAccountRepository
	mockUserReader  *MockUserReader
	mockLogWriter   *MockLogWriter
	mockNotifier    *MockNotificationPublisher
	service         portssvc.TransactionSvcFacade
	ctx             context.Context
	userID          string
	account         domain.Account
}

const testMinAmount = 999

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockUserReader = new(MockUserReader)
	suite.mockLogWriter = new(MockLogWriter)
	suite.mockNotifier = new(MockNotificationPublisher)
	suite.service = services.NewTransactionService(
		suite.mockTxnRepo,
		suite.mockAccountRepo,
		suite.mockUserReader,
		suite.mockLogWriter,
		suite.mockNotifier,
		testMinAmount,
	)

	suite.ctx = context.Background()
	suite.userID = uuid.NewString()

	suite.account = domain.Account{
		AccountID:     uuid.NewString(),
		UserID:        suite.userID,
		Name:          "Main checking",
		AccountNumber: "1234567890",
		Balance:       decimal.NewFromInt(5000),
		CurrencyCode:  "USD",
		IsActive:      true,
	}
}

// expectAuditLogs wires the best-effort audit log mock that fires once per
// ledger row after a successful save.
func (suite *TransactionServiceTestSuite) expectAuditLogs(legs int) {
	suite.mockLogWriter.On("Record", mock.Anything, mock.AnythingOfType("domain.LogEntry")).Return(nil).Times(legs)
}

// expectTransferNotification wires the recipient lookup and queue mocks for
// the notification a transfer sends to the receiving account's owner.
func (suite *TransactionServiceTestSuite) expectTransferNotification(recipient domain.User) {
	suite.mockUserReader.On("GetUserByID", mock.Anything, recipient.UserID).
		Return(&recipient, nil).Once()
	suite.mockNotifier.On("Enqueue", mock.Anything, mock.AnythingOfType("string")).Return(nil).Once()
}

func (suite *TransactionServiceTestSuite) depositRequest(amount int64) dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		AccountID:       suite.account.AccountID,
		Category:        domain.CategoryDepositBranch,
		TransactionType: domain.Credit,
		Amount:          decimal.NewFromInt(amount),
		Description:     "branch deposit",
	}
}

func (suite *TransactionServiceTestSuite) withdrawalRequest(amount int64) dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		AccountID:       suite.account.AccountID,
		Category:        domain.CategoryWithdrawalATM,
		TransactionType: domain.Debit,
		Amount:          decimal.NewFromInt(amount),
		Description:     "atm withdrawal",
	}
}

// --- RecordTransaction ---

func (suite *TransactionServiceTestSuite) TestRecordTransaction_DepositSuccess() {
	req := suite.depositRequest(1500)

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.account.AccountID).Return(&suite.account, nil).Once()
	suite.mockTxnRepo.On("SaveTransactions", mock.Anything, mock.MatchedBy(func(txns []domain.Transaction) bool {
		return len(txns) == 1 &&
			txns[0].AccountID == suite.account.AccountID &&
			txns[0].TransactionType == domain.Credit &&
			txns[0].Category == domain.CategoryDepositBranch &&
			txns[0].Amount.Equal(decimal.NewFromInt(1500))
	})).Return(nil).Once()
	suite.expectAuditLogs(1)

	txns, err := suite.service.RecordTransaction(suite.ctx, req, suite.userID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), txns, 1)
	assert.NotEmpty(suite.T(), txns[0].TransactionID)
	assert.Equal(suite.T(), suite.userID, txns[0].CreatedBy)
	assert.Nil(suite.T(), txns[0].CounterpartAccountID)
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
	// Only transfers notify anyone; a plain deposit has no recipient.
	suite.mockNotifier.AssertNotCalled(suite.T(), "Enqueue", mock.Anything, mock.Anything)
	suite.mockUserReader.AssertNotCalled(suite.T(), "GetUserByID", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestRecordTransaction_WithdrawalSuccess() {
	req := suite.withdrawalRequest(1500)

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.account.AccountID).Return(&suite.account, nil).Once()
	suite.mockTxnRepo.On("SaveTransactions", mock.Anything, mock.MatchedBy(func(txns []domain.Transaction) bool {
		return len(txns) == 1 &&
			txns[0].TransactionType == domain.Debit &&
			txns[0].Amount.Equal(decimal.NewFromInt(1500))
	})).Return(nil).Once()
	suite.expectAuditLogs(1)

	txns, err := suite.service.RecordTransaction(suite.ctx, req, suite.userID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), txns, 1)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestRecordTransaction_UnknownCategory() {
	req := suite.depositRequest(1500)
	req.Category = "LOTTERY_WIN"

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.account.AccountID).Return(&suite.account, nil).Once()

	_, err := suite.service.RecordTransaction(suite.ctx, req, suite.userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransactions", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestRecordTransaction_TransferInRejected() {
	req := suite.depositRequest(1500)
	req.Category = domain.CategoryTransferIn

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.account.AccountID).Return(&suite.account, nil).Once()

	_, err := suite.service.RecordTransaction(suite.ctx, req, suite.userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransactions", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestRecordTransaction_TransferInOnForeignAccountIsForbidden() {
	// Ownership is checked before the category, so a bogus category against
	// someone else's account leaks nothing about category rules.
	req := suite.depositRequest(1500)
	req.Category = domain.CategoryTransferIn

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.account.AccountID).Return(&suite.account, nil).Once()

	_, err := suite.service.RecordTransaction(suite.ctx, req, uuid.NewString())

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
	assert.NotErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestRecordTransaction_TypeCategoryMismatch() {
	req := suite.depositRequest(1500)
	req.TransactionType = domain.Debit // DEPOSIT_BRANCH requires CREDIT

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.account.AccountID).Return(&suite.account, nil).Once()

	_, err := suite.service.RecordTransaction(suite.ctx, req, suite.userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransactions", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestRecordTransaction_AccountNotFound() {
	req := suite.depositRequest(1500)

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.account.AccountID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.RecordTransaction(suite.ctx, req, suite.userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestRecordTransaction_ForeignAccount() {
	req := suite.depositRequest(1500)

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.account.AccountID).Return(&suite.account, nil).Once()

	_, err := suite.service.RecordTransaction(suite.ctx, req, uuid.NewString())

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransactions", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestRecordTransaction_InactiveAccount() {
	req := suite.depositRequest(1500)
	suite.account.IsActive = false

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.account.AccountID).Return(&suite.account, nil).Once()

	_, err := suite.service.RecordTransaction(suite.ctx, req, suite.userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestRecordTransaction_AmountAtFloorRejected() {
	// Amounts must be strictly greater than the floor, so 999 itself fails.
	req := suite.depositRequest(testMinAmount)

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.account.AccountID).Return(&suite.account, nil).Once()

	_, err := suite.service.RecordTransaction(suite.ctx, req, suite.userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidAmount)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransactions", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestRecordTransaction_InsufficientFunds() {
	// Balance 1000 cannot cover a 1500 debit; nothing must be written.
	suite.account.Balance = decimal.NewFromInt(1000)
	req := suite.withdrawalRequest(1500)

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.account.AccountID).Return(&suite.account, nil).Once()

	_, err := suite.service.RecordTransaction(suite.ctx, req, suite.userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInsufficientFunds)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransactions", mock.Anything, mock.Anything)
	suite.mockNotifier.AssertNotCalled(suite.T(), "Enqueue", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestRecordTransaction_ConcurrentDebitSurfacesInsufficientFunds() {
	// The optimistic check passed, but the repository re-check on the locked
	// row found a concurrent debit had drained the account.
	req := suite.withdrawalRequest(1500)

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.account.AccountID).Return(&suite.account, nil).Once()
	suite.mockTxnRepo.On("SaveTransactions", mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: account %s", apperrors.ErrInsufficientFunds, suite.account.AccountNumber)).Once()

	_, err := suite.service.RecordTransaction(suite.ctx, req, suite.userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInsufficientFunds)
	suite.mockNotifier.AssertNotCalled(suite.T(), "Enqueue", mock.Anything, mock.Anything)
	suite.mockLogWriter.AssertNotCalled(suite.T(), "Record", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) transferRequest(amount int64, targetNumber string) dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		AccountID:           suite.account.AccountID,
		Category:            domain.CategoryTransferOut,
		TransactionType:     domain.Debit,
		Amount:              decimal.NewFromInt(amount),
		Description:         "rent",
		TargetAccountNumber: &targetNumber,
	}
}

func (suite *TransactionServiceTestSuite) TestRecordTransaction_TransferSuccess() {
	target := domain.Account{
		AccountID:     uuid.NewString(),
		UserID:        uuid.NewString(),
		AccountNumber: "0987654321",
		Balance:       decimal.NewFromInt(100),
		CurrencyCode:  "USD",
		IsActive:      true,
	}
	req := suite.transferRequest(2000, target.AccountNumber)

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.account.AccountID).Return(&suite.account, nil).Once()
	suite.mockAccountRepo.On("FindAccountByNumber", mock.Anything, target.AccountNumber).Return(&target, nil).Once()
	suite.mockTxnRepo.On("SaveTransactions", mock.Anything, mock.MatchedBy(func(txns []domain.Transaction) bool {
		if len(txns) != 2 {
			return false
		}
		out, in := txns[0], txns[1]
		return out.Category == domain.CategoryTransferOut &&
			out.TransactionType == domain.Debit &&
			out.AccountID == suite.account.AccountID &&
			out.CounterpartAccountID != nil && *out.CounterpartAccountID == target.AccountID &&
			in.Category == domain.CategoryTransferIn &&
			in.TransactionType == domain.Credit &&
			in.AccountID == target.AccountID &&
			in.CounterpartAccountID != nil && *in.CounterpartAccountID == suite.account.AccountID &&
			in.Amount.Equal(out.Amount)
	})).Return(nil).Once()
	suite.expectAuditLogs(2)
	suite.expectTransferNotification(domain.User{UserID: target.UserID, FirstName: "Grace", LastName: "Hopper"})

	txns, err := suite.service.RecordTransaction(suite.ctx, req, suite.userID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), txns, 2)
	assert.Equal(suite.T(), "Transfer received from account 1234567890", txns[1].Description)
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockUserReader.AssertExpectations(suite.T())
	suite.mockNotifier.AssertExpectations(suite.T())
	// The sender is never looked up; the notification is for the recipient.
	suite.mockUserReader.AssertNotCalled(suite.T(), "GetUserByID", mock.Anything, suite.userID)
}

func (suite *TransactionServiceTestSuite) TestRecordTransaction_TransferNotifiesRecipient() {
	target := domain.Account{
		AccountID:     uuid.NewString(),
		UserID:        uuid.NewString(),
		AccountNumber: "0987654321",
		Balance:       decimal.NewFromInt(100),
		CurrencyCode:  "USD",
		IsActive:      true,
	}
	req := suite.transferRequest(2000, target.AccountNumber)

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.account.AccountID).Return(&suite.account, nil).Once()
	suite.mockAccountRepo.On("FindAccountByNumber", mock.Anything, target.AccountNumber).Return(&target, nil).Once()
	suite.mockTxnRepo.On("SaveTransactions", mock.Anything, mock.Anything).Return(nil).Once()
	suite.expectAuditLogs(2)
	suite.mockUserReader.On("GetUserByID", mock.Anything, target.UserID).
		Return(&domain.User{UserID: target.UserID, FirstName: "Grace", LastName: "Hopper"}, nil).Once()
	suite.mockNotifier.On("Enqueue", mock.Anything, mock.MatchedBy(func(message string) bool {
		return strings.Contains(message, "Grace Hopper") &&
			strings.Contains(message, target.AccountNumber) &&
			strings.Contains(message, suite.account.AccountNumber)
	})).Return(nil).Once()

	_, err := suite.service.RecordTransaction(suite.ctx, req, suite.userID)

	assert.NoError(suite.T(), err)
	suite.mockUserReader.AssertExpectations(suite.T())
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestRecordTransaction_TransferMissingTarget() {
	req := suite.transferRequest(2000, "")
	req.TargetAccountNumber = nil

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.account.AccountID).Return(&suite.account, nil).Once()

	_, err := suite.service.RecordTransaction(suite.ctx, req, suite.userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidTransfer)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransactions", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestRecordTransaction_TransferTargetNotFound() {
	req := suite.transferRequest(2000, "0000000000")

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.account.AccountID).Return(&suite.account, nil).Once()
	suite.mockAccountRepo.On("FindAccountByNumber", mock.Anything, "0000000000").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.RecordTransaction(suite.ctx, req, suite.userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidTransfer)
}

func (suite *TransactionServiceTestSuite) TestRecordTransaction_TransferToSameAccount() {
	req := suite.transferRequest(2000, suite.account.AccountNumber)

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.account.AccountID).Return(&suite.account, nil).Once()
	suite.mockAccountRepo.On("FindAccountByNumber", mock.Anything, suite.account.AccountNumber).Return(&suite.account, nil).Once()

	_, err := suite.service.RecordTransaction(suite.ctx, req, suite.userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrSameAccountTransfer)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransactions", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestRecordTransaction_TransferTargetInactive() {
	target := domain.Account{
		AccountID:     uuid.NewString(),
		UserID:        uuid.NewString(),
		AccountNumber: "0987654321",
		IsActive:      false,
	}
	req := suite.transferRequest(2000, target.AccountNumber)

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.account.AccountID).Return(&suite.account, nil).Once()
	suite.mockAccountRepo.On("FindAccountByNumber", mock.Anything, target.AccountNumber).Return(&target, nil).Once()

	_, err := suite.service.RecordTransaction(suite.ctx, req, suite.userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidTransfer)
}

func (suite *TransactionServiceTestSuite) TestRecordTransaction_NotificationFailureDoesNotFail() {
	target := domain.Account{
		AccountID:     uuid.NewString(),
		UserID:        uuid.NewString(),
		AccountNumber: "0987654321",
		Balance:       decimal.NewFromInt(100),
		CurrencyCode:  "USD",
		IsActive:      true,
	}
	req := suite.transferRequest(2000, target.AccountNumber)

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.account.AccountID).Return(&suite.account, nil).Once()
	suite.mockAccountRepo.On("FindAccountByNumber", mock.Anything, target.AccountNumber).Return(&target, nil).Once()
	suite.mockTxnRepo.On("SaveTransactions", mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockLogWriter.On("Record", mock.Anything, mock.AnythingOfType("domain.LogEntry")).Return(assert.AnError).Times(2)
	suite.mockUserReader.On("GetUserByID", mock.Anything, target.UserID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockNotifier.On("Enqueue", mock.Anything, mock.AnythingOfType("string")).Return(assert.AnError).Once()

	txns, err := suite.service.RecordTransaction(suite.ctx, req, suite.userID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), txns, 2)
}

// --- GetTransactionByID ---

func (suite *TransactionServiceTestSuite) TestGetTransactionByID_Success() {
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		AccountID:       suite.account.AccountID,
		TransactionType: domain.Credit,
		Category:        domain.CategoryDepositATM,
		Amount:          decimal.NewFromInt(2500),
	}

	suite.mockTxnRepo.On("FindTransactionByID", mock.Anything, txn.TransactionID).Return(&txn, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.account.AccountID).Return(&suite.account, nil).Once()

	found, err := suite.service.GetTransactionByID(suite.ctx, txn.TransactionID, suite.userID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), txn.TransactionID, found.TransactionID)
}

func (suite *TransactionServiceTestSuite) TestGetTransactionByID_Forbidden() {
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		AccountID:     suite.account.AccountID,
	}

	suite.mockTxnRepo.On("FindTransactionByID", mock.Anything, txn.TransactionID).Return(&txn, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.account.AccountID).Return(&suite.account, nil).Once()

	_, err := suite.service.GetTransactionByID(suite.ctx, txn.TransactionID, uuid.NewString())

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

// --- ListTransactionsByAccount ---

func (suite *TransactionServiceTestSuite) TestListTransactionsByAccount_Success() {
	params := dto.ListTransactionsParams{Limit: 2}
	rows := []domain.Transaction{
		{TransactionID: uuid.NewString(), AccountID: suite.account.AccountID, Amount: decimal.NewFromInt(2000)},
		{TransactionID: uuid.NewString(), AccountID: suite.account.AccountID, Amount: decimal.NewFromInt(1200)},
	}

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.account.AccountID).Return(&suite.account, nil).Once()
	suite.mockTxnRepo.On("ListTransactionsByAccountID", mock.Anything, suite.account.AccountID, 2, (*string)(nil)).
		Return(rows, "next-page-token", nil).Once()

	page, err := suite.service.ListTransactionsByAccount(suite.ctx, suite.account.AccountID, suite.userID, params)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), page.Transactions, 2)
	assert.NotNil(suite.T(), page.NextToken)
	assert.Equal(suite.T(), "next-page-token", *page.NextToken)
}

func (suite *TransactionServiceTestSuite) TestListTransactionsByAccount_Forbidden() {
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.account.AccountID).Return(&suite.account, nil).Once()

	_, err := suite.service.ListTransactionsByAccount(suite.ctx, suite.account.AccountID, uuid.NewString(), dto.ListTransactionsParams{Limit: 10})

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ListTransactionsByAccountID", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

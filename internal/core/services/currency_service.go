package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Yeizermarrugo/BankSystem/internal/apperrors"
	"github.com/Yeizermarrugo/BankSystem/internal/core/domain"
	portsrepo "github.com/Yeizermarrugo/BankSystem/internal/core/ports/repositories"
	portssvc "github.com/Yeizermarrugo/BankSystem/internal/core/ports/services"
	"github.com/Yeizermarrugo/BankSystem/internal/dto"
	"github.com/Yeizermarrugo/BankSystem/internal/middleware"
)

type currencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates the currency service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

// CreateCurrency persists a new currency.
func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	currency := domain.Currency{
		CurrencyCode: req.CurrencyCode,
		Symbol:       req.Symbol,
		Name:         req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save currency in repository", slog.String("error", err.Error()), slog.String("currency_code", req.CurrencyCode))
		}
		return nil, err
	}

	logger.Info("Currency created", slog.String("currency_code", currency.CurrencyCode))
	return &currency, nil
}

// GetCurrencyByCode retrieves a specific currency by its code.
func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	return s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
}

// ListCurrencies retrieves all available currencies.
func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.FindCurrencies(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list currencies", slog.String("error", err.Error()))
		return nil, err
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

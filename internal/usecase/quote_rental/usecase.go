package quote_rental

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	rateTableRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/ratetable"
	"github.com/m04kA/SMC-TravelBooking/internal/pricing"
)

// UseCase use case расчета стоимости аренды по тарифной таблице
type UseCase struct {
	rateTableRepo RateTableRepository
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(rateTableRepo RateTableRepository, logger Logger) *UseCase {
	return &UseCase{
		rateTableRepo: rateTableRepo,
		logger:        logger,
	}
}

// Execute выполняет use case расчета аренды
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuoteRental: subject=%s, start=%s, end=%s",
		req.SubjectID, req.Start.Format(domain.DateFormat), req.End.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuoteRental: validation failed: %v", err)
		return nil, err
	}

	resp := &Response{
		SubjectID: req.SubjectID,
		Start:     req.Start,
		End:       req.End,
	}

	if !hasValidDates(req) {
		uc.logger.Info("QuoteRental: subject=%s awaits valid dates, no price", req.SubjectID)
		return resp, nil
	}

	// 2. Получаем тарифную таблицу
	table, err := uc.rateTableRepo.GetBySubjectID(ctx, req.SubjectID)
	if err != nil {
		if errors.Is(err, rateTableRepo.ErrRateTableNotFound) {
			uc.logger.Warn("QuoteRental: rate table for subject id=%s not found", req.SubjectID)
			return nil, ErrRateTableNotFound
		}
		uc.logger.Error("QuoteRental: failed to get rate table for subject id=%s: %v", req.SubjectID, err)
		return nil, fmt.Errorf("%w: failed to get rate table: %v", ErrPersistence, err)
	}

	// 3. Считаем стоимость
	quote, ok := pricing.ComputeRentalPrice(table, req.Start, req.End)
	if !ok {
		uc.logger.Warn("QuoteRental: no period covers %s for subject id=%s",
			req.Start.Format(domain.DateFormat), req.SubjectID)
		return resp, nil
	}

	uc.logger.Info("QuoteRental: subject=%s, period=%s, days=%d, total=%.2f",
		req.SubjectID, quote.Period.Name, quote.TotalDays, quote.TotalPrice)

	resp.Computable = true
	resp.Quote = &quote
	return resp, nil
}

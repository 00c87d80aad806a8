package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-invest/internal/domain"
	"github.com/fsdevblog/groph-invest/internal/repository/repoargs"
	"github.com/fsdevblog/groph-invest/internal/service/coins"
	"github.com/fsdevblog/groph-invest/pkg/uow"
)

// MinAmountMessage текст ошибки валидации минимальной суммы. Выводится пользователю как есть.
const MinAmountMessage = "Minimum investment amount is $100"

type InvestmentRequestService struct {
	uow         uow.UOW
	requestRepo InvestmentRequestRepository
	settingRepo SettingRepository
}

func NewInvestmentRequestService(u uow.UOW) (*InvestmentRequestService, error) {
	requestRepo, reqErr := uow.GetRepositoryAs[InvestmentRequestRepository](
		u, uow.RepositoryName(repoargs.RequestRepoName))
	if reqErr != nil {
		return nil, reqErr
	}
	settingRepo, setErr := uow.GetRepositoryAs[SettingRepository](
		u, uow.RepositoryName(repoargs.SettingRepoName))
	if setErr != nil {
		return nil, setErr
	}
	return &InvestmentRequestService{
		uow:         u,
		requestRepo: requestRepo,
		settingRepo: settingRepo,
	}, nil
}

// Submit создает заявку инвестора в статусе pending.
//
// Алгоритм работы:
//  1. Валидирует сумму: меньше минимальной - возвращается *domain.ValidationError,
//     до репозитория запрос не доходит.
//  2. Читает текущий курс из настроек. Курс фиксируется в заявке как снапшот: последующие
//     изменения курса на уже созданную заявку не влияют.
//  3. Рассчитывает discounted_rate и expected_coins через пакет coins и сохраняет запись.
func (s *InvestmentRequestService) Submit(
	ctx context.Context,
	investorID int64,
	amount decimal.Decimal,
) (*domain.InvestmentRequest, error) {
	if !coins.ValidAmount(amount) {
		return nil, domain.NewValidationError("investment_amount", MinAmountMessage)
	}

	rate, rateErr := s.currentRate(ctx)
	if rateErr != nil {
		return nil, fmt.Errorf("submitting investment request: %w", rateErr)
	}

	request, createErr := s.requestRepo.Create(ctx, repoargs.CreateInvestmentRequest{
		InvestorID:       investorID,
		InvestmentAmount: amount,
		CurrentRate:      rate,
		DiscountedRate:   coins.DiscountedRate(rate),
		ExpectedCoins:    coins.ExpectedCoins(amount, rate),
	})
	if createErr != nil {
		return nil, fmt.Errorf("submitting investment request: %w", createErr)
	}
	return request, nil
}

type ReviewArgs struct {
	RequestID int64
	AdminID   int64
	Status    domain.RequestStatusType
	Comment   string
}

// Review переводит pending заявку в конечный статус решением администратора.
//
// Переходы допустимы только pending -> approved и pending -> rejected. Если заявка уже
// разрешена, возвращается *domain.StatusConflictError с актуальной записью: клиент обязан
// свериться с ней, а не доверять своему локальному списку. При одобрении в той же
// транзакции создается договор.
func (s *InvestmentRequestService) Review(ctx context.Context, args ReviewArgs) (*domain.InvestmentRequest, error) {
	if !args.Status.IsTerminal() {
		return nil, domain.NewValidationError("status", "status must be approved or rejected")
	}

	var request *domain.InvestmentRequest

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		requestRepo, repoErr := uow.GetAs[InvestmentRequestRepository](
			tx, uow.RepositoryName(repoargs.RequestRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		var resolveErr error
		request, resolveErr = requestRepo.Resolve(c, repoargs.ResolveInvestmentRequest{
			ID:         args.RequestID,
			Status:     args.Status,
			ReviewedBy: args.AdminID,
			Comment:    args.Comment,
		})
		if resolveErr != nil {
			// Запись не затронута: либо заявки нет вовсе, либо она уже разрешена.
			// Разделяем эти случаи повторным чтением.
			if errors.Is(resolveErr, domain.ErrRecordNotFound) {
				existing, findErr := requestRepo.FindByID(c, args.RequestID)
				if findErr != nil {
					return findErr //nolint:wrapcheck
				}
				return domain.NewStatusConflictError(existing)
			}
			return resolveErr //nolint:wrapcheck
		}

		if args.Status == domain.RequestStatusApproved {
			return s.createContract(c, tx, request)
		}
		return nil
	})

	if txErr != nil {
		var conflictErr *domain.StatusConflictError
		if errors.As(txErr, &conflictErr) || errors.Is(txErr, domain.ErrRecordNotFound) {
			return nil, txErr
		}
		return nil, fmt.Errorf("reviewing investment request %d: %w", args.RequestID, txErr)
	}
	return request, nil
}

func (s *InvestmentRequestService) createContract(
	ctx context.Context,
	tx uow.TX,
	request *domain.InvestmentRequest,
) error {
	contractRepo, repoErr := uow.GetAs[ContractRepository](tx, uow.RepositoryName(repoargs.ContractRepoName))
	if repoErr != nil {
		return repoErr //nolint:wrapcheck
	}

	_, createErr := contractRepo.Create(ctx, repoargs.CreateContract{
		InvestorID:  request.InvestorID,
		RequestID:   request.ID,
		CoinAmount:  request.ExpectedCoins,
		TotalAmount: request.InvestmentAmount,
	})
	if createErr != nil {
		return createErr //nolint:wrapcheck
	}
	return nil
}

// Find возвращает заявки по фильтру, отсортированные по дате создания по убыванию.
func (s *InvestmentRequestService) Find(
	ctx context.Context,
	filter repoargs.RequestFilter,
) ([]domain.InvestmentRequest, error) {
	if filter.Status != "" && !domain.ValidRequestStatus(filter.Status) {
		return nil, domain.NewValidationError("status", "unknown status")
	}
	requests, err := s.requestRepo.Find(ctx, filter)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return requests, nil
}

// RequestsForNotification возвращает pending заявки, о которых администраторы еще не уведомлены.
func (s *InvestmentRequestService) RequestsForNotification(
	ctx context.Context,
	limit uint,
) ([]domain.InvestmentRequest, error) {
	requests, err := s.requestRepo.GetForNotification(ctx, limit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return requests, nil
}

// MarkNotified помечает заявки как доставленные администраторам. Идемпотентно: повторная
// пометка уже уведомленной заявки не является ошибкой.
func (s *InvestmentRequestService) MarkNotified(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	if err := s.requestRepo.MarkNotified(ctx, ids, time.Now()); err != nil {
		return fmt.Errorf("marking requests notified: %w", err)
	}
	return nil
}

func (s *InvestmentRequestService) currentRate(ctx context.Context) (decimal.Decimal, error) {
	setting, err := s.settingRepo.FindByKey(ctx, domain.SettingCurrentRate)
	if err != nil {
		return decimal.Zero, err //nolint:wrapcheck
	}
	if !setting.Value.IsPositive() {
		return decimal.Zero, domain.ErrRateNotPositive
	}
	return setting.Value, nil
}

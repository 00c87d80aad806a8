package pgrepo

import (
	"context"
	"strconv"
	"time"

	"github.com/fsdevblog/groph-invest/internal/domain"
	"github.com/fsdevblog/groph-invest/internal/repository/repoargs"
	"github.com/fsdevblog/groph-invest/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const requestColumns = `id, created_at, updated_at, investor_id, investment_amount,
current_rate, discounted_rate, expected_coins, status, reviewed_by, review_comment, notified_at`

type InvestmentRequestRepository struct {
	conn uow.DBTX
}

func NewInvestmentRequestRepository(conn uow.DBTX) *InvestmentRequestRepository {
	return &InvestmentRequestRepository{conn: conn}
}

// Create вставляет заявку в статусе pending. Все производные величины (discounted_rate,
// expected_coins) уже рассчитаны сервисным слоем и фиксируются как есть.
func (r *InvestmentRequestRepository) Create(
	ctx context.Context,
	args repoargs.CreateInvestmentRequest,
) (*domain.InvestmentRequest, error) {
	row := r.conn.QueryRow(ctx, `
		INSERT INTO investment_requests
			(investor_id, investment_amount, current_rate, discounted_rate, expected_coins, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+requestColumns,
		args.InvestorID, args.InvestmentAmount, args.CurrentRate,
		args.DiscountedRate, args.ExpectedCoins, domain.RequestStatusPending,
	)

	request, err := scanRequest(row)
	if err != nil {
		return nil, convertErr(err, "creating investment request for investor %d", args.InvestorID)
	}
	return request, nil
}

func (r *InvestmentRequestRepository) FindByID(ctx context.Context, id int64) (*domain.InvestmentRequest, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+requestColumns+` FROM investment_requests WHERE id = $1`, id)

	request, err := scanRequest(row)
	if err != nil {
		return nil, convertErr(err, "finding investment request by id %d", id)
	}
	return request, nil
}

// Resolve переводит заявку из pending в конечный статус. Условие status = 'pending'
// гарантирует, что из двух конкурирующих админских решений применится ровно одно:
// проигравший получит domain.ErrRecordNotFound.
func (r *InvestmentRequestRepository) Resolve(
	ctx context.Context,
	args repoargs.ResolveInvestmentRequest,
) (*domain.InvestmentRequest, error) {
	row := r.conn.QueryRow(ctx, `
		UPDATE investment_requests
		SET status = $1, reviewed_by = $2, review_comment = $3, updated_at = now()
		WHERE id = $4 AND status = $5
		RETURNING `+requestColumns,
		args.Status, args.ReviewedBy, args.Comment, args.ID, domain.RequestStatusPending,
	)

	request, err := scanRequest(row)
	if err != nil {
		return nil, convertErr(err, "resolving investment request %d to %s", args.ID, args.Status)
	}
	return request, nil
}

// Find возвращает заявки по фильтру, отсортированные по дате создания по убыванию.
func (r *InvestmentRequestRepository) Find(
	ctx context.Context,
	filter repoargs.RequestFilter,
) ([]domain.InvestmentRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM investment_requests WHERE 1=1`
	var queryArgs []any

	if filter.Status != "" {
		queryArgs = append(queryArgs, filter.Status)
		query += ` AND status = $` + strconv.Itoa(len(queryArgs))
	}
	if filter.InvestorID != 0 {
		queryArgs = append(queryArgs, filter.InvestorID)
		query += ` AND investor_id = $` + strconv.Itoa(len(queryArgs))
	}
	query += ` ORDER BY created_at DESC`
	if filter.Limit != 0 {
		queryArgs = append(queryArgs, filter.Limit)
		query += ` LIMIT $` + strconv.Itoa(len(queryArgs))
	}
	if filter.Offset != 0 {
		queryArgs = append(queryArgs, filter.Offset)
		query += ` OFFSET $` + strconv.Itoa(len(queryArgs))
	}

	rows, err := r.conn.Query(ctx, query, queryArgs...)
	if err != nil {
		return nil, convertErr(err, "finding investment requests")
	}
	return collectRequests(rows, "finding investment requests")
}

// GetForNotification возвращает pending заявки, о которых еще не уведомлены администраторы.
func (r *InvestmentRequestRepository) GetForNotification(
	ctx context.Context,
	limit uint,
) ([]domain.InvestmentRequest, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT `+requestColumns+`
		FROM investment_requests
		WHERE status = $1 AND notified_at IS NULL
		ORDER BY created_at ASC
		LIMIT $2`,
		domain.RequestStatusPending, int64(limit), //nolint:gosec
	)
	if err != nil {
		return nil, convertErr(err, "getting investment requests for notification")
	}
	return collectRequests(rows, "getting investment requests for notification")
}

// MarkNotified проставляет notified_at для перечисленных заявок.
func (r *InvestmentRequestRepository) MarkNotified(ctx context.Context, ids []int64, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.conn.Exec(ctx,
		`UPDATE investment_requests SET notified_at = $1, updated_at = now() WHERE id = ANY($2)`,
		at, ids,
	)
	if err != nil {
		return convertErr(err, "marking investment requests `%v` notified", ids)
	}
	return nil
}

func collectRequests(rows pgx.Rows, msg string) ([]domain.InvestmentRequest, error) {
	defer rows.Close()

	var requests []domain.InvestmentRequest
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return nil, convertErr(err, "%s", msg)
		}
		requests = append(requests, *request)
	}
	if err := rows.Err(); err != nil {
		return nil, convertErr(err, "%s", msg)
	}
	return requests, nil
}

func scanRequest(row pgx.Row) (*domain.InvestmentRequest, error) {
	var request domain.InvestmentRequest
	err := row.Scan(
		&request.ID, &request.CreatedAt, &request.UpdatedAt, &request.InvestorID,
		&request.InvestmentAmount, &request.CurrentRate, &request.DiscountedRate,
		&request.ExpectedCoins, &request.Status, &request.ReviewedBy,
		&request.ReviewComment, &request.NotifiedAt,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &request, nil
}

package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-invest/internal/domain"
	"github.com/fsdevblog/groph-invest/internal/repository/repoargs"
	"github.com/fsdevblog/groph-invest/pkg/uow"
)

const newsletterColumns = `id, created_at, updated_at, title, body, published_at`

type NewsletterRepository struct {
	conn uow.DBTX
}

func NewNewsletterRepository(conn uow.DBTX) *NewsletterRepository {
	return &NewsletterRepository{conn: conn}
}

func (r *NewsletterRepository) Create(ctx context.Context, args repoargs.CreateNewsletter) (*domain.Newsletter, error) {
	row := r.conn.QueryRow(ctx, `
		INSERT INTO newsletters (title, body, published_at)
		VALUES ($1, $2, now())
		RETURNING `+newsletterColumns,
		args.Title, args.Body,
	)

	var n domain.Newsletter
	if err := row.Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt, &n.Title, &n.Body, &n.PublishedAt); err != nil {
		return nil, convertErr(err, "creating newsletter `%s`", args.Title)
	}
	return &n, nil
}

// GetPublished возвращает опубликованные рассылки, свежие первыми.
func (r *NewsletterRepository) GetPublished(ctx context.Context, limit uint) ([]domain.Newsletter, error) {
	safeLimit, limitErr := safeConvertUintToInt32(limit)
	if limitErr != nil {
		return nil, convertErr(limitErr, "converting limit to int32")
	}

	rows, err := r.conn.Query(ctx, `
		SELECT `+newsletterColumns+`
		FROM newsletters
		WHERE published_at IS NOT NULL
		ORDER BY published_at DESC
		LIMIT $1`,
		safeLimit,
	)
	if err != nil {
		return nil, convertErr(err, "getting published newsletters")
	}
	defer rows.Close()

	var newsletters []domain.Newsletter
	for rows.Next() {
		var n domain.Newsletter
		if scanErr := rows.Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt, &n.Title, &n.Body, &n.PublishedAt); scanErr != nil {
			return nil, convertErr(scanErr, "getting published newsletters")
		}
		newsletters = append(newsletters, n)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting published newsletters")
	}
	return newsletters, nil
}

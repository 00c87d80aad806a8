package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-invest/internal/domain"
	"github.com/fsdevblog/groph-invest/internal/repository/repoargs"
	"github.com/fsdevblog/groph-invest/pkg/uow"
)

const referralColumns = `id, created_at, updated_at, investor_id, code, reward_percent, active`

type ReferralRepository struct {
	conn uow.DBTX
}

func NewReferralRepository(conn uow.DBTX) *ReferralRepository {
	return &ReferralRepository{conn: conn}
}

func (r *ReferralRepository) Create(ctx context.Context, args repoargs.CreateReferral) (*domain.Referral, error) {
	row := r.conn.QueryRow(ctx, `
		INSERT INTO referrals (investor_id, code, reward_percent, active)
		VALUES ($1, $2, $3, true)
		RETURNING `+referralColumns,
		args.InvestorID, args.Code, args.RewardPercent,
	)

	var ref domain.Referral
	if err := row.Scan(
		&ref.ID, &ref.CreatedAt, &ref.UpdatedAt, &ref.InvestorID,
		&ref.Code, &ref.RewardPercent, &ref.Active,
	); err != nil {
		return nil, convertErr(err, "creating referral with code `%s`", args.Code)
	}
	return &ref, nil
}

func (r *ReferralRepository) GetAll(ctx context.Context) ([]domain.Referral, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT `+referralColumns+` FROM referrals ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, convertErr(err, "getting referrals")
	}
	defer rows.Close()

	var referrals []domain.Referral
	for rows.Next() {
		var ref domain.Referral
		if scanErr := rows.Scan(
			&ref.ID, &ref.CreatedAt, &ref.UpdatedAt, &ref.InvestorID,
			&ref.Code, &ref.RewardPercent, &ref.Active,
		); scanErr != nil {
			return nil, convertErr(scanErr, "getting referrals")
		}
		referrals = append(referrals, ref)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting referrals")
	}
	return referrals, nil
}

// SetActive включает либо выключает реферальный код.
func (r *ReferralRepository) SetActive(ctx context.Context, id int64, active bool) error {
	tag, err := r.conn.Exec(ctx,
		`UPDATE referrals SET active = $1, updated_at = now() WHERE id = $2`, active, id,
	)
	if err != nil {
		return convertErr(err, "setting referral %d active=%t", id, active)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "setting referral %d active=%t", id, active)
	}
	return nil
}

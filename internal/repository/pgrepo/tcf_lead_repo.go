package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-invest/internal/domain"
	"github.com/fsdevblog/groph-invest/internal/repository/repoargs"
	"github.com/fsdevblog/groph-invest/pkg/uow"
)

const tcfLeadColumns = `id, created_at, updated_at, name, email, phone, message`

type TCFLeadRepository struct {
	conn uow.DBTX
}

func NewTCFLeadRepository(conn uow.DBTX) *TCFLeadRepository {
	return &TCFLeadRepository{conn: conn}
}

func (r *TCFLeadRepository) Create(ctx context.Context, args repoargs.CreateTCFLead) (*domain.TCFLead, error) {
	row := r.conn.QueryRow(ctx, `
		INSERT INTO tcf_leads (name, email, phone, message)
		VALUES ($1, $2, $3, $4)
		RETURNING `+tcfLeadColumns,
		args.Name, args.Email, args.Phone, args.Message,
	)

	var lead domain.TCFLead
	if err := row.Scan(
		&lead.ID, &lead.CreatedAt, &lead.UpdatedAt,
		&lead.Name, &lead.Email, &lead.Phone, &lead.Message,
	); err != nil {
		return nil, convertErr(err, "creating tcf lead from `%s`", args.Email)
	}
	return &lead, nil
}

func (r *TCFLeadRepository) GetAll(ctx context.Context, limit uint) ([]domain.TCFLead, error) {
	safeLimit, limitErr := safeConvertUintToInt32(limit)
	if limitErr != nil {
		return nil, convertErr(limitErr, "converting limit to int32")
	}

	rows, err := r.conn.Query(ctx,
		`SELECT `+tcfLeadColumns+` FROM tcf_leads ORDER BY created_at DESC LIMIT $1`, safeLimit,
	)
	if err != nil {
		return nil, convertErr(err, "getting tcf leads")
	}
	defer rows.Close()

	var leads []domain.TCFLead
	for rows.Next() {
		var lead domain.TCFLead
		if scanErr := rows.Scan(
			&lead.ID, &lead.CreatedAt, &lead.UpdatedAt,
			&lead.Name, &lead.Email, &lead.Phone, &lead.Message,
		); scanErr != nil {
			return nil, convertErr(scanErr, "getting tcf leads")
		}
		leads = append(leads, lead)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting tcf leads")
	}
	return leads, nil
}

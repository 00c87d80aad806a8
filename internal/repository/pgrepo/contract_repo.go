package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-invest/internal/domain"
	"github.com/fsdevblog/groph-invest/internal/repository/repoargs"
	"github.com/fsdevblog/groph-invest/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const contractColumns = `id, created_at, updated_at, investor_id, request_id, coin_amount,
total_amount, document_url`

type ContractRepository struct {
	conn uow.DBTX
}

func NewContractRepository(conn uow.DBTX) *ContractRepository {
	return &ContractRepository{conn: conn}
}

func (r *ContractRepository) Create(ctx context.Context, args repoargs.CreateContract) (*domain.Contract, error) {
	row := r.conn.QueryRow(ctx, `
		INSERT INTO contracts (investor_id, request_id, coin_amount, total_amount, document_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+contractColumns,
		args.InvestorID, args.RequestID, args.CoinAmount, args.TotalAmount, args.DocumentURL,
	)

	contract, err := scanContract(row)
	if err != nil {
		return nil, convertErr(err, "creating contract for request %d", args.RequestID)
	}
	return contract, nil
}

// GetByInvestorID возвращает договоры инвестора, отсортированные по дате создания по убыванию.
func (r *ContractRepository) GetByInvestorID(ctx context.Context, investorID int64) ([]domain.Contract, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT `+contractColumns+`
		FROM contracts
		WHERE investor_id = $1
		ORDER BY created_at DESC`,
		investorID,
	)
	if err != nil {
		return nil, convertErr(err, "getting contracts by investorID `%d`", investorID)
	}
	defer rows.Close()

	var contracts []domain.Contract
	for rows.Next() {
		contract, scanErr := scanContract(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "getting contracts by investorID `%d`", investorID)
		}
		contracts = append(contracts, *contract)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting contracts by investorID `%d`", investorID)
	}
	return contracts, nil
}

func scanContract(row pgx.Row) (*domain.Contract, error) {
	var contract domain.Contract
	err := row.Scan(
		&contract.ID, &contract.CreatedAt, &contract.UpdatedAt, &contract.InvestorID,
		&contract.RequestID, &contract.CoinAmount, &contract.TotalAmount, &contract.DocumentURL,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &contract, nil
}

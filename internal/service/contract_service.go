package service

import (
	"context"

	"github.com/fsdevblog/groph-invest/internal/domain"
	"github.com/fsdevblog/groph-invest/internal/repository/repoargs"
	"github.com/fsdevblog/groph-invest/pkg/uow"
)

type ContractService struct {
	contractRepo ContractRepository
}

func NewContractService(u uow.UOW) (*ContractService, error) {
	contractRepo, err := uow.GetRepositoryAs[ContractRepository](u, uow.RepositoryName(repoargs.ContractRepoName))
	if err != nil {
		return nil, err
	}
	return &ContractService{contractRepo: contractRepo}, nil
}

// GetByInvestorID возвращает договоры инвестора, свежие первыми.
func (s *ContractService) GetByInvestorID(ctx context.Context, investorID int64) ([]domain.Contract, error) {
	contracts, err := s.contractRepo.GetByInvestorID(ctx, investorID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return contracts, nil
}

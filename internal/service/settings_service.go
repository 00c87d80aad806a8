package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-invest/internal/domain"
	"github.com/fsdevblog/groph-invest/internal/repository/repoargs"
	"github.com/fsdevblog/groph-invest/pkg/uow"
	"github.com/shopspring/decimal"
)

// SettingsService отдает и обновляет настройки платформы. Сейчас настройка одна - текущий
// курс монеты, его читает форма подачи заявки и админка.
type SettingsService struct {
	settingRepo SettingRepository
}

func NewSettingsService(u uow.UOW) (*SettingsService, error) {
	settingRepo, err := uow.GetRepositoryAs[SettingRepository](u, uow.RepositoryName(repoargs.SettingRepoName))
	if err != nil {
		return nil, err
	}
	return &SettingsService{settingRepo: settingRepo}, nil
}

func (s *SettingsService) CurrentRate(ctx context.Context) (*domain.Setting, error) {
	setting, err := s.settingRepo.FindByKey(ctx, domain.SettingCurrentRate)
	if err != nil {
		return nil, fmt.Errorf("getting current rate: %w", err)
	}
	return setting, nil
}

// SetCurrentRate обновляет курс. Неположительный курс отклоняется: заявки с таким курсом
// дадут нулевое количество монет.
func (s *SettingsService) SetCurrentRate(ctx context.Context, value decimal.Decimal) (*domain.Setting, error) {
	if !value.IsPositive() {
		return nil, domain.ErrRateNotPositive
	}
	setting, err := s.settingRepo.Upsert(ctx, domain.SettingCurrentRate, value)
	if err != nil {
		return nil, fmt.Errorf("setting current rate: %w", err)
	}
	return setting, nil
}

package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-invest/internal/domain"
	"github.com/fsdevblog/groph-invest/pkg/uow"
	"github.com/shopspring/decimal"
)

const settingColumns = `id, created_at, updated_at, key, value`

type SettingRepository struct {
	conn uow.DBTX
}

func NewSettingRepository(conn uow.DBTX) *SettingRepository {
	return &SettingRepository{conn: conn}
}

func (r *SettingRepository) FindByKey(ctx context.Context, key string) (*domain.Setting, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+settingColumns+` FROM settings WHERE key = $1`, key)

	var setting domain.Setting
	if err := row.Scan(
		&setting.ID, &setting.CreatedAt, &setting.UpdatedAt, &setting.Key, &setting.Value,
	); err != nil {
		return nil, convertErr(err, "finding setting by key `%s`", key)
	}
	return &setting, nil
}

// Upsert создает или обновляет настройку по ключу.
func (r *SettingRepository) Upsert(ctx context.Context, key string, value decimal.Decimal) (*domain.Setting, error) {
	row := r.conn.QueryRow(ctx, `
		INSERT INTO settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
		RETURNING `+settingColumns,
		key, value,
	)

	var setting domain.Setting
	if err := row.Scan(
		&setting.ID, &setting.CreatedAt, &setting.UpdatedAt, &setting.Key, &setting.Value,
	); err != nil {
		return nil, convertErr(err, "upserting setting `%s`", key)
	}
	return &setting, nil
}

// Package adapters はreportフィーチャーの永続化実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	checkoutentity "kasir_backend/internal/feature/checkout/domain/entity"
	"kasir_backend/internal/feature/report/usecase"
)

// HistoryGorm はGORMを使ったHistoryRepositoryの実装です。
type HistoryGorm struct {
	db *gorm.DB
}

// NewHistoryGorm は指定されたDB接続でHistoryGormの新しいインスタンスを生成します。
func NewHistoryGorm(db *gorm.DB) *HistoryGorm {
	return &HistoryGorm{db: db}
}

var _ usecase.HistoryRepository = (*HistoryGorm)(nil)

// FindAll は全履歴行を時刻文字列の降順で返します。
func (r *HistoryGorm) FindAll(ctx context.Context) ([]checkoutentity.Sale, error) {
	var rows []checkoutentity.Sale
	if err := r.db.WithContext(ctx).Order("waktu DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

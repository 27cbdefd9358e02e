package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	catalogentity "kasir_backend/internal/feature/catalog/domain/entity"
	"kasir_backend/internal/feature/checkout/usecase"
)

// catalogGorm はProductCatalogインターフェースのGORM実装です。
// カート作成時の商品スナップショット取得に使います。
type catalogGorm struct {
	db *gorm.DB
}

// catalogGormがProductCatalogを実装していることをコンパイル時に検証します。
var _ usecase.ProductCatalog = (*catalogGorm)(nil)

// NewCatalogGorm は指定されたgorm.DB接続でcatalogGormの新しいインスタンスを生成します。
func NewCatalogGorm(db *gorm.DB) *catalogGorm {
	return &catalogGorm{db: db}
}

// ProductByID は商品の名前・単価・現在在庫を返します。
// 商品が存在しない場合、usecase.ErrProductNotFoundを返します。
func (r *catalogGorm) ProductByID(ctx context.Context, id uint) (string, int, int, error) {
	var p catalogentity.Product
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", 0, 0, usecase.ErrProductNotFound
		}
		return "", 0, 0, err
	}
	return p.Name, p.Price, p.Stock, nil
}

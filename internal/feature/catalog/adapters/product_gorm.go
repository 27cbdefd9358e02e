// Package adapters はcatalogフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"kasir_backend/internal/feature/catalog/domain/entity"
	"kasir_backend/internal/feature/catalog/usecase"
)

// productGorm はProductRepositoryインターフェースのGORM実装です。
type productGorm struct {
	db *gorm.DB
}

// productGormがProductRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.ProductRepository = (*productGorm)(nil)

// NewProductGorm は指定されたgorm.DB接続でproductGormの新しいインスタンスを生成します。
func NewProductGorm(db *gorm.DB) *productGorm {
	return &productGorm{db: db}
}

// Create は商品をデータベースに追加します。
func (r *productGorm) Create(ctx context.Context, p *entity.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// Update は商品の全カラムを保存します。
func (r *productGorm) Update(ctx context.Context, p *entity.Product) error {
	res := r.db.WithContext(ctx).Model(&entity.Product{}).Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"name":  p.Name,
			"price": p.Price,
			"stock": p.Stock,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrProductNotFound
	}
	return nil
}

// UpdateImage は画像パスのみ更新します。
func (r *productGorm) UpdateImage(ctx context.Context, id uint, path string) error {
	res := r.db.WithContext(ctx).Model(&entity.Product{}).Where("id = ?", id).
		Update("image", path)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrProductNotFound
	}
	return nil
}

// Delete はIDで商品を削除します。
// 対象が存在しない場合、usecase.ErrProductNotFoundを返します。
func (r *productGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrProductNotFound
	}
	return nil
}

// DeleteAll は全商品を削除します。
func (r *productGorm) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&entity.Product{}).Error
}

// FindAll は商品一覧をID順で返します。
// availableOnlyの場合は在庫が1以上の商品に絞ります（レジ画面向けクエリ）。
func (r *productGorm) FindAll(ctx context.Context, availableOnly bool) ([]entity.Product, error) {
	q := r.db.WithContext(ctx).Order("id")
	if availableOnly {
		q = q.Where("stock > 0")
	}
	var ps []entity.Product
	if err := q.Find(&ps).Error; err != nil {
		return nil, err
	}
	return ps, nil
}

// FindByID はIDで商品を取得します。
// 商品が存在しない場合、usecase.ErrProductNotFoundを返します。
func (r *productGorm) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

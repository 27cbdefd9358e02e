// Package usecase はcatalogフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"strings"

	"kasir_backend/internal/feature/catalog/domain/entity"
	"kasir_backend/internal/platform/money"
)

// ProductRepository は商品エンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはコンシューマー（usecase）が定義します。
type ProductRepository interface {
	// Create は新しい商品をストレージに永続化します。
	Create(ctx context.Context, p *entity.Product) error

	// Update は商品の名前・価格・在庫を更新します。
	// 対象が存在しない場合、エラーを返します。
	Update(ctx context.Context, p *entity.Product) error

	// UpdateImage は商品の画像パスのみを更新します。
	UpdateImage(ctx context.Context, id uint, path string) error

	// Delete はIDで商品を削除します。
	Delete(ctx context.Context, id uint) error

	// DeleteAll は全商品を削除します（商品データのリセット）。
	DeleteAll(ctx context.Context) error

	// FindAll は全商品を返します。availableOnlyの場合は在庫のある商品のみ返します。
	FindAll(ctx context.Context, availableOnly bool) ([]entity.Product, error)

	// FindByID はIDで商品を取得します。
	FindByID(ctx context.Context, id uint) (*entity.Product, error)
}

// catalogUsecase は商品管理のユースケースを実装します。
type catalogUsecase struct {
	products ProductRepository
}

// NewCatalogUsecase はcatalogUsecaseの新しいインスタンスを生成します。
func NewCatalogUsecase(products ProductRepository) *catalogUsecase {
	return &catalogUsecase{products: products}
}

// parseInput は名前・価格文字列・在庫を検証して正規化します。
// 価格は"5.000"のような区切り付き入力も受け付けます（元のレジの入力仕様）。
func parseInput(name, priceStr string, stock int) (string, int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", 0, errors.New("product name is required")
	}
	price, err := money.ParsePrice(priceStr)
	if err != nil {
		return "", 0, ErrInvalidPrice
	}
	if stock < 0 {
		return "", 0, ErrInvalidStock
	}
	return name, price, nil
}

// List は商品一覧を返します。availableOnlyの場合は在庫切れを除外します。
func (u *catalogUsecase) List(ctx context.Context, availableOnly bool) ([]entity.Product, error) {
	return u.products.FindAll(ctx, availableOnly)
}

// Get はIDで商品1件を取得します。
func (u *catalogUsecase) Get(ctx context.Context, id uint) (*entity.Product, error) {
	return u.products.FindByID(ctx, id)
}

// Add は新しい商品を登録します。
func (u *catalogUsecase) Add(ctx context.Context, name, priceStr string, stock int) (*entity.Product, error) {
	name, price, err := parseInput(name, priceStr, stock)
	if err != nil {
		return nil, err
	}
	p := &entity.Product{Name: name, Price: price, Stock: stock}
	if err := u.products.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Edit は既存商品の名前・価格・在庫を更新します。
// 同時編集の競合は後勝ち（last-write-wins）です。
func (u *catalogUsecase) Edit(ctx context.Context, id uint, name, priceStr string, stock int) (*entity.Product, error) {
	name, price, err := parseInput(name, priceStr, stock)
	if err != nil {
		return nil, err
	}
	p, err := u.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Name = name
	p.Price = price
	p.Stock = stock
	if err := u.products.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// AttachImage はアップロード済み画像のパスを商品に紐付けます。
func (u *catalogUsecase) AttachImage(ctx context.Context, id uint, path string) error {
	if _, err := u.products.FindByID(ctx, id); err != nil {
		return err
	}
	return u.products.UpdateImage(ctx, id, path)
}

// Remove はIDで商品を削除します。
func (u *catalogUsecase) Remove(ctx context.Context, id uint) error {
	return u.products.Delete(ctx, id)
}

// Reset は全商品を削除します。取引履歴には触れません。
func (u *catalogUsecase) Reset(ctx context.Context) error {
	return u.products.DeleteAll(ctx)
}

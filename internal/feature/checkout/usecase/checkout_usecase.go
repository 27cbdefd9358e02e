// Package usecase はcheckoutフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"time"

	"kasir_backend/internal/feature/checkout/domain/entity"
	"kasir_backend/internal/feature/checkout/receipt"
	"kasir_backend/internal/platform/clock"
)

// CartStore はレジ担当者ごとのカートを保持します。
// カートは1セッション限りの揮発データで、会計成功時に破棄されます。
type CartStore interface {
	// Lines はカートの中身を追加順で返します。
	Lines(operator string) []entity.CartLine
	// Add はカート末尾に1行追加します。
	Add(operator string, line entity.CartLine)
	// Remove は指定位置の1行を取り除きます。範囲外の場合エラーを返します。
	Remove(operator string, index int) error
	// Clear はカートを空にします。
	Clear(operator string)
}

// ProductCatalog はカート作成時の商品参照を抽象化します。
// Goの慣例に従い、インターフェースはコンシューマー（usecase）が定義します。
type ProductCatalog interface {
	// ProductByID は商品の名前・単価・現在在庫を返します。
	ProductByID(ctx context.Context, id uint) (name string, price, stock int, err error)
}

// SaleStore は会計の永続化を抽象化します。
type SaleStore interface {
	// CommitSale は1トランザクションで全行の在庫を検証・減算し、
	// 伝票番号を採番して履歴行を書き込みます。いずれかの行で在庫不足の
	// 場合はStockShortageErrorを返し、一切の変更を永続化しません。
	CommitSale(ctx context.Context, lines []entity.CartLine, operator string, now time.Time) (string, error)

	// FindByNota は伝票番号に属する履歴行を返します。
	FindByNota(ctx context.Context, nota string) ([]entity.Sale, error)
}

// WaktuParser は履歴行の時刻文字列を解釈します（レシート再印字用）。
type WaktuParser func(s string) (time.Time, bool)

// checkoutUsecase は会計のユースケースを実装します。
type checkoutUsecase struct {
	carts      CartStore
	catalog    ProductCatalog
	sales      SaleStore
	clk        clock.Clock
	parseWaktu WaktuParser
}

// NewCheckoutUsecase はcheckoutUsecaseの新しいインスタンスを生成します。
func NewCheckoutUsecase(carts CartStore, catalog ProductCatalog, sales SaleStore, clk clock.Clock, parseWaktu WaktuParser) *checkoutUsecase {
	return &checkoutUsecase{
		carts:      carts,
		catalog:    catalog,
		sales:      sales,
		clk:        clk,
		parseWaktu: parseWaktu,
	}
}

// AddToCart は商品をカートに追加します。
// 単価は追加時点のカタログ価格をスナップショットします。
// 追加時点の在庫を超える数量は受け付けません（会計時に再検証されます）。
func (u *checkoutUsecase) AddToCart(ctx context.Context, operator string, productID uint, qty int) (entity.CartLine, error) {
	if qty < 1 {
		return entity.CartLine{}, ErrInvalidQty
	}

	name, price, stock, err := u.catalog.ProductByID(ctx, productID)
	if err != nil {
		return entity.CartLine{}, err
	}
	if stock < qty {
		return entity.CartLine{}, &StockShortageError{Product: name}
	}

	line := entity.CartLine{Name: name, Price: price, Qty: qty}
	u.carts.Add(operator, line)
	return line, nil
}

// ViewCart はカートの中身と合計金額を返します。
func (u *checkoutUsecase) ViewCart(operator string) ([]entity.CartLine, int) {
	lines := u.carts.Lines(operator)
	return lines, entity.CartTotal(lines)
}

// RemoveFromCart は指定位置の1行を取り除きます。
func (u *checkoutUsecase) RemoveFromCart(operator string, index int) error {
	return u.carts.Remove(operator, index)
}

// ClearCart はカートを空にします。
func (u *checkoutUsecase) ClearCart(operator string) {
	u.carts.Clear(operator)
}

// Checkout は現在のカートを会計します。
// 全行の在庫検証・減算・伝票採番・履歴書き込みは1トランザクションで行われ、
// どれか1行でも在庫不足なら何も永続化されず、カートも保持されます。
// 成功時はカートを空にし、レシートを返します。
func (u *checkoutUsecase) Checkout(ctx context.Context, operator string) (*receipt.Receipt, error) {
	lines := u.carts.Lines(operator)
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	now := u.clk.Now()
	nota, err := u.sales.CommitSale(ctx, lines, operator, now)
	if err != nil {
		// 在庫不足時はカートに手を付けない
		return nil, err
	}

	u.carts.Clear(operator)
	return receipt.New(nota, now, lines), nil
}

// Receipt は既存取引のレシートを履歴行から再構成します。
func (u *checkoutUsecase) Receipt(ctx context.Context, nota string) (*receipt.Receipt, error) {
	rows, err := u.sales.FindByNota(ctx, nota)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotaNotFound
	}

	lines := make([]entity.CartLine, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, entity.CartLine{Name: r.Name, Price: r.Price, Qty: r.Qty})
	}

	// 全行同一時刻で書かれるため先頭行の時刻を使う
	at, ok := u.parseWaktu(rows[0].Waktu)
	if !ok {
		at = u.clk.Now()
	}

	return receipt.New(nota, at, lines), nil
}

package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	catalogentity "kasir_backend/internal/feature/catalog/domain/entity"
	"kasir_backend/internal/feature/checkout/domain/entity"
	"kasir_backend/internal/feature/checkout/usecase"
	"kasir_backend/internal/platform/clock"
)

// saleGorm はSaleStoreインターフェースのGORM実装です。
type saleGorm struct {
	db *gorm.DB
}

// saleGormがSaleStoreを実装していることをコンパイル時に検証します。
var _ usecase.SaleStore = (*saleGorm)(nil)

// NewSaleGorm は指定されたgorm.DB接続でsaleGormの新しいインスタンスを生成します。
func NewSaleGorm(db *gorm.DB) *saleGorm {
	return &saleGorm{db: db}
}

// CommitSale は会計を1トランザクションで永続化します。
//   - 各行について現在在庫を読み、不足があれば全体をロールバック
//   - 全行分の在庫を減算
//   - 当日の伝票カウンタを採番（日付キーごとに1から単調増加）
//   - 履歴行を書き込み（全行が同じ伝票番号・同じ時刻を共有）
//
// 採番をトランザクション内で行うため、同一日の並行会計でも
// カウンタの読み書き競合は起きません。
func (r *saleGorm) CommitSale(ctx context.Context, lines []entity.CartLine, operator string, now time.Time) (string, error) {
	var nota string

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 在庫の検証と減算
		for _, l := range lines {
			var p catalogentity.Product
			if err := tx.Where("name = ?", l.Name).First(&p).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &usecase.StockShortageError{Product: l.Name}
				}
				return err
			}
			if p.Stock < l.Qty {
				return &usecase.StockShortageError{Product: l.Name}
			}
			if err := tx.Model(&catalogentity.Product{}).Where("id = ?", p.ID).
				Update("stock", gorm.Expr("stock - ?", l.Qty)).Error; err != nil {
				return err
			}
		}

		// 伝票番号の採番
		key := clock.DateKey(now)
		var counter entity.InvoiceCounter
		err := tx.Where("tanggal = ?", key).First(&counter).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			counter = entity.InvoiceCounter{Tanggal: key, Nomor: 1}
			if err := tx.Create(&counter).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			counter.Nomor++
			if err := tx.Model(&entity.InvoiceCounter{}).Where("tanggal = ?", key).
				Update("nomor", counter.Nomor).Error; err != nil {
				return err
			}
		}
		nota = entity.FormatNota(key, counter.Nomor)

		// 履歴行の書き込み（伝票番号と時刻を全行で共有）
		waktu := now.Format(time.RFC3339)
		for _, l := range lines {
			row := entity.Sale{
				Name:  l.Name,
				Price: l.Price,
				Qty:   l.Qty,
				Kasir: operator,
				Waktu: waktu,
				Nota:  nota,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return nota, nil
}

// FindByNota は伝票番号に属する履歴行をID順で返します。
func (r *saleGorm) FindByNota(ctx context.Context, nota string) ([]entity.Sale, error) {
	var rows []entity.Sale
	if err := r.db.WithContext(ctx).Where("nota = ?", nota).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

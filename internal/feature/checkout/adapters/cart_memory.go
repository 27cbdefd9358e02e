// Package adapters はcheckoutフィーチャーのストア実装を提供します。
package adapters

import (
	"sync"

	"kasir_backend/internal/feature/checkout/domain/entity"
	"kasir_backend/internal/feature/checkout/usecase"
)

// cartMemory はCartStoreインターフェースのプロセス内実装です。
// カートは担当者名をキーに保持し、プロセス終了で消えます。
type cartMemory struct {
	mu    sync.Mutex
	carts map[string][]entity.CartLine
}

// cartMemoryがCartStoreを実装していることをコンパイル時に検証します。
var _ usecase.CartStore = (*cartMemory)(nil)

// NewCartMemory はcartMemoryの新しいインスタンスを生成します。
func NewCartMemory() *cartMemory {
	return &cartMemory{carts: make(map[string][]entity.CartLine)}
}

// Lines はカートの中身のコピーを追加順で返します。
func (s *cartMemory) Lines(operator string) []entity.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	src := s.carts[operator]
	out := make([]entity.CartLine, len(src))
	copy(out, src)
	return out
}

// Add はカート末尾に1行追加します。
func (s *cartMemory) Add(operator string, line entity.CartLine) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[operator] = append(s.carts[operator], line)
}

// Remove は指定位置の1行を取り除きます。
func (s *cartMemory) Remove(operator string, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[operator]
	if index < 0 || index >= len(lines) {
		return usecase.ErrLineNotFound
	}
	s.carts[operator] = append(lines[:index], lines[index+1:]...)
	return nil
}

// Clear はカートを空にします。
func (s *cartMemory) Clear(operator string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, operator)
}

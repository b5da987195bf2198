package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/Aellun/exam-wishes-app/internal/domain"
)

var (
	ErrStoreTimeout     = errors.New("wish store timeout")
	ErrStoreUnavailable = errors.New("wish store unavailable")
)

type WishRepository interface {
	Append(ctx context.Context, wish domain.Wish) error
	ReadAll(ctx context.Context) ([]domain.Wish, int, error)
}

// MemoryWishRepository guarda los deseos en memoria; se usa en pruebas y
// cuando no hay hoja de cálculo configurada.
type MemoryWishRepository struct {
	mu     sync.Mutex
	wishes []domain.Wish
}

func NewMemoryWishRepository() *MemoryWishRepository {
	return &MemoryWishRepository{}
}

func (r *MemoryWishRepository) Append(_ context.Context, wish domain.Wish) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.wishes = append(r.wishes, wish)
	return nil
}

func (r *MemoryWishRepository) ReadAll(_ context.Context) ([]domain.Wish, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Wish, len(r.wishes))
	copy(out, r.wishes)
	return out, 0, nil
}

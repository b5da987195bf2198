package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/Aellun/exam-wishes-app/internal/domain"
	"github.com/Aellun/exam-wishes-app/internal/repository"
)

const (
	MaxTextLength   = 500
	MaxAuthorLength = 50
)

var (
	ErrWishServiceNotConfigured = errors.New("wish service not configured")
	ErrTextEmpty                = errors.New("wish text is empty")
	ErrTextTooLong              = errors.New("wish text too long")
	ErrAuthorTooLong            = errors.New("wish author too long")
)

// WishService encapsula la lógica para publicar y listar deseos.
type WishService struct {
	logger *zap.Logger
	repo   repository.WishRepository
}

func NewWishService(logger *zap.Logger, repo repository.WishRepository) *WishService {
	return &WishService{logger: logger, repo: repo}
}

// Submit valida el texto, completa autor y fecha, y persiste el deseo.
func (s *WishService) Submit(ctx context.Context, text, author string) (domain.Wish, error) {
	if s == nil || s.repo == nil {
		return domain.Wish{}, ErrWishServiceNotConfigured
	}

	text = strings.TrimSpace(text)
	author = strings.TrimSpace(author)

	if text == "" {
		return domain.Wish{}, ErrTextEmpty
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		return domain.Wish{}, ErrTextTooLong
	}
	if utf8.RuneCountInString(author) > MaxAuthorLength {
		return domain.Wish{}, ErrAuthorTooLong
	}
	if author == "" {
		author = domain.AnonymousAuthor
	}

	wish := domain.Wish{
		Text:      text,
		Author:    author,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Append(ctx, wish); err != nil {
		return domain.Wish{}, err
	}
	return wish, nil
}

// ListAll devuelve los deseos en el orden de inserción del almacén, sin
// reordenar ni cachear.
func (s *WishService) ListAll(ctx context.Context) ([]domain.Wish, error) {
	if s == nil || s.repo == nil {
		return nil, ErrWishServiceNotConfigured
	}
	wishes, skipped, err := s.repo.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	if skipped > 0 && s.logger != nil {
		s.logger.Warn("skipped unparseable sheet rows", zap.Int("skipped", skipped))
	}
	if wishes == nil {
		wishes = []domain.Wish{}
	}
	return wishes, nil
}

// ListByAuthor filtra el listado por autor; con autor vacío devuelve todo.
func (s *WishService) ListByAuthor(ctx context.Context, author string) ([]domain.Wish, error) {
	wishes, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	author = strings.TrimSpace(author)
	if author == "" {
		return wishes, nil
	}
	filtered := make([]domain.Wish, 0, len(wishes))
	for _, w := range wishes {
		if w.Author == author {
			filtered = append(filtered, w)
		}
	}
	return filtered, nil
}

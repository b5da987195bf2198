package service

import (
	"context"
	"strings"

	"github.com/Aellun/exam-wishes-app/internal/domain"
	"github.com/Aellun/exam-wishes-app/internal/repository"
)

// BoardService deriva títulos y estadísticas del tablón a partir de los
// destinatarios configurados.
type BoardService struct {
	repo       repository.WishRepository
	recipients []string
}

func NewBoardService(repo repository.WishRepository, recipients []string) *BoardService {
	clean := make([]string, 0, len(recipients))
	for _, name := range recipients {
		if name = strings.TrimSpace(name); name != "" {
			clean = append(clean, name)
		}
	}
	return &BoardService{repo: repo, recipients: clean}
}

// Info devuelve título, subtítulo y dedicatoria según los destinatarios.
func (s *BoardService) Info() domain.BoardInfo {
	return domain.BoardInfo{
		Title:      s.title(),
		Subtitle:   s.subtitle(),
		Dedication: s.Dedication(),
		Recipients: s.recipients,
	}
}

func (s *BoardService) Templates() []domain.Template {
	return domain.Templates
}

func (s *BoardService) Tones() []string {
	return domain.Tones
}

// Stats cuenta los deseos y los autores distintos.
func (s *BoardService) Stats(ctx context.Context) (domain.Stats, error) {
	wishes, _, err := s.repo.ReadAll(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	authors := make(map[string]struct{}, len(wishes))
	for _, w := range wishes {
		authors[w.Author] = struct{}{}
	}
	return domain.Stats{TotalWishes: len(wishes), UniqueAuthors: len(authors)}, nil
}

func (s *BoardService) title() string {
	if len(s.recipients) == 0 {
		return "Good Luck Board"
	}
	return "Good Luck " + joinNames(s.recipients) + "!"
}

func (s *BoardService) subtitle() string {
	if len(s.recipients) == 0 {
		return "Send warm exam wishes!"
	}
	return "Send warm wishes to " + joinNames(s.recipients) + " for their exams!"
}

// Dedication es el texto "para quién" que acompaña al tablón.
func (s *BoardService) Dedication() string {
	if len(s.recipients) == 0 {
		return "Everyone"
	}
	return joinNames(s.recipients)
}

func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " & " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " & " + names[len(names)-1]
	}
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Aellun/exam-wishes-app/internal/domain"
)

func TestParseRows(t *testing.T) {
	values := [][]interface{}{
		{"text", "author", "createdAt"},
		{"Good luck!", "Alex", "2026-06-01T10:00:00Z"},
		{"", "Sam", "2026-06-01T10:01:00Z"},
		{"manual edit", "Sam", "yesterday"},
		{"short row"},
		{"You got this", "", "2026-06-01T10:02:00Z"},
	}

	wishes, skipped := parseRows(values)
	if skipped != 3 {
		t.Fatalf("expected 3 skipped rows, got %d", skipped)
	}
	if len(wishes) != 2 {
		t.Fatalf("expected 2 wishes, got %d", len(wishes))
	}
	if wishes[0].Text != "Good luck!" || wishes[0].Author != "Alex" {
		t.Fatalf("unexpected first wish: %+v", wishes[0])
	}
	want := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	if !wishes[0].CreatedAt.Equal(want) {
		t.Fatalf("expected createdAt %v, got %v", want, wishes[0].CreatedAt)
	}
	if wishes[1].Author != domain.AnonymousAuthor {
		t.Fatalf("expected empty author cell to fall back to %q, got %q", domain.AnonymousAuthor, wishes[1].Author)
	}
}

func TestParseRows_NoHeader(t *testing.T) {
	values := [][]interface{}{
		{"First wish", "Alex", "2026-06-01T10:00:00Z"},
		{"Second wish", "Sam", "2026-06-01T10:01:00Z"},
	}

	wishes, skipped := parseRows(values)
	if skipped != 0 {
		t.Fatalf("expected no skipped rows, got %d", skipped)
	}
	if len(wishes) != 2 || wishes[0].Text != "First wish" || wishes[1].Text != "Second wish" {
		t.Fatalf("expected insertion order preserved, got %+v", wishes)
	}
}

func TestParseRows_Empty(t *testing.T) {
	wishes, skipped := parseRows(nil)
	if skipped != 0 || len(wishes) != 0 {
		t.Fatalf("expected empty result, got %d wishes / %d skipped", len(wishes), skipped)
	}
}

func TestWrapStoreErr(t *testing.T) {
	if wrapStoreErr(nil) != nil {
		t.Fatalf("expected nil for nil error")
	}
	timeoutErr := fmt.Errorf("rpc: %w", context.DeadlineExceeded)
	if !errors.Is(wrapStoreErr(timeoutErr), ErrStoreTimeout) {
		t.Fatalf("expected deadline errors to map to ErrStoreTimeout")
	}
	if !errors.Is(wrapStoreErr(errors.New("401 unauthorized")), ErrStoreUnavailable) {
		t.Fatalf("expected other errors to map to ErrStoreUnavailable")
	}
}

func TestMemoryWishRepository(t *testing.T) {
	repo := NewMemoryWishRepository()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		wish := domain.Wish{
			Text:      fmt.Sprintf("wish %d", i),
			Author:    "Alex",
			CreatedAt: time.Now().UTC(),
		}
		if err := repo.Append(ctx, wish); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}

	wishes, skipped, err := repo.ReadAll(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if skipped != 0 {
		t.Fatalf("expected no skipped rows, got %d", skipped)
	}
	if len(wishes) != 3 || wishes[0].Text != "wish 0" || wishes[2].Text != "wish 2" {
		t.Fatalf("expected insertion order preserved, got %+v", wishes)
	}

	// La lectura devuelve una copia: mutarla no afecta al almacén.
	wishes[0].Text = "mutated"
	again, _, _ := repo.ReadAll(ctx)
	if again[0].Text != "wish 0" {
		t.Fatalf("expected repository data to be isolated from returned slice")
	}
}

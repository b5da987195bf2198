package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Aellun/exam-wishes-app/internal/domain"
	"github.com/Aellun/exam-wishes-app/internal/repository"
)

type mockWishRepo struct {
	appended  []domain.Wish
	appendErr error
	readData  []domain.Wish
	readSkip  int
	readErr   error
}

func (m *mockWishRepo) Append(_ context.Context, wish domain.Wish) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.appended = append(m.appended, wish)
	return nil
}

func (m *mockWishRepo) ReadAll(_ context.Context) ([]domain.Wish, int, error) {
	if m.readErr != nil {
		return nil, 0, m.readErr
	}
	return m.readData, m.readSkip, nil
}

func TestWishServiceSubmit_TrimsAndDefaults(t *testing.T) {
	repo := &mockWishRepo{}
	svc := NewWishService(zap.NewNop(), repo)

	before := time.Now().UTC()
	wish, err := svc.Submit(context.Background(), "  Good luck!  ", "   ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if wish.Text != "Good luck!" {
		t.Fatalf("expected trimmed text, got %q", wish.Text)
	}
	if wish.Author != domain.AnonymousAuthor {
		t.Fatalf("expected anonymous author default, got %q", wish.Author)
	}
	if wish.CreatedAt.Before(before) {
		t.Fatalf("expected createdAt >= submit time")
	}
	if len(repo.appended) != 1 || repo.appended[0] != wish {
		t.Fatalf("expected wish to be appended, got %+v", repo.appended)
	}
}

func TestWishServiceSubmit_Validation(t *testing.T) {
	cases := []struct {
		name    string
		text    string
		author  string
		wantErr error
	}{
		{"empty text", "", "Alex", ErrTextEmpty},
		{"blank text", "   ", "Alex", ErrTextEmpty},
		{"text too long", strings.Repeat("a", MaxTextLength+1), "Alex", ErrTextTooLong},
		{"author too long", "Good luck!", strings.Repeat("b", MaxAuthorLength+1), ErrAuthorTooLong},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockWishRepo{}
			svc := NewWishService(zap.NewNop(), repo)
			if _, err := svc.Submit(context.Background(), tc.text, tc.author); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if len(repo.appended) != 0 {
				t.Fatalf("expected no store mutation on validation failure")
			}
		})
	}
}

func TestWishServiceSubmit_MaxLengthAccepted(t *testing.T) {
	repo := &mockWishRepo{}
	svc := NewWishService(zap.NewNop(), repo)

	if _, err := svc.Submit(context.Background(), strings.Repeat("a", MaxTextLength), "Alex"); err != nil {
		t.Fatalf("expected text of exactly %d chars to pass, got %v", MaxTextLength, err)
	}
}

func TestWishServiceSubmit_StoreErrorPropagates(t *testing.T) {
	storeErr := errors.New("sheet append failed")
	repo := &mockWishRepo{appendErr: storeErr}
	svc := NewWishService(zap.NewNop(), repo)

	if _, err := svc.Submit(context.Background(), "Good luck!", "Alex"); !errors.Is(err, storeErr) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}

func TestWishServiceListAll_PassThroughOrder(t *testing.T) {
	now := time.Now().UTC()
	repo := &mockWishRepo{readData: []domain.Wish{
		{Text: "first", Author: "A", CreatedAt: now},
		{Text: "second", Author: "B", CreatedAt: now.Add(time.Second)},
	}, readSkip: 2}
	svc := NewWishService(zap.NewNop(), repo)

	wishes, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(wishes) != 2 || wishes[0].Text != "first" || wishes[1].Text != "second" {
		t.Fatalf("expected store order preserved, got %+v", wishes)
	}
}

func TestWishServiceListAll_EmptyIsNotNil(t *testing.T) {
	svc := NewWishService(zap.NewNop(), &mockWishRepo{})

	wishes, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if wishes == nil {
		t.Fatalf("expected empty slice, got nil")
	}
}

func TestWishServiceListByAuthor(t *testing.T) {
	repo := &mockWishRepo{readData: []domain.Wish{
		{Text: "one", Author: "Alex"},
		{Text: "two", Author: "Sam"},
		{Text: "three", Author: "Alex"},
	}}
	svc := NewWishService(zap.NewNop(), repo)

	wishes, err := svc.ListByAuthor(context.Background(), " Alex ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(wishes) != 2 || wishes[0].Text != "one" || wishes[1].Text != "three" {
		t.Fatalf("expected only Alex wishes in order, got %+v", wishes)
	}

	all, err := svc.ListByAuthor(context.Background(), "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected empty filter to return everything, got %d", len(all))
	}
}

func TestWishServiceSubmitThenList(t *testing.T) {
	repo := repository.NewMemoryWishRepository()
	svc := NewWishService(zap.NewNop(), repo)

	submitted, err := svc.Submit(context.Background(), "Good luck!", "Alex")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	wishes, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(wishes) != 1 {
		t.Fatalf("expected exactly one wish, got %d", len(wishes))
	}
	if wishes[0] != submitted {
		t.Fatalf("expected listed wish to match submitted one, got %+v", wishes[0])
	}
}

package profile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoUpsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO profiles").
		WithArgs("user-1", "session-1", "Ana", "ana@example.com", "+34600000000", "Engineer", "Go", "5 years", `[{"language":"Spanish","proficiency":"Native"}]`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := &PGRepo{DB: db}
	rec := Record{
		UserID:     "user-1",
		SessionID:  "session-1",
		Name:       "Ana",
		Email:      "ana@example.com",
		Phone:      "+34600000000",
		Position:   "Engineer",
		Skills:     "Go",
		Experience: "5 years",
		Languages:  `[{"language":"Spanish","proficiency":"Native"}]`,
	}
	if err := repo.Upsert(context.Background(), rec); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoGetByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"user_id", "session_id", "name", "email", "phone", "position", "skills", "experience", "languages", "updated_at"}).
		AddRow("user-1", "session-1", "Ana", "ana@example.com", "", "Engineer", "", "", "[]", now)
	mock.ExpectQuery("SELECT user_id, session_id, name").
		WithArgs("user-1").
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	rec, err := repo.GetByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.Name != "Ana" || rec.Position != "Engineer" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoGetByUserNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT user_id, session_id, name").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	repo := &PGRepo{DB: db}
	if _, err := repo.GetByUser(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

package documents

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectExec("INSERT INTO documents").
		WithArgs("doc-1", "user-1", "cv.pdf", KindCV, "parsed text", "session-1", now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := &PGRepo{DB: db}
	err = repo.Create(context.Background(), Document{
		ID:        "doc-1",
		UserID:    "user-1",
		FileName:  "cv.pdf",
		Kind:      KindCV,
		Content:   "parsed text",
		SessionID: "session-1",
		CreatedAt: now,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "user_id", "file_name", "kind", "content", "session_id", "created_at"}).
		AddRow("doc-2", "user-1", "b.pdf", KindCV, "", "s", now).
		AddRow("doc-1", "user-1", "a.pdf", KindCoverLetter, "", "s", now.Add(-time.Hour))
	mock.ExpectQuery("SELECT id, user_id, file_name").
		WithArgs("user-1", 20, 0).
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	docs, err := repo.ListByUser(context.Background(), "user-1", 0, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 2 || docs[0].ID != "doc-2" {
		t.Fatalf("unexpected docs: %+v", docs)
	}
}

func TestPGRepoDeleteMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM documents").
		WithArgs("user-1", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := &PGRepo{DB: db}
	if err := repo.Delete(context.Background(), "user-1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

package resume

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoSetUpsertsWholesale(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	doc := EmptyDocument()
	doc.PersonalInfo.FullName = "Jane Doe"
	doc.Summary = "Backend engineer."

	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	mock.ExpectExec("INSERT INTO resumes").
		WithArgs("user-1", raw).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Set(context.Background(), "user-1", doc); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetDecodesStoredDocument(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	stored := EmptyDocument()
	stored.PersonalInfo.FullName = "Jane Doe"
	stored.Education = append(stored.Education, EducationEntry{ID: "edu-1", Type: EducationGraduation})
	raw, err := json.Marshal(stored)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	mock.ExpectQuery("SELECT data").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow(raw))

	doc, found, err := repo.Get(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !found {
		t.Fatalf("expected document to be found")
	}
	if doc.PersonalInfo.FullName != "Jane Doe" {
		t.Fatalf("unexpected full name: %q", doc.PersonalInfo.FullName)
	}
	if len(doc.Education) != 1 || doc.Education[0].ID != "edu-1" {
		t.Fatalf("unexpected education entries: %+v", doc.Education)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetMissingUserNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT data").
		WithArgs("missing-user").
		WillReturnRows(sqlmock.NewRows([]string{"data"}))

	_, found, err := repo.Get(context.Background(), "missing-user")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Fatalf("expected not found")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

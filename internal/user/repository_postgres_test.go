package user

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

var userTestColumns = []string{"id", "email", "password", "name", "role", "image", "created_at", "updated_at"}

func TestPostgresGetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows(userTestColumns).
		AddRow("u1", "a@example.com", "$2a$10$hash", "A", RoleUser, nil, "2026-01-01T00:00:00Z", "2026-01-01T00:00:00Z")
	mock.ExpectQuery("WHERE email =").WithArgs("a@example.com").WillReturnRows(rows)

	got, err := repo.GetByEmail("a@example.com")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.ID != "u1" || got.Role != RoleUser {
		t.Fatalf("unexpected user %+v", got)
	}
	if got.Image != nil {
		t.Fatalf("expected nil image for NULL column")
	}

	mock.ExpectQuery("WHERE email =").WithArgs("nobody@example.com").WillReturnRows(sqlmock.NewRows(userTestColumns))
	if _, err := repo.GetByEmail("nobody@example.com"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresSetRole(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("UPDATE app_user SET role").WithArgs(RoleAdmin, "u1").WillReturnResult(sqlmock.NewResult(0, 1))
	rows := sqlmock.NewRows(userTestColumns).
		AddRow("u1", "a@example.com", "$2a$10$hash", "A", RoleAdmin, nil, "2026-01-01T00:00:00Z", "2026-01-01T00:00:00Z")
	mock.ExpectQuery("WHERE id =").WithArgs("u1").WillReturnRows(rows)

	got, err := repo.SetRole("u1", RoleAdmin)
	if err != nil {
		t.Fatalf("set role failed: %v", err)
	}
	if got.Role != RoleAdmin {
		t.Fatalf("expected role %q, got %q", RoleAdmin, got.Role)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

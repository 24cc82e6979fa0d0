package property

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

var propertyTestColumns = []string{
	"id", "name", "name_th", "location", "location_th", "address",
	"beds", "baths", "area", "price", "type", "image",
	"images", "description", "amenities", "is_available",
	"created_at", "updated_at",
}

func propertyRow(rows *sqlmock.Rows, id, name, location string, price int) *sqlmock.Rows {
	return rows.AddRow(
		id, name, nil, location, nil, "1 Example Road",
		2, 1, 800, price, "Condo", "/images/rentals/rental1.jpg",
		"{/images/rentals/rental1.jpg}", nil, "{WiFi,Parking}", true,
		"2026-01-01T00:00:00Z", "2026-01-01T00:00:00Z",
	)
}

func TestPostgresListAvailable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows(propertyTestColumns)
	rows = propertyRow(rows, "a1", "City Condo", "Bangkok Central", 15000)
	rows = propertyRow(rows, "a2", "River Condo", "Chiang Mai", 18000)
	mock.ExpectQuery("WHERE is_available = TRUE").WillReturnRows(rows)

	got := repo.ListAvailable()
	if len(got) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(got))
	}
	if got[0].Name != "City Condo" {
		t.Fatalf("unexpected name %q", got[0].Name)
	}
	if len(got[0].Amenities) != 2 || got[0].Amenities[0] != "WiFi" {
		t.Fatalf("amenities not decoded: %v", got[0].Amenities)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresList_QueryErrorYieldsEmptyCatalog(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM property").WillReturnError(errors.New("relation does not exist"))

	got := repo.List()
	if len(got) != 0 {
		t.Fatalf("expected empty catalog on query error, got %d", len(got))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("WHERE id =").WithArgs("missing").WillReturnRows(sqlmock.NewRows(propertyTestColumns))

	if _, err := repo.GetByID("missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresUpdate_NoRowsAffected(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("UPDATE property").WillReturnResult(sqlmock.NewResult(0, 0))

	if _, err := repo.Update("missing", Property{Name: "X", Location: "Bangkok Central"}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("DELETE FROM property").WithArgs("a1").WillReturnResult(sqlmock.NewResult(0, 1))
	if err := repo.Delete("a1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	mock.ExpectExec("DELETE FROM property").WithArgs("gone").WillReturnResult(sqlmock.NewResult(0, 0))
	if err := repo.Delete("gone"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

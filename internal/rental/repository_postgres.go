package rental

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	listRentalsByUserQuery = `
		SELECT r.id, r.user_id, r.property_id, r.start_date, r.end_date, r.monthly_rent, r.status,
			p.name, p.location, p.image
		FROM rental r
		LEFT JOIN property p ON p.id = r.property_id
		WHERE r.user_id = $1
		ORDER BY r.start_date DESC, r.id
	`
	insertRentalQuery = `
		INSERT INTO rental (id, user_id, property_id, start_date, end_date, monthly_rent, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByUser(userID string) ([]Rental, error) {
	rows, err := r.db.Query(listRentalsByUserQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rentals := make([]Rental, 0)
	for rows.Next() {
		var (
			rental   Rental
			name     sql.NullString
			location sql.NullString
			image    sql.NullString
		)
		if err := rows.Scan(
			&rental.ID, &rental.UserID, &rental.PropertyID,
			&rental.StartDate, &rental.EndDate, &rental.MonthlyRent, &rental.Status,
			&name, &location, &image,
		); err != nil {
			return nil, err
		}
		if name.Valid {
			rental.Property = &PropertyInfo{
				Name:     name.String,
				Location: location.String,
				Image:    image.String,
			}
		}
		rentals = append(rentals, rental)
	}
	return rentals, nil
}

func (r *PostgresRepository) Create(rental Rental) (Rental, error) {
	_, err := r.db.Exec(insertRentalQuery,
		rental.ID, rental.UserID, rental.PropertyID,
		rental.StartDate, rental.EndDate, rental.MonthlyRent, rental.Status,
	)
	if err != nil {
		return Rental{}, err
	}
	return rental, nil
}

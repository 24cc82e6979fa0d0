package property

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	propertyColumns = `id, name, name_th, location, location_th, address, beds, baths, area, price, type, image, images, description, amenities, is_available, created_at, updated_at`

	listPropertiesQuery = `
		SELECT ` + propertyColumns + `
		FROM property
		ORDER BY created_at DESC, id
	`
	listAvailablePropertiesQuery = `
		SELECT ` + propertyColumns + `
		FROM property
		WHERE is_available = TRUE
		ORDER BY created_at DESC, id
	`
	getPropertyByIDQuery = `
		SELECT ` + propertyColumns + `
		FROM property
		WHERE id = $1
	`
	insertPropertyQuery = `
		INSERT INTO property (id, name, name_th, location, location_th, address, beds, baths, area, price, type, image, images, description, amenities, is_available, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
	`
	updatePropertyQuery = `
		UPDATE property
		SET name = $1,
			name_th = $2,
			location = $3,
			location_th = $4,
			address = $5,
			beds = $6,
			baths = $7,
			area = $8,
			price = $9,
			type = $10,
			image = $11,
			images = $12,
			description = $13,
			amenities = $14,
			is_available = $15,
			updated_at = $16
		WHERE id = $17
	`
	setAvailabilityQuery = `
		UPDATE property
		SET is_available = $1,
			updated_at = $2
		WHERE id = $3
	`
	deletePropertyQuery = `DELETE FROM property WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []Property {
	return r.list(listPropertiesQuery)
}

func (r *PostgresRepository) ListAvailable() []Property {
	return r.list(listAvailablePropertiesQuery)
}

func (r *PostgresRepository) list(query string) []Property {
	rows, err := r.db.Query(query)
	if err != nil {
		// table may not exist yet — keep the API resilient
		return []Property{}
	}
	defer rows.Close()

	out := make([]Property, 0)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (r *PostgresRepository) GetByID(id string) (Property, error) {
	row := r.db.QueryRow(getPropertyByIDQuery, id)
	p, err := scanProperty(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Property{}, ErrNotFound
		}
		return Property{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Create(p Property) (Property, error) {
	_, err := r.db.Exec(insertPropertyQuery,
		p.ID, p.Name, p.NameTH, p.Location, p.LocationTH, p.Address,
		p.Beds, p.Baths, p.Area, p.Price, p.Type, p.Image,
		pq.Array(p.Images), p.Description, pq.Array(p.Amenities),
		p.IsAvailable, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return Property{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Update(id string, p Property) (Property, error) {
	res, err := r.db.Exec(updatePropertyQuery,
		p.Name, p.NameTH, p.Location, p.LocationTH, p.Address,
		p.Beds, p.Baths, p.Area, p.Price, p.Type, p.Image,
		pq.Array(p.Images), p.Description, pq.Array(p.Amenities),
		p.IsAvailable, p.UpdatedAt, id,
	)
	if err != nil {
		return Property{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Property{}, ErrNotFound
	}
	p.ID = id
	return p, nil
}

func (r *PostgresRepository) SetAvailability(id string, available bool) (Property, error) {
	if _, err := r.db.Exec(setAvailabilityQuery, available, nowRFC3339(), id); err != nil {
		return Property{}, err
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id string) error {
	res, err := r.db.Exec(deletePropertyQuery, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanProperty(row rowScanner) (Property, error) {
	var (
		p           Property
		nameTH      sql.NullString
		locationTH  sql.NullString
		address     sql.NullString
		description sql.NullString
		createdAt   sql.NullString
		updatedAt   sql.NullString
		images      pq.StringArray
		amenities   pq.StringArray
	)

	err := row.Scan(
		&p.ID, &p.Name, &nameTH, &p.Location, &locationTH, &address,
		&p.Beds, &p.Baths, &p.Area, &p.Price, &p.Type, &p.Image,
		&images, &description, &amenities, &p.IsAvailable,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return Property{}, err
	}

	if nameTH.Valid {
		p.NameTH = &nameTH.String
	}
	if locationTH.Valid {
		p.LocationTH = &locationTH.String
	}
	if address.Valid {
		p.Address = address.String
	}
	if description.Valid {
		p.Description = &description.String
	}
	if createdAt.Valid {
		p.CreatedAt = createdAt.String
	}
	if updatedAt.Valid {
		p.UpdatedAt = updatedAt.String
	}
	p.Images = []string(images)
	p.Amenities = []string(amenities)

	return p, nil
}

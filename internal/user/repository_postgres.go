package user

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	userColumns = `id, email, password, name, role, image, created_at, updated_at`

	listUsersQuery = `
		SELECT ` + userColumns + `
		FROM app_user
		ORDER BY created_at, id
	`
	getUserByIDQuery = `
		SELECT ` + userColumns + `
		FROM app_user
		WHERE id = $1
	`
	getUserByEmailQuery = `
		SELECT ` + userColumns + `
		FROM app_user
		WHERE email = $1
	`
	insertUserQuery = `
		INSERT INTO app_user (id, email, password, name, role, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	updateUserQuery = `
		UPDATE app_user
		SET email = $1,
			password = $2,
			name = $3,
			updated_at = $4
		WHERE id = $5
	`
	setRoleQuery    = `UPDATE app_user SET role = $1 WHERE id = $2`
	deleteUserQuery = `DELETE FROM app_user WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []User {
	rows, err := r.db.Query(listUsersQuery)
	if err != nil {
		return []User{}
	}
	defer rows.Close()

	users := make([]User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			continue
		}
		users = append(users, user)
	}
	return users
}

func (r *PostgresRepository) GetByID(id string) (User, error) {
	return r.getOne(getUserByIDQuery, id)
}

func (r *PostgresRepository) GetByEmail(email string) (User, error) {
	return r.getOne(getUserByEmailQuery, email)
}

func (r *PostgresRepository) getOne(query string, arg any) (User, error) {
	row := r.db.QueryRow(query, arg)
	user, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return user, nil
}

func (r *PostgresRepository) Create(user User) (User, error) {
	_, err := r.db.Exec(insertUserQuery,
		user.ID, user.Email, user.Password, user.Name, user.Role,
		user.Image, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return User{}, err
	}
	return user, nil
}

func (r *PostgresRepository) Update(id string, user User) (User, error) {
	res, err := r.db.Exec(updateUserQuery,
		user.Email, user.Password, user.Name, user.UpdatedAt, id,
	)
	if err != nil {
		return User{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return User{}, ErrNotFound
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) SetRole(id string, role string) (User, error) {
	res, err := r.db.Exec(setRoleQuery, role, id)
	if err != nil {
		return User{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return User{}, ErrNotFound
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id string) error {
	res, err := r.db.Exec(deleteUserQuery, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanUser(row rowScanner) (User, error) {
	var (
		u     User
		image sql.NullString
	)
	err := row.Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.Role, &image, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return User{}, err
	}
	if image.Valid {
		u.Image = &image.String
	}
	return u, nil
}

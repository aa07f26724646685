package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/estatecerenti/umkm-monitoring-api/infrastructure/database/postgres"
	"github.com/estatecerenti/umkm-monitoring-api/internal/domain"
)

const usersTable = "users"

type UserRepository interface {
	CreateUser(user *domain.User) (*domain.User, error)
	UpdateUser(user *domain.UpdateUserRequest) error
	UpdatePassword(userID int, passwordHash string) error
	GetUserByPhone(phone string) (*domain.User, error)
	GetUserByName(name string) (*domain.User, error)
	GetUserByID(userID int) (*domain.User, error)
	ListUser() ([]*domain.User, error)
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) CreateUser(user *domain.User) (*domain.User, error) {
	queryBuilder := squirrel.
		Insert(usersTable).
		Columns("name", "phone", "password_hash", "active", "role_id", "estate").
		Values(user.Name, user.Phone, user.PasswordHash, user.Active, user.RoleID, user.Estate).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	usersSQL, usersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(usersSQL, usersArgs...).Scan(&user.ID)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) UpdateUser(req *domain.UpdateUserRequest) error {
	queryBuilder := squirrel.
		Update(usersTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": req.ID})

	if req.Name != nil && *req.Name != "" {
		queryBuilder = queryBuilder.Set("name", *req.Name)
	}

	if req.Phone != nil && *req.Phone != "" {
		queryBuilder = queryBuilder.Set("phone", *req.Phone)
	}

	if req.Active != nil {
		queryBuilder = queryBuilder.Set("active", *req.Active)
	}

	if req.RoleID != nil && *req.RoleID != 0 {
		queryBuilder = queryBuilder.Set("role_id", *req.RoleID)
	}

	if req.Estate != nil {
		queryBuilder = queryBuilder.Set("estate", req.Estate)
	}

	if req.Deleted != nil && *req.Deleted {
		queryBuilder = queryBuilder.Set("deleted", true)
		queryBuilder = queryBuilder.Set("deleted_at", squirrel.Expr("NOW()"))
	}

	usersSQL, usersArgs, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(usersSQL, usersArgs...)
	return err
}

func (r *userRepository) UpdatePassword(userID int, passwordHash string) error {
	queryBuilder := squirrel.
		Update(usersTable).
		Set("password_hash", passwordHash).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	usersSQL, usersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(usersSQL, usersArgs...)
	return err
}

const userColumns = "id, name, phone, password_hash, active, role_id, estate, created_at, updated_at"

func (r *userRepository) GetUserByPhone(phone string) (*domain.User, error) {
	return r.getUserBy("phone", phone)
}

func (r *userRepository) GetUserByName(name string) (*domain.User, error) {
	return r.getUserBy("name", name)
}

func (r *userRepository) getUserBy(column, value string) (*domain.User, error) {
	queryBuilder := squirrel.
		Select(userColumns).
		From(usersTable).
		Where(squirrel.Eq{"deleted": false, column: value}).
		PlaceholderFormat(squirrel.Dollar)

	userSQL, userArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	var user domain.User
	err = r.conn.QueryRow(userSQL, userArgs...).Scan(
		&user.ID,
		&user.Name,
		&user.Phone,
		&user.PasswordHash,
		&user.Active,
		&user.RoleID,
		&user.Estate,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) GetUserByID(userID int) (*domain.User, error) {
	var user domain.User
	err := r.conn.QueryRow(
		"SELECT "+userColumns+" FROM users WHERE deleted = false AND id = $1",
		userID,
	).Scan(
		&user.ID,
		&user.Name,
		&user.Phone,
		&user.PasswordHash,
		&user.Active,
		&user.RoleID,
		&user.Estate,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) ListUser() ([]*domain.User, error) {
	queryBuilder := squirrel.
		Select("id", "name", "phone", "active", "role_id", "estate", "created_at", "updated_at").
		From(usersTable).
		Where(squirrel.Eq{"deleted": false}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	usersSQL, usersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(usersSQL, usersArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Phone,
			&user.Active,
			&user.RoleID,
			&user.Estate,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, err
		}

		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

package postgres

import (
	"database/sql"

	"github.com/ceac-fct/placement-management/internal/auth"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetPasswordForEmail(email string) (string, string, error) {
	var passwordHash string
	var userID string
	query := `SELECT id, password_hash FROM users WHERE email = ? AND is_active = true`

	row := r.db.Raw(query, email).Row()
	if err := row.Scan(&userID, &passwordHash); err != nil {
		if err == sql.ErrNoRows {
			return "", "", auth.ErrUserNotFound
		}
		return "", "", err
	}
	return passwordHash, userID, nil
}

// GetUserRecord reads the raw account row. The stored role is returned as-is;
// role resolution belongs to the auth service.
func (r *Repository) GetUserRecord(userID string) (*auth.UserRecord, error) {
	var rec auth.UserRecord
	var role sql.NullString

	query := `SELECT id, email, nombre, apellido, role, is_active FROM users WHERE id = ? AND is_active = true`

	row := r.db.Raw(query, userID).Row()
	if err := row.Scan(&rec.ID, &rec.Email, &rec.Nombre, &rec.Apellido, &role, &rec.IsActive); err != nil {
		if err == sql.ErrNoRows {
			return nil, auth.ErrUserNotFound
		}
		return nil, err
	}
	rec.Role = role.String
	return &rec, nil
}

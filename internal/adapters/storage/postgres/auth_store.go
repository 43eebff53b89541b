package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"mivet-auth/internal/domain/auth"
)

var _ auth.Store = (*AuthStore)(nil)

// AuthStore persiste las tablas Usuario, Auth y Mascota.
type AuthStore struct {
	db *sql.DB
}

func NewAuthStore(db *sql.DB) *AuthStore {
	return &AuthStore{db: db}
}

func (s *AuthStore) GetUserByEmail(ctx context.Context, email string) (auth.User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, nombre, correo, contrasena, tipo_usuario, rol
		FROM usuario
		WHERE correo = $1
	`, email)

	var u auth.User
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.AccountType,
		&u.Role,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return auth.User{}, auth.ErrNotFound
		}
		return auth.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return u, nil
}

// CreateRegistration inserta usuario, secreto y mascotas dentro de una
// única transacción: commit sólo si entró todo, rollback ante cualquier
// fallo intermedio. El índice único sobre correo convierte la carrera
// entre dos registros concurrentes en un unique violation, que acá se
// mapea a ErrEmailTaken.
func (s *AuthStore) CreateRegistration(ctx context.Context, reg auth.Registration) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM usuario WHERE correo = $1)`,
		reg.User.Email,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check existing email: %w", err)
	}
	if exists {
		return auth.ErrEmailTaken
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO usuario (id, nombre, correo, contrasena, tipo_usuario, rol)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		reg.User.ID,
		reg.User.Name,
		reg.User.Email,
		reg.User.PasswordHash,
		reg.User.AccountType,
		reg.User.Role,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return auth.ErrEmailTaken
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO auth (id, id_usuario, token, secret, service)
		VALUES ($1, $2, $3, $4, $5)
	`,
		reg.Secret.ID,
		reg.Secret.UserID,
		reg.Secret.Token,
		reg.Secret.Secret,
		reg.Secret.Service,
	)
	if err != nil {
		return fmt.Errorf("failed to insert auth secret: %w", err)
	}

	for _, p := range reg.Pets {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO mascota (id, id_usuario, tipo, nombre, raza, fecha_nac)
			VALUES ($1, $2, $3, $4, $5, $6)
		`,
			p.ID,
			p.OwnerUserID,
			p.Type,
			p.Name,
			p.Breed,
			p.BirthDate,
		)
		if err != nil {
			return fmt.Errorf("failed to insert pet: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		if isUniqueViolation(err) {
			return auth.ErrEmailTaken
		}
		return fmt.Errorf("failed to commit registration: %w", err)
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

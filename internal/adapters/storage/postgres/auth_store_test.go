package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mivet-auth/internal/domain/auth"
	"mivet-auth/internal/domain/pets"
)

func testRegistration() auth.Registration {
	return auth.Registration{
		User: auth.User{
			ID:           "user-1",
			Name:         "Ana",
			Email:        "ana@x.com",
			PasswordHash: "$2a$10$hash",
			AccountType:  "cliente",
			Role:         "user",
		},
		Secret: auth.Secret{
			ID:      "secret-1",
			UserID:  "user-1",
			Token:   "jwt-token",
			Secret:  "abcdef0123456789abcdef0123456789",
			Service: "MiVet",
		},
		Pets: []pets.Pet{
			{ID: "pet-1", OwnerUserID: "user-1", Type: "perro", Name: "Rex", Breed: "Labrador", BirthDate: "2020-01-01"},
		},
	}
}

func TestAuthStore_GetUserByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "nombre", "correo", "contrasena", "tipo_usuario", "rol"}).
		AddRow("user-1", "Ana", "ana@x.com", "$2a$10$hash", "cliente", "user")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, nombre, correo, contrasena, tipo_usuario, rol")).
		WithArgs("ana@x.com").
		WillReturnRows(rows)

	store := NewAuthStore(db)
	user, err := store.GetUserByEmail(context.Background(), "ana@x.com")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "user", user.Role)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthStore_GetUserByEmail_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, nombre, correo, contrasena, tipo_usuario, rol")).
		WithArgs("nadie@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre", "correo", "contrasena", "tipo_usuario", "rol"}))

	store := NewAuthStore(db)
	_, err = store.GetUserByEmail(context.Background(), "nadie@x.com")
	require.ErrorIs(t, err, auth.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthStore_CreateRegistration(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	reg := testRegistration()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(reg.User.Email).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO usuario")).
		WithArgs(reg.User.ID, reg.User.Name, reg.User.Email, reg.User.PasswordHash, reg.User.AccountType, reg.User.Role).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO auth")).
		WithArgs(reg.Secret.ID, reg.Secret.UserID, reg.Secret.Token, reg.Secret.Secret, reg.Secret.Service).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO mascota")).
		WithArgs("pet-1", "user-1", "perro", "Rex", "Labrador", "2020-01-01").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	store := NewAuthStore(db)
	require.NoError(t, store.CreateRegistration(context.Background(), reg))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthStore_CreateRegistration_DuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	reg := testRegistration()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(reg.User.Email).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	store := NewAuthStore(db)
	err = store.CreateRegistration(context.Background(), reg)
	require.ErrorIs(t, err, auth.ErrEmailTaken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthStore_CreateRegistration_RaceLostOnInsert(t *testing.T) {
	// el pre-chequeo pasó pero otro registro ganó la carrera:
	// el índice único de correo responde con unique violation
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	reg := testRegistration()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(reg.User.Email).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO usuario")).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
	mock.ExpectRollback()

	store := NewAuthStore(db)
	err = store.CreateRegistration(context.Background(), reg)
	require.ErrorIs(t, err, auth.ErrEmailTaken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthStore_CreateRegistration_RollbackOnPetFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	reg := testRegistration()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(reg.User.Email).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO usuario")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO auth")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO mascota")).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	store := NewAuthStore(db)
	err = store.CreateRegistration(context.Background(), reg)
	require.Error(t, err)
	require.NotErrorIs(t, err, auth.ErrEmailTaken)
	require.NoError(t, mock.ExpectationsWereMet())
}

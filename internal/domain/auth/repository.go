package auth

import "context"

// Store define la persistencia que necesita este módulo.
type Store interface {
	// GetUserByEmail devuelve ErrNotFound si el correo no existe.
	GetUserByEmail(ctx context.Context, email string) (User, error)

	// CreateRegistration persiste usuario, secreto y mascotas como una
	// sola unidad atómica, preservando el orden de las mascotas.
	// Devuelve ErrEmailTaken si el correo ya está registrado (el chequeo
	// tiene que ser atómico respecto del insert para cerrar la carrera
	// entre dos registros concurrentes con el mismo correo).
	CreateRegistration(ctx context.Context, reg Registration) error
}

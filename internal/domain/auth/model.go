package auth

import "mivet-auth/internal/domain/pets"

// User representa una fila de la tabla Usuario.
// PasswordHash guarda bcrypt, nunca la contraseña en claro
// (desviación deliberada del servicio original, que comparaba texto plano).
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	AccountType  string // tipo_usuario: cliente, veterinario, ...
	Role         string
}

// Secret representa una fila de la tabla Auth: el token emitido en el
// registro más un secreto opaco por usuario. Este servicio la escribe
// una vez y nunca la vuelve a leer; el consumidor es externo.
type Secret struct {
	ID      string
	UserID  string
	Token   string
	Secret  string // 16 bytes aleatorios en hex (32 chars)
	Service string
}

// Registration agrupa todas las filas que crea una llamada a /register.
// Se persiste como unidad atómica: o entra todo o no entra nada.
type Registration struct {
	User   User
	Secret Secret
	Pets   []pets.Pet
}

// Session es el resultado de un login correcto.
type Session struct {
	Token  string
	UserID string
	Role   string
}

package pets

// Species define los tipos de animal soportados.
// @Enum perro, gato, exotico
type Species string

const (
	SpeciesDog    Species = "perro"
	SpeciesCat    Species = "gato"
	SpeciesExotic Species = "exotico"
)

// Pet representa una mascota asociada a un usuario en el registro.
// BirthDate se guarda como string opaco (YYYY-MM-DD por convención);
// el consumidor downstream no confirmó un formato estricto, así que
// no se parsea como fecha.
type Pet struct {
	ID          string
	OwnerUserID string

	Type      string // perro, gato, exotico
	Name      string
	Breed     string
	BirthDate string
}

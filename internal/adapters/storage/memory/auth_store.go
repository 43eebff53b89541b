package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"mivet-auth/internal/domain/auth"
	"mivet-auth/internal/domain/pets"
)

var _ auth.Store = (*AuthStore)(nil)

// AuthStore es la variante in-memory del Store, para modo dev y tests.
// El chequeo de correo duplicado y los inserts ocurren bajo el mismo
// lock, así que la unidad es atómica igual que la transacción de Postgres.
type AuthStore struct {
	mu      sync.RWMutex
	byEmail map[string]auth.User
	secrets map[string]auth.Secret // por user ID
	pets    map[string][]pets.Pet  // por user ID, en orden de inserción
}

func NewAuthStore() *AuthStore {
	return &AuthStore{
		byEmail: make(map[string]auth.User),
		secrets: make(map[string]auth.Secret),
		pets:    make(map[string][]pets.Pet),
	}
}

func (s *AuthStore) GetUserByEmail(ctx context.Context, email string) (auth.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byEmail[email]
	if !ok {
		return auth.User{}, auth.ErrNotFound
	}
	return u, nil
}

func (s *AuthStore) CreateRegistration(ctx context.Context, reg auth.Registration) error {
	if strings.TrimSpace(reg.User.ID) == "" {
		return errors.New("user id required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[reg.User.Email]; exists {
		return auth.ErrEmailTaken
	}

	s.byEmail[reg.User.Email] = reg.User
	s.secrets[reg.User.ID] = reg.Secret
	s.pets[reg.User.ID] = append([]pets.Pet(nil), reg.Pets...)
	return nil
}

// UserCount devuelve la cantidad de usuarios registrados (para tests).
func (s *AuthStore) UserCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byEmail)
}

// SecretByUser devuelve la fila Auth de un usuario (para tests).
func (s *AuthStore) SecretByUser(userID string) (auth.Secret, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sec, ok := s.secrets[userID]
	return sec, ok
}

// PetsByUser devuelve las mascotas de un usuario en orden de inserción
// (para tests y modo dev).
func (s *AuthStore) PetsByUser(userID string) []pets.Pet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]pets.Pet(nil), s.pets[userID]...)
}

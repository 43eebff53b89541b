package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"mivet-auth/internal/domain/pets"
	"mivet-auth/internal/platform/logger"
)

type Service struct {
	store Store
	codec *TokenCodec
	log   logger.Logger
}

func NewService(store Store, codec *TokenCodec, log logger.Logger) *Service {
	return &Service{
		store: store,
		codec: codec,
		log:   log,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

// Login verifica credenciales contra el Store y emite un token de sesión.
// Cualquier no-coincidencia (correo inexistente o contraseña incorrecta)
// devuelve el mismo ErrInvalidCredentials: no se filtra cuál de los dos falló.
func (s *Service) Login(ctx context.Context, in LoginInput) (Session, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return Session{}, ErrInvalidInput
	}

	user, err := s.store.GetUserByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	// bcrypt compara en tiempo constante
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return Session{}, ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user.ID, user.Role)
	if err != nil {
		return Session{}, fmt.Errorf("failed to issue session token: %w", err)
	}

	s.log.Info("login successful", map[string]any{"user_id": user.ID})

	return Session{
		Token:  token,
		UserID: user.ID,
		Role:   user.Role,
	}, nil
}

type PetInput struct {
	Type      string
	Name      string
	Breed     string
	BirthDate string
}

type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	AccountType string
	Role        string
	Pets        []PetInput // puede venir vacío
}

type RegisterResult struct {
	UserID string
	Token  string
	Role   string
	Secret string
}

// Register crea usuario, secreto y mascotas en una sola unidad atómica.
// El pre-chequeo de correo duplicado da la respuesta de conflicto rápida;
// la atomicidad de CreateRegistration cierra la carrera check-then-act
// cuando dos registros con el mismo correo llegan a la vez.
func (s *Service) Register(ctx context.Context, in RegisterInput) (RegisterResult, error) {
	email := strings.TrimSpace(in.Email)
	if strings.TrimSpace(in.Name) == "" || email == "" || in.Password == "" {
		return RegisterResult{}, ErrInvalidInput
	}

	_, err := s.store.GetUserByEmail(ctx, email)
	if err == nil {
		return RegisterResult{}, ErrEmailTaken
	}
	if !errors.Is(err, ErrNotFound) {
		return RegisterResult{}, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return RegisterResult{}, fmt.Errorf("failed to hash password: %w", err)
	}

	userID := uuid.NewString()

	token, err := s.codec.Issue(userID, in.Role)
	if err != nil {
		return RegisterResult{}, fmt.Errorf("failed to issue session token: %w", err)
	}

	secret, err := newUserSecret()
	if err != nil {
		return RegisterResult{}, err
	}

	reg := Registration{
		User: User{
			ID:           userID,
			Name:         strings.TrimSpace(in.Name),
			Email:        email,
			PasswordHash: string(hash),
			AccountType:  strings.TrimSpace(in.AccountType),
			Role:         strings.TrimSpace(in.Role),
		},
		Secret: Secret{
			ID:      uuid.NewString(),
			UserID:  userID,
			Token:   token,
			Secret:  secret,
			Service: ServiceName,
		},
		Pets: make([]pets.Pet, 0, len(in.Pets)),
	}

	// una fila por mascota, en el orden en que vinieron
	for _, p := range in.Pets {
		reg.Pets = append(reg.Pets, pets.Pet{
			ID:          uuid.NewString(),
			OwnerUserID: userID,
			Type:        strings.TrimSpace(p.Type),
			Name:        strings.TrimSpace(p.Name),
			Breed:       strings.TrimSpace(p.Breed),
			BirthDate:   strings.TrimSpace(p.BirthDate),
		})
	}

	if err := s.store.CreateRegistration(ctx, reg); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return RegisterResult{}, ErrEmailTaken
		}
		return RegisterResult{}, fmt.Errorf("failed to create registration: %w", err)
	}

	s.log.Info("registration successful", map[string]any{
		"user_id": userID,
		"pets":    len(reg.Pets),
	})

	return RegisterResult{
		UserID: userID,
		Token:  token,
		Role:   reg.User.Role,
		Secret: secret,
	}, nil
}

// newUserSecret genera el secreto opaco por registro:
// 16 bytes de crypto/rand, hex (32 caracteres).
func newUserSecret() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate user secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

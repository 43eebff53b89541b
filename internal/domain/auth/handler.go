package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/login", loginHandler(svc))
	r.Post("/register", registerHandler(svc))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"contrasena"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	UserID  string `json:"user_id"`
	Role    string `json:"rol"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type registerPetRequest struct {
	Type      string `json:"tipo"`
	Name      string `json:"nombre"`
	Breed     string `json:"raza"`
	BirthDate string `json:"fecha_nac"` // YYYY-MM-DD por convención

	// Nacimiento es un alias deprecado de fecha_nac que todavía mandan
	// clientes viejos; si fecha_nac viene vacío se usa este.
	Nacimiento string `json:"nacimiento,omitempty"`
}

type registerRequest struct {
	Name        string               `json:"nombre"`
	Email       string               `json:"correo"`
	Password    string               `json:"contrasena"`
	AccountType string               `json:"tipo_usuario"`
	Role        string               `json:"rol"`
	Pets        []registerPetRequest `json:"mascotas"` // opcional, default vacío
}

type registerResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  string `json:"user_id"`
	Token   string `json:"token"`
	Role    string `json:"rol"`
	Secret  string `json:"secret"`
}

// loginHandler godoc
// @Summary Iniciar sesión
// @Description Verifica email y contraseña contra el Store y devuelve un token de sesión firmado (HS256, 24h). La respuesta 401 es la misma sin importar si falló el correo o la contraseña.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciales"
// @Success 200 {object} loginResponse
// @Failure 400 {object} errorResponse "campos requeridos faltantes"
// @Failure 401 {object} errorResponse "Credenciales inválidas"
// @Failure 500 {object} errorResponse
// @Router /login [post]
func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: "JSON inválido"})
			return
		}

		session, err := svc.Login(r.Context(), LoginInput{
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				writeJSON(w, http.StatusBadRequest, errorResponse{Message: "email y contrasena son requeridos"})
			case errors.Is(err, ErrInvalidCredentials):
				writeJSON(w, http.StatusUnauthorized, errorResponse{Message: "Credenciales inválidas"})
			default:
				writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "Error interno del servidor: " + err.Error()})
			}
			return
		}

		writeJSON(w, http.StatusOK, loginResponse{
			Success: true,
			Token:   session.Token,
			UserID:  session.UserID,
			Role:    session.Role,
		})
	}
}

// registerHandler godoc
// @Summary Registrar usuario y mascotas
// @Description Crea el usuario, su secreto de Auth y cero o más mascotas en una sola transacción. Devuelve el token de sesión recién emitido y el secreto opaco del usuario.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body registerRequest true "Datos de registro; mascotas es opcional"
// @Success 200 {object} registerResponse
// @Failure 400 {object} errorResponse "correo ya registrado o datos incompletos"
// @Failure 500 {object} errorResponse
// @Router /register [post]
func registerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: "JSON inválido"})
			return
		}

		in := RegisterInput{
			Name:        req.Name,
			Email:       req.Email,
			Password:    req.Password,
			AccountType: req.AccountType,
			Role:        req.Role,
			Pets:        make([]PetInput, 0, len(req.Pets)),
		}
		for _, p := range req.Pets {
			birth := p.BirthDate
			if birth == "" {
				birth = p.Nacimiento
			}
			in.Pets = append(in.Pets, PetInput{
				Type:      p.Type,
				Name:      p.Name,
				Breed:     p.Breed,
				BirthDate: birth,
			})
		}

		result, err := svc.Register(r.Context(), in)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Datos de registro incompletos"})
			case errors.Is(err, ErrEmailTaken):
				writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Este correo ya está registrado"})
			default:
				writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "Error interno del servidor: " + err.Error()})
			}
			return
		}

		writeJSON(w, http.StatusOK, registerResponse{
			Success: true,
			Message: "Usuario y mascotas registradas correctamente",
			UserID:  result.UserID,
			Token:   result.Token,
			Role:    result.Role,
			Secret:  result.Secret,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

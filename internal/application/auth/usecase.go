package auth

import (
	"github.com/tu-usuario/poms-pro/internal/application/dto"
	"github.com/tu-usuario/poms-pro/internal/domain"
	"github.com/tu-usuario/poms-pro/internal/domain/entity"
	"github.com/tu-usuario/poms-pro/internal/domain/repository"
	"github.com/tu-usuario/poms-pro/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y verificación de credenciales.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password, genera el token de sesión y retorna token + usuario.
// Cuenta inexistente y password incorrecto devuelven el mismo ErrInvalidCredentials;
// la distinción sería un vector de enumeración de cuentas.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.verifyCredentials(in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrInactiveUser
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role.String(), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// Validate verifica credenciales fuera de banda sin emitir sesión.
// Devuelve el usuario sin hash si son válidas; nunca distingue cuenta
// inexistente de password incorrecto.
func (uc *AuthUseCase) Validate(in dto.ValidateRequest) (*dto.ValidateResponse, error) {
	user, err := uc.verifyCredentials(in.Email, in.Password)
	if err != nil {
		if err == domain.ErrInvalidCredentials {
			return &dto.ValidateResponse{Valid: false, Error: "credenciales inválidas"}, nil
		}
		return nil, err
	}
	return &dto.ValidateResponse{Valid: true, User: toUserResponse(user)}, nil
}

func (uc *AuthUseCase) verifyCredentials(email, password string) (*entity.User, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Comparación dummy para igualar el costo de la rama "no existe".
		_ = bcrypt.CompareHashAndPassword([]byte("$2a$12$invalidinvalidinvalidinvalidinvalidinvalidinvalidinva"), []byte(password))
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role.String(),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

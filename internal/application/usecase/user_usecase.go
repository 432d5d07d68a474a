package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/poms-pro/internal/application/dto"
	"github.com/tu-usuario/poms-pro/internal/domain"
	"github.com/tu-usuario/poms-pro/internal/domain/entity"
	"github.com/tu-usuario/poms-pro/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// Coste bcrypt para nuevas identidades (el seed usa el mismo).
const bcryptCost = 12

// UserUseCase administración de identidades (panel SUPER_ADMIN).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List devuelve usuarios paginados (página 1-based) con los metadatos de página.
func (uc *UserUseCase) List(page, pageSize int) (*dto.UserListResponse, error) {
	offset := (page - 1) * pageSize
	users, err := uc.repo.List(pageSize, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count()
	if err != nil {
		return nil, err
	}
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, *entityToUserResponse(u))
	}
	return &dto.UserListResponse{
		Data: items,
		Pagination: dto.Pagination{
			Page:            page,
			PageSize:        pageSize,
			TotalCount:      total,
			TotalPages:      totalPages,
			HasNextPage:     page < totalPages,
			HasPreviousPage: page > 1,
		},
	}, nil
}

// Create crea una identidad: hashea el password con bcrypt y persiste.
// Devuelve domain.ErrEmailAlreadyExists si el email ya está registrado y
// domain.ErrInvalidInput si el rol no es SUPER_ADMIN ni USER (EMPLOYEE no se
// crea desde el panel).
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	role, ok := entity.ParseRole(in.Role)
	if !ok || role == entity.RoleEmployee {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     isActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return entityToUserResponse(user), nil
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
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

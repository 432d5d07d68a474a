package usecase_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/poms-pro/internal/application/dto"
	"github.com/tu-usuario/poms-pro/internal/application/usecase"
	"github.com/tu-usuario/poms-pro/internal/domain"
	"github.com/tu-usuario/poms-pro/internal/domain/entity"
)

// buildUserUC arma el caso de uso con n identidades sembradas.
func buildUserUC(n int) (*usecase.UserUseCase, *fakeUserRepo) {
	repo := &fakeUserRepo{}
	now := time.Now()
	for i := 0; i < n; i++ {
		repo.users = append(repo.users, &entity.User{
			ID:       fmt.Sprintf("40000000-0000-0000-0000-%012d", i),
			Name:     fmt.Sprintf("Usuario %d", i),
			Email:    fmt.Sprintf("user%d@acme.com", i),
			Role:     entity.RoleUser,
			IsActive: true, CreatedAt: now, UpdatedAt: now,
		})
	}
	return usecase.NewUserUseCase(repo), repo
}

func TestUserList_MetadatosDePagina(t *testing.T) {
	uc, _ := buildUserUC(25)

	out, err := uc.List(2, 10)
	require.NoError(t, err)

	assert.Len(t, out.Data, 10)
	assert.Equal(t, 2, out.Pagination.Page)
	assert.Equal(t, 25, out.Pagination.TotalCount)
	assert.Equal(t, 3, out.Pagination.TotalPages)
	assert.True(t, out.Pagination.HasNextPage)
	assert.True(t, out.Pagination.HasPreviousPage)
}

func TestUserList_UltimaPaginaParcial(t *testing.T) {
	uc, _ := buildUserUC(25)

	out, err := uc.List(3, 10)
	require.NoError(t, err)

	assert.Len(t, out.Data, 5)
	assert.False(t, out.Pagination.HasNextPage)
	assert.True(t, out.Pagination.HasPreviousPage)
}

// Sin usuarios, el listado reporta al menos una página (vacía).
func TestUserList_VacioReportaUnaPagina(t *testing.T) {
	uc, _ := buildUserUC(0)

	out, err := uc.List(1, 10)
	require.NoError(t, err)

	assert.Empty(t, out.Data)
	assert.Equal(t, 1, out.Pagination.TotalPages)
	assert.False(t, out.Pagination.HasNextPage)
	assert.False(t, out.Pagination.HasPreviousPage)
}

func TestUserCreate_HasheaElPassword(t *testing.T) {
	uc, repo := buildUserUC(0)

	out, err := uc.Create(dto.CreateUserRequest{
		Name:     "Nueva",
		Email:    "nueva@acme.com",
		Password: "secreto123",
		Role:     "USER",
	})
	require.NoError(t, err)
	assert.True(t, out.IsActive, "sin flag explícito la cuenta nace activa")

	stored, err := repo.GetByEmail("nueva@acme.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto123", stored.PasswordHash, "el password nunca se persiste en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto123")))
}

// El panel solo crea SUPER_ADMIN y USER; EMPLOYEE y roles desconocidos se rechazan.
func TestUserCreate_RolesInvalidosRechazados(t *testing.T) {
	uc, _ := buildUserUC(0)

	for _, role := range []string{"EMPLOYEE", "MANAGER", "", "user"} {
		_, err := uc.Create(dto.CreateUserRequest{
			Name: "X", Email: "x@acme.com", Password: "secreto123", Role: role,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "rol %q debe rechazarse", role)
	}
}

package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/poms-pro/internal/application/dto"
	"github.com/tu-usuario/poms-pro/internal/application/usecase"
	"github.com/tu-usuario/poms-pro/internal/domain"
	"github.com/tu-usuario/poms-pro/internal/domain/entity"
)

const (
	ownerID  = "00000000-0000-0000-0000-0000000000aa"
	otherID  = "00000000-0000-0000-0000-0000000000bb"
	acmeID   = "10000000-0000-0000-0000-000000000001"
	globexID = "10000000-0000-0000-0000-000000000002"
)

// buildCompanyUC arma el caso de uso con dos empresas de dueños distintos.
func buildCompanyUC() (*usecase.CompanyUseCase, *fakeCompanyRepo, *fakePartyRepo) {
	companyRepo := newFakeCompanyRepo()
	partyRepo := newFakePartyRepo()
	now := time.Now()
	companyRepo.byID[acmeID] = &entity.Company{
		ID: acmeID, UserID: ownerID, Name: "Acme Corp", GSTType: entity.GSTTypeIntraState,
		CreatedAt: now, UpdatedAt: now,
	}
	companyRepo.byID[globexID] = &entity.Company{
		ID: globexID, UserID: otherID, Name: "Globex", GSTType: entity.GSTTypeIntraState,
		CreatedAt: now, UpdatedAt: now,
	}
	return usecase.NewCompanyUseCase(companyRepo, partyRepo), companyRepo, partyRepo
}

func TestEnsureOwnership_DuenoAccede(t *testing.T) {
	uc, _, _ := buildCompanyUC()

	company, err := uc.EnsureOwnership(context.Background(), acmeID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", company.Name)
}

// La empresa de otro usuario se reporta como inexistente, nunca como
// prohibida: 404 y no 403, para no filtrar que el recurso existe.
func TestEnsureOwnership_EmpresaAjenaEsNotFound(t *testing.T) {
	uc, _, _ := buildCompanyUC()

	_, err := uc.EnsureOwnership(context.Background(), globexID, ownerID)
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"empresa ajena debe ser indistinguible de inexistente")

	_, err = uc.EnsureOwnership(context.Background(), "20000000-0000-0000-0000-000000000000", ownerID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompanyCreate_DuenoSaleDeLaSesion(t *testing.T) {
	uc, repo, _ := buildCompanyUC()

	out, err := uc.Create(ownerID, dto.CreateCompanyRequest{Name: "Nueva SA"})
	require.NoError(t, err)
	require.NotEmpty(t, out.ID)

	stored := repo.byID[out.ID]
	require.NotNil(t, stored)
	assert.Equal(t, ownerID, stored.UserID, "el dueño debe ser el usuario autenticado")
	assert.Equal(t, entity.GSTTypeIntraState, stored.GSTType, "gstType por defecto INTRA_STATE")
}

func TestCompanyListByUser_SoloLasPropias(t *testing.T) {
	uc, _, _ := buildCompanyUC()

	out, err := uc.ListByUser(ownerID)
	require.NoError(t, err)
	require.Len(t, out.Data, 1)
	assert.Equal(t, "Acme Corp", out.Data[0].Name)
}

func TestCompanyUpdate_EmpresaAjenaEsNotFound(t *testing.T) {
	uc, repo, _ := buildCompanyUC()

	_, err := uc.Update(context.Background(), ownerID, globexID, dto.UpdateCompanyRequest{
		Name: "Hackeada", GSTType: entity.GSTTypeIntraState,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Globex", repo.byID[globexID].Name, "la empresa ajena no debe mutar")
}

func TestCompanyGetDetail_IncluyeSuppliers(t *testing.T) {
	uc, _, partyRepo := buildCompanyUC()
	now := time.Now()
	partyRepo.byID["p1"] = &entity.Party{ID: "p1", CompanyID: acmeID, Name: "Proveedor Uno", CreatedAt: now}
	partyRepo.byID["p2"] = &entity.Party{ID: "p2", CompanyID: globexID, Name: "Ajeno", CreatedAt: now}

	out, err := uc.GetDetail(context.Background(), ownerID, acmeID)
	require.NoError(t, err)
	require.Len(t, out.Parties, 1, "solo los suppliers de la empresa pedida")
	assert.Equal(t, "Proveedor Uno", out.Parties[0].Name)
}

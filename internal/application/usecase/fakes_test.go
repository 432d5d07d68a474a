package usecase_test

import (
	"context"
	"sort"

	"github.com/tu-usuario/poms-pro/internal/domain/entity"
)

// Repositorios en memoria para los tests de los casos de uso. Replican el
// contrato de los puertos: "no existe" es nil, nil, nunca un error.

type fakeCompanyRepo struct {
	byID map[string]*entity.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{byID: map[string]*entity.Company{}}
}

func (f *fakeCompanyRepo) Create(c *entity.Company) error { f.byID[c.ID] = c; return nil }
func (f *fakeCompanyRepo) GetByIDAndUser(_ context.Context, id, userID string) (*entity.Company, error) {
	c := f.byID[id]
	if c == nil || c.UserID != userID {
		return nil, nil
	}
	return c, nil
}
func (f *fakeCompanyRepo) Update(c *entity.Company) error { f.byID[c.ID] = c; return nil }
func (f *fakeCompanyRepo) ListByUser(userID string) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range f.byID {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type fakePartyRepo struct {
	byID map[string]*entity.Party
}

func newFakePartyRepo() *fakePartyRepo {
	return &fakePartyRepo{byID: map[string]*entity.Party{}}
}

func (f *fakePartyRepo) Create(p *entity.Party) error { f.byID[p.ID] = p; return nil }
func (f *fakePartyRepo) GetByIDAndCompany(id, companyID string) (*entity.Party, error) {
	p := f.byID[id]
	if p == nil || p.CompanyID != companyID {
		return nil, nil
	}
	return p, nil
}
func (f *fakePartyRepo) Update(p *entity.Party) error { f.byID[p.ID] = p; return nil }
func (f *fakePartyRepo) ListByCompany(companyID string) ([]*entity.Party, error) {
	var out []*entity.Party
	for _, p := range f.byID {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
func (f *fakePartyRepo) Delete(id string) error { delete(f.byID, id); return nil }

type fakeItemRepo struct {
	byID map[string]*entity.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{byID: map[string]*entity.Item{}}
}

func (f *fakeItemRepo) Create(it *entity.Item) error { f.byID[it.ID] = it; return nil }
func (f *fakeItemRepo) GetByIDAndCompany(id, companyID string) (*entity.Item, error) {
	it := f.byID[id]
	if it == nil || it.CompanyID != companyID {
		return nil, nil
	}
	return it, nil
}
func (f *fakeItemRepo) Update(it *entity.Item) error { f.byID[it.ID] = it; return nil }
func (f *fakeItemRepo) ListByCompany(companyID string) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, it := range f.byID {
		if it.CompanyID == companyID {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
func (f *fakeItemRepo) Delete(id string) error { delete(f.byID, id); return nil }

type fakeUserRepo struct {
	users []*entity.User
}

func (f *fakeUserRepo) Create(u *entity.User) error { f.users = append(f.users, u); return nil }
func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	if offset >= len(f.users) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.users) {
		end = len(f.users)
	}
	return f.users[offset:end], nil
}
func (f *fakeUserRepo) Count() (int, error) { return len(f.users), nil }

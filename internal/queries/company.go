package queries

import (
	"context"

	"github.com/goliatone/go-cv-backend/internal/model"
	"github.com/goliatone/go-cv-backend/repositorycache"
	"github.com/google/uuid"
)

// CompanyQuery reads companies, optionally with their projects.
type CompanyQuery struct {
	repo *repositorycache.CachedRepository[model.Company]
}

func NewCompanyQuery(deps Deps) *CompanyQuery {
	repo := newCached[model.Company](deps, "company", PrefixCompanies, companyOrder)
	return &CompanyQuery{repo: repo}
}

// GetAll returns every company ordered by name. Cached.
func (q *CompanyQuery) GetAll(ctx context.Context) ([]*model.Company, error) {
	return q.repo.ListAll(ctx)
}

// GetAllWithProjects returns every company with its projects ordered by
// name. Companies without projects carry an empty list. Cached.
func (q *CompanyQuery) GetAllWithProjects(ctx context.Context) ([]*model.Company, error) {
	return q.repo.ListAllWith(ctx, repositorycache.ShapeAllWithProjects, projectsRelation())
}

// GetByID returns the company or nil.
func (q *CompanyQuery) GetByID(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	return q.repo.GetByID(ctx, id)
}

// GetByIDWithProjects returns the company with its projects, or nil.
func (q *CompanyQuery) GetByIDWithProjects(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	return q.repo.GetByID(ctx, id, projectsRelation())
}

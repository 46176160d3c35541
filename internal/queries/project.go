package queries

import (
	"context"

	"github.com/goliatone/go-cv-backend/internal/model"
	"github.com/goliatone/go-cv-backend/internal/storage"
	"github.com/goliatone/go-cv-backend/repositorycache"
	"github.com/google/uuid"
)

// ProjectQuery reads projects, optionally with company and skills.
type ProjectQuery struct {
	repo *repositorycache.CachedRepository[model.Project]
}

func NewProjectQuery(deps Deps) *ProjectQuery {
	repo := newCached[model.Project](deps, "project", PrefixProjects, projectOrder)
	return &ProjectQuery{repo: repo}
}

// GetAll returns every project ordered by name. Cached.
func (q *ProjectQuery) GetAll(ctx context.Context) ([]*model.Project, error) {
	return q.repo.ListAll(ctx)
}

// GetAllWithRelations returns every project with its company and skills.
// Cached.
func (q *ProjectQuery) GetAllWithRelations(ctx context.Context) ([]*model.Project, error) {
	projects, err := q.repo.ListAllWith(ctx, repositorycache.ShapeAllWithRelations, companyRelation(), skillsRelation())
	if err != nil {
		return nil, err
	}
	detachEmptyCompany(projects...)
	return projects, nil
}

// GetByID returns the project or nil.
func (q *ProjectQuery) GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	return q.repo.GetByID(ctx, id)
}

// GetByCompanyID returns the projects of a company ordered by name.
func (q *ProjectQuery) GetByCompanyID(ctx context.Context, companyID uuid.UUID) ([]*model.Project, error) {
	return q.repo.ListWhere(ctx, storage.WhereEqual("company_id", companyID))
}

// GetBySkillID returns the projects that use a skill, ordered by name.
func (q *ProjectQuery) GetBySkillID(ctx context.Context, skillID uuid.UUID) ([]*model.Project, error) {
	return q.repo.ListWhere(ctx, storage.WhereLinked("project_skills", "project_id", "skill_id", skillID))
}

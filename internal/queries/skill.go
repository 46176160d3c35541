package queries

import (
	"context"

	"github.com/goliatone/go-cv-backend/internal/model"
	"github.com/goliatone/go-cv-backend/internal/storage"
	"github.com/goliatone/go-cv-backend/repositorycache"
	"github.com/google/uuid"
)

// SkillQuery reads skills, optionally with the projects using them.
type SkillQuery struct {
	repo *repositorycache.CachedRepository[model.Skill]
}

func NewSkillQuery(deps Deps) *SkillQuery {
	repo := newCached[model.Skill](deps, "skill", PrefixSkills, skillOrder)
	return &SkillQuery{repo: repo}
}

// GetAll returns every skill ordered by category then name. Cached.
func (q *SkillQuery) GetAll(ctx context.Context) ([]*model.Skill, error) {
	return q.repo.ListAll(ctx)
}

// GetAllWithProjects returns every skill with the projects using it.
// Cached.
func (q *SkillQuery) GetAllWithProjects(ctx context.Context) ([]*model.Skill, error) {
	return q.repo.ListAllWith(ctx, repositorycache.ShapeAllWithProjects, projectsRelation())
}

// GetByID returns the skill or nil.
func (q *SkillQuery) GetByID(ctx context.Context, id uuid.UUID) (*model.Skill, error) {
	return q.repo.GetByID(ctx, id)
}

// GetByCategory returns skills whose category matches exactly.
func (q *SkillQuery) GetByCategory(ctx context.Context, category string) ([]*model.Skill, error) {
	return q.repo.ListWhere(ctx, storage.WhereEqual("category", category))
}

// GetByProficiency returns skills at the given level, category first
// then name like every other skill list.
func (q *SkillQuery) GetByProficiency(ctx context.Context, level model.ProficiencyLevel) ([]*model.Skill, error) {
	return q.repo.ListWhere(ctx, storage.WhereEqual("proficiency_level", level))
}

// GetByProjectID returns the skills used by a project.
func (q *SkillQuery) GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]*model.Skill, error) {
	return q.repo.ListWhere(ctx, storage.WhereLinked("project_skills", "skill_id", "project_id", projectID))
}

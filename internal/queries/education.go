package queries

import (
	"context"

	"github.com/goliatone/go-cv-backend/internal/model"
	"github.com/goliatone/go-cv-backend/internal/storage"
	"github.com/goliatone/go-cv-backend/repositorycache"
	"github.com/google/uuid"
)

// EducationQuery reads education entries.
type EducationQuery struct {
	repo *repositorycache.CachedRepository[model.Education]
}

func NewEducationQuery(deps Deps) *EducationQuery {
	repo := newCached[model.Education](deps, "education", PrefixEducation, educationOrder)
	return &EducationQuery{repo: repo}
}

// GetAll returns every entry ordered by institution. Cached.
func (q *EducationQuery) GetAll(ctx context.Context) ([]*model.Education, error) {
	return q.repo.ListAll(ctx)
}

// GetByID returns the entry or nil.
func (q *EducationQuery) GetByID(ctx context.Context, id uuid.UUID) (*model.Education, error) {
	return q.repo.GetByID(ctx, id)
}

// GetByDegreeType returns entries with the given degree.
func (q *EducationQuery) GetByDegreeType(ctx context.Context, degree model.DegreeType) ([]*model.Education, error) {
	return q.repo.ListWhere(ctx, storage.WhereEqual("degree", degree))
}

// GetByInstitution returns entries whose institution contains the given
// text, case-sensitive.
func (q *EducationQuery) GetByInstitution(ctx context.Context, institution string) ([]*model.Education, error) {
	return q.repo.ListWhere(ctx, storage.WhereContains("institution", institution))
}

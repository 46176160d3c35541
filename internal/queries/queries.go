// Package queries exposes one read service per entity, built on the
// generic cached repository.
package queries

import (
	"github.com/goliatone/go-cv-backend/cache"
	"github.com/goliatone/go-cv-backend/internal/model"
	"github.com/goliatone/go-cv-backend/internal/storage"
	"github.com/goliatone/go-cv-backend/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Canonical sort columns per entity.
var (
	companyOrder   = []string{"name"}
	projectOrder   = []string{"name"}
	educationOrder = []string{"institution"}
	skillOrder     = []string{"category", "name"}
)

// Cache key prefixes per entity.
const (
	PrefixCompanies = "companies"
	PrefixProjects  = "projects"
	PrefixEducation = "education"
	PrefixSkills    = "skills"
)

// Deps are the collaborators shared by every query service.
type Deps struct {
	DB            *bun.DB
	Cache         cache.CacheService
	KeySerializer cache.KeySerializer
	Options       repositorycache.Options
	Logger        *zap.Logger
}

// Set groups the four query services.
type Set struct {
	Companies *CompanyQuery
	Projects  *ProjectQuery
	Education *EducationQuery
	Skills    *SkillQuery
}

// New builds every query service from deps.
func New(deps Deps) *Set {
	return &Set{
		Companies: NewCompanyQuery(deps),
		Projects:  NewProjectQuery(deps),
		Education: NewEducationQuery(deps),
		Skills:    NewSkillQuery(deps),
	}
}

func newCached[T any, PT interface {
	*T
	storage.Identifiable
}](deps Deps, entity, prefix string, order []string) *repositorycache.CachedRepository[T] {
	base := storage.NewRepository[T, PT](deps.DB, entity, order...)
	return repositorycache.New[T](base, deps.Cache, deps.KeySerializer, prefix, deps.Options, deps.Logger)
}

func projectsRelation() storage.Relation {
	return storage.Relation{Name: "Projects", Apply: storage.OrderBy(projectOrder...)}
}

func skillsRelation() storage.Relation {
	return storage.Relation{Name: "Skills", Apply: storage.OrderBy(skillOrder...)}
}

func companyRelation() storage.Relation {
	return storage.Relation{Name: "Company"}
}

// detachEmptyCompany clears a belongs-to Company that was materialised
// from a NULL foreign key.
func detachEmptyCompany(projects ...*model.Project) {
	for _, p := range projects {
		if p == nil {
			continue
		}
		if p.CompanyID == nil || (p.Company != nil && p.Company.ID == uuid.Nil) {
			p.Company = nil
		}
	}
}

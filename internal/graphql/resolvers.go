package graphql

import (
	"context"

	"github.com/goliatone/go-cv-backend/internal/model"
	"github.com/goliatone/go-cv-backend/internal/queries"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Resolver binds the schema fields to the query services.
type Resolver struct {
	queries *queries.Set
	paging  PageConfig
	logger  *zap.Logger
}

// NewResolver creates a resolver over set.
func NewResolver(set *queries.Set, paging PageConfig, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		queries: set,
		paging:  paging.normalized(),
		logger:  logger.Named("resolver"),
	}
}

func (r *Resolver) Query() QueryResolver     { return &queryResolver{r} }
func (r *Resolver) Company() CompanyResolver { return &companyResolver{r} }
func (r *Resolver) Project() ProjectResolver { return &projectResolver{r} }
func (r *Resolver) Skill() SkillResolver     { return &skillResolver{r} }

func (r *Resolver) lazy(relation string, id uuid.UUID) {
	r.logger.Debug("loading relation on demand", zap.String("relation", relation), zap.String("id", id.String()))
}

func paginate[T any](r *Resolver, items []T, err error, first *int, after *string) (*Connection, error) {
	if err != nil {
		return nil, err
	}
	return Paginate(items, PageArgs{First: first, After: after}, r.paging)
}

type queryResolver struct{ *Resolver }

func (r *queryResolver) Companies(ctx context.Context) ([]*model.Company, error) {
	return r.queries.Companies.GetAll(ctx)
}

func (r *queryResolver) CompaniesPaged(ctx context.Context, first *int, after *string) (*Connection, error) {
	items, err := r.queries.Companies.GetAll(ctx)
	return paginate(r.Resolver, items, err, first, after)
}

func (r *queryResolver) Company(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	return r.queries.Companies.GetByID(ctx, id)
}

func (r *queryResolver) CompanyWithProjects(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	return r.queries.Companies.GetByIDWithProjects(ctx, id)
}

func (r *queryResolver) CompaniesWithProjects(ctx context.Context) ([]*model.Company, error) {
	return r.queries.Companies.GetAllWithProjects(ctx)
}

func (r *queryResolver) Projects(ctx context.Context) ([]*model.Project, error) {
	return r.queries.Projects.GetAll(ctx)
}

func (r *queryResolver) ProjectsPaged(ctx context.Context, first *int, after *string) (*Connection, error) {
	items, err := r.queries.Projects.GetAll(ctx)
	return paginate(r.Resolver, items, err, first, after)
}

func (r *queryResolver) Project(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	return r.queries.Projects.GetByID(ctx, id)
}

func (r *queryResolver) ProjectsWithRelations(ctx context.Context) ([]*model.Project, error) {
	return r.queries.Projects.GetAllWithRelations(ctx)
}

func (r *queryResolver) ProjectsByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Project, error) {
	return r.queries.Projects.GetByCompanyID(ctx, companyID)
}

func (r *queryResolver) ProjectsBySkill(ctx context.Context, skillID uuid.UUID) ([]*model.Project, error) {
	return r.queries.Projects.GetBySkillID(ctx, skillID)
}

func (r *queryResolver) AllEducation(ctx context.Context) ([]*model.Education, error) {
	return r.queries.Education.GetAll(ctx)
}

func (r *queryResolver) AllEducationPaged(ctx context.Context, first *int, after *string) (*Connection, error) {
	items, err := r.queries.Education.GetAll(ctx)
	return paginate(r.Resolver, items, err, first, after)
}

func (r *queryResolver) Education(ctx context.Context, id uuid.UUID) (*model.Education, error) {
	return r.queries.Education.GetByID(ctx, id)
}

func (r *queryResolver) EducationByDegree(ctx context.Context, degree model.DegreeType) ([]*model.Education, error) {
	return r.queries.Education.GetByDegreeType(ctx, degree)
}

func (r *queryResolver) EducationByInstitution(ctx context.Context, institution string) ([]*model.Education, error) {
	return r.queries.Education.GetByInstitution(ctx, institution)
}

func (r *queryResolver) Skills(ctx context.Context) ([]*model.Skill, error) {
	return r.queries.Skills.GetAll(ctx)
}

func (r *queryResolver) SkillsPaged(ctx context.Context, first *int, after *string) (*Connection, error) {
	items, err := r.queries.Skills.GetAll(ctx)
	return paginate(r.Resolver, items, err, first, after)
}

func (r *queryResolver) Skill(ctx context.Context, id uuid.UUID) (*model.Skill, error) {
	return r.queries.Skills.GetByID(ctx, id)
}

func (r *queryResolver) SkillsByCategory(ctx context.Context, category string) ([]*model.Skill, error) {
	return r.queries.Skills.GetByCategory(ctx, category)
}

func (r *queryResolver) SkillsByProficiency(ctx context.Context, level model.ProficiencyLevel) ([]*model.Skill, error) {
	return r.queries.Skills.GetByProficiency(ctx, level)
}

func (r *queryResolver) SkillsWithProjects(ctx context.Context) ([]*model.Skill, error) {
	return r.queries.Skills.GetAllWithProjects(ctx)
}

func (r *queryResolver) SkillsByProject(ctx context.Context, projectID uuid.UUID) ([]*model.Skill, error) {
	return r.queries.Skills.GetByProjectID(ctx, projectID)
}

// Relations that were not loaded eagerly fall back to the filtered
// (uncached) queries.

type companyResolver struct{ *Resolver }

func (r *companyResolver) Projects(ctx context.Context, obj *model.Company) ([]*model.Project, error) {
	if obj.Projects != nil {
		return obj.Projects, nil
	}
	r.lazy("Company.projects", obj.ID)
	return r.queries.Projects.GetByCompanyID(ctx, obj.ID)
}

type projectResolver struct{ *Resolver }

func (r *projectResolver) Company(ctx context.Context, obj *model.Project) (*model.Company, error) {
	if obj.Company != nil {
		return obj.Company, nil
	}
	if obj.CompanyID == nil {
		return nil, nil
	}
	r.lazy("Project.company", obj.ID)
	return r.queries.Companies.GetByID(ctx, *obj.CompanyID)
}

func (r *projectResolver) Skills(ctx context.Context, obj *model.Project) ([]*model.Skill, error) {
	if obj.Skills != nil {
		return obj.Skills, nil
	}
	r.lazy("Project.skills", obj.ID)
	return r.queries.Skills.GetByProjectID(ctx, obj.ID)
}

type skillResolver struct{ *Resolver }

func (r *skillResolver) Projects(ctx context.Context, obj *model.Skill) ([]*model.Project, error) {
	if obj.Projects != nil {
		return obj.Projects, nil
	}
	r.lazy("Skill.projects", obj.ID)
	return r.queries.Projects.GetBySkillID(ctx, obj.ID)
}

package storage_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/goliatone/go-cv-backend/internal/model"
	"github.com/goliatone/go-cv-backend/internal/storage"
	"github.com/goliatone/go-cv-backend/pkg/testsupport"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names[T any](rows []*T, name func(*T) string) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, name(r))
	}
	return out
}

func companyName(c *model.Company) string { return c.Name }
func projectName(p *model.Project) string { return p.Name }
func skillName(s *model.Skill) string     { return s.Name }

func TestRepository_ListEmptyTable(t *testing.T) {
	db := testsupport.OpenTestDB(t)
	repo := storage.NewRepository[model.Company](db.DB, "company", "name")

	rows, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestRepository_ListCanonicalOrder(t *testing.T) {
	db := testsupport.OpenTestDB(t)
	testsupport.SeedFixtures(t, db.DB)
	ctx := context.Background()

	companies, err := storage.NewRepository[model.Company](db.DB, "company", "name").List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha Corp", "Beta Inc", "Gamma LLC"}, names(companies, companyName))

	skills, err := storage.NewRepository[model.Skill](db.DB, "skill", "category", "name").List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"C#", "Docker", "PostgreSQL", "React"}, names(skills, skillName))

	education, err := storage.NewRepository[model.Education](db.DB, "education", "institution").List(ctx)
	require.NoError(t, err)
	require.Len(t, education, 3)
	assert.Equal(t, "MIT", education[0].Institution)
	assert.Equal(t, "Stanford University", education[1].Institution)
	assert.Equal(t, "Tech Academy", education[2].Institution)
}

func TestRepository_GetByID(t *testing.T) {
	db := testsupport.OpenTestDB(t)
	testsupport.SeedFixtures(t, db.DB)
	repo := storage.NewRepository[model.Company](db.DB, "company", "name")
	ctx := context.Background()

	company, err := repo.GetByID(ctx, testsupport.AlphaCorpID)
	require.NoError(t, err)
	assert.Equal(t, "Alpha Corp", company.Name)
	assert.Equal(t, "Senior Developer", company.Position)
	require.NotNil(t, company.EndDate)
	assert.True(t, company.EndDate.Equal(testsupport.Date(2022, 12, 31)))

	beta, err := repo.GetByID(ctx, testsupport.BetaIncID)
	require.NoError(t, err)
	assert.Nil(t, beta.EndDate)

	_, err = repo.GetByID(ctx, uuid.New())
	require.Error(t, err)
	assert.True(t, storage.IsNotFound(err))
	assert.False(t, storage.IsUnavailable(err))
}

func TestRepository_ListWithRelations_EmptyNotNil(t *testing.T) {
	db := testsupport.OpenTestDB(t)
	testsupport.SeedFixtures(t, db.DB)
	repo := storage.NewRepository[model.Company](db.DB, "company", "name")

	companies, err := repo.ListWithRelations(context.Background(), storage.Relation{
		Name:  "Projects",
		Apply: storage.OrderBy("name"),
	})
	require.NoError(t, err)
	require.Len(t, companies, 3)

	assert.Equal(t, []string{"Project Alpha", "Project Gamma"}, names(companies[0].Projects, projectName))
	assert.Equal(t, []string{"Project Beta"}, names(companies[1].Projects, projectName))

	gamma := companies[2]
	assert.Equal(t, "Gamma LLC", gamma.Name)
	assert.NotNil(t, gamma.Projects)
	assert.Empty(t, gamma.Projects)
}

func TestRepository_ManyToManyOrdered(t *testing.T) {
	db := testsupport.OpenTestDB(t)
	testsupport.SeedFixtures(t, db.DB)
	repo := storage.NewRepository[model.Project](db.DB, "project", "name")

	project, err := repo.GetByID(context.Background(), testsupport.ProjectGammaID,
		storage.Relation{Name: "Company"},
		storage.Relation{Name: "Skills", Apply: storage.OrderBy("category", "name")},
	)
	require.NoError(t, err)
	require.NotNil(t, project.Company)
	assert.Equal(t, "Alpha Corp", project.Company.Name)
	assert.Equal(t, []string{"C#", "Docker", "PostgreSQL"}, names(project.Skills, skillName))
}

func TestRepository_Filters(t *testing.T) {
	db := testsupport.OpenTestDB(t)
	testsupport.SeedFixtures(t, db.DB)
	ctx := context.Background()

	skills := storage.NewRepository[model.Skill](db.DB, "skill", "category", "name")
	backend, err := skills.List(ctx, storage.WhereEqual("category", "Backend"))
	require.NoError(t, err)
	assert.Equal(t, []string{"C#", "Docker"}, names(backend, skillName))

	lower, err := skills.List(ctx, storage.WhereEqual("category", "backend"))
	require.NoError(t, err)
	assert.Empty(t, lower)

	usedBy, err := skills.List(ctx, storage.WhereLinked("project_skills", "skill_id", "project_id", testsupport.ProjectAlphaID))
	require.NoError(t, err)
	assert.Equal(t, []string{"C#", "PostgreSQL"}, names(usedBy, skillName))

	education := storage.NewRepository[model.Education](db.DB, "education", "institution")
	tech, err := education.List(ctx, storage.WhereContains("institution", "Tech"))
	require.NoError(t, err)
	require.Len(t, tech, 1)
	assert.Equal(t, "Tech Academy", tech[0].Institution)

	techLower, err := education.List(ctx, storage.WhereContains("institution", "tech"))
	require.NoError(t, err)
	assert.Empty(t, techLower)

	projects := storage.NewRepository[model.Project](db.DB, "project", "name")
	withCSharp, err := projects.List(ctx, storage.WhereLinked("project_skills", "project_id", "skill_id", testsupport.CSharpID))
	require.NoError(t, err)
	assert.Equal(t, []string{"Project Alpha", "Project Gamma"}, names(withCSharp, projectName))
}

func TestRepository_ByteWiseOrder(t *testing.T) {
	db := testsupport.OpenTestDB(t)
	ctx := context.Background()

	rows := []*model.Skill{
		{ID: uuid.New(), Name: "b", Category: "X", ProficiencyLevel: model.ProficiencyBeginner},
		{ID: uuid.New(), Name: "B", Category: "X", ProficiencyLevel: model.ProficiencyBeginner},
		{ID: uuid.New(), Name: "a", Category: "X", ProficiencyLevel: model.ProficiencyBeginner},
		{ID: uuid.New(), Name: "A", Category: "X", ProficiencyLevel: model.ProficiencyBeginner},
	}
	_, err := db.NewInsert().Model(&rows).Exec(ctx)
	require.NoError(t, err)

	skills, err := storage.NewRepository[model.Skill](db.DB, "skill", "category", "name").List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "a", "b"}, names(skills, skillName))
}

func TestRepository_ListReturnsEveryRow(t *testing.T) {
	db := testsupport.OpenTestDB(t)
	ctx := context.Background()

	rows := make([]*model.Skill, 0, 40)
	for i := 0; i < 40; i++ {
		rows = append(rows, &model.Skill{
			ID:               uuid.New(),
			Name:             fmt.Sprintf("skill-%02d", i),
			Category:         "Bulk",
			ProficiencyLevel: model.ProficiencyBeginner,
		})
	}
	_, err := db.NewInsert().Model(&rows).Exec(ctx)
	require.NoError(t, err)

	skills, err := storage.NewRepository[model.Skill](db.DB, "skill", "category", "name").List(ctx)
	require.NoError(t, err)
	require.Len(t, skills, 40)
	assert.Equal(t, "skill-00", skills[0].Name)
	assert.Equal(t, "skill-39", skills[39].Name)
}

func TestRepository_ClosedDatabaseIsUnavailable(t *testing.T) {
	db := testsupport.OpenTestDB(t)
	repo := storage.NewRepository[model.Company](db.DB, "company", "name")
	require.NoError(t, db.DB.Close())

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.True(t, storage.IsUnavailable(err))
}

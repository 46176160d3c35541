package testsupport

import (
	"context"
	"testing"
	"time"

	"github.com/goliatone/go-cv-backend/internal/model"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Fixed identifiers of the fixture rows.
var (
	AlphaCorpID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	BetaIncID   = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	GammaLLCID  = uuid.MustParse("33333333-3333-3333-3333-333333333333")

	ProjectAlphaID = uuid.MustParse("44444444-4444-4444-4444-444444444444")
	ProjectBetaID  = uuid.MustParse("55555555-5555-5555-5555-555555555555")
	ProjectGammaID = uuid.MustParse("66666666-6666-6666-6666-666666666666")

	MITID         = uuid.MustParse("77777777-7777-7777-7777-777777777777")
	StanfordID    = uuid.MustParse("88888888-8888-8888-8888-888888888888")
	TechAcademyID = uuid.MustParse("99999999-9999-9999-9999-999999999999")

	CSharpID     = uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	ReactID      = uuid.MustParse("bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb")
	PostgreSQLID = uuid.MustParse("cccccccc-cccc-cccc-cccc-cccccccccccc")
	DockerID     = uuid.MustParse("dddddddd-dddd-dddd-dddd-dddddddddddd")
)

// Fixtures is the deterministic data set used across packages.
type Fixtures struct {
	Companies     []*model.Company
	Projects      []*model.Project
	Education     []*model.Education
	Skills        []*model.Skill
	ProjectSkills []*model.ProjectSkill
}

// Date returns midnight UTC on the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

// NewFixtures builds the fixture set. Rows are deliberately out of
// canonical order so sorting is observable.
func NewFixtures() Fixtures {
	return Fixtures{
		Companies: []*model.Company{
			{ID: BetaIncID, Name: "Beta Inc", Position: "Lead Engineer", StartDate: Date(2023, 1, 1), Description: ptr("Second company")},
			{ID: AlphaCorpID, Name: "Alpha Corp", Position: "Senior Developer", StartDate: Date(2020, 1, 1), EndDate: ptr(Date(2022, 12, 31)), Description: ptr("First company")},
			{ID: GammaLLCID, Name: "Gamma LLC", Position: "Tech Lead", StartDate: Date(2019, 6, 1), EndDate: ptr(Date(2020, 12, 31)), Description: ptr("Third company")},
		},
		Projects: []*model.Project{
			{ID: ProjectGammaID, Name: "Project Gamma", CompanyID: ptr(AlphaCorpID), Description: ptr("Third project"), Technologies: ptr("PostgreSQL, Docker"), StartDate: Date(2021, 1, 1), EndDate: ptr(Date(2021, 6, 1))},
			{ID: ProjectAlphaID, Name: "Project Alpha", CompanyID: ptr(AlphaCorpID), Description: ptr("First project"), Technologies: ptr("C#, .NET"), StartDate: Date(2020, 3, 1), EndDate: ptr(Date(2020, 9, 1))},
			{ID: ProjectBetaID, Name: "Project Beta", CompanyID: ptr(BetaIncID), Description: ptr("Second project"), Technologies: ptr("React, TypeScript"), StartDate: Date(2023, 2, 1)},
		},
		Education: []*model.Education{
			{ID: TechAcademyID, Institution: "Tech Academy", Degree: model.DegreeCertificate, Field: "Cloud Computing", StartDate: Date(2020, 1, 1), EndDate: ptr(Date(2020, 6, 1)), Description: ptr("Cloud certificate")},
			{ID: StanfordID, Institution: "Stanford University", Degree: model.DegreeMaster, Field: "Software Engineering", StartDate: Date(2014, 9, 1), EndDate: ptr(Date(2016, 5, 31)), Description: ptr("Master degree")},
			{ID: MITID, Institution: "MIT", Degree: model.DegreeBachelor, Field: "Computer Science", StartDate: Date(2010, 9, 1), EndDate: ptr(Date(2014, 5, 31)), Description: ptr("Bachelor degree")},
		},
		Skills: []*model.Skill{
			{ID: ReactID, Name: "React", Category: "Frontend", ProficiencyLevel: model.ProficiencyAdvanced, YearsExperience: 5},
			{ID: DockerID, Name: "Docker", Category: "Backend", ProficiencyLevel: model.ProficiencyIntermediate, YearsExperience: 3},
			{ID: PostgreSQLID, Name: "PostgreSQL", Category: "Database", ProficiencyLevel: model.ProficiencyAdvanced, YearsExperience: 6},
			{ID: CSharpID, Name: "C#", Category: "Backend", ProficiencyLevel: model.ProficiencyExpert, YearsExperience: 8},
		},
		ProjectSkills: []*model.ProjectSkill{
			{ProjectID: ProjectAlphaID, SkillID: CSharpID},
			{ProjectID: ProjectAlphaID, SkillID: PostgreSQLID},
			{ProjectID: ProjectBetaID, SkillID: ReactID},
			{ProjectID: ProjectGammaID, SkillID: PostgreSQLID},
			{ProjectID: ProjectGammaID, SkillID: DockerID},
			{ProjectID: ProjectGammaID, SkillID: CSharpID},
		},
	}
}

// Insert writes the fixtures in one transaction.
func (f Fixtures) Insert(ctx context.Context, db bun.IDB) error {
	return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(&f.Companies).Exec(ctx); err != nil {
			return err
		}
		if _, err := tx.NewInsert().Model(&f.Skills).Exec(ctx); err != nil {
			return err
		}
		if _, err := tx.NewInsert().Model(&f.Projects).Exec(ctx); err != nil {
			return err
		}
		if _, err := tx.NewInsert().Model(&f.Education).Exec(ctx); err != nil {
			return err
		}
		_, err := tx.NewInsert().Model(&f.ProjectSkills).Exec(ctx)
		return err
	})
}

// SeedFixtures inserts NewFixtures into db and returns them.
func SeedFixtures(t testing.TB, db bun.IDB) Fixtures {
	t.Helper()

	f := NewFixtures()
	if err := f.Insert(context.Background(), db); err != nil {
		t.Fatalf("failed to insert fixtures: %v", err)
	}
	return f
}

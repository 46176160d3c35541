package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/goliatone/go-cv-backend/internal/model"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

type CompaniesSeeder struct{}

func (CompaniesSeeder) Name() string { return "companies" }

func (CompaniesSeeder) Run(ctx context.Context, tx bun.Tx, state *State) (int, error) {
	companies := []*model.Company{
		{
			ID:          uuid.New(),
			Name:        "Tech Innovations Inc",
			Position:    "Senior Software Engineer",
			StartDate:   date(2020, 3, 1),
			Description: ptr("Led development of microservices architecture and mentored junior developers. Implemented CI/CD pipelines and improved system performance by 40%."),
		},
		{
			ID:          uuid.New(),
			Name:        "Digital Solutions Ltd",
			Position:    "Full Stack Developer",
			StartDate:   date(2018, 6, 15),
			EndDate:     ptr(date(2020, 2, 28)),
			Description: ptr("Developed web applications using React and .NET Core. Worked on database optimization and API design."),
		},
		{
			ID:          uuid.New(),
			Name:        "StartupHub",
			Position:    "Junior Developer",
			StartDate:   date(2016, 9, 1),
			EndDate:     ptr(date(2018, 6, 1)),
			Description: ptr("First professional role. Contributed to various projects using JavaScript, Python, and SQL."),
		},
	}

	if _, err := tx.NewInsert().Model(&companies).Exec(ctx); err != nil {
		return 0, err
	}
	state.Companies = companies
	return len(companies), nil
}

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, tx bun.Tx, state *State) (int, error) {
	items := []struct {
		name     string
		category string
		level    model.ProficiencyLevel
		years    int
	}{
		{"C#", "Backend", model.ProficiencyExpert, 7},
		{"ASP.NET Core", "Backend", model.ProficiencyExpert, 6},
		{"Entity Framework Core", "Backend", model.ProficiencyAdvanced, 6},
		{"GraphQL", "Backend", model.ProficiencyAdvanced, 3},
		{"React", "Frontend", model.ProficiencyAdvanced, 5},
		{"TypeScript", "Frontend", model.ProficiencyAdvanced, 4},
		{"PostgreSQL", "Database", model.ProficiencyAdvanced, 6},
		{"SQL Server", "Database", model.ProficiencyAdvanced, 7},
		{"Docker", "DevOps", model.ProficiencyAdvanced, 4},
		{"Kubernetes", "DevOps", model.ProficiencyIntermediate, 2},
		{"Git", "Tools", model.ProficiencyExpert, 8},
		{"Azure", "Cloud", model.ProficiencyIntermediate, 3},
	}

	skills := make([]*model.Skill, 0, len(items))
	for _, it := range items {
		s := &model.Skill{
			ID:               uuid.New(),
			Name:             it.name,
			Category:         it.category,
			ProficiencyLevel: it.level,
			YearsExperience:  it.years,
		}
		skills = append(skills, s)
		state.Skills[s.Name] = s
	}

	if _, err := tx.NewInsert().Model(&skills).Exec(ctx); err != nil {
		return 0, err
	}
	return len(skills), nil
}

type ProjectsSeeder struct{}

func (ProjectsSeeder) Name() string { return "projects" }

func (ProjectsSeeder) Run(ctx context.Context, tx bun.Tx, state *State) (int, error) {
	if len(state.Companies) < 3 {
		return 0, fmt.Errorf("need 3 companies, have %d", len(state.Companies))
	}
	c := state.Companies

	type item struct {
		project *model.Project
		skills  []string
	}

	items := []item{
		{
			project: &model.Project{
				Name:         "E-Commerce Platform Redesign",
				CompanyID:    &c[0].ID,
				Description:  ptr("Complete overhaul of legacy e-commerce system with modern tech stack"),
				Technologies: ptr("C#, ASP.NET Core, React, PostgreSQL, Docker, Kubernetes"),
				StartDate:    date(2021, 1, 1),
				EndDate:      ptr(date(2021, 12, 31)),
			},
			skills: []string{"C#", "ASP.NET Core", "React", "PostgreSQL", "Docker", "Kubernetes"},
		},
		{
			project: &model.Project{
				Name:         "Real-time Analytics Dashboard",
				CompanyID:    &c[0].ID,
				Description:  ptr("Built real-time data visualization platform for business intelligence"),
				Technologies: ptr("SignalR, GraphQL, React, Redis, TimescaleDB"),
				StartDate:    date(2022, 3, 1),
			},
			skills: []string{"GraphQL", "React", "PostgreSQL"},
		},
		{
			project: &model.Project{
				Name:         "Customer Portal Application",
				CompanyID:    &c[1].ID,
				Description:  ptr("Self-service portal for customers to manage accounts and support tickets"),
				Technologies: ptr("React, Node.js, Express, MongoDB, JWT Authentication"),
				StartDate:    date(2019, 1, 15),
				EndDate:      ptr(date(2019, 11, 30)),
			},
			skills: []string{"React", "TypeScript"},
		},
		{
			project: &model.Project{
				Name:         "Inventory Management System",
				CompanyID:    &c[1].ID,
				Description:  ptr("Cloud-based inventory tracking with barcode scanning integration"),
				Technologies: ptr("Angular, .NET Core, SQL Server, Azure"),
				StartDate:    date(2019, 6, 1),
				EndDate:      ptr(date(2020, 1, 15)),
			},
			skills: []string{"C#", "ASP.NET Core", "SQL Server", "Azure"},
		},
		{
			project: &model.Project{
				Name:         "Mobile App Prototype",
				CompanyID:    &c[2].ID,
				Description:  ptr("Proof of concept for cross-platform mobile application"),
				Technologies: ptr("React Native, Firebase, REST APIs"),
				StartDate:    date(2017, 3, 1),
				EndDate:      ptr(date(2017, 8, 31)),
			},
			skills: []string{"React", "TypeScript"},
		},
	}

	projects := make([]*model.Project, 0, len(items))
	var links []*model.ProjectSkill
	for _, it := range items {
		it.project.ID = uuid.New()
		projects = append(projects, it.project)

		for _, name := range it.skills {
			// unknown names are skipped, matching a lookup by name
			skill, ok := state.Skills[name]
			if !ok {
				continue
			}
			links = append(links, &model.ProjectSkill{ProjectID: it.project.ID, SkillID: skill.ID})
		}
	}

	if _, err := tx.NewInsert().Model(&projects).Exec(ctx); err != nil {
		return 0, err
	}
	if len(links) > 0 {
		if _, err := tx.NewInsert().Model(&links).Exec(ctx); err != nil {
			return 0, err
		}
	}
	return len(projects), nil
}

type EducationSeeder struct{}

func (EducationSeeder) Name() string { return "education" }

func (EducationSeeder) Run(ctx context.Context, tx bun.Tx, _ *State) (int, error) {
	education := []*model.Education{
		{
			ID:          uuid.New(),
			Institution: "University of Technology",
			Degree:      model.DegreeBachelor,
			Field:       "Computer Science",
			StartDate:   date(2012, 9, 1),
			EndDate:     ptr(date(2016, 6, 30)),
			Description: ptr("Graduated with honors. Focus on software engineering, algorithms, and database systems. Final year project: Distributed file storage system."),
		},
		{
			ID:          uuid.New(),
			Institution: "Tech Academy Online",
			Degree:      model.DegreeProfessional,
			Field:       "Cloud Architecture",
			StartDate:   date(2021, 1, 1),
			EndDate:     ptr(date(2021, 6, 30)),
			Description: ptr("Comprehensive course covering AWS, Azure, Docker, Kubernetes, and DevOps practices."),
		},
		{
			ID:          uuid.New(),
			Institution: "Data Science Institute",
			Degree:      model.DegreeCertificate,
			Field:       "Machine Learning",
			StartDate:   date(2022, 9, 1),
			EndDate:     ptr(date(2023, 3, 31)),
			Description: ptr("Focused on practical ML applications, neural networks, and data analysis with Python."),
		},
	}

	if _, err := tx.NewInsert().Model(&education).Exec(ctx); err != nil {
		return 0, err
	}
	return len(education), nil
}

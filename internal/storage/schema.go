package storage

import (
	"context"
	"fmt"

	"github.com/goliatone/go-cv-backend/internal/model"
	"github.com/uptrace/bun"
)

type index struct {
	name    string
	model   any
	columns []string
}

// indexes mirrors the migration files.
var indexes = []index{
	{"idx_companies_start_date", (*model.Company)(nil), []string{"start_date"}},
	{"idx_companies_name", (*model.Company)(nil), []string{"name"}},
	{"idx_education_start_date", (*model.Education)(nil), []string{"start_date"}},
	{"idx_education_institution", (*model.Education)(nil), []string{"institution"}},
	{"idx_education_degree", (*model.Education)(nil), []string{"degree"}},
	{"ix_project_skills_skill_id", (*model.ProjectSkill)(nil), []string{"skill_id"}},
	{"idx_projects_company_id", (*model.Project)(nil), []string{"company_id"}},
	{"idx_projects_name", (*model.Project)(nil), []string{"name"}},
	{"idx_projects_start_date", (*model.Project)(nil), []string{"start_date"}},
	{"idx_skills_category", (*model.Skill)(nil), []string{"category"}},
	{"idx_skills_proficiency_level", (*model.Skill)(nil), []string{"proficiency_level"}},
	{"idx_skills_name", (*model.Skill)(nil), []string{"name"}},
}

// CreateSchema creates tables and indexes straight from the bun models.
// It is used for in-memory databases where migrations are skipped.
func CreateSchema(ctx context.Context, db bun.IDB) error {
	for _, m := range model.Models() {
		_, err := db.NewCreateTable().
			Model(m).
			IfNotExists().
			WithForeignKeys().
			Exec(ctx)
		if err != nil {
			return wrapQueryErr(err, fmt.Sprintf("%T", m), "create table")
		}
	}

	for _, idx := range indexes {
		_, err := db.NewCreateIndex().
			Model(idx.model).
			Index(idx.name).
			Column(idx.columns...).
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return wrapQueryErr(err, idx.name, "create index")
		}
	}

	return nil
}

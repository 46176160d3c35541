// Package model holds the persisted CV entities and their bun table mappings.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Company is an employer. Projects reference it through a nullable
// foreign key that is cleared when the company is deleted.
type Company struct {
	bun.BaseModel `bun:"table:companies,alias:company"`

	ID          uuid.UUID  `bun:"id,pk,type:uuid" json:"id"`
	Name        string     `bun:"name,notnull,type:varchar(200)" json:"name"`
	Position    string     `bun:"position,notnull,type:varchar(200)" json:"position"`
	StartDate   time.Time  `bun:"start_date,notnull" json:"startDate"`
	EndDate     *time.Time `bun:"end_date" json:"endDate,omitempty"`
	Description *string    `bun:"description" json:"description,omitempty"`

	Projects []*Project `bun:"rel:has-many,join:id=company_id" json:"projects,omitempty"`
}

// Project is a piece of work, optionally done for a Company.
type Project struct {
	bun.BaseModel `bun:"table:projects,alias:project"`

	ID           uuid.UUID  `bun:"id,pk,type:uuid" json:"id"`
	Name         string     `bun:"name,notnull,type:varchar(200)" json:"name"`
	CompanyID    *uuid.UUID `bun:"company_id,type:uuid" json:"companyId,omitempty"`
	Description  *string    `bun:"description" json:"description,omitempty"`
	Technologies *string    `bun:"technologies" json:"technologies,omitempty"`
	StartDate    time.Time  `bun:"start_date,notnull" json:"startDate"`
	EndDate      *time.Time `bun:"end_date" json:"endDate,omitempty"`

	Company *Company `bun:"rel:belongs-to,join:company_id=id,on_delete:SET NULL" json:"company,omitempty"`
	Skills  []*Skill `bun:"m2m:project_skills,join:Project=Skill" json:"skills,omitempty"`
}

// Education is a completed or ongoing course of study.
type Education struct {
	bun.BaseModel `bun:"table:education,alias:education"`

	ID          uuid.UUID  `bun:"id,pk,type:uuid" json:"id"`
	Institution string     `bun:"institution,notnull,type:varchar(200)" json:"institution"`
	Degree      DegreeType `bun:"degree,notnull,type:varchar(200)" json:"degree"`
	Field       string     `bun:"field,notnull,type:varchar(200)" json:"field"`
	StartDate   time.Time  `bun:"start_date,notnull" json:"startDate"`
	EndDate     *time.Time `bun:"end_date" json:"endDate,omitempty"`
	Description *string    `bun:"description" json:"description,omitempty"`
}

// Skill is a technology or practice, grouped by a free-text category.
type Skill struct {
	bun.BaseModel `bun:"table:skills,alias:skill"`

	ID               uuid.UUID        `bun:"id,pk,type:uuid" json:"id"`
	Name             string           `bun:"name,notnull,type:varchar(100)" json:"name"`
	Category         string           `bun:"category,notnull,type:varchar(100)" json:"category"`
	ProficiencyLevel ProficiencyLevel `bun:"proficiency_level,notnull,type:varchar(50)" json:"proficiencyLevel"`
	YearsExperience  int              `bun:"years_experience,notnull" json:"yearsExperience"`

	Projects []*Project `bun:"m2m:project_skills,join:Skill=Project" json:"projects,omitempty"`
}

// ProjectSkill is the join row between Project and Skill. Rows are removed
// when either side is deleted.
type ProjectSkill struct {
	bun.BaseModel `bun:"table:project_skills,alias:ps"`

	ProjectID uuid.UUID `bun:"project_id,pk,type:uuid"`
	Project   *Project  `bun:"rel:belongs-to,join:project_id=id,on_delete:CASCADE"`
	SkillID   uuid.UUID `bun:"skill_id,pk,type:uuid"`
	Skill     *Skill    `bun:"rel:belongs-to,join:skill_id=id,on_delete:CASCADE"`
}

func (c *Company) GetID() uuid.UUID     { return c.ID }
func (c *Company) SetID(id uuid.UUID)   { c.ID = id }
func (p *Project) GetID() uuid.UUID     { return p.ID }
func (p *Project) SetID(id uuid.UUID)   { p.ID = id }
func (e *Education) GetID() uuid.UUID   { return e.ID }
func (e *Education) SetID(id uuid.UUID) { e.ID = id }
func (s *Skill) GetID() uuid.UUID       { return s.ID }
func (s *Skill) SetID(id uuid.UUID)     { s.ID = id }

// Models lists every table model in dependency order. The join model must
// be registered with bun before m2m relations can be queried.
func Models() []any {
	return []any{
		(*Company)(nil),
		(*Skill)(nil),
		(*Project)(nil),
		(*Education)(nil),
		(*ProjectSkill)(nil),
	}
}

// Register registers the join model with db.
func Register(db *bun.DB) {
	db.RegisterModel((*ProjectSkill)(nil))
}

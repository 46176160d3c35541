// Package seed populates an empty database with the initial CV content.
package seed

import (
	"context"
	"fmt"

	"github.com/goliatone/go-cv-backend/internal/model"
	goerrors "github.com/goliatone/go-errors"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Seeder inserts one kind of row. Rows it creates that later seeders depend
// on are recorded in the shared State.
type Seeder interface {
	Name() string
	Run(ctx context.Context, tx bun.Tx, state *State) (int, error)
}

// State carries rows created by earlier seeders in the same run.
type State struct {
	Companies []*model.Company
	Skills    map[string]*model.Skill
}

// Runner applies seeders in order inside a single transaction.
type Runner struct {
	Seeders []Seeder
	Logger  *zap.Logger
}

// Defaults returns the production seeders in dependency order.
func Defaults() []Seeder {
	return []Seeder{
		CompaniesSeeder{},
		SkillsSeeder{},
		ProjectsSeeder{},
		EducationSeeder{},
	}
}

// Run seeds db with Defaults. It reports whether anything was written.
func Run(ctx context.Context, db bun.IDB, logger *zap.Logger) (bool, error) {
	return Runner{Seeders: Defaults(), Logger: logger}.Run(ctx, db)
}

// Run seeds db unless any entity table already has a row.
func (r Runner) Run(ctx context.Context, db bun.IDB) (bool, error) {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("seed")

	seeded, err := IsSeeded(ctx, db)
	if err != nil {
		return false, err
	}
	if seeded {
		logger.Info("database already contains data, skipping seeding")
		return false, nil
	}

	logger.Info("seeding database with initial data")

	state := &State{Skills: map[string]*model.Skill{}}
	err = db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, s := range r.Seeders {
			if s == nil {
				continue
			}
			n, err := s.Run(ctx, tx, state)
			if err != nil {
				return fmt.Errorf("seed %s: %w", s.Name(), err)
			}
			logger.Info("seeded", zap.String("seeder", s.Name()), zap.Int("count", n))
		}
		return nil
	})
	if err != nil {
		logger.Error("seeding failed", zap.Error(err))
		return false, goerrors.Wrap(err, goerrors.CategoryExternal, "seed database").
			WithTextCode("SEED_FAILED")
	}

	logger.Info("database seeding completed")
	return true, nil
}

// IsSeeded reports whether any of the entity tables has at least one row.
func IsSeeded(ctx context.Context, db bun.IDB) (bool, error) {
	tables := []any{
		(*model.Company)(nil),
		(*model.Education)(nil),
		(*model.Skill)(nil),
		(*model.Project)(nil),
	}

	for _, m := range tables {
		exists, err := db.NewSelect().Model(m).Exists(ctx)
		if err != nil {
			return false, goerrors.Wrap(err, goerrors.CategoryExternal, "check seed state").
				WithTextCode("STORAGE_UNAVAILABLE")
		}
		if exists {
			return true, nil
		}
	}
	return false, nil
}

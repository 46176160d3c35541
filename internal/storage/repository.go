package storage

import (
	"context"
	"reflect"
	"strings"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Identifiable is implemented by every model a Repository serves.
type Identifiable interface {
	GetID() uuid.UUID
	SetID(uuid.UUID)
}

// Repository is a read gateway for one bun model. Every list it returns is
// sorted by the model's canonical columns and is never nil.
type Repository[T any] struct {
	base   repository.Repository[*T]
	entity string
	order  SelectCriteria
}

// NewRepository builds a repository for T named entity (used in errors),
// sorted by orderColumns.
func NewRepository[T any, PT interface {
	*T
	Identifiable
}](db *bun.DB, entity string, orderColumns ...string) *Repository[T] {
	handlers := repository.ModelHandlers[*T]{
		NewRecord: func() *T { return new(T) },
		GetID: func(record *T) uuid.UUID {
			if record == nil {
				return uuid.Nil
			}
			return PT(record).GetID()
		},
		SetID: func(record *T, id uuid.UUID) {
			PT(record).SetID(id)
		},
	}

	return &Repository[T]{
		base:   repository.NewRepository[*T](db, handlers),
		entity: entity,
		order:  OrderBy(orderColumns...),
	}
}

// List returns every row matching criteria in canonical order.
func (r *Repository[T]) List(ctx context.Context, criteria ...SelectCriteria) ([]*T, error) {
	records, _, err := r.base.List(ctx, r.listCriteria(criteria)...)
	if err != nil && !repository.IsRecordNotFound(err) {
		return nil, wrapQueryErr(err, r.entity, "list")
	}

	if records == nil {
		records = make([]*T, 0)
	}
	return records, nil
}

// ListWithRelations returns every row with the named relations loaded.
// Slice relations that matched nothing are set to empty slices.
func (r *Repository[T]) ListWithRelations(ctx context.Context, relations ...Relation) ([]*T, error) {
	records, _, err := r.base.List(ctx, r.listCriteria(relationCriteria(relations))...)
	if err != nil && !repository.IsRecordNotFound(err) {
		return nil, wrapQueryErr(err, r.entity, "list with relations")
	}

	if records == nil {
		records = make([]*T, 0)
	}
	for _, rec := range records {
		fillEmptyRelations(rec, relations)
	}
	return records, nil
}

// GetByID returns the row with primary key id, or a not-found error.
func (r *Repository[T]) GetByID(ctx context.Context, id uuid.UUID, relations ...Relation) (*T, error) {
	record, err := r.base.GetByID(ctx, id.String(), relationCriteria(relations)...)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, NotFound(r.entity, id)
		}
		return nil, wrapQueryErr(err, r.entity, "get")
	}

	fillEmptyRelations(record, relations)
	return record, nil
}

// listCriteria lifts the default page the base repository applies and
// appends the canonical order after the caller's criteria.
func (r *Repository[T]) listCriteria(criteria []SelectCriteria) []SelectCriteria {
	out := make([]SelectCriteria, 0, len(criteria)+2)
	out = append(out, repository.SelectPaginate(0, 0))
	out = append(out, criteria...)
	return append(out, r.order)
}

func relationCriteria(relations []Relation) []SelectCriteria {
	out := make([]SelectCriteria, 0, len(relations))
	for _, rel := range relations {
		if rel.Apply != nil {
			out = append(out, repository.SelectRelation(rel.Name, rel.Apply))
			continue
		}
		out = append(out, repository.SelectRelation(rel.Name))
	}
	return out
}

// fillEmptyRelations replaces nil slices of top-level relations with empty
// ones; bun leaves has-many and m2m slices nil when nothing joined.
func fillEmptyRelations(record any, relations []Relation) {
	v := reflect.ValueOf(record)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return
	}

	for _, rel := range relations {
		name, _, _ := strings.Cut(rel.Name, ".")
		f := v.FieldByName(name)
		if f.IsValid() && f.Kind() == reflect.Slice && f.IsNil() && f.CanSet() {
			f.Set(reflect.MakeSlice(f.Type(), 0, 0))
		}
	}
}

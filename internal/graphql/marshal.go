package graphql

import (
	"context"
	"time"

	gqlgen "github.com/99designs/gqlgen/graphql"
	"github.com/goliatone/go-cv-backend/internal/model"
	"github.com/goliatone/go-cv-backend/internal/naming"
	"github.com/google/uuid"
	"github.com/vektah/gqlparser/v2/ast"
)

// marshalFunc writes one resolved value under the selection sel.
type marshalFunc[T any] func(ctx context.Context, sel ast.SelectionSet, v T) gqlgen.Marshaler

func marshalString(_ context.Context, _ ast.SelectionSet, v string) gqlgen.Marshaler {
	return gqlgen.MarshalString(v)
}

func marshalOptionalString(_ context.Context, _ ast.SelectionSet, v *string) gqlgen.Marshaler {
	if v == nil {
		return gqlgen.Null
	}
	return gqlgen.MarshalString(*v)
}

func marshalInt(_ context.Context, _ ast.SelectionSet, v int) gqlgen.Marshaler {
	return gqlgen.MarshalInt(v)
}

func marshalBoolean(_ context.Context, _ ast.SelectionSet, v bool) gqlgen.Marshaler {
	return gqlgen.MarshalBoolean(v)
}

// UUIDs are written even when zero; gqlgen's MarshalUUID turns uuid.Nil
// into null.
func marshalUUID(_ context.Context, _ ast.SelectionSet, v uuid.UUID) gqlgen.Marshaler {
	return gqlgen.MarshalString(v.String())
}

func marshalOptionalUUID(ctx context.Context, sel ast.SelectionSet, v *uuid.UUID) gqlgen.Marshaler {
	if v == nil {
		return gqlgen.Null
	}
	return marshalUUID(ctx, sel, *v)
}

// DateTime values are RFC 3339 in UTC with second precision.
func marshalDateTime(_ context.Context, _ ast.SelectionSet, v time.Time) gqlgen.Marshaler {
	return gqlgen.MarshalString(v.UTC().Format(time.RFC3339))
}

func marshalOptionalDateTime(ctx context.Context, sel ast.SelectionSet, v *time.Time) gqlgen.Marshaler {
	if v == nil {
		return gqlgen.Null
	}
	return marshalDateTime(ctx, sel, *v)
}

// Persisted enum names are PascalCase; the schema uses UPPER_SNAKE.
func marshalDegreeType(ctx context.Context, _ ast.SelectionSet, v model.DegreeType) gqlgen.Marshaler {
	return marshalEnum(ctx, "DegreeType", string(v), model.DegreeTypes())
}

func marshalProficiencyLevel(ctx context.Context, _ ast.SelectionSet, v model.ProficiencyLevel) gqlgen.Marshaler {
	return marshalEnum(ctx, "ProficiencyLevel", string(v), model.ProficiencyLevels())
}

func marshalEnum[E ~string](ctx context.Context, enum, raw string, known []E) gqlgen.Marshaler {
	for _, k := range known {
		if string(k) == raw {
			return gqlgen.MarshalString(naming.ToScreamingSnake(raw))
		}
	}
	gqlgen.AddErrorf(ctx, "%q is not a %s value", raw, enum)
	return gqlgen.Null
}

func unmarshalUUID(_ context.Context, v any) (uuid.UUID, error) {
	id, err := gqlgen.UnmarshalUUID(v)
	if err != nil {
		return uuid.Nil, badInput("%v is not a valid UUID", v)
	}
	return id, nil
}

func unmarshalString(_ context.Context, v any) (string, error) {
	s, err := gqlgen.UnmarshalString(v)
	if err != nil {
		return "", badInput("%v is not a string", v)
	}
	return s, nil
}

// unmarshalOptionalInt returns nil for an absent or null argument.
func unmarshalOptionalInt(_ context.Context, v any) (*int, error) {
	if v == nil {
		return nil, nil
	}
	n, err := gqlgen.UnmarshalInt(v)
	if err != nil {
		return nil, badInput("%v is not an integer", v)
	}
	return &n, nil
}

func unmarshalOptionalString(ctx context.Context, v any) (*string, error) {
	if v == nil {
		return nil, nil
	}
	s, err := unmarshalString(ctx, v)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func unmarshalDegreeType(ctx context.Context, v any) (model.DegreeType, error) {
	return unmarshalEnum(ctx, v, "degree type", model.DegreeTypes())
}

func unmarshalProficiencyLevel(ctx context.Context, v any) (model.ProficiencyLevel, error) {
	return unmarshalEnum(ctx, v, "proficiency level", model.ProficiencyLevels())
}

func unmarshalEnum[E ~string](ctx context.Context, v any, what string, known []E) (E, error) {
	raw, err := unmarshalString(ctx, v)
	if err != nil {
		return "", err
	}
	for _, k := range known {
		if naming.ToScreamingSnake(string(k)) == raw {
			return k, nil
		}
	}
	return "", badInput("unknown %s %q", what, raw)
}

package graphql

import (
	"context"

	gqlgen "github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/introspection"
	goerrors "github.com/goliatone/go-errors"
	"github.com/vektah/gqlparser/v2/ast"
)

func errIntrospectionDisabled() error {
	return goerrors.New("introspection disabled", goerrors.CategoryValidation).
		WithTextCode(TextCodeValidationFailed)
}

func (ec *executionContext) _Query___schema(ctx context.Context, field gqlgen.CollectedField) gqlgen.Marshaler {
	return resolveField(ctx, ec, "Query", field, false, nil, func(context.Context, map[string]any) (*introspection.Schema, error) {
		if ec.DisableIntrospection {
			return nil, errIntrospectionDisabled()
		}
		return introspection.WrapSchema(ec.Schema()), nil
	}, optional(ec.___Schema))
}

func (ec *executionContext) _Query___type(ctx context.Context, field gqlgen.CollectedField) gqlgen.Marshaler {
	return resolveField(ctx, ec, "Query", field, false, stringArg("name"), func(_ context.Context, args map[string]any) (*introspection.Type, error) {
		if ec.DisableIntrospection {
			return nil, errIntrospectionDisabled()
		}
		return introspection.WrapTypeFromDef(ec.Schema(), ec.Schema().Types[args["name"].(string)]), nil
	}, optional(ec.___Type))
}

func includeDeprecated(ec *executionContext, field gqlgen.CollectedField) bool {
	v, _ := field.ArgumentMap(ec.Variables)["includeDeprecated"].(bool)
	return v
}

func (ec *executionContext) ___Schema(ctx context.Context, sel ast.SelectionSet, obj *introspection.Schema) gqlgen.Marshaler {
	return ec.object(ctx, sel, "__Schema", func(ctx context.Context, field gqlgen.CollectedField) gqlgen.Marshaler {
		switch field.Name {
		case "description":
			return marshalOptionalString(ctx, nil, obj.Description())
		case "types":
			return listOf(ec.___TypeValue)(ctx, field.Selections, obj.Types())
		case "queryType":
			return optional(ec.___Type)(ctx, field.Selections, obj.QueryType())
		case "mutationType":
			return optional(ec.___Type)(ctx, field.Selections, obj.MutationType())
		case "subscriptionType":
			return optional(ec.___Type)(ctx, field.Selections, obj.SubscriptionType())
		case "directives":
			return listOf(ec.___Directive)(ctx, field.Selections, obj.Directives())
		}
		return unknownField(field)
	})
}

func (ec *executionContext) ___TypeValue(ctx context.Context, sel ast.SelectionSet, obj introspection.Type) gqlgen.Marshaler {
	return ec.___Type(ctx, sel, &obj)
}

func (ec *executionContext) ___Type(ctx context.Context, sel ast.SelectionSet, obj *introspection.Type) gqlgen.Marshaler {
	return ec.object(ctx, sel, "__Type", func(ctx context.Context, field gqlgen.CollectedField) gqlgen.Marshaler {
		switch field.Name {
		case "kind":
			return gqlgen.MarshalString(obj.Kind())
		case "name":
			return marshalOptionalString(ctx, nil, obj.Name())
		case "description":
			return marshalOptionalString(ctx, nil, obj.Description())
		case "specifiedByURL":
			return marshalOptionalString(ctx, nil, obj.SpecifiedByURL())
		case "isOneOf":
			return gqlgen.MarshalBoolean(obj.IsOneOf())
		case "fields":
			fields := obj.Fields(includeDeprecated(ec, field))
			if fields == nil {
				return gqlgen.Null
			}
			return listOf(ec.___Field)(ctx, field.Selections, fields)
		case "interfaces":
			if types := obj.Interfaces(); types != nil {
				return listOf(ec.___TypeValue)(ctx, field.Selections, types)
			}
			return gqlgen.Null
		case "possibleTypes":
			if types := obj.PossibleTypes(); types != nil {
				return listOf(ec.___TypeValue)(ctx, field.Selections, types)
			}
			return gqlgen.Null
		case "enumValues":
			values := obj.EnumValues(includeDeprecated(ec, field))
			if values == nil {
				return gqlgen.Null
			}
			return listOf(ec.___EnumValue)(ctx, field.Selections, values)
		case "inputFields":
			if inputs := obj.InputFields(); inputs != nil {
				return listOf(ec.___InputValue)(ctx, field.Selections, inputs)
			}
			return gqlgen.Null
		case "ofType":
			return optional(ec.___Type)(ctx, field.Selections, obj.OfType())
		}
		return unknownField(field)
	})
}

func (ec *executionContext) ___Field(ctx context.Context, sel ast.SelectionSet, obj introspection.Field) gqlgen.Marshaler {
	return ec.object(ctx, sel, "__Field", func(ctx context.Context, field gqlgen.CollectedField) gqlgen.Marshaler {
		switch field.Name {
		case "name":
			return gqlgen.MarshalString(obj.Name)
		case "description":
			return marshalOptionalString(ctx, nil, obj.Description())
		case "args":
			return listOf(ec.___InputValue)(ctx, field.Selections, obj.Args)
		case "type":
			return required(ec.___Type)(ctx, field.Selections, obj.Type)
		case "isDeprecated":
			return gqlgen.MarshalBoolean(obj.IsDeprecated())
		case "deprecationReason":
			return marshalOptionalString(ctx, nil, obj.DeprecationReason())
		}
		return unknownField(field)
	})
}

func (ec *executionContext) ___InputValue(ctx context.Context, sel ast.SelectionSet, obj introspection.InputValue) gqlgen.Marshaler {
	return ec.object(ctx, sel, "__InputValue", func(ctx context.Context, field gqlgen.CollectedField) gqlgen.Marshaler {
		switch field.Name {
		case "name":
			return gqlgen.MarshalString(obj.Name)
		case "description":
			return marshalOptionalString(ctx, nil, obj.Description())
		case "type":
			return required(ec.___Type)(ctx, field.Selections, obj.Type)
		case "defaultValue":
			return marshalOptionalString(ctx, nil, obj.DefaultValue)
		case "isDeprecated":
			return gqlgen.MarshalBoolean(obj.IsDeprecated())
		case "deprecationReason":
			return marshalOptionalString(ctx, nil, obj.DeprecationReason())
		}
		return unknownField(field)
	})
}

func (ec *executionContext) ___EnumValue(ctx context.Context, sel ast.SelectionSet, obj introspection.EnumValue) gqlgen.Marshaler {
	return ec.object(ctx, sel, "__EnumValue", func(ctx context.Context, field gqlgen.CollectedField) gqlgen.Marshaler {
		switch field.Name {
		case "name":
			return gqlgen.MarshalString(obj.Name)
		case "description":
			return marshalOptionalString(ctx, nil, obj.Description())
		case "isDeprecated":
			return gqlgen.MarshalBoolean(obj.IsDeprecated())
		case "deprecationReason":
			return marshalOptionalString(ctx, nil, obj.DeprecationReason())
		}
		return unknownField(field)
	})
}

func (ec *executionContext) ___Directive(ctx context.Context, sel ast.SelectionSet, obj introspection.Directive) gqlgen.Marshaler {
	return ec.object(ctx, sel, "__Directive", func(ctx context.Context, field gqlgen.CollectedField) gqlgen.Marshaler {
		switch field.Name {
		case "name":
			return gqlgen.MarshalString(obj.Name)
		case "description":
			return marshalOptionalString(ctx, nil, obj.Description())
		case "locations":
			locations := make(gqlgen.Array, len(obj.Locations))
			for i, loc := range obj.Locations {
				locations[i] = gqlgen.MarshalString(loc)
			}
			return locations
		case "args":
			return listOf(ec.___InputValue)(ctx, field.Selections, obj.Args)
		case "isRepeatable":
			return gqlgen.MarshalBoolean(obj.IsRepeatable)
		}
		return unknownField(field)
	})
}

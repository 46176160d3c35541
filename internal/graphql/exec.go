package graphql

import (
	"bytes"
	"context"
	"strconv"
	"sync/atomic"

	gqlgen "github.com/99designs/gqlgen/graphql"
	"github.com/goliatone/go-cv-backend/internal/model"
	"github.com/google/uuid"
	"github.com/vektah/gqlparser/v2/ast"
)

// ResolverRoot gives the executable schema its field resolvers.
type ResolverRoot interface {
	Query() QueryResolver
	Company() CompanyResolver
	Project() ProjectResolver
	Skill() SkillResolver
}

type QueryResolver interface {
	Companies(ctx context.Context) ([]*model.Company, error)
	CompaniesPaged(ctx context.Context, first *int, after *string) (*Connection, error)
	Company(ctx context.Context, id uuid.UUID) (*model.Company, error)
	CompanyWithProjects(ctx context.Context, id uuid.UUID) (*model.Company, error)
	CompaniesWithProjects(ctx context.Context) ([]*model.Company, error)

	Projects(ctx context.Context) ([]*model.Project, error)
	ProjectsPaged(ctx context.Context, first *int, after *string) (*Connection, error)
	Project(ctx context.Context, id uuid.UUID) (*model.Project, error)
	ProjectsWithRelations(ctx context.Context) ([]*model.Project, error)
	ProjectsByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Project, error)
	ProjectsBySkill(ctx context.Context, skillID uuid.UUID) ([]*model.Project, error)

	AllEducation(ctx context.Context) ([]*model.Education, error)
	AllEducationPaged(ctx context.Context, first *int, after *string) (*Connection, error)
	Education(ctx context.Context, id uuid.UUID) (*model.Education, error)
	EducationByDegree(ctx context.Context, degree model.DegreeType) ([]*model.Education, error)
	EducationByInstitution(ctx context.Context, institution string) ([]*model.Education, error)

	Skills(ctx context.Context) ([]*model.Skill, error)
	SkillsPaged(ctx context.Context, first *int, after *string) (*Connection, error)
	Skill(ctx context.Context, id uuid.UUID) (*model.Skill, error)
	SkillsByCategory(ctx context.Context, category string) ([]*model.Skill, error)
	SkillsByProficiency(ctx context.Context, level model.ProficiencyLevel) ([]*model.Skill, error)
	SkillsWithProjects(ctx context.Context) ([]*model.Skill, error)
	SkillsByProject(ctx context.Context, projectID uuid.UUID) ([]*model.Skill, error)
}

type CompanyResolver interface {
	Projects(ctx context.Context, obj *model.Company) ([]*model.Project, error)
}

type ProjectResolver interface {
	Company(ctx context.Context, obj *model.Project) (*model.Company, error)
	Skills(ctx context.Context, obj *model.Project) ([]*model.Skill, error)
}

type SkillResolver interface {
	Projects(ctx context.Context, obj *model.Skill) ([]*model.Project, error)
}

// NewExecutableSchema binds schema to resolvers for gqlgen's executor.
func NewExecutableSchema(schema *ast.Schema, resolvers ResolverRoot) gqlgen.ExecutableSchema {
	return &executableSchema{schema: schema, resolvers: resolvers}
}

type executableSchema struct {
	schema    *ast.Schema
	resolvers ResolverRoot
}

func (e *executableSchema) Schema() *ast.Schema {
	return e.schema
}

func (e *executableSchema) Complexity(_ context.Context, _, _ string, _ int, _ map[string]any) (int, bool) {
	return 0, false
}

func (e *executableSchema) Exec(ctx context.Context) gqlgen.ResponseHandler {
	opCtx := gqlgen.GetOperationContext(ctx)
	ec := executionContext{opCtx, e}

	switch opCtx.Operation.Operation {
	case ast.Query:
		return func(ctx context.Context) *gqlgen.Response {
			var buf bytes.Buffer
			data := ec._Query(ctx, opCtx.Operation.SelectionSet)
			data.MarshalGQL(&buf)
			return &gqlgen.Response{Data: buf.Bytes()}
		}
	default:
		return gqlgen.OneShot(gqlgen.ErrorResponse(ctx, "unsupported GraphQL operation"))
	}
}

type executionContext struct {
	*gqlgen.OperationContext
	*executableSchema
}

// argsFunc decodes the raw arguments of a field.
type argsFunc func(ctx context.Context, raw map[string]any) (map[string]any, error)

// fieldFunc produces the value of a field from its decoded arguments.
type fieldFunc[T any] func(ctx context.Context, args map[string]any) (T, error)

func value[T any](v T) fieldFunc[T] {
	return func(context.Context, map[string]any) (T, error) { return v, nil }
}

func (ec *executionContext) fieldContext(ctx context.Context, object string, field gqlgen.CollectedField, resolver bool, args argsFunc) (fc *gqlgen.FieldContext, err error) {
	fc = &gqlgen.FieldContext{
		Object:     object,
		Field:      field,
		IsMethod:   resolver,
		IsResolver: resolver,
	}
	if args == nil {
		return fc, nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = gqlgen.WithFieldContext(ctx, fc)
	if fc.Args, err = args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

// resolveField runs one field through the resolver middleware and
// marshals what it returns. Errors are reported on the field's path and
// leave it null.
func resolveField[T any](ctx context.Context, ec *executionContext, object string, field gqlgen.CollectedField, resolver bool, args argsFunc, resolve fieldFunc[T], marshal marshalFunc[T]) (ret gqlgen.Marshaler) {
	fc, err := ec.fieldContext(ctx, object, field, resolver, args)
	if err != nil {
		return gqlgen.Null
	}
	ctx = gqlgen.WithFieldContext(ctx, fc)
	defer func() {
		if r := recover(); r != nil {
			ec.Error(ctx, ec.Recover(ctx, r))
			ret = gqlgen.Null
		}
	}()

	resTmp, err := ec.ResolverMiddleware(ctx, func(rctx context.Context) (any, error) {
		ctx = rctx
		return resolve(rctx, fc.Args)
	})
	if err != nil {
		ec.Error(ctx, err)
		return gqlgen.Null
	}
	if resTmp == nil {
		return gqlgen.Null
	}
	res := resTmp.(T)
	fc.Result = res
	return marshal(ctx, field.Selections, res)
}

// object marshals the fields sel selects on typeName. A non-null field
// that resolved to null makes the whole object null.
func (ec *executionContext) object(ctx context.Context, sel ast.SelectionSet, typeName string, resolve func(ctx context.Context, field gqlgen.CollectedField) gqlgen.Marshaler) gqlgen.Marshaler {
	fields := gqlgen.CollectFields(ec.OperationContext, sel, []string{typeName})
	out := gqlgen.NewFieldSet(fields)
	for i, field := range fields {
		if field.Name == "__typename" {
			out.Values[i] = gqlgen.MarshalString(typeName)
			continue
		}
		out.Values[i] = resolve(ctx, field)
		if out.Values[i] == gqlgen.Null && nonNull(field) {
			out.Invalids++
		}
	}
	if out.Invalids > 0 {
		return gqlgen.Null
	}
	return out
}

func nonNull(field gqlgen.CollectedField) bool {
	return field.Definition != nil && field.Definition.Type.NonNull
}

func unknownField(field gqlgen.CollectedField) gqlgen.Marshaler {
	panic("unknown field " + strconv.Quote(field.Name))
}

// marshalList writes a non-null list of non-null items; one null item
// nulls the list.
func marshalList[T any](ctx context.Context, sel ast.SelectionSet, v []T, item marshalFunc[T]) gqlgen.Marshaler {
	ret := make(gqlgen.Array, len(v))
	for i := range v {
		fc := &gqlgen.FieldContext{Index: &i, Result: v[i]}
		ret[i] = item(gqlgen.WithFieldContext(ctx, fc), sel, v[i])
		if ret[i] == gqlgen.Null {
			return gqlgen.Null
		}
	}
	return ret
}

func listOf[T any](item marshalFunc[T]) marshalFunc[[]T] {
	return func(ctx context.Context, sel ast.SelectionSet, v []T) gqlgen.Marshaler {
		return marshalList(ctx, sel, v, item)
	}
}

// required reports a null in a non-null position.
func required[T any](m marshalFunc[*T]) marshalFunc[*T] {
	return func(ctx context.Context, sel ast.SelectionSet, v *T) gqlgen.Marshaler {
		if v == nil {
			if fc := gqlgen.GetFieldContext(ctx); fc == nil || !gqlgen.HasFieldError(ctx, fc) {
				gqlgen.AddErrorf(ctx, "the requested element is null which the schema does not allow")
			}
			return gqlgen.Null
		}
		return m(ctx, sel, v)
	}
}

// node adapts m to the untyped Node of an Edge.
func node[T any](m marshalFunc[*T]) marshalFunc[any] {
	return func(ctx context.Context, sel ast.SelectionSet, v any) gqlgen.Marshaler {
		n, _ := v.(*T)
		return m(ctx, sel, n)
	}
}

func optional[T any](m marshalFunc[*T]) marshalFunc[*T] {
	return func(ctx context.Context, sel ast.SelectionSet, v *T) gqlgen.Marshaler {
		if v == nil {
			return gqlgen.Null
		}
		return m(ctx, sel, v)
	}
}

func (ec *executionContext) _Query(ctx context.Context, sel ast.SelectionSet) gqlgen.Marshaler {
	fields := gqlgen.CollectFields(ec.OperationContext, sel, []string{"Query"})
	ctx = gqlgen.WithFieldContext(ctx, &gqlgen.FieldContext{Object: "Query"})

	out := gqlgen.NewFieldSet(fields)
	for i, field := range fields {
		innerCtx := gqlgen.WithRootFieldContext(ctx, &gqlgen.RootFieldContext{
			Object: field.Name,
			Field:  field,
		})

		switch field.Name {
		case "__typename":
			out.Values[i] = gqlgen.MarshalString("Query")
		case "__type":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) gqlgen.Marshaler {
				return ec._Query___type(ctx, field)
			})
		case "__schema":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) gqlgen.Marshaler {
				return ec._Query___schema(ctx, field)
			})
		default:
			innerFunc := func(ctx context.Context, fs *gqlgen.FieldSet) gqlgen.Marshaler {
				res := ec._Query_field(ctx, field)
				if res == gqlgen.Null && nonNull(field) {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}
			out.Concurrently(i, func(ctx context.Context) gqlgen.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) gqlgen.Marshaler {
					return innerFunc(ctx, out)
				})
			})
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return gqlgen.Null
	}
	return out
}

func (ec *executionContext) _Query_field(ctx context.Context, field gqlgen.CollectedField) gqlgen.Marshaler {
	q := ec.resolvers.Query()
	companies := listOf(required(ec._Company))
	projects := listOf(required(ec._Project))
	education := listOf(required(ec._Education))
	skills := listOf(required(ec._Skill))

	switch field.Name {
	case "companies":
		return resolveField(ctx, ec, "Query", field, true, nil, func(ctx context.Context, _ map[string]any) ([]*model.Company, error) {
			return q.Companies(ctx)
		}, companies)
	case "companiesPaged":
		return resolveField(ctx, ec, "Query", field, true, pageArgs, func(ctx context.Context, args map[string]any) (*Connection, error) {
			return q.CompaniesPaged(ctx, firstArg(args), afterArg(args))
		}, ec.connection("Company", node(required(ec._Company))))
	case "company":
		return resolveField(ctx, ec, "Query", field, true, uuidArg("id"), func(ctx context.Context, args map[string]any) (*model.Company, error) {
			return q.Company(ctx, args["id"].(uuid.UUID))
		}, optional(ec._Company))
	case "companyWithProjects":
		return resolveField(ctx, ec, "Query", field, true, uuidArg("id"), func(ctx context.Context, args map[string]any) (*model.Company, error) {
			return q.CompanyWithProjects(ctx, args["id"].(uuid.UUID))
		}, optional(ec._Company))
	case "companiesWithProjects":
		return resolveField(ctx, ec, "Query", field, true, nil, func(ctx context.Context, _ map[string]any) ([]*model.Company, error) {
			return q.CompaniesWithProjects(ctx)
		}, companies)

	case "projects":
		return resolveField(ctx, ec, "Query", field, true, nil, func(ctx context.Context, _ map[string]any) ([]*model.Project, error) {
			return q.Projects(ctx)
		}, projects)
	case "projectsPaged":
		return resolveField(ctx, ec, "Query", field, true, pageArgs, func(ctx context.Context, args map[string]any) (*Connection, error) {
			return q.ProjectsPaged(ctx, firstArg(args), afterArg(args))
		}, ec.connection("Project", node(required(ec._Project))))
	case "project":
		return resolveField(ctx, ec, "Query", field, true, uuidArg("id"), func(ctx context.Context, args map[string]any) (*model.Project, error) {
			return q.Project(ctx, args["id"].(uuid.UUID))
		}, optional(ec._Project))
	case "projectsWithRelations":
		return resolveField(ctx, ec, "Query", field, true, nil, func(ctx context.Context, _ map[string]any) ([]*model.Project, error) {
			return q.ProjectsWithRelations(ctx)
		}, projects)
	case "projectsByCompany":
		return resolveField(ctx, ec, "Query", field, true, uuidArg("companyId"), func(ctx context.Context, args map[string]any) ([]*model.Project, error) {
			return q.ProjectsByCompany(ctx, args["companyId"].(uuid.UUID))
		}, projects)
	case "projectsBySkill":
		return resolveField(ctx, ec, "Query", field, true, uuidArg("skillId"), func(ctx context.Context, args map[string]any) ([]*model.Project, error) {
			return q.ProjectsBySkill(ctx, args["skillId"].(uuid.UUID))
		}, projects)

	case "allEducation":
		return resolveField(ctx, ec, "Query", field, true, nil, func(ctx context.Context, _ map[string]any) ([]*model.Education, error) {
			return q.AllEducation(ctx)
		}, education)
	case "allEducationPaged":
		return resolveField(ctx, ec, "Query", field, true, pageArgs, func(ctx context.Context, args map[string]any) (*Connection, error) {
			return q.AllEducationPaged(ctx, firstArg(args), afterArg(args))
		}, ec.connection("Education", node(required(ec._Education))))
	case "education":
		return resolveField(ctx, ec, "Query", field, true, uuidArg("id"), func(ctx context.Context, args map[string]any) (*model.Education, error) {
			return q.Education(ctx, args["id"].(uuid.UUID))
		}, optional(ec._Education))
	case "educationByDegree":
		return resolveField(ctx, ec, "Query", field, true, degreeArg, func(ctx context.Context, args map[string]any) ([]*model.Education, error) {
			return q.EducationByDegree(ctx, args["degree"].(model.DegreeType))
		}, education)
	case "educationByInstitution":
		return resolveField(ctx, ec, "Query", field, true, stringArg("institution"), func(ctx context.Context, args map[string]any) ([]*model.Education, error) {
			return q.EducationByInstitution(ctx, args["institution"].(string))
		}, education)

	case "skills":
		return resolveField(ctx, ec, "Query", field, true, nil, func(ctx context.Context, _ map[string]any) ([]*model.Skill, error) {
			return q.Skills(ctx)
		}, skills)
	case "skillsPaged":
		return resolveField(ctx, ec, "Query", field, true, pageArgs, func(ctx context.Context, args map[string]any) (*Connection, error) {
			return q.SkillsPaged(ctx, firstArg(args), afterArg(args))
		}, ec.connection("Skill", node(required(ec._Skill))))
	case "skill":
		return resolveField(ctx, ec, "Query", field, true, uuidArg("id"), func(ctx context.Context, args map[string]any) (*model.Skill, error) {
			return q.Skill(ctx, args["id"].(uuid.UUID))
		}, optional(ec._Skill))
	case "skillsByCategory":
		return resolveField(ctx, ec, "Query", field, true, stringArg("category"), func(ctx context.Context, args map[string]any) ([]*model.Skill, error) {
			return q.SkillsByCategory(ctx, args["category"].(string))
		}, skills)
	case "skillsByProficiency":
		return resolveField(ctx, ec, "Query", field, true, proficiencyArg, func(ctx context.Context, args map[string]any) ([]*model.Skill, error) {
			return q.SkillsByProficiency(ctx, args["proficiencyLevel"].(model.ProficiencyLevel))
		}, skills)
	case "skillsWithProjects":
		return resolveField(ctx, ec, "Query", field, true, nil, func(ctx context.Context, _ map[string]any) ([]*model.Skill, error) {
			return q.SkillsWithProjects(ctx)
		}, skills)
	case "skillsByProject":
		return resolveField(ctx, ec, "Query", field, true, uuidArg("projectId"), func(ctx context.Context, args map[string]any) ([]*model.Skill, error) {
			return q.SkillsByProject(ctx, args["projectId"].(uuid.UUID))
		}, skills)
	}
	return unknownField(field)
}

func uuidArg(name string) argsFunc {
	return func(ctx context.Context, raw map[string]any) (map[string]any, error) {
		v, err := gqlgen.ProcessArgField(ctx, raw, name, unmarshalUUID)
		if err != nil {
			return nil, err
		}
		return map[string]any{name: v}, nil
	}
}

func stringArg(name string) argsFunc {
	return func(ctx context.Context, raw map[string]any) (map[string]any, error) {
		v, err := gqlgen.ProcessArgField(ctx, raw, name, unmarshalString)
		if err != nil {
			return nil, err
		}
		return map[string]any{name: v}, nil
	}
}

func degreeArg(ctx context.Context, raw map[string]any) (map[string]any, error) {
	v, err := gqlgen.ProcessArgField(ctx, raw, "degree", unmarshalDegreeType)
	if err != nil {
		return nil, err
	}
	return map[string]any{"degree": v}, nil
}

func proficiencyArg(ctx context.Context, raw map[string]any) (map[string]any, error) {
	v, err := gqlgen.ProcessArgField(ctx, raw, "proficiencyLevel", unmarshalProficiencyLevel)
	if err != nil {
		return nil, err
	}
	return map[string]any{"proficiencyLevel": v}, nil
}

func pageArgs(ctx context.Context, raw map[string]any) (map[string]any, error) {
	first, err := gqlgen.ProcessArgField(ctx, raw, "first", unmarshalOptionalInt)
	if err != nil {
		return nil, err
	}
	after, err := gqlgen.ProcessArgField(ctx, raw, "after", unmarshalOptionalString)
	if err != nil {
		return nil, err
	}
	return map[string]any{"first": first, "after": after}, nil
}

func firstArg(args map[string]any) *int {
	v, _ := args["first"].(*int)
	return v
}

func afterArg(args map[string]any) *string {
	v, _ := args["after"].(*string)
	return v
}

func (ec *executionContext) _Company(ctx context.Context, sel ast.SelectionSet, obj *model.Company) gqlgen.Marshaler {
	return ec.object(ctx, sel, "Company", func(ctx context.Context, field gqlgen.CollectedField) gqlgen.Marshaler {
		switch field.Name {
		case "id":
			return resolveField(ctx, ec, "Company", field, false, nil, value(obj.ID), marshalUUID)
		case "name":
			return resolveField(ctx, ec, "Company", field, false, nil, value(obj.Name), marshalString)
		case "position":
			return resolveField(ctx, ec, "Company", field, false, nil, value(obj.Position), marshalString)
		case "startDate":
			return resolveField(ctx, ec, "Company", field, false, nil, value(obj.StartDate), marshalDateTime)
		case "endDate":
			return resolveField(ctx, ec, "Company", field, false, nil, value(obj.EndDate), marshalOptionalDateTime)
		case "description":
			return resolveField(ctx, ec, "Company", field, false, nil, value(obj.Description), marshalOptionalString)
		case "projects":
			return resolveField(ctx, ec, "Company", field, true, nil, func(ctx context.Context, _ map[string]any) ([]*model.Project, error) {
				return ec.resolvers.Company().Projects(ctx, obj)
			}, listOf(required(ec._Project)))
		}
		return unknownField(field)
	})
}

func (ec *executionContext) _Project(ctx context.Context, sel ast.SelectionSet, obj *model.Project) gqlgen.Marshaler {
	return ec.object(ctx, sel, "Project", func(ctx context.Context, field gqlgen.CollectedField) gqlgen.Marshaler {
		switch field.Name {
		case "id":
			return resolveField(ctx, ec, "Project", field, false, nil, value(obj.ID), marshalUUID)
		case "name":
			return resolveField(ctx, ec, "Project", field, false, nil, value(obj.Name), marshalString)
		case "companyId":
			return resolveField(ctx, ec, "Project", field, false, nil, value(obj.CompanyID), marshalOptionalUUID)
		case "description":
			return resolveField(ctx, ec, "Project", field, false, nil, value(obj.Description), marshalOptionalString)
		case "technologies":
			return resolveField(ctx, ec, "Project", field, false, nil, value(obj.Technologies), marshalOptionalString)
		case "startDate":
			return resolveField(ctx, ec, "Project", field, false, nil, value(obj.StartDate), marshalDateTime)
		case "endDate":
			return resolveField(ctx, ec, "Project", field, false, nil, value(obj.EndDate), marshalOptionalDateTime)
		case "company":
			return resolveField(ctx, ec, "Project", field, true, nil, func(ctx context.Context, _ map[string]any) (*model.Company, error) {
				return ec.resolvers.Project().Company(ctx, obj)
			}, optional(ec._Company))
		case "skills":
			return resolveField(ctx, ec, "Project", field, true, nil, func(ctx context.Context, _ map[string]any) ([]*model.Skill, error) {
				return ec.resolvers.Project().Skills(ctx, obj)
			}, listOf(required(ec._Skill)))
		}
		return unknownField(field)
	})
}

func (ec *executionContext) _Education(ctx context.Context, sel ast.SelectionSet, obj *model.Education) gqlgen.Marshaler {
	return ec.object(ctx, sel, "Education", func(ctx context.Context, field gqlgen.CollectedField) gqlgen.Marshaler {
		switch field.Name {
		case "id":
			return resolveField(ctx, ec, "Education", field, false, nil, value(obj.ID), marshalUUID)
		case "institution":
			return resolveField(ctx, ec, "Education", field, false, nil, value(obj.Institution), marshalString)
		case "degree":
			return resolveField(ctx, ec, "Education", field, false, nil, value(obj.Degree), marshalDegreeType)
		case "field":
			return resolveField(ctx, ec, "Education", field, false, nil, value(obj.Field), marshalString)
		case "startDate":
			return resolveField(ctx, ec, "Education", field, false, nil, value(obj.StartDate), marshalDateTime)
		case "endDate":
			return resolveField(ctx, ec, "Education", field, false, nil, value(obj.EndDate), marshalOptionalDateTime)
		case "description":
			return resolveField(ctx, ec, "Education", field, false, nil, value(obj.Description), marshalOptionalString)
		}
		return unknownField(field)
	})
}

func (ec *executionContext) _Skill(ctx context.Context, sel ast.SelectionSet, obj *model.Skill) gqlgen.Marshaler {
	return ec.object(ctx, sel, "Skill", func(ctx context.Context, field gqlgen.CollectedField) gqlgen.Marshaler {
		switch field.Name {
		case "id":
			return resolveField(ctx, ec, "Skill", field, false, nil, value(obj.ID), marshalUUID)
		case "name":
			return resolveField(ctx, ec, "Skill", field, false, nil, value(obj.Name), marshalString)
		case "category":
			return resolveField(ctx, ec, "Skill", field, false, nil, value(obj.Category), marshalString)
		case "proficiencyLevel":
			return resolveField(ctx, ec, "Skill", field, false, nil, value(obj.ProficiencyLevel), marshalProficiencyLevel)
		case "yearsExperience":
			return resolveField(ctx, ec, "Skill", field, false, nil, value(obj.YearsExperience), marshalInt)
		case "projects":
			return resolveField(ctx, ec, "Skill", field, true, nil, func(ctx context.Context, _ map[string]any) ([]*model.Project, error) {
				return ec.resolvers.Skill().Projects(ctx, obj)
			}, listOf(required(ec._Project)))
		}
		return unknownField(field)
	})
}

// connection marshals a <node>Connection whose edges hold *T nodes.
func (ec *executionContext) connection(node string, nodeMarshal marshalFunc[any]) marshalFunc[*Connection] {
	typeName := node + "Connection"
	edgeType := node + "Edge"

	edge := func(ctx context.Context, sel ast.SelectionSet, obj *Edge) gqlgen.Marshaler {
		return ec.object(ctx, sel, edgeType, func(ctx context.Context, field gqlgen.CollectedField) gqlgen.Marshaler {
			switch field.Name {
			case "cursor":
				return resolveField(ctx, ec, edgeType, field, false, nil, value(obj.Cursor), marshalString)
			case "node":
				return resolveField(ctx, ec, edgeType, field, false, nil, value(obj.Node), nodeMarshal)
			}
			return unknownField(field)
		})
	}

	return required(func(ctx context.Context, sel ast.SelectionSet, obj *Connection) gqlgen.Marshaler {
		return ec.object(ctx, sel, typeName, func(ctx context.Context, field gqlgen.CollectedField) gqlgen.Marshaler {
			switch field.Name {
			case "edges":
				return resolveField(ctx, ec, typeName, field, false, nil, value(obj.Edges), listOf(required(edge)))
			case "nodes":
				return resolveField(ctx, ec, typeName, field, true, nil, value(obj.Nodes()), listOf(nodeMarshal))
			case "pageInfo":
				return resolveField(ctx, ec, typeName, field, false, nil, value(&obj.PageInfo), required(ec._PageInfo))
			case "totalCount":
				return resolveField(ctx, ec, typeName, field, false, nil, value(obj.TotalCount), marshalInt)
			}
			return unknownField(field)
		})
	})
}

func (ec *executionContext) _PageInfo(ctx context.Context, sel ast.SelectionSet, obj *PageInfo) gqlgen.Marshaler {
	return ec.object(ctx, sel, "PageInfo", func(ctx context.Context, field gqlgen.CollectedField) gqlgen.Marshaler {
		switch field.Name {
		case "hasNextPage":
			return resolveField(ctx, ec, "PageInfo", field, false, nil, value(obj.HasNextPage), marshalBoolean)
		case "hasPreviousPage":
			return resolveField(ctx, ec, "PageInfo", field, false, nil, value(obj.HasPreviousPage), marshalBoolean)
		case "startCursor":
			return resolveField(ctx, ec, "PageInfo", field, false, nil, value(obj.StartCursor), marshalOptionalString)
		case "endCursor":
			return resolveField(ctx, ec, "PageInfo", field, false, nil, value(obj.EndCursor), marshalOptionalString)
		}
		return unknownField(field)
	})
}

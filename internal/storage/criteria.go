package storage

import (
	repository "github.com/goliatone/go-repository-bun"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
)

// SelectCriteria customises a select query. Criteria compose left to right.
type SelectCriteria = repository.SelectCriteria

// Relation names a bun relation to eager load, with optional criteria
// applied to the relation query (ordering, filters).
type Relation struct {
	Name  string
	Apply SelectCriteria
}

// OrderBy sorts by the given columns ascending, comparing bytes rather than
// locale rules so results are identical across database backends.
func OrderBy(columns ...string) SelectCriteria {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		collate := binaryCollation(q.Dialect().Name())
		for _, col := range columns {
			q = q.OrderExpr("?TableAlias.? COLLATE "+collate+" ASC", bun.Ident(col))
		}
		return q
	}
}

// WhereEqual matches rows whose column equals value exactly.
func WhereEqual(column string, value any) SelectCriteria {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("?TableAlias.? = ?", bun.Ident(column), value)
	}
}

// WhereContains matches rows whose column contains substr, case-sensitive.
func WhereContains(column, substr string) SelectCriteria {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		switch q.Dialect().Name() {
		case dialect.SQLite:
			return q.Where("instr(?TableAlias.?, ?) > 0", bun.Ident(column), substr)
		default:
			return q.Where("strpos(?TableAlias.?, ?) > 0", bun.Ident(column), substr)
		}
	}
}

// WhereLinked matches rows referenced from joinTable: a row qualifies when
// joinTable has a record with localColumn = row.id and otherColumn = id.
func WhereLinked(joinTable, localColumn, otherColumn string, id any) SelectCriteria {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where(
			"EXISTS (SELECT 1 FROM ? AS j WHERE j.? = ?TableAlias.id AND j.? = ?)",
			bun.Ident(joinTable), bun.Ident(localColumn), bun.Ident(otherColumn), id,
		)
	}
}

func binaryCollation(name dialect.Name) string {
	if name == dialect.PG {
		return `"C"`
	}
	return "BINARY"
}

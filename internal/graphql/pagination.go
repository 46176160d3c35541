package graphql

import (
	"encoding/base64"
	"strconv"
)

// Page size limits applied when a paged field omits or overstates first.
const (
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// PageConfig bounds forward pagination.
type PageConfig struct {
	DefaultSize int
	MaxSize     int
}

// DefaultPageConfig returns the default page bounds.
func DefaultPageConfig() PageConfig {
	return PageConfig{DefaultSize: DefaultPageSize, MaxSize: MaxPageSize}
}

func (c PageConfig) normalized() PageConfig {
	if c.DefaultSize <= 0 {
		c.DefaultSize = DefaultPageSize
	}
	if c.MaxSize <= 0 {
		c.MaxSize = MaxPageSize
	}
	if c.DefaultSize > c.MaxSize {
		c.DefaultSize = c.MaxSize
	}
	return c
}

// PageArgs are the forward pagination arguments of a paged field.
type PageArgs struct {
	First *int
	After *string
}

// Connection is a page of nodes with cursors.
type Connection struct {
	Edges      []*Edge
	PageInfo   PageInfo
	TotalCount int
}

// Nodes returns the edge nodes in order.
func (c *Connection) Nodes() []any {
	out := make([]any, len(c.Edges))
	for i, e := range c.Edges {
		out[i] = e.Node
	}
	return out
}

type Edge struct {
	Cursor string
	Node   any
}

type PageInfo struct {
	HasNextPage     bool
	HasPreviousPage bool
	StartCursor     *string
	EndCursor       *string
}

// EncodeCursor returns the opaque cursor of the item at offset.
func EncodeCursor(offset int) string {
	return base64.StdEncoding.EncodeToString([]byte(strconv.Itoa(offset)))
}

// DecodeCursor reverses EncodeCursor.
func DecodeCursor(cursor string) (int, error) {
	raw, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return 0, badInput("invalid cursor %q", cursor)
	}
	offset, err := strconv.Atoi(string(raw))
	if err != nil || offset < 0 {
		return 0, badInput("invalid cursor %q", cursor)
	}
	return offset, nil
}

// Paginate slices items, which must already be in canonical order, into
// the page args select.
func Paginate[T any](items []T, args PageArgs, cfg PageConfig) (*Connection, error) {
	cfg = cfg.normalized()

	size := cfg.DefaultSize
	if args.First != nil {
		switch {
		case *args.First < 0:
			return nil, badInput("first must not be negative, got %d", *args.First)
		case *args.First > cfg.MaxSize:
			return nil, badInput("first must not exceed %d, got %d", cfg.MaxSize, *args.First)
		}
		size = *args.First
	}

	start := 0
	if args.After != nil {
		offset, err := DecodeCursor(*args.After)
		if err != nil {
			return nil, err
		}
		if offset >= len(items) {
			start = len(items)
		} else {
			start = offset + 1
		}
	}

	end := start + size
	if end > len(items) {
		end = len(items)
	}

	conn := &Connection{
		Edges:      make([]*Edge, 0, end-start),
		TotalCount: len(items),
	}
	for i := start; i < end; i++ {
		conn.Edges = append(conn.Edges, &Edge{Cursor: EncodeCursor(i), Node: items[i]})
	}

	conn.PageInfo = PageInfo{
		HasNextPage:     end < len(items),
		HasPreviousPage: start > 0,
	}
	if len(conn.Edges) > 0 {
		first := conn.Edges[0].Cursor
		last := conn.Edges[len(conn.Edges)-1].Cursor
		conn.PageInfo.StartCursor = &first
		conn.PageInfo.EndCursor = &last
	}

	return conn, nil
}

package graphql

import (
	"math"
	"testing"

	goerrors "github.com/goliatone/go-errors"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestPaginate(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	tests := []struct {
		name       string
		args       PageArgs
		cfg        PageConfig
		wantNodes  []string
		wantNext   bool
		wantPrev   bool
		wantCursor bool
	}{
		{
			name:       "default size covers everything",
			args:       PageArgs{},
			cfg:        DefaultPageConfig(),
			wantNodes:  []string{"a", "b", "c", "d", "e"},
			wantCursor: true,
		},
		{
			name:       "first two",
			args:       PageArgs{First: intPtr(2)},
			cfg:        DefaultPageConfig(),
			wantNodes:  []string{"a", "b"},
			wantNext:   true,
			wantCursor: true,
		},
		{
			name:       "after second item",
			args:       PageArgs{First: intPtr(2), After: strPtr(EncodeCursor(1))},
			cfg:        DefaultPageConfig(),
			wantNodes:  []string{"c", "d"},
			wantNext:   true,
			wantPrev:   true,
			wantCursor: true,
		},
		{
			name:       "last page",
			args:       PageArgs{First: intPtr(2), After: strPtr(EncodeCursor(3))},
			cfg:        DefaultPageConfig(),
			wantNodes:  []string{"e"},
			wantPrev:   true,
			wantCursor: true,
		},
		{
			name:      "after the end",
			args:      PageArgs{After: strPtr(EncodeCursor(10))},
			cfg:       DefaultPageConfig(),
			wantNodes: []string{},
			wantPrev:  true,
		},
		{
			name:      "cursor at the largest offset",
			args:      PageArgs{First: intPtr(2), After: strPtr(EncodeCursor(math.MaxInt))},
			cfg:       DefaultPageConfig(),
			wantNodes: []string{},
			wantPrev:  true,
		},
		{
			name:      "zero items requested",
			args:      PageArgs{First: intPtr(0)},
			cfg:       DefaultPageConfig(),
			wantNodes: []string{},
			wantNext:  true,
		},
		{
			name:       "configured default size",
			args:       PageArgs{},
			cfg:        PageConfig{DefaultSize: 3, MaxSize: 4},
			wantNodes:  []string{"a", "b", "c"},
			wantNext:   true,
			wantCursor: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, err := Paginate(items, tt.args, tt.cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got := make([]string, 0, len(conn.Edges))
			for _, n := range conn.Nodes() {
				got = append(got, n.(string))
			}
			if len(got) != len(tt.wantNodes) {
				t.Fatalf("expected nodes %v, got %v", tt.wantNodes, got)
			}
			for i := range got {
				if got[i] != tt.wantNodes[i] {
					t.Fatalf("expected nodes %v, got %v", tt.wantNodes, got)
				}
			}

			if conn.TotalCount != len(items) {
				t.Errorf("expected totalCount %d, got %d", len(items), conn.TotalCount)
			}
			if conn.PageInfo.HasNextPage != tt.wantNext {
				t.Errorf("expected hasNextPage %v, got %v", tt.wantNext, conn.PageInfo.HasNextPage)
			}
			if conn.PageInfo.HasPreviousPage != tt.wantPrev {
				t.Errorf("expected hasPreviousPage %v, got %v", tt.wantPrev, conn.PageInfo.HasPreviousPage)
			}
			if (conn.PageInfo.EndCursor != nil) != tt.wantCursor {
				t.Errorf("expected endCursor present=%v, got %v", tt.wantCursor, conn.PageInfo.EndCursor)
			}
		})
	}
}

func TestPaginate_WalkAllPages(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6}

	var seen []int
	var after *string
	for pages := 0; pages < 10; pages++ {
		conn, err := Paginate(items, PageArgs{First: intPtr(3), After: after}, DefaultPageConfig())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, e := range conn.Edges {
			seen = append(seen, e.Node.(int))
		}
		if !conn.PageInfo.HasNextPage {
			break
		}
		after = conn.PageInfo.EndCursor
	}

	if len(seen) != len(items) {
		t.Fatalf("expected %d items without gaps or overlap, got %v", len(items), seen)
	}
	for i, v := range seen {
		if v != i {
			t.Fatalf("expected item %d at position %d, got %d", i, i, v)
		}
	}
}

func TestPaginate_RejectsBadArguments(t *testing.T) {
	items := []int{1, 2, 3}

	tests := []struct {
		name string
		args PageArgs
	}{
		{name: "negative first", args: PageArgs{First: intPtr(-1)}},
		{name: "first above max", args: PageArgs{First: intPtr(MaxPageSize + 1)}},
		{name: "cursor not base64", args: PageArgs{After: strPtr("%%%")}},
		{name: "cursor not a number", args: PageArgs{After: strPtr("eHl6")}},
		{name: "negative cursor", args: PageArgs{After: strPtr(EncodeCursor(-4))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Paginate(items, tt.args, DefaultPageConfig())
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !goerrors.IsCategory(err, goerrors.CategoryBadInput) {
				t.Errorf("expected bad input error, got %v", err)
			}
		})
	}
}

func TestCursorRoundTrip(t *testing.T) {
	for _, offset := range []int{0, 1, 9, 49, 1234} {
		got, err := DecodeCursor(EncodeCursor(offset))
		if err != nil {
			t.Fatalf("unexpected error for %d: %v", offset, err)
		}
		if got != offset {
			t.Errorf("expected %d, got %d", offset, got)
		}
	}
}

package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// TestScenario represents a test scenario loaded from fixtures
type TestScenario struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Cases       []TestCase `json:"cases"`
}

// TestCase represents individual test cases within a scenario
type TestCase struct {
	Method      string `json:"method"`
	Args        []any  `json:"args"`
	ExpectedKey string `json:"expectedKey"`
}

// TestFixtures represents the structure of the test fixture file
type TestFixtures struct {
	Scenarios []TestScenario `json:"scenarios"`
}

type stringerID string

func (s stringerID) String() string { return "ID" + string(s) }

func TestDefaultKeySerializer_BasicTypes(t *testing.T) {
	serializer := NewDefaultKeySerializer()

	tests := []struct {
		name   string
		method string
		args   []any
		want   string
	}{
		{name: "no args", method: "companies", want: "companies"},
		{name: "pascal segment", method: "companies", args: []any{"AllWithProjects"}, want: "companies_all_with_projects"},
		{name: "pascal method", method: "Education", args: []any{"All"}, want: "education_all"},
		{name: "int segment", method: "skills", args: []any{"Page", 3}, want: "skills_page_3"},
		{name: "nil dropped", method: "skills", args: []any{nil, "All"}, want: "skills_all"},
		{name: "stringer", method: "company", args: []any{stringerID("42")}, want: "company_id_42"},
		{name: "empty method", method: "", args: []any{"All"}, want: "all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := serializer.SerializeKey(tt.method, tt.args...)
			if got != tt.want {
				t.Errorf("SerializeKey(%q, %v) = %q, want %q", tt.method, tt.args, got, tt.want)
			}
		})
	}
}

func TestDefaultKeySerializer_Stable(t *testing.T) {
	serializer := NewDefaultKeySerializer()

	first := serializer.SerializeKey("projects", "AllWithRelations")
	for i := 0; i < 10; i++ {
		if got := serializer.SerializeKey("projects", "AllWithRelations"); got != first {
			t.Fatalf("expected stable key %q, got %q", first, got)
		}
	}
}

func TestDefaultKeySerializer_Scenarios(t *testing.T) {
	fixtures := loadTestFixtures(t)
	serializer := NewDefaultKeySerializer()

	for _, scenario := range fixtures.Scenarios {
		t.Run(scenario.Name, func(t *testing.T) {
			for _, tc := range scenario.Cases {
				args := make([]any, len(tc.Args))
				for i, arg := range tc.Args {
					// JSON numbers decode as float64; keys use integer segments.
					if f, ok := arg.(float64); ok {
						args[i] = int(f)
						continue
					}
					args[i] = arg
				}

				got := serializer.SerializeKey(tc.Method, args...)
				if got != tc.ExpectedKey {
					t.Errorf("%s %v: expected %q, got %q", tc.Method, tc.Args, tc.ExpectedKey, got)
				}
			}
		})
	}
}

func loadTestFixtures(t *testing.T) TestFixtures {
	t.Helper()

	filename := filepath.Join("testdata", "key_serializer_scenarios.json")
	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("Failed to read fixture file: %v", err)
	}

	var fixtures TestFixtures
	if err := json.Unmarshal(data, &fixtures); err != nil {
		t.Fatalf("Failed to unmarshal fixture data: %v", err)
	}

	return fixtures
}

func BenchmarkDefaultKeySerializer(b *testing.B) {
	serializer := NewDefaultKeySerializer()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		serializer.SerializeKey("companies", "AllWithProjects")
	}
}

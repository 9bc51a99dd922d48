package doctor

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func resultByName(t *testing.T, results []Result, name string) Result {
	t.Helper()
	for _, r := range results {
		if r.Name == name {
			return r
		}
	}
	t.Fatalf("no result named %q", name)
	return Result{}
}

func TestRunCoversAllChecks(t *testing.T) {
	results := Run(Options{DataDir: t.TempDir()})

	names := []string{
		"terminal type",
		"terminal size",
		"color support",
		"data directory",
		"scores database",
		"project templates",
		"sprite parser",
	}
	if len(results) != len(names) {
		t.Fatalf("expected %d results, got %d", len(names), len(results))
	}
	for i, name := range names {
		if results[i].Name != name {
			t.Errorf("result %d: expected %q, got %q", i, name, results[i].Name)
		}
	}
}

func TestDataDirCheck(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	results := Run(Options{DataDir: dir})

	r := resultByName(t, results, "data directory")
	if !r.OK {
		t.Errorf("expected data directory check to pass: %s", r.Detail)
	}
}

func TestDatabaseCheck(t *testing.T) {
	dir := t.TempDir()
	results := Run(Options{DataDir: dir, DBPath: filepath.Join(dir, "scores.db")})

	r := resultByName(t, results, "scores database")
	if !r.OK {
		t.Errorf("expected database check to pass: %s", r.Detail)
	}
}

func TestEmbeddedAssetChecks(t *testing.T) {
	results := Run(Options{DataDir: t.TempDir()})

	if r := resultByName(t, results, "project templates"); !r.OK {
		t.Errorf("expected template check to pass: %s", r.Detail)
	}
	if r := resultByName(t, results, "sprite parser"); !r.OK {
		t.Errorf("expected sprite check to pass: %s", r.Detail)
	}
}

func TestHealthy(t *testing.T) {
	tests := []struct {
		name    string
		results []Result
		want    bool
	}{
		{
			name:    "all pass",
			results: []Result{{Name: "a", OK: true}, {Name: "b", OK: true}},
			want:    true,
		},
		{
			name:    "required failure",
			results: []Result{{Name: "a", OK: true}, {Name: "b", OK: false}},
			want:    false,
		},
		{
			name:    "optional failure only",
			results: []Result{{Name: "a", OK: true}, {Name: "b", OK: false, Optional: true}},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Healthy(tt.results); got != tt.want {
				t.Errorf("Healthy = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	Report(&buf, []Result{
		{Name: "good", OK: true, Detail: "fine"},
		{Name: "bad", OK: false, Detail: "broken"},
	})

	out := buf.String()
	if !strings.Contains(out, "good") || !strings.Contains(out, "bad") {
		t.Errorf("expected both check names in report:\n%s", out)
	}
	if !strings.Contains(out, "FAIL") {
		t.Errorf("expected FAIL marker in report:\n%s", out)
	}
	if !strings.Contains(out, "checks failed") {
		t.Errorf("expected failure summary in report:\n%s", out)
	}
}

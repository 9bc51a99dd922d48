package scaffold

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestTemplatesListsPaddle(t *testing.T) {
	infos, err := Templates()
	if err != nil {
		t.Fatalf("Templates failed: %v", err)
	}

	var found bool
	for _, info := range infos {
		if info.Name == "paddle" {
			found = true
			if info.Description == "" {
				t.Error("expected paddle template to have a description")
			}
		}
	}
	if !found {
		t.Error("expected paddle template in list")
	}
}

func TestExists(t *testing.T) {
	if !Exists("paddle") {
		t.Error("expected paddle template to exist")
	}
	if Exists("nope") {
		t.Error("expected nope template to not exist")
	}
}

func TestGenerate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "mygame")

	err := Generate(Options{
		Template: "paddle",
		Dir:      dir,
		Module:   "example.com/mygame",
		Logger:   quietLogger(),
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	// Template suffix must be stripped
	for _, f := range []string{"go.mod", "main.go", "README.md", "configs/paddle.yaml", "assets/ball.spr"} {
		if _, err := os.Stat(filepath.Join(dir, f)); err != nil {
			t.Errorf("expected generated file %s: %v", f, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "go.mod.tmpl")); err == nil {
		t.Error("expected go.mod.tmpl to be renamed")
	}
	if _, err := os.Stat(filepath.Join(dir, "template.yaml")); err == nil {
		t.Error("expected template metadata to be skipped")
	}

	gomod, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		t.Fatalf("cannot read go.mod: %v", err)
	}
	if !strings.Contains(string(gomod), "module example.com/mygame") {
		t.Errorf("expected module path substituted, got:\n%s", gomod)
	}

	readme, err := os.ReadFile(filepath.Join(dir, "README.md"))
	if err != nil {
		t.Fatalf("cannot read README.md: %v", err)
	}
	if !strings.Contains(string(readme), "# mygame") {
		t.Errorf("expected project name substituted, got:\n%s", readme)
	}
}

func TestGenerateDefaultsModuleToName(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "pong2")

	err := Generate(Options{
		Template: "paddle",
		Dir:      dir,
		Logger:   quietLogger(),
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	gomod, _ := os.ReadFile(filepath.Join(dir, "go.mod"))
	if !strings.Contains(string(gomod), "module pong2") {
		t.Errorf("expected module defaulted to project name, got:\n%s", gomod)
	}
}

func TestGenerateErrors(t *testing.T) {
	t.Run("unknown template", func(t *testing.T) {
		err := Generate(Options{
			Template: "nope",
			Dir:      filepath.Join(t.TempDir(), "out"),
			Logger:   quietLogger(),
		})
		if err == nil || !strings.Contains(err.Error(), "unknown template") {
			t.Errorf("expected unknown template error, got %v", err)
		}
	})

	t.Run("non-empty directory", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "existing.txt"), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}

		err := Generate(Options{
			Template: "paddle",
			Dir:      dir,
			Logger:   quietLogger(),
		})
		if err == nil || !strings.Contains(err.Error(), "not empty") {
			t.Errorf("expected not empty error, got %v", err)
		}
	})
}

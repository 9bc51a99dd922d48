// Package scaffold generates new game projects from embedded templates.
// Each template is a directory tree; files with a .tmpl suffix are
// rendered through text/template, everything else is copied verbatim.
package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

//go:embed all:templates
var templateFS embed.FS

// metaFile describes a template; it is not copied into generated projects.
const metaFile = "template.yaml"

// TemplateInfo describes one available project template.
type TemplateInfo struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Vars are the values substituted into template files.
type Vars struct {
	// Name is the project name, used for titles and directories.
	Name string

	// Module is the Go module path of the generated project.
	Module string

	// Binary is the name of the produced executable.
	Binary string
}

// Options configures a Generate call.
type Options struct {
	// Template is the name of the template to render.
	Template string

	// Dir is the output directory. Created if missing; must be empty.
	Dir string

	// Module is the Go module path for the generated project.
	// Defaults to the project name.
	Module string

	// Logger receives per-file progress. Optional.
	Logger *log.Logger
}

// Templates lists the available project templates, sorted by name.
func Templates() ([]TemplateInfo, error) {
	entries, err := fs.ReadDir(templateFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("scaffold: cannot read templates: %w", err)
	}

	var infos []TemplateInfo
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		info, err := readMeta(e.Name())
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})
	return infos, nil
}

// Exists checks if a template with the given name is available.
func Exists(name string) bool {
	info, err := fs.Stat(templateFS, filepath.ToSlash(filepath.Join("templates", name)))
	return err == nil && info.IsDir()
}

// readMeta loads a template's metadata file.
func readMeta(name string) (TemplateInfo, error) {
	info := TemplateInfo{Name: name}

	data, err := templateFS.ReadFile("templates/" + name + "/" + metaFile)
	if err != nil {
		// Metadata is optional; the directory name is enough.
		return info, nil
	}

	if err := yaml.Unmarshal(data, &info); err != nil {
		return TemplateInfo{}, fmt.Errorf("scaffold: invalid metadata for template %q: %w", name, err)
	}
	if info.Name == "" {
		info.Name = name
	}
	return info, nil
}

// Generate renders a template into opts.Dir.
func Generate(opts Options) error {
	if !Exists(opts.Template) {
		return fmt.Errorf("scaffold: unknown template %q", opts.Template)
	}

	name := filepath.Base(opts.Dir)
	if name == "." || name == string(filepath.Separator) {
		return fmt.Errorf("scaffold: invalid output directory %q", opts.Dir)
	}

	vars := Vars{
		Name:   name,
		Module: opts.Module,
		Binary: name,
	}
	if vars.Module == "" {
		vars.Module = name
	}

	if err := ensureEmptyDir(opts.Dir); err != nil {
		return err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr)
	}

	root := "templates/" + opts.Template
	err := fs.WalkDir(templateFS, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel := strings.TrimPrefix(path, root)
		rel = strings.TrimPrefix(rel, "/")
		if rel == "" || rel == metaFile {
			return nil
		}
		dst := filepath.Join(opts.Dir, filepath.FromSlash(rel))

		if d.IsDir() {
			return os.MkdirAll(dst, 0o755)
		}

		data, err := templateFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("scaffold: cannot read %s: %w", path, err)
		}

		if strings.HasSuffix(dst, ".tmpl") {
			dst = strings.TrimSuffix(dst, ".tmpl")
			data, err = render(rel, data, vars)
			if err != nil {
				return err
			}
		}

		logger.Info("create", "file", dst)
		return os.WriteFile(dst, data, 0o644)
	})
	if err != nil {
		return fmt.Errorf("scaffold: cannot render template %q: %w", opts.Template, err)
	}

	return nil
}

// render executes one template file against the project variables.
func render(name string, data []byte, vars Vars) ([]byte, error) {
	t, err := template.New(name).Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("scaffold: cannot parse %s: %w", name, err)
	}

	var b strings.Builder
	if err := t.Execute(&b, vars); err != nil {
		return nil, fmt.Errorf("scaffold: cannot render %s: %w", name, err)
	}
	return []byte(b.String()), nil
}

// ensureEmptyDir creates the output directory if needed and verifies
// it holds no files.
func ensureEmptyDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("scaffold: cannot create directory %s: %w", dir, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("scaffold: cannot read directory %s: %w", dir, err)
	}
	if len(entries) > 0 {
		return fmt.Errorf("scaffold: directory %s is not empty", dir)
	}
	return nil
}

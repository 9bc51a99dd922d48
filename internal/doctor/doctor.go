// Package doctor checks that the local environment can run kit games:
// a usable terminal, a writable data directory, an openable scores
// database, and intact embedded assets.
package doctor

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/glyphkit/glyphkit/internal/scaffold"
	"github.com/glyphkit/glyphkit/internal/sprite"
	"github.com/glyphkit/glyphkit/internal/storage"
)

// minWidth and minHeight are the smallest playable terminal size.
const (
	minWidth  = 40
	minHeight = 12
)

// sampleSprite exercises the sprite parser end to end.
const sampleSprite = `[sprite]
name = probe
pixels =
    xx

[x]
red = 255
green = 0
blue = 0
`

// Result is the outcome of a single diagnostic check.
type Result struct {
	Name     string
	OK       bool
	Detail   string
	Optional bool
}

// Options configures a diagnostics run.
type Options struct {
	// DataDir is the kit data directory. Defaults to ~/.glyphkit.
	DataDir string

	// DBPath is the scores database path. Defaults to <DataDir>/scores.db.
	DBPath string
}

// Run executes all diagnostic checks and returns their results in a
// stable order.
func Run(opts Options) []Result {
	if opts.DataDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			opts.DataDir = filepath.Join(home, ".glyphkit")
		}
	}
	if opts.DBPath == "" && opts.DataDir != "" {
		opts.DBPath = filepath.Join(opts.DataDir, "scores.db")
	}

	return []Result{
		checkTerm(),
		checkTermSize(),
		checkColor(),
		checkDataDir(opts.DataDir),
		checkDatabase(opts.DBPath),
		checkTemplates(),
		checkSprites(),
	}
}

// Healthy reports whether all required checks passed.
func Healthy(results []Result) bool {
	for _, r := range results {
		if !r.OK && !r.Optional {
			return false
		}
	}
	return true
}

func checkTerm() Result {
	r := Result{Name: "terminal type"}
	termEnv := os.Getenv("TERM")
	if termEnv == "" {
		r.Detail = "TERM is not set"
		return r
	}
	if termEnv == "dumb" {
		r.Detail = "TERM=dumb cannot render games"
		return r
	}
	r.OK = true
	r.Detail = fmt.Sprintf("TERM=%s", termEnv)
	return r
}

func checkTermSize() Result {
	r := Result{Name: "terminal size"}
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		r.Detail = fmt.Sprintf("cannot read size: %v", err)
		return r
	}
	r.Detail = fmt.Sprintf("%dx%d", w, h)
	if w < minWidth || h < minHeight {
		r.Detail = fmt.Sprintf("%dx%d is below the %dx%d minimum", w, h, minWidth, minHeight)
		return r
	}
	r.OK = true
	return r
}

func checkColor() Result {
	r := Result{Name: "color support", Optional: true}
	if os.Getenv("COLORTERM") != "" {
		r.OK = true
		r.Detail = fmt.Sprintf("COLORTERM=%s", os.Getenv("COLORTERM"))
		return r
	}
	if os.Getenv("NO_COLOR") != "" {
		r.Detail = "NO_COLOR is set; games render without color"
		return r
	}
	r.OK = true
	r.Detail = "palette colors via TERM"
	return r
}

func checkDataDir(dir string) Result {
	r := Result{Name: "data directory"}
	if dir == "" {
		r.Detail = "cannot resolve home directory"
		return r
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		r.Detail = fmt.Sprintf("cannot create %s: %v", dir, err)
		return r
	}

	probe := filepath.Join(dir, ".doctor-probe")
	if err := os.WriteFile(probe, []byte("ok"), 0o600); err != nil {
		r.Detail = fmt.Sprintf("%s is not writable: %v", dir, err)
		return r
	}
	os.Remove(probe)

	r.OK = true
	r.Detail = dir
	return r
}

func checkDatabase(dbPath string) Result {
	r := Result{Name: "scores database"}
	if dbPath == "" {
		r.Detail = "no database path"
		return r
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		r.Detail = fmt.Sprintf("cannot open %s: %v", dbPath, err)
		return r
	}
	store.Close()

	r.OK = true
	r.Detail = dbPath
	return r
}

func checkTemplates() Result {
	r := Result{Name: "project templates"}
	infos, err := scaffold.Templates()
	if err != nil {
		r.Detail = err.Error()
		return r
	}
	if len(infos) == 0 {
		r.Detail = "no templates embedded"
		return r
	}
	r.OK = true
	r.Detail = fmt.Sprintf("%d available", len(infos))
	return r
}

func checkSprites() Result {
	r := Result{Name: "sprite parser"}
	s, err := sprite.Parse([]byte(sampleSprite))
	if err != nil {
		r.Detail = err.Error()
		return r
	}
	if s.Width() != 2 || s.Height() != 1 {
		r.Detail = fmt.Sprintf("unexpected sample dimensions %dx%d", s.Width(), s.Height())
		return r
	}
	r.OK = true
	r.Detail = "sample sprite parsed"
	return r
}

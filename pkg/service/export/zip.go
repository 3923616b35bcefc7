// Package export packages the project source tree as a ZIP archive for the
// download endpoint.
package export

import (
	"archive/zip"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Variant selects how much of the tree is packaged
type Variant string

const (
	// VariantReady packages the deployable subset (source, scripts, docs)
	VariantReady Variant = "ready"
	// VariantEverything packages the whole tree except caches
	VariantEverything Variant = "everything"
)

// ParseVariant maps a query value to a Variant, defaulting to ready
func ParseVariant(s string) Variant {
	if Variant(s) == VariantEverything {
		return VariantEverything
	}
	return VariantReady
}

var excludeDirs = map[string]struct{}{
	"node_modules": {},
	"build":        {},
	"dist":         {},
	".git":         {},
	"__pycache__":  {},
	".cache":       {},
	"uploads":      {},
}

var excludeExts = map[string]struct{}{
	".log": {},
	".tmp": {},
}

// Archiver zips source trees rooted at a project directory
type Archiver struct {
	root       string
	zipPrefix  string
	readyPaths []string
}

// New creates an Archiver for the given project root. Entries inside the
// archive are prefixed with "BreedSense/".
func New(root string) *Archiver {
	return &Archiver{
		root:      root,
		zipPrefix: "BreedSense/",
		readyPaths: []string{
			"pkg",
			"main.go",
			"go.mod",
			"go.sum",
			"README.md",
		},
	}
}

// WriteZip writes the selected variant of the tree as a ZIP stream to w
func (a *Archiver) WriteZip(w io.Writer, variant Variant) error {
	zw := zip.NewWriter(w)

	includes := []string{a.root}
	if variant == VariantReady {
		includes = make([]string, 0, len(a.readyPaths))
		for _, p := range a.readyPaths {
			includes = append(includes, filepath.Join(a.root, p))
		}
	}

	for _, base := range includes {
		info, err := os.Stat(base)
		if err != nil {
			// ready-variant entries are optional; skip what is absent
			continue
		}

		if !info.IsDir() {
			if err := a.addFile(zw, base); err != nil {
				return err
			}
			continue
		}

		err = filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return goerr.Wrap(err, "failed to walk source tree", goerr.V("path", path))
			}
			if d.IsDir() {
				if _, excluded := excludeDirs[d.Name()]; excluded {
					return filepath.SkipDir
				}
				return nil
			}
			if _, excluded := excludeExts[strings.ToLower(filepath.Ext(d.Name()))]; excluded {
				return nil
			}
			return a.addFile(zw, path)
		})
		if err != nil {
			return err
		}
	}

	if err := zw.Close(); err != nil {
		return goerr.Wrap(err, "failed to finalize zip archive")
	}
	return nil
}

func (a *Archiver) addFile(zw *zip.Writer, path string) error {
	rel, err := filepath.Rel(a.root, path)
	if err != nil {
		return goerr.Wrap(err, "failed to relativize path", goerr.V("path", path))
	}

	// #nosec G304 - paths come from walking the configured project root
	f, err := os.Open(path)
	if err != nil {
		return goerr.Wrap(err, "failed to open source file", goerr.V("path", path))
	}
	defer f.Close()

	entry, err := zw.Create(a.zipPrefix + filepath.ToSlash(rel))
	if err != nil {
		return goerr.Wrap(err, "failed to create zip entry", goerr.V("path", rel))
	}
	if _, err := io.Copy(entry, f); err != nil {
		return goerr.Wrap(err, "failed to write zip entry", goerr.V("path", rel))
	}
	return nil
}

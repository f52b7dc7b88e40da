// Package source supplies raw SVG icon records to the conversion
// pipeline, hiding how a vendor icon set was obtained. Implementations
// read local directories or archives; they all yield the same uniform
// Record values, sorted deterministically.
package source

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// Record is one raw SVG icon.
type Record struct {
	Name     string // icon name, from the file stem
	Category string // vendor category, empty when unknown
	Raw      []byte
}

// Source yields the icons of one vendor set.
type Source interface {
	// Name identifies the set, for reporting.
	Name() string
	// Records returns all SVG icons of the set, in a stable order.
	Records() ([]Record, error)
}

// DirSource reads every .svg file under a directory tree.
// The first path element below the root is taken as the category.
type DirSource struct {
	Root string
}

func (s DirSource) Name() string { return filepath.Base(s.Root) }

func (s DirSource) Records() ([]Record, error) {
	var records []Record
	err := filepath.WalkDir(s.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(p), ".svg") {
			return nil
		}
		raw, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(s.Root, p)
		if err != nil {
			return err
		}
		records = append(records, Record{
			Name:     stem(p),
			Category: categoryOf(filepath.ToSlash(rel)),
			Raw:      raw,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.Root, err)
	}
	return records, nil // WalkDir visits files in lexical order
}

// ZipSource reads every .svg file of a zip archive, as extracted
// from a vendor download.
type ZipSource struct {
	Path string
}

func (s ZipSource) Name() string { return stem(s.Path) }

func (s ZipSource) Records() ([]Record, error) {
	zr, err := zip.OpenReader(s.Path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.Path, err)
	}
	defer zr.Close()

	var records []Record
	for _, f := range zr.File {
		if f.FileInfo().IsDir() || !strings.EqualFold(path.Ext(f.Name), ".svg") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.Name, err)
		}
		raw, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.Name, err)
		}
		records = append(records, Record{
			Name:     stem(f.Name),
			Category: categoryOf(f.Name),
			Raw:      raw,
		})
	}
	// archive order is whatever the vendor packed; sort for stable output
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Category != records[j].Category {
			return records[i].Category < records[j].Category
		}
		return records[i].Name < records[j].Name
	})
	return records, nil
}

// Category groups the records sharing a category, preserving the
// record order of the source.
type Category struct {
	Name    string
	Records []Record
}

// Categories splits records by category, in first-seen order.
func Categories(records []Record) []Category {
	index := make(map[string]int)
	var cats []Category
	for _, r := range records {
		i, ok := index[r.Category]
		if !ok {
			i = len(cats)
			index[r.Category] = i
			cats = append(cats, Category{Name: r.Category})
		}
		cats[i].Records = append(cats[i].Records, r)
	}
	return cats
}

// SafeName turns a category name into a file name: lower case,
// spaces to dashes, '+' spelled out, anything else non alphanumeric
// dropped.
func SafeName(category string) string {
	s := strings.ToLower(category)
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "+", "and")
	var b strings.Builder
	for _, r := range s {
		if r == '-' || 'a' <= r && r <= 'z' || '0' <= r && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// categoryOf extracts the first directory element of a slash path,
// or "" for a file at the root.
func categoryOf(rel string) string {
	if i := strings.IndexByte(rel, '/'); i > 0 {
		return rel[:i]
	}
	return ""
}

// stem returns the file name without directory and extension.
func stem(p string) string {
	base := path.Base(filepath.ToSlash(p))
	return strings.TrimSuffix(base, path.Ext(base))
}

// Command svg2lib converts folders (or zip archives) of SVG icons
// into draw.io custom library files.
//
// Usage:
//	svg2lib [-size N] [-title T] -o OUT.xml INPUT
//	svg2lib -split [-size N] -o OUTDIR INPUT
//	svg2lib -manifest FILE [-o OUTDIR]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ry0y4n/vscode-diagrams-icon-builder/drawlib"
	"github.com/ry0y4n/vscode-diagrams-icon-builder/source"
	"gopkg.in/yaml.v3"
)

func main() {
	log.SetFlags(0)

	var (
		output   = flag.String("o", "", "output file (or directory with -split or -manifest)")
		size     = flag.Float64("size", drawlib.DefaultMaxSize, "length of the longer side of each shape")
		title    = flag.String("title", "", "library title (defaults to the input name)")
		split    = flag.Bool("split", false, "emit one library per icon category")
		manifest = flag.String("manifest", "", "YAML manifest describing several libraries")
	)
	flag.Parse()

	var err error
	switch {
	case *manifest != "":
		err = runManifest(*manifest, *output)
	case flag.NArg() != 1:
		flag.Usage()
		os.Exit(2)
	case *split:
		err = runSplit(flag.Arg(0), *output, *size)
	default:
		err = runSingle(flag.Arg(0), *output, *title, *size)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// openSource picks the source implementation from the input path.
func openSource(input string) (source.Source, error) {
	if strings.EqualFold(filepath.Ext(input), ".zip") {
		return source.ZipSource{Path: input}, nil
	}
	info, err := os.Stat(input)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: not a directory or zip archive", input)
	}
	return source.DirSource{Root: input}, nil
}

func runSingle(input, output, title string, size float64) error {
	src, err := openSource(input)
	if err != nil {
		return err
	}
	records, err := src.Records()
	if err != nil {
		return err
	}
	if title == "" {
		title = src.Name()
	}
	if output == "" {
		output = source.SafeName(title) + ".xml"
	}
	return buildLibrary(records, title, size, output)
}

func runSplit(input, outDir string, size float64) error {
	src, err := openSource(input)
	if err != nil {
		return err
	}
	records, err := src.Records()
	if err != nil {
		return err
	}
	if outDir == "" {
		outDir = "."
	}
	cats := source.Categories(records)
	for _, cat := range cats {
		name := cat.Name
		if name == "" {
			name = src.Name()
		}
		out := filepath.Join(outDir, source.SafeName(name)+".xml")
		if err := buildLibrary(cat.Records, name, size, out); err != nil {
			return err
		}
	}
	log.Printf("done: %d categories, %d icons", len(cats), len(records))
	return nil
}

// manifestFile is the YAML description of a batch of libraries.
type manifestFile struct {
	Size      float64         `yaml:"size"` // default for all libraries
	Libraries []manifestEntry `yaml:"libraries"`
}

type manifestEntry struct {
	Title  string  `yaml:"title"`
	Input  string  `yaml:"input"`
	Output string  `yaml:"output"`
	Size   float64 `yaml:"size"`
}

func runManifest(path, outDir string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var mf manifestFile
	if err := yaml.Unmarshal(raw, &mf); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(mf.Libraries) == 0 {
		return fmt.Errorf("%s: no libraries declared", path)
	}
	for _, lib := range mf.Libraries {
		if lib.Input == "" {
			return fmt.Errorf("%s: library %q has no input", path, lib.Title)
		}
		size := lib.Size
		if size == 0 {
			size = mf.Size
		}
		if size == 0 {
			size = drawlib.DefaultMaxSize
		}
		src, err := openSource(lib.Input)
		if err != nil {
			return err
		}
		records, err := src.Records()
		if err != nil {
			return err
		}
		title := lib.Title
		if title == "" {
			title = src.Name()
		}
		out := lib.Output
		if out == "" {
			out = source.SafeName(title) + ".xml"
		}
		if outDir != "" {
			out = filepath.Join(outDir, out)
		}
		if err := buildLibrary(records, title, size, out); err != nil {
			return err
		}
	}
	return nil
}

func buildLibrary(records []source.Record, title string, size float64, out string) error {
	icons := make([]drawlib.Icon, len(records))
	for i, r := range records {
		icons[i] = drawlib.Icon{Name: r.Name, Raw: r.Raw}
	}
	doc, failures, err := drawlib.Convert(icons, drawlib.Options{Title: title, MaxSize: size})
	if err != nil {
		return fmt.Errorf("%s: %w", title, err)
	}
	for _, f := range failures {
		log.Printf("  skipped %s", f)
	}
	data, err := doc.Bytes()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(out); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return err
	}
	log.Printf("wrote %s: %d shapes (%d skipped)", out, len(doc.Shapes), len(failures))
	return nil
}

package testutil

import (
	"bufio"
	"errors"
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

// TypeChecker type-checks Go snippets against the packages of this module,
// loaded from source. It lets tests assert that a misuse of a builder is a
// compile error, and which one, without building a test binary per snippet.
// Standard library packages come from compiler export data through
// importer.Default, which locates it with `go list -export`; the go tool
// must be on PATH.
type TypeChecker struct {
	root   string
	module string
	fset   *token.FileSet
	std    types.Importer
	pkgs   map[string]*types.Package
}

// NewTypeChecker locates the module root above the working directory.
func NewTypeChecker(tb testing.TB) *TypeChecker {
	tb.Helper()
	wd, err := os.Getwd()
	if err != nil {
		tb.Fatalf("getwd: %v", err)
	}
	root, module, err := findModule(wd)
	if err != nil {
		tb.Fatalf("find module: %v", err)
	}
	fset := token.NewFileSet()
	return &TypeChecker{
		root:   root,
		module: module,
		fset:   fset,
		std:    importer.Default(),
		pkgs:   make(map[string]*types.Package),
	}
}

// Module returns the module path read from go.mod.
func (c *TypeChecker) Module() string {
	return c.module
}

// Import implements types.Importer. Packages of this module are parsed and
// checked from source, everything else goes to the export-data importer.
func (c *TypeChecker) Import(path string) (*types.Package, error) {
	if pkg, ok := c.pkgs[path]; ok {
		return pkg, nil
	}
	if path != c.module && !strings.HasPrefix(path, c.module+"/") {
		return c.std.Import(path)
	}

	dir := filepath.Join(c.root, filepath.FromSlash(strings.TrimPrefix(strings.TrimPrefix(path, c.module), "/")))
	files, err := c.parseDir(dir)
	if err != nil {
		return nil, err
	}
	conf := types.Config{Importer: c}
	pkg, err := conf.Check(path, c.fset, files, nil)
	if err != nil {
		return nil, fmt.Errorf("check %s: %w", path, err)
	}
	c.pkgs[path] = pkg
	return pkg, nil
}

// Check type-checks src as a single-file main package and returns every
// type error joined, or nil if src compiles.
func (c *TypeChecker) Check(src string) error {
	f, err := parser.ParseFile(c.fset, "snippet.go", src, parser.AllErrors)
	if err != nil {
		return fmt.Errorf("parse snippet: %w", err)
	}
	var errs []error
	conf := types.Config{
		Importer: c,
		Error:    func(err error) { errs = append(errs, err) },
	}
	_, _ = conf.Check("snippet", c.fset, []*ast.File{f}, nil)
	return errors.Join(errs...)
}

// Transitions returns the sorted names of the exported functions and methods
// of package path that take a builder and return a builder of the generic
// type named builder. Constructors and finalizers are not included.
func (c *TypeChecker) Transitions(path, builder string) ([]string, error) {
	pkg, err := c.Import(path)
	if err != nil {
		return nil, err
	}
	obj := pkg.Scope().Lookup(builder)
	if obj == nil {
		return nil, fmt.Errorf("%s has no type %s", path, builder)
	}
	named, ok := obj.Type().(*types.Named)
	if !ok {
		return nil, fmt.Errorf("%s.%s is not a named type", path, builder)
	}
	isBuilder := func(t types.Type) bool {
		n, ok := t.(*types.Named)
		return ok && n.Origin() == named
	}
	returnsBuilder := func(sig *types.Signature) bool {
		return sig.Results().Len() > 0 && isBuilder(sig.Results().At(0).Type())
	}

	var ops []string
	for _, name := range pkg.Scope().Names() {
		fn, ok := pkg.Scope().Lookup(name).(*types.Func)
		if !ok || !fn.Exported() {
			continue
		}
		sig := fn.Type().(*types.Signature)
		if sig.Params().Len() > 0 && isBuilder(sig.Params().At(0).Type()) && returnsBuilder(sig) {
			ops = append(ops, name)
		}
	}
	for i := 0; i < named.NumMethods(); i++ {
		m := named.Method(i)
		if m.Exported() && returnsBuilder(m.Type().(*types.Signature)) {
			ops = append(ops, m.Name())
		}
	}
	sort.Strings(ops)
	return ops, nil
}

func (c *TypeChecker) parseDir(dir string) ([]*ast.File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []*ast.File
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(c.fset, filepath.Join(dir, name), nil, 0)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no Go files in %s", dir)
	}
	return files, nil
}

// findModule walks up from dir to the nearest go.mod.
func findModule(dir string) (root, module string, err error) {
	for {
		f, err := os.Open(filepath.Join(dir, "go.mod"))
		if err == nil {
			defer f.Close()
			sc := bufio.NewScanner(f)
			for sc.Scan() {
				line := strings.TrimSpace(sc.Text())
				if rest, ok := strings.CutPrefix(line, "module "); ok {
					return dir, strings.Trim(strings.TrimSpace(rest), `"`), nil
				}
			}
			return "", "", fmt.Errorf("%s/go.mod has no module line", dir)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", "", errors.New("go.mod not found")
		}
		dir = parent
	}
}

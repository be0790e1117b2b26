package stdlib_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// allowed lists the only non-stdlib imports permitted per package.
var allowed = map[string][]string{
	"primitives": nil,
	"core":       {"golang.org/x/sync/errgroup", "github.com/comalice/primepatterns/internal/primitives"},
}

func TestStdlibOnlyCore(t *testing.T) {
	for dir, extra := range allowed {
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("read %s: %v", dir, err)
		}
		for _, e := range entries {
			name := e.Name()
			if !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
				continue
			}
			path := filepath.Join(dir, name)
			f, err := parser.ParseFile(token.NewFileSet(), path, nil, parser.ImportsOnly)
			if err != nil {
				t.Fatalf("parse %s: %v", path, err)
			}
			for _, imp := range f.Imports {
				p, _ := strconv.Unquote(imp.Path.Value)
				if isStdlib(p) || contains(extra, p) {
					continue
				}
				t.Errorf("%s imports non-stdlib package %s", path, p)
			}
		}
	}
}

// Stdlib import paths have no dot in their first element.
func isStdlib(path string) bool {
	first, _, _ := strings.Cut(path, "/")
	return !strings.Contains(first, ".")
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

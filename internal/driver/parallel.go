package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// SourceExtension is the file suffix AnalyzeDir picks up.
const SourceExtension = ".rs"

// AnalyzeDir walks dir recursively and analyzes every source file
// concurrently. Results come back sorted by path. The first analysis error
// cancels the remaining work.
func AnalyzeDir(ctx context.Context, dir string, opts *Options) ([]*Result, error) {
	paths, err := collectSourceFiles(dir)
	if err != nil {
		return nil, err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	var mu sync.Mutex
	results := make(map[string]*Result, len(paths))

	for _, path := range paths {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Analyze(path, opts)
			if err != nil {
				return err
			}
			mu.Lock()
			results[path] = res
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*Result, 0, len(results))
	for _, path := range paths {
		if res, ok := results[path]; ok {
			out = append(out, res)
		}
	}
	return out, nil
}

func collectSourceFiles(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Hidden directories (".git" and friends) are skipped entirely.
			if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, SourceExtension) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

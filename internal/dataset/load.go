package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// files maps dataset name to the JSON file (a flat array of valid string
// values) it is loaded from within a dataset bundle directory.
var files = map[string]string{
	"eppRoid":             "epp-roid.json",
	"rdapExtensions":      "rdap-extensions.json",
	"rdapStatus":          "rdap-status.json",
	"ipv4SpecialRegistry": "ipv4-special-registry.json",
	"ipv6SpecialRegistry": "ipv6-special-registry.json",
}

// Load reads every known dataset file out of dir concurrently, bounded by
// runtime.GOMAXPROCS(0), and returns an immutable Service. A missing
// or malformed file is a fatal error: profile checks that depend on a
// dataset cannot degrade gracefully, since a wrong answer here means a
// silently wrong validation result.
func Load(dir string) (Service, error) {
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))

	var mu sync.Mutex
	results := make(map[string]Dataset, len(files))
	for name, filename := range files {
		name, filename := name, filename
		g.Go(func() error {
			values, err := loadFile(filepath.Join(dir, filename))
			if err != nil {
				return fmt.Errorf("dataset %q: %w", name, err)
			}
			mu.Lock()
			results[name] = newSetDataset(values)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &memoryService{datasets: results}, nil
}

func loadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return values, nil
}

// Package engine ties the schema tree, compiled validator, dataset service
// and profile check registry together into the single entry point a caller
// needs: Validate. It is grounded on original_source's SchemaValidator,
// generalized from one hard-coded schema name to one compiled tree per RDAP
// object class.
package engine

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/rdapconformance/rdapcv/internal/config"
	"github.com/rdapconformance/rdapcv/internal/dataset"
	"github.com/rdapconformance/rdapcv/internal/exception"
	"github.com/rdapconformance/rdapcv/internal/exception/parsers"
	"github.com/rdapconformance/rdapcv/internal/httpctx"
	"github.com/rdapconformance/rdapcv/internal/profile"
	"github.com/rdapconformance/rdapcv/internal/profile/checks"
	"github.com/rdapconformance/rdapcv/internal/rdap"
	"github.com/rdapconformance/rdapcv/internal/results"
	"github.com/rdapconformance/rdapcv/internal/schema"
	"github.com/rdapconformance/rdapcv/internal/validator"
)

// schemaFileForQueryType names, for each RDAP object class, the root schema
// resource within Config.SchemaBundleDir that governs a response of that
// type. A bundle directory that omits one of these files simply means that
// query type has no schema pass: Engine.Validate skips straight to the
// profile checks for it, and construction does not fail on its account.
var schemaFileForQueryType = map[rdap.QueryType]string{
	rdap.QueryHelp:        "help.json",
	rdap.QueryDomain:      "domain.json",
	rdap.QueryNameserver:  "nameserver.json",
	rdap.QueryNameservers: "nameservers.json",
	rdap.QueryEntity:      "entity.json",
	rdap.QueryIPNetwork:   "ip-network.json",
	rdap.QueryAutnum:      "autnum.json",
}

// Engine owns one compiled Tree/Validator per known RDAP object class, the
// dataset service, and the profile check registry, and runs one validation
// pass at a time against its own fresh accumulator.
type Engine struct {
	cfg        *config.Config
	logger     *slog.Logger
	datasets   dataset.Service
	trees      map[rdap.QueryType]*schema.Tree
	validators map[rdap.QueryType]validator.Validator
	checks     *profile.Registry
}

// New loads the dataset bundle and schema bundle named by cfg, compiles
// every known root schema present in the bundle, and builds the fixed
// profile check registry.
func New(cfg *config.Config, logger *slog.Logger) (*Engine, error) {
	if logger == nil {
		logger = slog.Default()
	}

	ds, err := dataset.Load(cfg.DatasetDir)
	if err != nil {
		return nil, fmt.Errorf("loading datasets: %w", err)
	}

	compiler := validator.NewSanthoshCompiler()
	raw, err := loadSchemaBundle(cfg.SchemaBundleDir, compiler)
	if err != nil {
		return nil, fmt.Errorf("loading schema bundle: %w", err)
	}

	e := &Engine{
		cfg:        cfg,
		logger:     logger,
		datasets:   ds,
		trees:      make(map[rdap.QueryType]*schema.Tree),
		validators: make(map[rdap.QueryType]validator.Validator),
		checks:     newCheckRegistry(),
	}

	for qt, filename := range schemaFileForQueryType {
		id := filename
		if _, ok := raw[id]; !ok {
			continue
		}
		v, err := compiler.Compile(id)
		if err != nil {
			return nil, fmt.Errorf("compiling %s: %w", id, err)
		}
		tree, err := schema.New(id, v, raw)
		if err != nil {
			return nil, fmt.Errorf("building schema tree for %s: %w", id, err)
		}
		e.validators[qt] = v
		e.trees[qt] = tree
	}

	return e, nil
}

func loadSchemaBundle(dir string, compiler validator.Compiler) (map[string]map[string]any, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	raw := make(map[string]map[string]any)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", entry.Name(), err)
		}
		var doc map[string]any
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", entry.Name(), err)
		}
		if err := compiler.AddSchema(entry.Name(), doc); err != nil {
			return nil, fmt.Errorf("registering %s: %w", entry.Name(), err)
		}
		raw[entry.Name()] = doc
	}
	return raw, nil
}

func newCheckRegistry() *profile.Registry {
	return profile.NewRegistry(
		checks.NewRDAPConformance(),
		checks.NewNotices(),
		checks.NewLinks(),
		checks.NewEvents(),
		checks.NewSecureDNS(),
		checks.NewStatus(),
		checks.NewCORS(),
		checks.NewDomainHandle(),
		checks.NewNameserverHandle(),
		checks.NewEntityHandle(),
		checks.NewDomainQueryURI(),
		checks.NewNameserverQueryURI(),
		checks.NewIPNetworkAddressFormat(),
		checks.NewNameserverIPAddressFormat(),
	)
}

// Config returns the configuration the engine was built from, so callers
// can fall back to its QueryURI when neither a positional argument nor a
// --query-uri flag was given.
func (e *Engine) Config() *config.Config {
	return e.cfg
}

// Validate runs the schema pass and the profile check registry against
// documentText, the captured RDAP response body for query type qt. httpCtx
// may be nil when documentText was read from a file with no HTTP context.
// It returns the run's accumulator and whether the run produced zero
// findings.
func (e *Engine) Validate(qt rdap.QueryType, documentText string, httpCtx *httpctx.Context) (*results.Accumulator, bool) {
	acc := results.NewAccumulator()
	tree := e.trees[qt]
	v := e.validators[qt]

	if key, found := findDuplicateKey([]byte(documentText)); found {
		code := e.duplicateKeyCode(tree, key)
		acc.Add(results.Result{Code: code, Value: key + ":...", Message: duplicateKeyMessage})
		return acc, false
	}

	var doc any
	if err := json.Unmarshal([]byte(documentText), &doc); err != nil {
		code := e.structureInvalidCode(tree)
		acc.Add(results.Result{Code: code, Value: documentText, Message: structureInvalidMessage("RDAP response")})
		return acc, false
	}

	if v != nil {
		if verr := v.Validate(doc); verr != nil {
			if ve, ok := verr.(*jsonschema.ValidationError); ok {
				leaves := exception.Flatten(ve)
				parsers.Run(parsers.Context{Tree: tree, Document: doc, Results: acc, Logger: e.logger}, leaves)
			} else {
				e.logger.Info("schema validation failed with a non-ValidationError", "error", verr)
				acc.Add(results.Result{Code: -999, Value: documentText, Message: verr.Error()})
			}
		}
	}

	e.checks.Run(profile.CheckContext{
		Document:  doc,
		Results:   acc,
		Config:    e.cfg,
		QueryType: qt,
		Datasets:  e.datasets,
		HTTP:      httpCtx,
	})

	return acc, acc.Len() == 0
}

func (e *Engine) duplicateKeyCode(tree *schema.Tree, key string) int {
	if tree == nil {
		return -999
	}
	n, ok := schema.FindChild(tree.Root, key)
	if !ok {
		e.logger.Info("no schema child found for duplicate key lookup", "key", key)
		return -999
	}
	for cur := n; cur != nil; cur = cur.Parent() {
		if v, ok := cur.Annotations()["duplicateKeys"]; ok {
			if code, ok := toInt(v); ok {
				return code
			}
		}
	}
	e.logger.Info("no duplicateKeys annotation found in hierarchy", "key", key)
	return -999
}

func (e *Engine) structureInvalidCode(tree *schema.Tree) int {
	if tree == nil {
		return -999
	}
	if v, ok := tree.Root.Annotations()["structureInvalid"]; ok {
		if code, ok := toInt(v); ok {
			return code
		}
	}
	e.logger.Info("no structureInvalid annotation found on schema root")
	return -999
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

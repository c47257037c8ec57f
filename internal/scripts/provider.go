// Package scripts supplies script models for script-component references:
// given a script asset GUID, the class name it declares and the serialized
// field names it exposes. The reference scanner consumes only the Provider
// interface; the default implementation reads C# sources discovered through
// the asset identifier index.
package scripts

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/tbruun/scenedoctor/internal/meta"
)

// Model describes one script class.
type Model struct {
	// ClassName is the behaviour class the script file declares.
	ClassName string `json:"class_name"`

	// Fields lists the serialized field names, in declaration order.
	Fields []string `json:"fields,omitempty"`
}

// Provider translates a script asset GUID to its model.
type Provider interface {
	// ModelForGUID returns the model for a script GUID, or ok=false when
	// the GUID does not belong to a known script.
	ModelForGUID(guid string) (*Model, bool)
}

// Static is a fixed Provider backed by a map. Useful in tests and for
// callers that precompute models elsewhere.
type Static map[string]*Model

// ModelForGUID implements Provider.
func (s Static) ModelForGUID(guid string) (*Model, bool) {
	m, ok := s[guid]
	return m, ok
}

var (
	classRe = regexp.MustCompile(`(?m)^\s*(?:public\s+|internal\s+)?(?:abstract\s+|sealed\s+|partial\s+)*class\s+(\w+)`)
	// Serialized fields: public fields and [SerializeField]-attributed
	// private/protected ones. Matches "modifier type name;" declarations.
	publicFieldRe     = regexp.MustCompile(`(?m)^\s*public\s+(?:static\s+|readonly\s+)?[\w.<>\[\],\s]+?\s(\w+)\s*(?:=[^;]*)?;`)
	serializedFieldRe = regexp.MustCompile(`(?m)\[SerializeField\]\s*(?:private\s+|protected\s+|internal\s+)?[\w.<>\[\],\s]+?\s(\w+)\s*(?:=[^;]*)?;`)
)

// SourceProvider resolves script models from C# sources on disk.
type SourceProvider struct {
	mu     sync.Mutex
	models map[string]*Model
}

// ModelForGUID implements Provider.
func (p *SourceProvider) ModelForGUID(guid string) (*Model, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	m, ok := p.models[guid]
	return m, ok
}

// Len returns the number of loaded script models.
func (p *SourceProvider) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.models)
}

// Load extracts models for every .cs asset in the index, fanning out per
// file. Unreadable or unparseable sources are skipped; a script file that
// declares no class contributes nothing.
func Load(ctx context.Context, projectPath string, idx *meta.Index) (*SourceProvider, error) {
	p := &SourceProvider{models: make(map[string]*Model)}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for guid, assetPath := range idx.All() {
		if !strings.HasSuffix(assetPath, ".cs") {
			continue
		}
		guid, assetPath := guid, assetPath
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			content, err := os.ReadFile(filepath.Join(projectPath, filepath.FromSlash(assetPath)))
			if err != nil {
				return nil
			}
			model, ok := ParseSource(string(content))
			if !ok {
				return nil
			}
			p.mu.Lock()
			p.models[guid] = model
			p.mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return p, nil
}

// ParseSource extracts the class model from C# source text.
func ParseSource(source string) (*Model, bool) {
	m := classRe.FindStringSubmatch(source)
	if m == nil {
		return nil, false
	}

	model := &Model{ClassName: m[1]}
	seen := make(map[string]struct{})
	add := func(matches [][]string) {
		for _, f := range matches {
			name := f[1]
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			model.Fields = append(model.Fields, name)
		}
	}
	add(publicFieldRe.FindAllStringSubmatch(source, -1))
	add(serializedFieldRe.FindAllStringSubmatch(source, -1))

	return model, true
}

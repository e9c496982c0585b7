package fixture

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlca/core"
	"github.com/katalvlaran/lvlca/lca"
)

// ErrInvalidFixture wraps every validation failure.
var ErrInvalidFixture = errors.New("fixture: invalid fixture")

// Fixture is one graph with its expected queries.
type Fixture struct {
	Name     string     `yaml:"name"`
	Directed *bool      `yaml:"directed"`
	Vertices []string   `yaml:"vertices"`
	Edges    [][]string `yaml:"edges"`
	Queries  []Query    `yaml:"queries"`

	// Path is the file the fixture was loaded from, if any.
	Path string `yaml:"-"`
}

// Query is one expected LCA outcome.
type Query struct {
	Name     string `yaml:"name"`
	Node1    string `yaml:"node1"`
	Node2    string `yaml:"node2"`
	Root     string `yaml:"root"`
	Want     string `yaml:"want"`
	Reason   string `yaml:"reason"`
	Policy   string `yaml:"policy"`
	TieBreak string `yaml:"tiebreak"`
}

// Parse decodes and validates one YAML document.
func Parse(data []byte) (*Fixture, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f Fixture
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFixture, err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Load reads and parses the fixture at path.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.Path = path

	return f, nil
}

// LoadGlob loads every file matching pattern, in lexical order.
func LoadGlob(pattern string) ([]*Fixture, error) {
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("fixture: glob %q: %w", pattern, err)
	}
	slices.Sort(paths)

	out := make([]*Fixture, 0, len(paths))
	for _, p := range paths {
		f, err := Load(p)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}

	return out, nil
}

// IsDirected reports the directed flag, true when omitted.
func (f *Fixture) IsDirected() bool {
	return f.Directed == nil || *f.Directed
}

// Graph builds a core.Graph from the fixture. Loops and parallel edges
// are allowed so imperfect inputs can be expressed.
func (f *Fixture) Graph() (*core.Graph, error) {
	g := core.NewGraph(
		core.WithDirected(f.IsDirected()),
		core.WithLoops(),
		core.WithMultiEdges(),
	)
	for _, v := range f.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("fixture %s: vertex %q: %w", f.Name, v, err)
		}
	}
	for _, e := range f.Edges {
		if _, err := g.AddEdge(e[0], e[1], 0); err != nil {
			return nil, fmt.Errorf("fixture %s: edge %v: %w", f.Name, e, err)
		}
	}

	return g, nil
}

func (f *Fixture) validate() error {
	if f.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidFixture)
	}
	for i, e := range f.Edges {
		if len(e) != 2 || e[0] == "" || e[1] == "" {
			return fmt.Errorf("%w: %s: edge %d must be [parent, child]", ErrInvalidFixture, f.Name, i)
		}
	}
	for i, q := range f.Queries {
		if err := q.validate(); err != nil {
			return fmt.Errorf("%w: %s: query %d: %v", ErrInvalidFixture, f.Name, i, err)
		}
	}

	return nil
}

func (q Query) validate() error {
	if q.Node1 == "" || q.Node2 == "" {
		return errors.New("node1 and node2 are required")
	}
	reason, err := q.ExpectedReason()
	if err != nil {
		return err
	}
	if (q.Want != "") != (reason == lca.ReasonFound) {
		return fmt.Errorf("want %q contradicts reason %s", q.Want, reason)
	}
	if _, err = q.Options(); err != nil {
		return err
	}

	return nil
}

// Label names the query for subtests.
func (q Query) Label() string {
	if q.Name != "" {
		return q.Name
	}
	if q.Root != "" {
		return fmt.Sprintf("lca(%s;%s,%s)", q.Root, q.Node1, q.Node2)
	}
	return fmt.Sprintf("lca(%s,%s)", q.Node1, q.Node2)
}

// Mode returns Rooted(Root) when a root is set, Rootless otherwise.
func (q Query) Mode() lca.Mode[string] {
	if q.Root != "" {
		return lca.Rooted(q.Root)
	}
	return lca.Rootless[string]()
}

// ExpectedReason returns the Reason the query must produce.
func (q Query) ExpectedReason() (lca.Reason, error) {
	if q.Reason == "" {
		if q.Want == "" {
			return 0, errors.New("either want or reason is required")
		}
		return lca.ReasonFound, nil
	}

	return lca.ParseReason(q.Reason)
}

// Options returns the engine options the query asks for.
func (q Query) Options() ([]lca.Option, error) {
	var opts []lca.Option
	if q.Policy != "" {
		p, err := lca.ParseCyclePolicy(q.Policy)
		if err != nil {
			return nil, err
		}
		opts = append(opts, lca.WithCyclePolicy(p))
	}
	if q.TieBreak != "" {
		t, err := lca.ParseTieBreak(q.TieBreak)
		if err != nil {
			return nil, err
		}
		opts = append(opts, lca.WithTieBreak(t))
	}

	return opts, nil
}

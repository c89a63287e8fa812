package matching

import (
	"errors"
	"fmt"
	"strings"
)

// NoNode is the parent index of the root.
const NoNode = -1

var ErrInvalidTaxonomy = errors.New("invalid taxonomy")

// Node is one entry of the taxonomy arena. Parent and Children are indexes
// into the same arena.
type Node struct {
	Label    string
	Weight   int
	Parent   int
	Children []int
}

// Taxonomy is an immutable weighted tree of role, specialization and skill
// labels. Labels are unique case-insensitively.
type Taxonomy struct {
	nodes []Node
	index map[string]int
}

func (t *Taxonomy) Len() int {
	if t == nil {
		return 0
	}
	return len(t.nodes)
}

// Root returns the root index, or NoNode for an empty taxonomy.
func (t *Taxonomy) Root() int {
	if t.Len() == 0 {
		return NoNode
	}
	return 0
}

func (t *Taxonomy) Node(idx int) (Node, bool) {
	if idx < 0 || idx >= t.Len() {
		return Node{}, false
	}
	n := t.nodes[idx]
	n.Children = append([]int(nil), n.Children...)
	return n, true
}

// Find returns the first node in depth-first pre-order whose label equals
// label ignoring case.
func (t *Taxonomy) Find(label string) (int, bool) {
	if t.Len() == 0 {
		return NoNode, false
	}
	idx, ok := t.index[normalizeLabel(label)]
	if !ok {
		return NoNode, false
	}
	return idx, true
}

func (t *Taxonomy) Weight(idx int) int {
	if idx < 0 || idx >= t.Len() {
		return 0
	}
	return t.nodes[idx].Weight
}

// WeightOfPath sums the weight of idx and every ancestor up to the root.
func (t *Taxonomy) WeightOfPath(idx int) int {
	total := 0
	for idx >= 0 && idx < t.Len() {
		total += t.nodes[idx].Weight
		idx = t.nodes[idx].Parent
	}
	return total
}

// Path returns the labels from the root down to idx.
func (t *Taxonomy) Path(idx int) []string {
	var rev []string
	for idx >= 0 && idx < t.Len() {
		rev = append(rev, t.nodes[idx].Label)
		idx = t.nodes[idx].Parent
	}
	out := make([]string, len(rev))
	for i, l := range rev {
		out[len(rev)-1-i] = l
	}
	return out
}

// Walk visits nodes in depth-first pre-order until fn returns false.
func (t *Taxonomy) Walk(fn func(idx, depth int) bool) {
	if t.Len() == 0 {
		return
	}
	type frame struct{ idx, depth int }
	stack := []frame{{idx: 0, depth: 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(f.idx, f.depth) {
			return
		}
		children := t.nodes[f.idx].Children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{idx: children[i], depth: f.depth + 1})
		}
	}
}

// TaxonomyBuilder assembles a Taxonomy. The first node added is the root;
// the first error is kept and reported by Build.
type TaxonomyBuilder struct {
	nodes []Node
	seen  map[string]struct{}
	err   error
}

func NewTaxonomyBuilder(rootLabel string, rootWeight int) *TaxonomyBuilder {
	b := &TaxonomyBuilder{seen: make(map[string]struct{})}
	b.add(NoNode, rootLabel, rootWeight)
	return b
}

// Add appends a child of parent and returns its index.
func (b *TaxonomyBuilder) Add(parent int, label string, weight int) int {
	if b.err != nil {
		return NoNode
	}
	if parent < 0 || parent >= len(b.nodes) {
		b.err = fmt.Errorf("%w: parent %d out of range for %q", ErrInvalidTaxonomy, parent, label)
		return NoNode
	}
	return b.add(parent, label, weight)
}

// AddLeaves appends one child per label, all with the same weight.
func (b *TaxonomyBuilder) AddLeaves(parent int, weight int, labels ...string) {
	for _, l := range labels {
		b.Add(parent, l, weight)
	}
}

func (b *TaxonomyBuilder) add(parent int, label string, weight int) int {
	key := normalizeLabel(label)
	switch {
	case key == "":
		b.err = fmt.Errorf("%w: empty label", ErrInvalidTaxonomy)
		return NoNode
	case weight < 1 || weight > 10:
		b.err = fmt.Errorf("%w: weight %d of %q outside 1..10", ErrInvalidTaxonomy, weight, label)
		return NoNode
	}
	if _, dup := b.seen[key]; dup {
		b.err = fmt.Errorf("%w: duplicate label %q", ErrInvalidTaxonomy, label)
		return NoNode
	}
	b.seen[key] = struct{}{}

	idx := len(b.nodes)
	b.nodes = append(b.nodes, Node{Label: strings.TrimSpace(label), Weight: weight, Parent: parent})
	if parent != NoNode {
		b.nodes[parent].Children = append(b.nodes[parent].Children, idx)
	}
	return idx
}

func (b *TaxonomyBuilder) Build() (*Taxonomy, error) {
	if b.err != nil {
		return nil, b.err
	}
	t := &Taxonomy{nodes: make([]Node, len(b.nodes)), index: make(map[string]int, len(b.nodes))}
	for i, n := range b.nodes {
		n.Children = append([]int(nil), n.Children...)
		t.nodes[i] = n
	}
	t.Walk(func(idx, _ int) bool {
		key := normalizeLabel(t.nodes[idx].Label)
		if _, ok := t.index[key]; !ok {
			t.index[key] = idx
		}
		return true
	})
	return t, nil
}

// DefaultTaxonomy builds the software-development reference tree.
func DefaultTaxonomy() *Taxonomy {
	b := NewTaxonomyBuilder("Software Development", 10)
	root := 0

	dev := b.Add(root, "Development Team", 10)
	fullstack := b.Add(dev, "Fullstack", 9)
	frontend := b.Add(fullstack, "Frontend", 8)
	b.AddLeaves(frontend, 7, "HTML", "CSS", "JavaScript", "React", "Angular")
	backend := b.Add(fullstack, "Backend", 8)
	b.AddLeaves(backend, 7, "Node.js", "Java", "Python", "Spring", "Django")
	databases := b.Add(fullstack, "Base de Datos", 8)
	b.AddLeaves(databases, 7, "PostgreSQL", "MySQL", "MongoDB", "Firebase")

	qa := b.Add(root, "QA Tester", 8)
	testTypes := b.Add(qa, "Tipos de pruebas", 7)
	b.AddLeaves(testTypes, 6, "Unitarias", "Funcionales", "Regresión", "Exploratorias")
	automation := b.Add(qa, "Automatización", 7)
	b.AddLeaves(automation, 6, "Selenium", "Cypress", "Postman", "Appium")
	testMgmt := b.Add(qa, "Gestión de pruebas", 7)
	b.AddLeaves(testMgmt, 6, "Jira", "TestRail", "Zephyr")

	ux := b.Add(root, "UX/UI Designer", 8)
	prototyping := b.Add(ux, "Prototipado", 7)
	b.AddLeaves(prototyping, 6, "Figma", "Adobe XD", "Wireframes")
	visual := b.Add(ux, "Diseño visual", 7)
	b.AddLeaves(visual, 6, "Guías UI", "Tipografía", "Color")
	research := b.Add(ux, "Investigación UX", 7)
	b.AddLeaves(research, 6, "Entrevistas", "Pruebas de usabilidad")

	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}

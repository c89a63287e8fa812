package dto

import "grad-match/internal/domain/matching"

type TaxonomyNodeResponse struct {
	Label      string   `json:"label"`
	Weight     int      `json:"weight"`
	PathWeight int      `json:"path_weight"`
	Depth      int      `json:"depth"`
	Path       []string `json:"path"`
	Children   []string `json:"children"`
}

type TaxonomyResponse struct {
	Root       string                 `json:"root"`
	TotalNodes int                    `json:"total_nodes"`
	Roles      []string               `json:"roles"`
	Nodes      []TaxonomyNodeResponse `json:"nodes"`
}

// NewTaxonomyResponse lists every node in depth-first pre-order.
func NewTaxonomyResponse(t *matching.Taxonomy) TaxonomyResponse {
	out := TaxonomyResponse{
		Roles: []string{},
		Nodes: make([]TaxonomyNodeResponse, 0, t.Len()),
	}
	if t.Len() == 0 {
		return out
	}

	if root, ok := t.Node(t.Root()); ok {
		out.Root = root.Label
	}
	out.TotalNodes = t.Len()

	t.Walk(func(idx, depth int) bool {
		n, ok := t.Node(idx)
		if !ok {
			return true
		}
		children := make([]string, 0, len(n.Children))
		for _, ci := range n.Children {
			if child, ok := t.Node(ci); ok {
				children = append(children, child.Label)
			}
		}
		if depth == 1 {
			out.Roles = append(out.Roles, n.Label)
		}
		out.Nodes = append(out.Nodes, TaxonomyNodeResponse{
			Label:      n.Label,
			Weight:     n.Weight,
			PathWeight: t.WeightOfPath(idx),
			Depth:      depth,
			Path:       t.Path(idx),
			Children:   children,
		})
		return true
	})
	return out
}

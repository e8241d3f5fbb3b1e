// File: methods_clone.go
// Role: Deep copies of graph instances.
// Determinism:
//   - Clone keeps indices, the free-list, Version and per-node connection order.

package core

// Cloner is implemented by payloads that need a deep copy when the graph is
// cloned. Payloads without it are copied by value.
type Cloner[N any] interface {
	Clone() N
}

// Clone returns a deep copy of the Graph: options, node slots, free-list,
// connections (mirror links included) and Version.
//
// Implementation:
//   - Stage 1: Copy options and node storage; payloads implementing Cloner are cloned.
//   - Stage 2: Copy every connection into a fresh struct, keeping order.
//   - Stage 3: Re-link mirrors through an old→new pointer map.
//
// Complexity: O(V + E).
func (g *Graph[N]) Clone() *Graph[N] {
	c := &Graph[N]{
		graphOptions: g.graphOptions,
		nodes:        make([]N, len(g.nodes)),
		live:         append([]bool(nil), g.live...),
		free:         append([]int(nil), g.free...),
		conns:        make([][]*Connection, len(g.conns)),
		connCount:    g.connCount,
		version:      g.version,
	}
	for i, n := range g.nodes {
		if cl, ok := any(n).(Cloner[N]); ok && g.live[i] {
			c.nodes[i] = cl.Clone()
			continue
		}
		c.nodes[i] = n
	}

	remap := make(map[*Connection]*Connection, 2*g.connCount)
	for i, list := range g.conns {
		if len(list) == 0 {
			continue
		}
		out := make([]*Connection, len(list))
		for k, e := range list {
			cp := *e
			cp.mirror = nil
			out[k] = &cp
			remap[e] = &cp
		}
		c.conns[i] = out
	}
	for old, cp := range remap {
		if old.mirror != nil {
			cp.mirror = remap[old.mirror]
		}
	}

	return c
}

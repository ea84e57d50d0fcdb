package matching

// frame is one level of the explicit augmenting-path stack: the vertex being
// expanded and the position of the next neighbour to try.
type frame struct {
	v    int
	next int
}

// augmentRecursive is the textbook search. It follows only edges u with
// dist[pair[u]] == dist[v]+1, so every path it finds is a shortest one.
// A vertex that yields no path is marked infinite and never re-entered in
// this sweep.
func (e *Engine) augmentRecursive(v int) bool {
	if v == none {
		return true
	}
	for _, u := range e.graph.Adjacent(v) {
		w := e.pair[u]
		if e.dist[w] == e.dist[v]+1 && e.augmentRecursive(w) {
			e.pair[u] = v
			e.pair[v] = u
			return true
		}
	}
	e.dist[v] = infinity

	return false
}

// augmentIterative behaves exactly like augmentRecursive but keeps its state
// in e.stack. When the search reaches Nil, every frame's last tried
// neighbour is on the path, and the frames are rewired from the deepest up.
func (e *Engine) augmentIterative(start int) bool {
	stack := append(e.stack[:0], frame{v: start})
	defer func() { e.stack = stack[:0] }()

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		adj := e.graph.Adjacent(top.v)
		pushed := false
		for top.next < len(adj) {
			u := adj[top.next]
			top.next++
			w := e.pair[u]
			if e.dist[w] != e.dist[top.v]+1 {
				continue
			}
			if w == none {
				for k := len(stack) - 1; k >= 0; k-- {
					f := stack[k]
					mate := e.graph.Adjacent(f.v)[f.next-1]
					e.pair[mate] = f.v
					e.pair[f.v] = mate
				}
				return true
			}
			stack = append(stack, frame{v: w})
			pushed = true
			break
		}
		if !pushed {
			e.dist[top.v] = infinity
			stack = stack[:len(stack)-1]
		}
	}

	return false
}

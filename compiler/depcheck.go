package compiler

import "strings"

// DependencyChecker verifies that every struct reference in a batch resolves to
// a struct of the same batch and that no struct contains itself.
type DependencyChecker struct{}

func NewDependencyChecker() *DependencyChecker { return &DependencyChecker{} }

type node struct {
	def  *StructDef
	deps []*node
}

const (
	unvisited = iota
	exploring
	explored
)

// Check returns the first missing or circular dependency it finds as an *Error.
func (dc *DependencyChecker) Check(defs []StructDef) error {
	nodes, err := buildGraph(defs)
	if err != nil {
		return err
	}
	return checkCycles(nodes)
}

func buildGraph(defs []StructDef) ([]*node, error) {
	nodes := make([]*node, len(defs))
	byName := make(map[QualifiedName]*node, len(defs))
	for i := range defs {
		n := &node{def: &defs[i]}
		if _, dup := byName[n.def.Name]; dup {
			return nil, errorf(ErrDependency, n.def.Pos, "duplicate struct %s", n.def.Name)
		}
		byName[n.def.Name] = n
		nodes[i] = n
	}

	for _, n := range nodes {
		seen := make(map[*node]bool)
		for _, f := range n.def.Fields {
			name, ok := dependency(f)
			if !ok {
				continue
			}
			dep, ok := byName[name]
			if !ok {
				return nil, errorf(ErrDependency, position(f.Position(), n.def.Pos), "%s: %s is not a struct", f.FieldName(), name)
			}
			if !seen[dep] {
				seen[dep] = true
				n.deps = append(n.deps, dep)
			}
		}
	}
	return nodes, nil
}

type frame struct {
	n    *node
	next int
}

// checkCycles runs an iterative three-color depth-first search from every node in input order.
func checkCycles(nodes []*node) error {
	color := make(map[*node]int, len(nodes))
	for _, root := range nodes {
		if color[root] != unvisited {
			continue
		}
		color[root] = exploring
		stack := []frame{{n: root}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next == len(top.n.deps) {
				color[top.n] = explored
				stack = stack[:len(stack)-1]
				continue
			}
			dep := top.n.deps[top.next]
			top.next++
			switch color[dep] {
			case explored:
			case exploring:
				return cycleError(stack, dep)
			default:
				color[dep] = exploring
				stack = append(stack, frame{n: dep})
			}
		}
	}
	return nil
}

func cycleError(stack []frame, start *node) error {
	var path []string
	for i := range stack {
		if len(path) == 0 && stack[i].n != start {
			continue
		}
		path = append(path, string(stack[i].n.def.Name))
	}
	path = append(path, string(start.def.Name))
	return errorf(ErrDependency, start.def.Pos, "dependency cycle detected: %s", strings.Join(path, " → "))
}

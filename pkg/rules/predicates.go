// Package rules provides the stateless predicates the compliance evaluator
// is built from. Each predicate is a pure first-class function over a node
// (or a parameter node), parameterized by a configuration value and
// independent of traversal order. There is no combinator DSL: callers
// compose predicates with ordinary boolean logic.
package rules

import (
	"strings"

	"github.com/mesh-intelligence/surveyor/pkg/model"
)

// Predicate is a pure condition over a node or parameter node.
type Predicate func(*model.Node) bool

// TypeIs matches nodes whose type tag equals target.
func TypeIs(target string) Predicate {
	return func(n *model.Node) bool {
		return n != nil && n.Kind == target
	}
}

// NameHasPrefix matches nodes whose name starts with prefix. Naming-scheme
// checks like this are common for source schemas that prefix parameter
// names ("Ifc", "Pset", ...).
func NameHasPrefix(prefix string) Predicate {
	return func(n *model.Node) bool {
		return n != nil && n.Name != "" && strings.HasPrefix(n.Name, prefix)
	}
}

// NameIs matches nodes with a name exactly equal to target.
func NameIs(target string) Predicate {
	return func(n *model.Node) bool {
		return n != nil && n.Name != "" && n.Name == target
	}
}

// CategoryIs matches nodes whose category equals target.
func CategoryIs(target string) Predicate {
	return func(n *model.Node) bool {
		return n != nil && n.Category == target
	}
}

// ValueMissing matches parameter nodes whose value is absent or empty:
// nil, an empty string, a zero number, false, or an empty sequence or
// mapping.
func ValueMissing(n *model.Node) bool {
	return n == nil || falsy(n.Value)
}

// ValueIsDefault matches parameter nodes still carrying the given default
// sentinel, typically software defaults that leaked into final data.
func ValueIsDefault(sentinel string) Predicate {
	return func(n *model.Node) bool {
		if n == nil {
			return false
		}
		s, ok := n.Value.(string)
		return ok && s == sentinel
	}
}

// HasNamedParameter matches container nodes whose parameter mapping
// contains name as a key.
func HasNamedParameter(name string) Predicate {
	return func(n *model.Node) bool {
		if n == nil {
			return false
		}
		_, ok := n.Parameters[name]
		return ok
	}
}

// IsRecognizedParameter matches nodes tagged with the recognized parameter
// type marker of the source schema.
func IsRecognizedParameter(n *model.Node) bool {
	return n != nil && n.Kind == model.KindParameter
}

// falsy reports whether a dynamic value counts as absent or empty.
func falsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case bool:
		return !x
	case int:
		return x == 0
	case int64:
		return x == 0
	case float64:
		return x == 0
	case []any:
		return len(x) == 0
	case map[string]any:
		return len(x) == 0
	default:
		return false
	}
}

// Package permission evaluates the per-node scope rules that gate whether a
// node may be visited or mutated, generalizing the regex file allow/deny
// list of gremlins/internal/exclusion to name-or-ancestor-over-node rules
// (spec §3 "Permissions").
package permission

// Action is the kind of traversal step a Rule gates.
type Action int

const (
	// Visit gates whether a traversal may descend into a node's subtree.
	Visit Action = iota
	// Mutate gates whether a node may be reported eligible / rewritten.
	Mutate
)

// ScopeKind distinguishes the three shapes a Rule's scope can take.
type ScopeKind int

const (
	// Any matches every node.
	Any ScopeKind = iota
	// Name matches a node whose Namer-extracted display name is in Names.
	Name
	// ChildrenOf matches any node that is a descendant of a node whose
	// display name is in Names.
	ChildrenOf
)

// Polarity is whether a matching Rule allows or forbids the action.
type Polarity int

const (
	// Allow permits the action.
	Allow Polarity = iota
	// Deny forbids the action.
	Deny
)

// Rule is one entry of the ordered policy described in spec §3.
type Rule struct {
	Action   Action
	Scope    ScopeKind
	Names    []string
	Polarity Polarity
}

func (r Rule) matchesName(name string) bool {
	if r.Scope == Any {
		return true
	}
	for _, n := range r.Names {
		if n == name {
			return true
		}
	}

	return false
}

// Permitter evaluates an ordered rule list with "first matching rule wins"
// semantics; absent a match, the default is Deny.
type Permitter struct {
	rules []Rule
}

// New builds a Permitter from an ordered rule list.
func New(rules []Rule) Permitter {
	return Permitter{rules: rules}
}

// FromFunctionAllowlist expands a --function allow-list into the rule set
// spec §3 prescribes: for each name n, "Mutate Name(n) Allow" and "Mutate
// Children-of(n) Allow"; if names is empty, "Mutate Any Allow" instead. A
// standing "Visit Any Allow" is always appended last (so it never shadows a
// more specific Deny placed earlier by a caller).
func FromFunctionAllowlist(names []string) []Rule {
	var rules []Rule
	if len(names) == 0 {
		rules = append(rules, Rule{Action: Mutate, Scope: Any, Polarity: Allow})
	} else {
		rules = append(rules,
			Rule{Action: Mutate, Scope: Name, Names: names, Polarity: Allow},
			Rule{Action: Mutate, Scope: ChildrenOf, Names: names, Polarity: Allow},
		)
	}
	rules = append(rules, Rule{Action: Visit, Scope: Any, Polarity: Allow})

	return rules
}

// ancestry is the chain of display names (nearest first) a node's permission
// check is evaluated against: its own name (if any) followed by every
// enclosing named ancestor's name, since ChildrenOf(n) must match any
// descendant of n, not only its direct children.
type ancestry struct {
	own       string
	hasOwn    bool
	enclosing []string
}

// Allowed reports whether action is permitted on a node whose own name is
// (ownName, hasOwn) and whose enclosing named ancestors are enclosing
// (nearest first).
func (p Permitter) Allowed(action Action, ownName string, hasOwn bool, enclosing []string) bool {
	a := ancestry{own: ownName, hasOwn: hasOwn, enclosing: enclosing}

	for _, r := range p.rules {
		if r.Action != action {
			continue
		}
		if p.matches(r, a) {
			return r.Polarity == Allow
		}
	}

	return false
}

func (p Permitter) matches(r Rule, a ancestry) bool {
	switch r.Scope {
	case Any:
		return true
	case Name:
		return a.hasOwn && r.matchesName(a.own)
	case ChildrenOf:
		for _, e := range a.enclosing {
			if r.matchesName(e) {
				return true
			}
		}

		return false
	default:
		return false
	}
}

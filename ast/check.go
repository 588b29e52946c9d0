package ast

import "fmt"

// Check validates a tree without modifying it.
type Check interface {
	Name() string
	Check(root Node) error
}

// CheckChain runs checks in order, stopping at the first error.
type CheckChain []Check

// Run executes each check in sequence. Returns nil if all pass.
func (cc CheckChain) Run(root Node) error {
	for _, c := range cc {
		if err := c.Check(root); err != nil {
			return fmt.Errorf("%s: %w", c.Name(), err)
		}
	}
	return nil
}

// Checks returns the default chain applied to freshly built trees.
func Checks() CheckChain {
	return CheckChain{parityCheck{}}
}

// parityCheck verifies that parallel slices inside nodes line up: dict
// keys with values, comparison operators with comparators, keyword-only
// parameters with their defaults. A tree that fails it cannot be rendered
// meaningfully.
type parityCheck struct{}

func (parityCheck) Name() string { return "parity" }

func (parityCheck) Check(root Node) error {
	var err error
	Walk(root, func(n Node) bool {
		switch v := n.(type) {
		case *Dict:
			if len(v.Keys) != len(v.Values) {
				err = fmt.Errorf("dict has %d keys and %d values", len(v.Keys), len(v.Values))
			}
		case *Compare:
			if len(v.Ops) != len(v.Comparators) {
				err = fmt.Errorf("comparison has %d operators and %d comparators",
					len(v.Ops), len(v.Comparators))
			}
			if len(v.Ops) == 0 {
				err = fmt.Errorf("comparison without operators")
			}
		case *BoolOp:
			if len(v.Values) < 2 {
				err = fmt.Errorf("boolean operation with %d operands", len(v.Values))
			}
		case *Arguments:
			if len(v.Defaults) > len(v.Args) {
				err = fmt.Errorf("%d defaults for %d parameters", len(v.Defaults), len(v.Args))
			}
			if len(v.KwDefaults) > len(v.KwOnlyArgs) {
				err = fmt.Errorf("%d keyword defaults for %d keyword-only parameters",
					len(v.KwDefaults), len(v.KwOnlyArgs))
			}
		}
		return err == nil
	})
	return err
}

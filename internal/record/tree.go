package record

import "fmt"

// UnexpectedLevel is returned when a record's level jumps by more than one
// past its would-be parent, with no plausible ancestor on the stack.
type UnexpectedLevel struct {
	ParentLevel uint16
	ChildLevel  uint16
}

func (e *UnexpectedLevel) Error() string {
	return fmt.Sprintf("unexpected level: parent at %d, child at %d", e.ParentLevel, e.ChildLevel)
}

// Node is one record reassembled into a tree by level, with its children
// in source order.
type Node struct {
	Record
	Children []*Node
}

// AssembleTree walks a flat, level-tagged record list and reconstructs the
// forest it encodes: a record at level N attaches to the most recently
// seen record at level N-1. Sibling order is preserved.
func AssembleTree(records []Record) ([]*Node, error) {
	var roots []*Node
	// stack[i] holds the most recently seen node at level i.
	stack := map[uint16]*Node{}

	for _, rec := range records {
		n := &Node{Record: rec}
		if rec.Level == 0 {
			roots = append(roots, n)
		} else {
			parent, ok := stack[rec.Level-1]
			if !ok {
				return nil, &UnexpectedLevel{ParentLevel: rec.Level - 1, ChildLevel: rec.Level}
			}
			parent.Children = append(parent.Children, n)
		}
		stack[rec.Level] = n
		// Any deeper levels that were tracked below a now-superseded
		// ancestor are no longer reachable as parents.
		for lvl := range stack {
			if lvl > rec.Level {
				delete(stack, lvl)
			}
		}
	}
	return roots, nil
}

// Package walk computes the order in which directories are serialized.
//
// The container does not nest directories. Every directory is a top-level
// entry, and their order follows a siblings-first rule: a directory's
// children are all listed before any grandchild, and then each child is
// expanded in turn. For root/{A,B,C} with C/{C1,C2} the order is
// [root A B C C1 C2]. This differs from both pre-order and breadth-first
// traversal once the tree is three levels deep.
package walk

import "path"

// Lister returns the names of the immediate subdirectories of dir, in
// enumeration order.
type Lister interface {
	Subdirs(dir string) ([]string, error)
}

// ListerFunc adapts a function to Lister.
type ListerFunc func(dir string) ([]string, error)

// Subdirs implements Lister.
func (f ListerFunc) Subdirs(dir string) ([]string, error) {
	return f(dir)
}

// Dirs returns root followed by every directory below it in serialization
// order. Subdirectory names returned by l are joined to their parent with
// path.Join.
//
// The walk keeps an explicit stack of sibling queues: expanding a directory
// appends all of its children to the result and pushes them as a new queue,
// so each child is expanded (depth-first) before the next sibling.
func Dirs(root string, l Lister) ([]string, error) {
	out := []string{root}
	stack := [][]string{{root}}

	for len(stack) > 0 {
		top := len(stack) - 1
		if len(stack[top]) == 0 {
			stack = stack[:top]
			continue
		}
		dir := stack[top][0]
		stack[top] = stack[top][1:]

		names, err := l.Subdirs(dir)
		if err != nil {
			return nil, err
		}
		if len(names) == 0 {
			continue
		}

		children := make([]string, len(names))
		for i, name := range names {
			children[i] = path.Join(dir, name)
		}
		out = append(out, children...)
		stack = append(stack, children)
	}
	return out, nil
}

package declarative

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/declarative/pkg/validator"
)

func knownTask(field, name string, dag *DAG) validator.Rule {
	return validator.Rule{
		Check: func() bool {
			_, ok := dag.Task(name)
			return ok
		},
		Error: validator.ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("unknown task %q", name),
			Value:          name,
			TranslationKey: "validation.flow_unknown_task",
			TranslationValues: map[string]any{
				"field": field,
				"task":  name,
			},
		},
	}
}

func notSelf(field, upstream, downstream string) validator.Rule {
	return validator.Rule{
		Check: func() bool {
			return upstream != downstream
		},
		Error: validator.ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("task %q depends on itself", upstream),
			Value:          downstream,
			TranslationKey: "validation.flow_self_dependency",
			TranslationValues: map[string]any{
				"field": field,
				"task":  upstream,
			},
		},
	}
}

func uniqueTask(field, name string, dag *DAG) validator.Rule {
	return validator.Rule{
		Check: func() bool {
			_, op := dag.Operators[name]
			_, sn := dag.Sensors[name]
			return !(op && sn)
		},
		Error: validator.ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("task %q is declared as both operator and sensor", name),
			Value:          name,
			TranslationKey: "validation.flow_duplicate_task",
			TranslationValues: map[string]any{
				"field": field,
				"task":  name,
			},
		},
	}
}

func acyclic(field string, cycle []string) validator.Rule {
	return validator.Rule{
		Check: func() bool {
			return len(cycle) == 0
		},
		Error: validator.ValidationError{
			Field:          field,
			Message:        "flow has a cycle: " + strings.Join(cycle, " -> "),
			Value:          cycle,
			TranslationKey: "validation.flow_cycle",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// findCycle returns the first dependency cycle found walking tasks in sorted
// order, closed with its starting task, or nil. Self loops are reported by
// notSelf and skipped here.
func findCycle(dag *DAG) []string {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int)
	var stack []string

	var visit func(name string) []string
	visit = func(name string) []string {
		state[name] = visiting
		stack = append(stack, name)
		for _, next := range dag.Flow[name] {
			if next == name {
				continue
			}
			switch state[next] {
			case visiting:
				start := 0
				for i, n := range stack {
					if n == next {
						start = i
						break
					}
				}
				cycle := append([]string{}, stack[start:]...)
				return append(cycle, next)
			case unvisited:
				if c := visit(next); c != nil {
					return c
				}
			}
		}
		stack = stack[:len(stack)-1]
		state[name] = done
		return nil
	}

	for _, name := range sortedKeys(dag.Flow) {
		if state[name] == unvisited {
			if c := visit(name); c != nil {
				return c
			}
		}
	}
	return nil
}

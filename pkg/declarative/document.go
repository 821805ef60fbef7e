package declarative

import (
	"maps"
	"slices"

	"github.com/dmitrymomot/declarative/pkg/date"
	"github.com/dmitrymomot/declarative/pkg/importable"
	"github.com/dmitrymomot/declarative/pkg/interval"
)

// Document is the root of a declarative file: a set of DAGs keyed by id.
type Document struct {
	DAGs map[string]*DAG `yaml:"dags" validate:"required,min=1,dive,required" jsonschema:"required"`
}

// DAG groups run-level arguments, per-task defaults, the tasks themselves
// and the dependencies between them.
type DAG struct {
	Defaults  Defaults            `yaml:"defaults,omitempty"`
	Args      Args                `yaml:"args" jsonschema:"required"`
	Operators map[string]*Task    `yaml:"operators,omitempty" validate:"omitempty,dive,required"`
	Sensors   map[string]*Task    `yaml:"sensors,omitempty" validate:"omitempty,dive,required"`
	Flow      map[string][]string `yaml:"flow,omitempty" jsonschema:"description=Upstream task mapped to its downstream tasks"`
}

// Defaults apply to every task of the DAG unless the task overrides them.
type Defaults struct {
	Owner          string            `yaml:"owner,omitempty"`
	Email          []string          `yaml:"email,omitempty" validate:"omitempty,dive,email"`
	EmailOnFailure bool              `yaml:"email_on_failure,omitempty"`
	EmailOnRetry   bool              `yaml:"email_on_retry,omitempty"`
	Retries        int               `yaml:"retries,omitempty" validate:"min=0"`
	RetryDelay     interval.Duration `yaml:"retry_delay,omitempty" validate:"timedelta"`
	StartDate      date.Date         `yaml:"start_date,omitempty" validate:"omitempty,date"`
	Queue          string            `yaml:"queue,omitempty"`
	Pool           string            `yaml:"pool,omitempty"`
}

// Args are the run-level settings of a DAG.
type Args struct {
	Description       string            `yaml:"description,omitempty"`
	StartDate         date.Date         `yaml:"start_date" validate:"required,date" jsonschema:"required"`
	EndDate           date.Date         `yaml:"end_date,omitempty" validate:"omitempty,date"`
	ScheduleInterval  interval.Duration `yaml:"schedule_interval,omitempty" validate:"timedelta"`
	DagrunTimeout     interval.Duration `yaml:"dagrun_timeout,omitempty" validate:"timedelta"`
	Catchup           bool              `yaml:"catchup,omitempty"`
	MaxActiveRuns     int               `yaml:"max_active_runs,omitempty" validate:"min=0"`
	OnSuccessCallback importable.Ref    `yaml:"on_success_callback,omitempty"`
	OnFailureCallback importable.Ref    `yaml:"on_failure_callback,omitempty"`
}

// Task is an operator or sensor. Class must reference a registered class;
// Args are passed to it untouched.
type Task struct {
	Class             importable.Ref    `yaml:"class" validate:"required" jsonschema:"required"`
	Args              map[string]any    `yaml:"args,omitempty"`
	Retries           int               `yaml:"retries,omitempty" validate:"min=0"`
	RetryDelay        interval.Duration `yaml:"retry_delay,omitempty" validate:"timedelta"`
	ExecutionTimeout  interval.Duration `yaml:"execution_timeout,omitempty" validate:"timedelta"`
	OnSuccessCallback importable.Ref    `yaml:"on_success_callback,omitempty"`
	OnFailureCallback importable.Ref    `yaml:"on_failure_callback,omitempty"`
	OnRetryCallback   importable.Ref    `yaml:"on_retry_callback,omitempty"`
	TriggerRule       string            `yaml:"trigger_rule,omitempty" jsonschema:"enum=all_success,enum=all_failed,enum=all_done,enum=one_success,enum=one_failed,enum=none_failed,enum=none_skipped,enum=dummy"`
}

// TriggerRules lists the accepted Task.TriggerRule values; empty means all_success.
var TriggerRules = []string{
	"all_success",
	"all_failed",
	"all_done",
	"one_success",
	"one_failed",
	"none_failed",
	"none_skipped",
	"dummy",
}

// Names returns the DAG ids in sorted order.
func (d *Document) Names() []string {
	return slices.Sorted(maps.Keys(d.DAGs))
}

// Task looks a task up among operators and then sensors.
func (g *DAG) Task(name string) (*Task, bool) {
	if t, ok := g.Operators[name]; ok {
		return t, true
	}
	t, ok := g.Sensors[name]
	return t, ok
}

// TaskNames returns operator and sensor names in sorted order.
func (g *DAG) TaskNames() []string {
	names := slices.Collect(maps.Keys(g.Operators))
	for name := range g.Sensors {
		if _, dup := g.Operators[name]; !dup {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// Downstream returns the tasks that run after name.
func (g *DAG) Downstream(name string) []string {
	return g.Flow[name]
}

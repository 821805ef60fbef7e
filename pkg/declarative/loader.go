package declarative

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/declarative/pkg/importable"
	"github.com/dmitrymomot/declarative/pkg/logger"
	"github.com/dmitrymomot/declarative/pkg/schema"
	"github.com/dmitrymomot/declarative/pkg/validator"
)

// Loader decodes and validates declarative documents.
type Loader struct {
	registry *importable.Registry
	log      *slog.Logger
	strict   bool
	resolve  bool
	schema   *schema.Validator
}

// Option configures a Loader.
type Option func(*Loader)

// WithRegistry sets the registry references are resolved against. Nil is ignored.
func WithRegistry(reg *importable.Registry) Option {
	return func(l *Loader) {
		if reg != nil {
			l.registry = reg
		}
	}
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger(log *slog.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}

// WithStrict rejects keys that do not map to a document field.
func WithStrict(strict bool) Option {
	return func(l *Loader) { l.strict = strict }
}

// WithoutResolution checks only the module:name syntax of references and
// leaves Ref.Value unset.
func WithoutResolution() Option {
	return func(l *Loader) { l.resolve = false }
}

// New creates a Loader resolving against importable.Default unless
// WithRegistry is given.
func New(opts ...Option) *Loader {
	l := &Loader{
		registry: importable.Default,
		log:      slog.Default(),
		resolve:  true,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.log = l.log.With(logger.Component("declarative"))
	l.schema = schema.New(schema.WithRegistry(l.registry))
	return l
}

// LoadFile opens path and loads it.
func (l *Loader) LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrOpenFile, err)
	}
	defer f.Close()

	doc, err := l.Load(f)
	if err != nil {
		l.log.Debug("document rejected", logger.Path(path), logger.Error(err))
		return nil, err
	}
	return doc, nil
}

// Load decodes a single YAML document from r, resolves its references and
// validates it. Malformed input returns an error wrapping ErrDecode; every
// other failure is collected into one validator.ValidationErrors whose field
// paths read like "dags.etl.operators.extract.class".
func (l *Loader) Load(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(l.strict)

	var doc Document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	l.log.Debug("document decoded", logger.Count("dags", len(doc.DAGs)))

	var report validator.ValidationErrors
	l.references(&doc, &report)
	report.Merge("", l.schema.Struct(doc))
	for _, name := range doc.Names() {
		dag := doc.DAGs[name]
		if dag == nil {
			continue
		}
		report.Merge("", checkKeys(name, dag))
		report.Merge("", checkArgs("dags."+name+".args", dag.Args))
		report.Merge("", checkFlow("dags."+name, dag))
	}

	if !report.IsEmpty() {
		l.log.Warn("document is invalid",
			logger.Count("errors", len(report)),
			logger.Failures(report.Messages()),
		)
		return nil, report
	}
	return &doc, nil
}

func (l *Loader) references(doc *Document, report *validator.ValidationErrors) {
	for _, name := range doc.Names() {
		dag := doc.DAGs[name]
		if dag == nil {
			continue
		}
		base := "dags." + name

		l.callback(base+".args.on_success_callback", &dag.Args.OnSuccessCallback, report)
		l.callback(base+".args.on_failure_callback", &dag.Args.OnFailureCallback, report)

		l.tasks(base+".operators", dag.Operators, report)
		l.tasks(base+".sensors", dag.Sensors, report)
	}
}

func (l *Loader) tasks(base string, tasks map[string]*Task, report *validator.ValidationErrors) {
	for _, name := range sortedKeys(tasks) {
		task := tasks[name]
		if task == nil {
			continue
		}
		path := base + "." + name
		l.class(path+".class", &task.Class, report)
		l.callback(path+".on_success_callback", &task.OnSuccessCallback, report)
		l.callback(path+".on_failure_callback", &task.OnFailureCallback, report)
		l.callback(path+".on_retry_callback", &task.OnRetryCallback, report)
	}
}

func (l *Loader) class(field string, ref *importable.Ref, report *validator.ValidationErrors) {
	if !l.resolve {
		l.notation(field, ref, report)
		return
	}
	err := validator.ResolveRef(field, ref, l.registry, validator.Class)
	if err != nil {
		l.log.Debug("reference not resolved", logger.Field(field), logger.Error(err))
	}
	report.Merge(field, err)
}

func (l *Loader) callback(field string, ref *importable.Ref, report *validator.ValidationErrors) {
	if !l.resolve {
		l.notation(field, ref, report)
		return
	}
	err := validator.ResolveRef(field, ref, l.registry, validator.Callback)
	if err != nil {
		l.log.Debug("reference not resolved", logger.Field(field), logger.Error(err))
	}
	report.Merge(field, err)
}

func (l *Loader) notation(field string, ref *importable.Ref, report *validator.ValidationErrors) {
	if ref.Notation == "" {
		return
	}
	report.Merge(field, validator.Apply(validator.ImportNotation(field, ref.Notation)))
}

// checkKeys validates the DAG id, task names and trigger rules.
func checkKeys(id string, dag *DAG) error {
	base := "dags." + id
	rules := []validator.Rule{
		validator.Key(base, id),
		validator.MaxLen(base, id, validator.MaxKeyLen),
	}
	for _, section := range []struct {
		name  string
		tasks map[string]*Task
	}{
		{"operators", dag.Operators},
		{"sensors", dag.Sensors},
	} {
		for _, name := range sortedKeys(section.tasks) {
			field := base + "." + section.name + "." + name
			rules = append(rules,
				validator.Key(field, name),
				validator.MaxLen(field, name, validator.MaxKeyLen),
			)
			if task := section.tasks[name]; task != nil {
				rules = append(rules, validator.OneOf(field+".trigger_rule", task.TriggerRule, TriggerRules))
			}
		}
	}
	return validator.Apply(rules...)
}

func checkArgs(base string, args Args) error {
	rules := []validator.Rule{
		validator.DateNotBefore(base+".end_date", args.EndDate, args.StartDate),
	}
	if args.ScheduleInterval.Duration != 0 {
		rules = append(rules, validator.PositiveInterval(base+".schedule_interval", args.ScheduleInterval.Duration))
	}
	if args.DagrunTimeout.Duration != 0 {
		rules = append(rules, validator.PositiveInterval(base+".dagrun_timeout", args.DagrunTimeout.Duration))
	}
	return validator.Apply(rules...)
}

func checkFlow(base string, dag *DAG) error {
	var rules []validator.Rule
	for _, name := range sortedKeys(dag.Sensors) {
		rules = append(rules, uniqueTask(base+".sensors."+name, name, dag))
	}
	for _, upstream := range sortedKeys(dag.Flow) {
		field := base + ".flow." + upstream
		rules = append(rules, knownTask(field, upstream, dag))
		for _, downstream := range dag.Flow[upstream] {
			rules = append(rules,
				knownTask(field, downstream, dag),
				notSelf(field, upstream, downstream),
			)
		}
	}
	rules = append(rules, acyclic(base+".flow", findCycle(dag)))
	return validator.Apply(rules...)
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}

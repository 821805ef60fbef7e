package validator_test

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/declarative/pkg/date"
	"github.com/dmitrymomot/declarative/pkg/importable"
	"github.com/dmitrymomot/declarative/pkg/interval"
	"github.com/dmitrymomot/declarative/pkg/validator"
)

type orderedDict struct{}

type handler struct{}

func (handler) Invoke(context.Context, ...any) (any, error) { return nil, nil }

func testRegistry() *importable.Registry {
	reg := importable.NewRegistry()
	reg.RegisterModule("os.path", map[string]any{
		"join": filepath.Join,
		"sep":  string(filepath.Separator),
	})
	reg.RegisterModule("collections", map[string]any{
		"OrderedDict": reflect.TypeFor[orderedDict](),
	})
	reg.Register("hooks", "handler", handler{})
	return reg
}

func onlyError(t *testing.T, err error) validator.ValidationError {
	t.Helper()
	errs := validator.ExtractValidationErrors(err)
	require.Len(t, errs, 1)
	return errs[0]
}

func TestDate(t *testing.T) {
	t.Run("accepts calendar dates", func(t *testing.T) {
		for _, v := range []date.Date{date.MustParse("2017-07-27"), {}} {
			assert.NoError(t, validator.Apply(validator.Date("start_date", v)))
		}
	})

	t.Run("rejects everything else", func(t *testing.T) {
		values := []any{time.Now(), "2017-07-27", 20170727, nil, &date.Date{}}
		for _, v := range values {
			err := validator.Apply(validator.Date("start_date", v))
			require.Error(t, err, "%#v", v)

			e := onlyError(t, err)
			assert.Equal(t, "start_date", e.Field)
			assert.Equal(t, "value should be a date", e.Message)
			assert.Equal(t, "validation.date", e.TranslationKey)
			assert.Equal(t, v, e.Value)
		}
	})
}

func TestDateNotBefore(t *testing.T) {
	start := date.MustParse("2017-07-27")

	assert.NoError(t, validator.Apply(validator.DateNotBefore("end_date", start, start)))
	assert.NoError(t, validator.Apply(validator.DateNotBefore("end_date", date.MustParse("2018-01-01"), start)))
	assert.NoError(t, validator.Apply(validator.DateNotBefore("end_date", date.Date{}, start)))

	err := validator.Apply(validator.DateNotBefore("end_date", date.MustParse("2017-07-26"), start))
	e := onlyError(t, err)
	assert.Equal(t, "date must not be before 2017-07-27", e.Message)
}

func TestTimeDelta(t *testing.T) {
	t.Run("accepts durations", func(t *testing.T) {
		for _, v := range []any{time.Second, -time.Hour, time.Duration(0), interval.Of(time.Minute)} {
			assert.NoError(t, validator.Apply(validator.TimeDelta("retry_delay", v)), "%#v", v)
		}
	})

	t.Run("does not parse", func(t *testing.T) {
		for _, v := range []any{"10s", 3600, int64(3600), 1.5, nil} {
			e := onlyError(t, validator.Apply(validator.TimeDelta("retry_delay", v)))
			assert.Equal(t, "value should be a timedelta", e.Message)
			assert.Equal(t, "validation.timedelta", e.TranslationKey)
		}
	})
}

func TestInterval(t *testing.T) {
	d, err := validator.Interval("schedule", "42m")
	require.NoError(t, err)
	assert.Equal(t, 42*time.Minute, d)

	for _, v := range []any{"abc", "1x", 1.5} {
		_, err := validator.Interval("schedule", v)
		e := onlyError(t, err)
		assert.Equal(t, "schedule", e.Field)
		assert.Contains(t, e.Message, "invalid interval value")
		assert.Equal(t, "validation.interval", e.TranslationKey)
		assert.Equal(t, v, e.Value)
	}
}

func TestPositiveInterval(t *testing.T) {
	assert.NoError(t, validator.Apply(validator.PositiveInterval("retry_delay", time.Second)))
	assert.Error(t, validator.Apply(validator.PositiveInterval("retry_delay", 0)))
	assert.Error(t, validator.Apply(validator.PositiveInterval("retry_delay", -time.Second)))
}

func TestImportable(t *testing.T) {
	reg := testRegistry()

	t.Run("resolves to the registered object", func(t *testing.T) {
		obj, err := validator.Importable("callable", "os.path:join", reg)
		require.NoError(t, err)
		assert.Equal(t, reflect.ValueOf(filepath.Join).Pointer(), reflect.ValueOf(obj).Pointer())
	})

	tests := []struct {
		name    string
		value   any
		message string
		key     string
	}{
		{"not a string", 42, "value should be a string", "validation.string"},
		{"no colon", "os.path", "import notation must be in format: `package.module:target`", "validation.import_notation"},
		{"empty name", "os.path:", "import notation must be in format: `package.module:target`", "validation.import_notation"},
		{"missing module", "nonexistent.module:x", `no module named "nonexistent.module"`, "validation.importable"},
		{"missing attribute", "os.path:doesnotexist", `module "os.path" has no attribute "doesnotexist"`, "validation.importable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj, err := validator.Importable("callable", tt.value, reg)
			assert.Nil(t, obj)

			e := onlyError(t, err)
			assert.Equal(t, "callable", e.Field)
			assert.Equal(t, tt.message, e.Message)
			assert.Equal(t, tt.key, e.TranslationKey)
			assert.Equal(t, tt.value, e.Value)
		})
	}

	t.Run("nil registry uses the default one", func(t *testing.T) {
		importable.Register("validator_test.default", "value", "ok")
		obj, err := validator.Importable("x", "validator_test.default:value", nil)
		require.NoError(t, err)
		assert.Equal(t, "ok", obj)
	})
}

func TestClass(t *testing.T) {
	reg := testRegistry()

	t.Run("returns types unchanged without a lookup", func(t *testing.T) {
		typ := reflect.TypeFor[time.Time]()
		got, err := validator.Class("class", typ, importable.NewRegistry())
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	})

	t.Run("resolves registered types", func(t *testing.T) {
		got, err := validator.Class("class", "collections:OrderedDict", reg)
		require.NoError(t, err)
		assert.Equal(t, reflect.TypeFor[orderedDict](), got)
	})

	t.Run("rejects non-types", func(t *testing.T) {
		_, err := validator.Class("class", "os.path:join", reg)
		e := onlyError(t, err)
		assert.Contains(t, e.Message, "imported value should be a class, got ")
		assert.Equal(t, "validation.class", e.TranslationKey)
	})

	t.Run("propagates import failures", func(t *testing.T) {
		_, err := validator.Class("class", "collections:Counter", reg)
		e := onlyError(t, err)
		assert.Equal(t, `module "collections" has no attribute "Counter"`, e.Message)
	})
}

func TestCallback(t *testing.T) {
	reg := testRegistry()

	t.Run("returns functions unchanged", func(t *testing.T) {
		fn := func() {}
		got, err := validator.Callback("on_failure_callback", fn, importable.NewRegistry())
		require.NoError(t, err)
		assert.Equal(t, reflect.ValueOf(fn).Pointer(), reflect.ValueOf(got).Pointer())
	})

	t.Run("resolves registered functions", func(t *testing.T) {
		got, err := validator.Callback("on_failure_callback", "os.path:join", reg)
		require.NoError(t, err)
		assert.True(t, importable.IsFunction(got))
	})

	t.Run("resolves registered invokers", func(t *testing.T) {
		got, err := validator.Callback("on_failure_callback", "hooks:handler", reg)
		require.NoError(t, err)
		assert.Equal(t, handler{}, got)
	})

	t.Run("rejects non-callables", func(t *testing.T) {
		_, err := validator.Callback("on_failure_callback", "os.path:sep", reg)
		e := onlyError(t, err)
		assert.Equal(t, "imported value should be a callable, got "+string(filepath.Separator), e.Message)
		assert.Equal(t, "validation.callback", e.TranslationKey)
	})

	t.Run("invokers passed directly still need a notation", func(t *testing.T) {
		_, err := validator.Callback("on_failure_callback", handler{}, reg)
		e := onlyError(t, err)
		assert.Equal(t, "value should be a string", e.Message)
	})
}

func TestResolveRef(t *testing.T) {
	reg := testRegistry()

	t.Run("fills the value", func(t *testing.T) {
		ref := importable.Ref{Notation: "collections:OrderedDict"}
		require.NoError(t, validator.ResolveRef("class", &ref, reg, validator.Class))
		assert.Equal(t, reflect.TypeFor[orderedDict](), ref.Value)
	})

	t.Run("skips empty and resolved refs", func(t *testing.T) {
		empty := importable.Ref{}
		require.NoError(t, validator.ResolveRef("class", &empty, reg, validator.Class))
		assert.Nil(t, empty.Value)

		done := importable.Ref{Notation: "nonexistent:x", Value: 1}
		require.NoError(t, validator.ResolveRef("class", &done, reg, validator.Class))
		assert.Equal(t, 1, done.Value)
	})

	t.Run("returns failures", func(t *testing.T) {
		ref := importable.Ref{Notation: "os.path:sep"}
		err := validator.ResolveRef("callback", &ref, reg, validator.Callback)
		assert.True(t, validator.IsValidationError(err))
		assert.False(t, ref.Resolved())
	})
}

func TestImportNotation(t *testing.T) {
	for _, s := range []string{"os.path:join", "operators:Bash"} {
		assert.NoError(t, validator.Apply(validator.ImportNotation("class", s)), s)
	}

	for _, s := range []string{"", "os.path", ":join", "os.path:", "a:b:c"} {
		err := validator.Apply(validator.ImportNotation("class", s))
		require.Error(t, err, s)

		e := onlyError(t, err)
		assert.Equal(t, "import notation must be in format: `package.module:target`", e.Message)
		assert.Equal(t, "validation.import_notation", e.TranslationKey)
	}
}

func TestKey(t *testing.T) {
	for _, s := range []string{"etl", "etl_daily", "etl-v2.hourly", "A1"} {
		assert.NoError(t, validator.Apply(validator.Key("dags", s)), s)
	}
	for _, s := range []string{"", "etl daily", "etl/daily", "ételé"} {
		e := onlyError(t, validator.Apply(validator.Key("dags", s)))
		assert.Equal(t, "validation.key", e.TranslationKey, s)
	}
}

func TestMaxLen(t *testing.T) {
	assert.NoError(t, validator.Apply(validator.MaxLen("name", "abc", 3)))

	e := onlyError(t, validator.Apply(validator.MaxLen("name", "abcd", 3)))
	assert.Equal(t, "must be at most 3 characters long", e.Message)
}

func TestOneOf(t *testing.T) {
	options := []string{"all_success", "all_done"}
	assert.NoError(t, validator.Apply(validator.OneOf("trigger_rule", "all_done", options)))
	assert.NoError(t, validator.Apply(validator.OneOf("trigger_rule", "", options)))

	e := onlyError(t, validator.Apply(validator.OneOf("trigger_rule", "sometimes", options)))
	assert.Equal(t, "must be one of: [all_success all_done]", e.Message)
	assert.Equal(t, "sometimes", e.Value)
}

package fixture_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixturegen/fixture"
	"fixturegen/node"
	"fixturegen/store"
)

type widget struct {
	Name string

	source string
}

func (w widget) Source() string { return w.source }

func failA() (widget, error) { return widget{}, errors.New("a failed") }
func failB() (widget, error) { return widget{}, errors.New("b failed") }
func okB() widget            { return widget{source: "b"} }
func okC() *widget           { return &widget{source: "c"} }
func panicA() widget         { panic("a exploded") }
func nilA() *widget          { return nil }

type gadget struct {
	Parts chan int
}

func newGadget(parts chan int) gadget { return gadget{Parts: parts} }

type myInt int

func TestConstruct_FallsBackToLaterConstructor(t *testing.T) {
	t.Parallel()

	for _, first := range []any{failA, panicA, nilA} {
		g := newDefault(t, 2, fixture.WithConstructors(first, okB, okC))

		w := fixture.MustGenerate[widget](g)
		assert.Equal(t, "b", w.Source())
	}
}

func TestConstruct_ReportsLastFailure(t *testing.T) {
	t.Parallel()

	g := newDefault(t, 2, fixture.WithConstructors(failA, failB))

	_, err := fixture.Generate[widget](g)
	require.ErrorIs(t, err, fixture.ErrNoSuitableConstructor)
	require.ErrorIs(t, err, node.ErrConstructorFailed)
	assert.Contains(t, err.Error(), "b failed")
	assert.NotContains(t, err.Error(), "a failed")
}

func TestConstruct_PointerResult(t *testing.T) {
	t.Parallel()

	g := newDefault(t, 2, fixture.WithConstructors(okC))

	w := fixture.MustGenerate[*widget](g)
	assert.Equal(t, "c", w.Source())
}

func TestConstruct_ParametersAreGenerated(t *testing.T) {
	t.Parallel()

	g := newDefault(t, 2, fixture.WithConstructors(store.NewParcel, store.NewEnvelope))

	for range 50 {
		parcel := fixture.MustGenerate[store.Parcel](g)
		assert.Positive(t, parcel.Area())
	}
}

func TestConstruct_UngeneratableParameter(t *testing.T) {
	t.Parallel()

	g := newDefault(t, 2, fixture.WithConstructors(newGadget))

	_, err := fixture.Generate[gadget](g)
	require.ErrorIs(t, err, fixture.ErrNoSuitableConstructor)
	require.ErrorIs(t, err, fixture.ErrNotGeneratable)
}

func TestConstruct_FieldFailureFailsAttempt(t *testing.T) {
	t.Parallel()

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	g := newDefault(t, 2, fixture.WithLogger(logger), fixture.WithComposite(reflect.TypeFor[gadget]()))

	_, err := fixture.Generate[gadget](g)
	require.ErrorIs(t, err, fixture.ErrNoSuitableConstructor)
	require.ErrorIs(t, err, fixture.ErrNotGeneratable)
	assert.EqualError(t, err, "no suitable constructor: fixturegen/fixture_test.gadget: type cannot be generated: chan int")

	entries := hook.AllEntries()
	require.NotEmpty(t, entries)

	entry := entries[0]
	assert.Equal(t, "field failed", entry.Message)
	assert.Equal(t, "Parts", entry.Data["field"])
	assert.Equal(t, "fixturegen/fixture_test.gadget", entry.Data["type"])
}

func TestConstruct_NonStructWithoutConstructors(t *testing.T) {
	t.Parallel()

	g := newDefault(t, 2, fixture.WithComposite(reflect.TypeFor[myInt]()))

	_, err := fixture.Generate[myInt](g)
	require.ErrorIs(t, err, fixture.ErrNoSuitableConstructor)
	assert.Contains(t, err.Error(), "fixturegen/fixture_test.myInt")
}

func TestConstruct_LogsFailures(t *testing.T) {
	t.Parallel()

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	g := newDefault(t, 3, fixture.WithLogger(logger), fixture.WithConstructors(failA, okB))

	_ = fixture.MustGenerate[widget](g)
	_ = fixture.MustGenerate[store.Cart](g)

	var constructorFailed, unresolvable bool
	for _, entry := range hook.AllEntries() {
		assert.Equal(t, logrus.DebugLevel, entry.Level)

		switch entry.Message {
		case "constructor failed":
			constructorFailed = true
			assert.Equal(t, "fixture_test.failA", entry.Data["constructor"])
			assert.Equal(t, "fixturegen/fixture_test.widget", entry.Data["type"])
			assert.Equal(t, 0, entry.Data["depth"])
		case "leaving container empty":
			unresolvable = true
			assert.Equal(t, "Bundles", entry.Data["field"])
			assert.ErrorIs(t, entry.Data[logrus.ErrorKey].(error), fixture.ErrUnresolvableGenericElement)
		}
	}

	assert.True(t, constructorFailed)
	assert.True(t, unresolvable)
}

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := New()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRoot_Help(t *testing.T) {
	out, _, err := run(t)
	require.NoError(t, err)
	assert.Contains(t, out, "scan")
	assert.Contains(t, out, "catalog")
	assert.Contains(t, out, "sample")
}

func TestScan(t *testing.T) {
	out, _, err := run(t, "scan", "fixturegen/store")
	require.NoError(t, err)

	assert.Contains(t, out, "fixturegen/store.Cart")
	assert.Contains(t, out, "ELIGIBILITY")
	assert.Contains(t, out, "constructor")
	assert.Contains(t, out, "warning: [fixturegen/store.Cart] Cart.Bundles: [unresolvable_container]")
}

func TestScan_NoPatterns(t *testing.T) {
	_, _, err := run(t, "scan")
	require.ErrorIs(t, err, ErrNoPatterns)
}

func TestScan_ConfigPackages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixturegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("packages: fixturegen/warehouse\n"), 0o644))

	out, _, err := run(t, "--config", path, "scan", "--strict")
	require.NoError(t, err)
	assert.Contains(t, out, "fixturegen/warehouse.Shipment")
	assert.NotContains(t, out, "fixturegen/store.")
	assert.Contains(t, out, "  hint: add a Generatable() method or register the type with fixture.WithComposite")
}

func TestCatalog_DryRun(t *testing.T) {
	out, _, err := run(t, "catalog", "--dry-run", "--package", "fixtures", "fixturegen/store")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "// Code generated by fixturegen. DO NOT EDIT."))
	assert.Contains(t, out, "package fixtures")
	assert.Contains(t, out, "store.NewParcel,")
}

func TestCatalog_Write(t *testing.T) {
	dir := t.TempDir()

	_, _, err := run(t, "catalog", "-o", dir, "fixturegen/warehouse")
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, "catalog_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "reflect.TypeFor[warehouse.Carrier]()")
}

func TestSample(t *testing.T) {
	out, _, err := run(t, "sample", "--seed", "3", "--max-depth", "2", "--count", "2", "store.OrderItem", "warehouse.Stock")
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out, "(store.OrderItem)"))
	assert.Equal(t, 2, strings.Count(out, "(warehouse.Stock)"))
}

func TestSample_SeedRepeatable(t *testing.T) {
	prev := runtime.GOMAXPROCS(8)
	defer runtime.GOMAXPROCS(prev)

	args := []string{"sample", "--seed", "42", "--count", "8", "store.Order", "store.Cart", "warehouse.Shipment"}

	first, _, err := run(t, args...)
	require.NoError(t, err)

	second, _, err := run(t, args...)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 8, strings.Count(first, "(store.Cart)"))
}

func TestSample_AllTypes(t *testing.T) {
	out, _, err := run(t, "sample", "--max-depth", "3")
	require.NoError(t, err)

	for _, name := range sampleNames() {
		assert.Contains(t, out, "("+name+")")
	}
}

func TestSample_Invalid(t *testing.T) {
	_, _, err := run(t, "sample", "store.Unknown")
	require.ErrorIs(t, err, ErrUnknownSampleType)

	_, _, err = run(t, "sample", "store.Ordr")
	require.ErrorIs(t, err, ErrUnknownSampleType)
	assert.Contains(t, err.Error(), "did you mean store.Order")

	_, _, err = run(t, "sample", "--max-depth", "0", "store.Order")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_depth expected to be more than 0")
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	_, _, err := run(t, "--log-level", "loud", "scan", "fixturegen/store")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --log-level")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger, err := newLogger(&buf, "debug", FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	logger.WithField("type", "store.Order").Debug("constructor failed")
	assert.Contains(t, buf.String(), `"type":"store.Order"`)

	logger, err = newLogger(&buf, "info", FormatText)
	require.NoError(t, err)
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)

	_, err = newLogger(&buf, "info", "xml")
	require.Error(t, err)
}

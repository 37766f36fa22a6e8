package workflow

import (
	"context"
	"embed"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	_ "github.com/viant/afs/embed"
	"github.com/viant/fluxreg/model"
	"github.com/viant/fluxreg/service/meta"
)

// testFS holds our test YAML files
//
//go:embed testdata/*
var testFS embed.FS

func copyTestdata(t *testing.T) string {
	dir := t.TempDir()
	err := filepath.Walk("testdata", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel("testdata", path)
		target := filepath.Join(dir, rel)
		if info.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0o644)
	})
	require.NoError(t, err)
	return dir
}

func TestService_Discover(t *testing.T) {
	ctx := context.Background()
	dir := copyTestdata(t)

	service := New(WithLocations(dir))
	actual, err := service.Discover(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"fulfillment", "payment"}, actual.Groups.Keys())
	assert.Equal(t, []string{"order_fulfillment", "order_default", "payment_default"}, actual.Definitions.Keys())

	redeclared, _ := actual.Definitions.Get("order_default")
	label, _ := redeclared.(*model.Fields).Get("label")
	assert.Equal(t, "Redeclared default", label)
	assert.Contains(t, actual.Sources["order_default"], "payment.workflows.yml")
	assert.Contains(t, actual.Sources["order_fulfillment"], "commerce.workflows.yaml")

	fulfillment, _ := actual.Definitions.Get("order_fulfillment")
	states, _ := fulfillment.(*model.Fields).Get("states")
	assert.Equal(t, []string{"new", "done"}, states.(*model.Fields).Keys())
}

func TestService_Discover_SingleFile(t *testing.T) {
	t.Setenv("FLUXREG_DEFAULT_LABEL", "Standard")
	service := New(
		WithMetaService(meta.New(afs.New(), "embed:///testdata", &testFS)),
		WithLocations("commerce.workflows.yaml"),
	)
	actual, err := service.Discover(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, actual.Groups.Len())
	assert.Equal(t, []string{"order_fulfillment", "order_default"}, actual.Definitions.Keys())

	standard, _ := actual.Definitions.Get("order_default")
	label, _ := standard.(*model.Fields).Get("label")
	assert.Equal(t, "Standard", label)
}

func TestService_Discover_Errors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.workflows.yaml"), []byte("- not\n- a mapping\n"), 0o644))

	_, err := New(WithLocations(dir)).Discover(context.Background())
	assert.ErrorContains(t, err, "broken.workflows.yaml")

	_, err = New(WithLocations(filepath.Join(dir, "missing.workflows.yaml"))).Discover(context.Background())
	assert.Error(t, err)
}

func TestService_Decode(t *testing.T) {
	service := New()
	definitions, err := service.DecodeDefinitions([]byte("b:\n  label: B\na:\n  label: A\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, definitions.Keys())

	groups, err := service.DecodeGroups([]byte("order:\n  label: ${env.FLUXREG_UNSET:-Order}\n"))
	require.NoError(t, err)
	order, _ := groups.Get("order")
	assert.Equal(t, map[string]interface{}{"label": "Order"}, order.(*model.Fields).Map())
}

func TestFileKind(t *testing.T) {
	assert.Equal(t, kindDefinitions, fileKind("file:///tmp/a/commerce.workflows.yaml"))
	assert.Equal(t, kindDefinitions, fileKind("commerce.workflows.yml"))
	assert.Equal(t, kindGroups, fileKind("commerce.workflow_groups.yaml"))
	assert.Equal(t, kindOther, fileKind("commerce.yaml"))
	assert.Equal(t, kindOther, fileKind("commerce.workflows.json"))
	assert.Equal(t, kindOther, fileKind("/tmp/definitions"))
}

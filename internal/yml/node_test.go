package yml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/fluxreg/model"
)

func TestDecode(t *testing.T) {
	fields, err := Decode([]byte(`
zeta:
  label: Zeta
  count: 3
  ratio: 0.5
  enabled: true
  nothing: ~
alpha: &base
  label: Alpha
  tags: [a, b]
beta: *base
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha", "beta"}, fields.Keys())

	zeta, _ := fields.Get("zeta")
	assert.Equal(t, map[string]interface{}{
		"label": "Zeta", "count": 3, "ratio": 0.5, "enabled": true, "nothing": nil,
	}, zeta.(*model.Fields).Map())
	assert.Equal(t, []string{"label", "count", "ratio", "enabled", "nothing"}, zeta.(*model.Fields).Keys())

	beta, _ := fields.Get("beta")
	assert.Equal(t, map[string]interface{}{"label": "Alpha", "tags": []interface{}{"a", "b"}}, beta.(*model.Fields).Map())
}

func TestDecode_Empty(t *testing.T) {
	fields, err := Decode([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, 0, fields.Len())

	fields, err = Decode([]byte("~"))
	require.NoError(t, err)
	assert.Equal(t, 0, fields.Len())
}

func TestDecode_NotMapping(t *testing.T) {
	_, err := Decode([]byte("- a\n- b\n"))
	assert.EqualError(t, err, "expected mapping at line 1, but had sequence")

	_, err = Decode([]byte("a: [unterminated"))
	assert.Error(t, err)
}

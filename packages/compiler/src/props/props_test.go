package props_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hmc-go/packages/compiler/src/props"
)

func buttonSpec(t *testing.T) *props.Spec {
	t.Helper()
	spec, err := props.NewSpec("Button", []props.Field{
		{Name: "Label", Policy: props.PolicyRequired},
		{Name: "Kind", Policy: props.PolicyOr, Default: "primary"},
		{Name: "TabIndex", Policy: props.PolicyOrElse, DefaultFn: func() interface{} { return 0 }},
		{Name: "Disabled", Policy: props.PolicyOrDefault, Zero: false},
	})
	require.NoError(t, err)
	return spec
}

func TestFieldAttr(t *testing.T) {
	assert.Equal(t, "on-click", props.Field{Name: "OnClick"}.Attr())
	assert.Equal(t, "label", props.Field{Name: "Label"}.Attr())
	assert.Equal(t, "tab-index", props.Field{Name: "TabIndex"}.Attr())
}

func TestSpec(t *testing.T) {
	t.Run("duplicate attribute names are rejected", func(t *testing.T) {
		_, err := props.NewSpec("Bad", []props.Field{
			{Name: "OnClick"},
			{Name: "onClick"},
		})
		assert.ErrorContains(t, err, "duplicate prop `on-click` on Bad")
	})
}

func TestBuilder(t *testing.T) {
	t.Run("required field must be set", func(t *testing.T) {
		_, err := buttonSpec(t).Builder().Build()
		assert.ErrorContains(t, err, "the required prop `label` on Button was not set")
	})

	t.Run("defaults fill unset fields", func(t *testing.T) {
		builder := buttonSpec(t).Builder()
		require.NoError(t, builder.Set("Label", "Save"))

		values, err := builder.Build()
		require.NoError(t, err)
		assert.Equal(t, map[string]interface{}{
			"label":     "Save",
			"kind":      "primary",
			"tab-index": 0,
			"disabled":  false,
		}, values)
	})

	t.Run("set values override every policy", func(t *testing.T) {
		builder := buttonSpec(t).Builder()
		require.NoError(t, builder.Set("Label", "Save"))
		require.NoError(t, builder.Set("kind", "danger"))
		require.NoError(t, builder.Set("disabled", true))

		values, err := builder.Build()
		require.NoError(t, err)
		assert.Equal(t, "danger", values["kind"])
		assert.Equal(t, true, values["disabled"])
	})

	t.Run("unknown prop is rejected", func(t *testing.T) {
		err := buttonSpec(t).Builder().Set("Color", "red")
		assert.ErrorContains(t, err, "no such prop `color` on Button")
	})
}

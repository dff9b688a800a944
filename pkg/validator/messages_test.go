package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/schemakit/pkg/validator"
)

func TestCatalog(t *testing.T) {
	catalog := validator.Catalog()

	assert.Equal(t, "%{key} is required.", catalog["any"]["required"])
	assert.Equal(t, "%{key} is required.", catalog["any"]["empty"])
	assert.Equal(t, "%{key} must be one of %{valids}.", catalog["any"]["allowOnly"])
	assert.Equal(t, "%{key} is not a valid date.", catalog["date"]["base"])
	assert.Equal(t, "%{key} is not a valid ISO 8601 date.", catalog["date"]["iso"])
	assert.Equal(t, "%{key} is not a valid integer.", catalog["number"]["integer"])
	assert.Equal(t, "%{key} contains a duplicate item.", catalog["array"]["unique"])

	t.Run("returns an independent copy", func(t *testing.T) {
		catalog["any"]["required"] = "changed"
		assert.Equal(t, "%{key} is required.", validator.Catalog()["any"]["required"])
	})
}

func TestEngineLanguage(t *testing.T) {
	lang := validator.EngineLanguage()
	assert.Equal(t, "%{key} is required", lang["any"]["required"])
	assert.Equal(t, "%{key} must be a string", lang["string"]["base"])
}

func TestMessages_Merge(t *testing.T) {
	base := validator.Messages{
		"string": {"base": "base", "min": "min"},
	}
	overlay := validator.Messages{
		"string": {"base": "custom"},
		"number": {"base": "number"},
	}

	merged := base.Merge(overlay)

	assert.Equal(t, "custom", merged["string"]["base"])
	assert.Equal(t, "min", merged["string"]["min"])
	assert.Equal(t, "number", merged["number"]["base"])

	assert.Equal(t, "base", base["string"]["base"], "receiver must not change")
	_, ok := overlay["string"]["min"]
	assert.False(t, ok, "overlay must not change")

	t.Run("nil receiver", func(t *testing.T) {
		var m validator.Messages
		merged := m.Merge(overlay)
		assert.Equal(t, "custom", merged["string"]["base"])
	})
}

func TestMessages_Lookup(t *testing.T) {
	m := validator.Messages{"any": {"required": "%{key} is required."}}

	tmpl, ok := m.Lookup("any.required")
	require.True(t, ok)
	assert.Equal(t, "%{key} is required.", tmpl)

	_, ok = m.Lookup("any.empty")
	assert.False(t, ok)
	_, ok = m.Lookup("malformed")
	assert.False(t, ok)
}

func TestMessages_Clone(t *testing.T) {
	var empty validator.Messages
	assert.Nil(t, empty.Clone())

	m := validator.Messages{"any": {"required": "a"}}
	clone := m.Clone()
	clone["any"]["required"] = "b"
	assert.Equal(t, "a", m["any"]["required"])
}

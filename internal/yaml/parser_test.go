package yaml //nolint:testpackage

import (
	"testing"

	"go.arcalot.io/assert"
)

func TestParse_MapKeepsDocumentOrder(t *testing.T) {
	n, err := New().Parse([]byte(`
zeta: [a]
alpha: [b, c]
mid: []
`))
	assert.NoError(t, err)
	assert.Equals(t, n.Type(), TypeIDMap)
	assert.Equals(t, n.MapKeys(), []string{"zeta", "alpha", "mid"})

	alpha, ok := n.MapKey("alpha")
	assert.Equals(t, ok, true)
	assert.Equals(t, alpha.Type(), TypeIDSequence)
	assert.Equals(t, alpha.Line(), 3)
	assert.Equals(t, len(alpha.Contents()), 2)
	values, err := alpha.Strings()
	assert.NoError(t, err)
	assert.Equals(t, values, []string{"b", "c"})

	_, ok = n.MapKey("missing")
	assert.Equals(t, ok, false)
}

func TestParse_Empty(t *testing.T) {
	for name, input := range map[string]string{
		"empty":   "",
		"comment": "# nothing here\n",
		"null":    "~",
	} {
		data := input
		t.Run(name, func(t *testing.T) {
			n, err := New().Parse([]byte(data))
			assert.NoError(t, err)
			assert.Equals(t, n.Type(), TypeIDEmpty)
			assert.Equals(t, len(n.MapKeys()), 0)
			values, err := n.Strings()
			assert.NoError(t, err)
			assert.Equals(t, len(values), 0)
		})
	}
}

func TestParse_Scalar(t *testing.T) {
	n, err := New().Parse([]byte(`Hello world!`))
	assert.NoError(t, err)
	assert.Equals(t, n.Type(), TypeIDString)
	assert.Equals(t, n.Value(), "Hello world!")
	assert.Equals(t, len(n.Contents()), 0)
	_, ok := n.MapKey("Hello")
	assert.Equals(t, ok, false)
}

func TestStrings_Errors(t *testing.T) {
	n, err := New().Parse([]byte(`
list:
  - a
  - nested: value
scalar: b
`))
	assert.NoError(t, err)

	list, _ := n.MapKey("list")
	_, err = list.Strings()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "line 4")

	scalar, _ := n.MapKey("scalar")
	_, err = scalar.Strings()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expected a sequence")
}

func TestParse_Invalid(t *testing.T) {
	_, err := New().Parse([]byte("foo: [bar"))
	assert.Error(t, err)
}

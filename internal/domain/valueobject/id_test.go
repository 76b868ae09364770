package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/categorias-api/internal/domain"
	"github.com/jhoicas/categorias-api/internal/domain/valueobject"
)

func TestNewID_GeneraUUIDValido(t *testing.T) {
	id := valueobject.NewID()
	require.False(t, id.IsZero())

	parsed, err := valueobject.ParseID(id.String())
	require.NoError(t, err)
	assert.True(t, parsed.Equals(id))
}

func TestParseID_ConservaValor(t *testing.T) {
	const raw = "7cdbd1c4-a0c5-40fd-a284-07a75c85bcff"
	id, err := valueobject.ParseID(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, id.String())
}

func TestParseID_Invalido(t *testing.T) {
	cases := []string{
		"",
		"invalid-uuid",
		"7cdbd1c4-a0c5-40fd-a284",
		"{7cdbd1c4-a0c5-40fd-a284-07a75c85bcff}",
		"urn:uuid:7cdbd1c4-a0c5-40fd-a284-07a75c85bcff",
		"7cdbd1c4-a0c5-00fd-a284-07a75c85bcff", // versión 0
		"7cdbd1c4-a0c5-90fd-a284-07a75c85bcff", // versión 9
		"7cdbd1c4-a0c5-40fd-0284-07a75c85bcff", // variante NCS
		"7cdbd1c4-a0c5-40fd-c284-07a75c85bcff", // variante Microsoft
	}
	for _, raw := range cases {
		_, err := valueobject.ParseID(raw)
		assert.ErrorIs(t, err, domain.ErrInvalidID, "entrada %q", raw)
	}
}

func TestID_Equals(t *testing.T) {
	a := valueobject.MustParseID("7cdbd1c4-a0c5-40fd-a284-07a75c85bcff")
	b := valueobject.MustParseID("7cdbd1c4-a0c5-40fd-a284-07a75c85bcff")
	c := valueobject.NewID()

	assert.True(t, a.Equals(b))
	assert.True(t, b.Equals(a))
	assert.True(t, a.Equals(a))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(valueobject.ID{}))
}

func TestEqual_Generico(t *testing.T) {
	type nombre struct{ v string }
	assert.True(t, valueobject.Equal(nombre{"x"}, nombre{"x"}))
	assert.False(t, valueobject.Equal(nombre{"x"}, nombre{"y"}))
}

func TestMustParseID_Panico(t *testing.T) {
	assert.Panics(t, func() { valueobject.MustParseID("nope") })
}

func TestParseID_VersionesYNulo(t *testing.T) {
	valid := []string{
		"00000000-0000-0000-0000-000000000000",
		"c232ab00-9414-11ec-b3c8-9f6bdeced846", // v1
		"5df41881-3aed-3515-88a7-2f4a814cf09e", // v3
		"2ed6657d-e927-568b-95e1-2665a8aea6a2", // v5
		"017f22e2-79b0-7cc3-98c4-dc0c0c07398f", // v7
	}
	for _, raw := range valid {
		id, err := valueobject.ParseID(raw)
		require.NoError(t, err, "entrada %q", raw)
		assert.Equal(t, raw, id.String())
	}
}

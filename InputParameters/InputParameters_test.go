package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var exampleYAML = []byte(`
Title: Layered column
NodalDistance: orthogonal
Dx: [1.0, 2.0]
Dy: [1.0]
Dz: [0.5, 0.5, 0.5]
Materials: [1, 1, 2, 2, 2, 2]
MaterialNames:
  "1": SHALE
  "2": SAND
BoundaryCells: [0]
`)

func TestParseFullInput(t *testing.T) {
	var ip MeshParameters
	require.NoError(t, ip.Parse(exampleYAML))

	assert.Equal(t, "Layered column", ip.Title)
	assert.Equal(t, "orthogonal", ip.NodalDistance)
	assert.Equal(t, []float64{1, 2}, ip.Dx)
	assert.Equal(t, []float64{1}, ip.Dy)
	assert.Equal(t, []float64{0.5, 0.5, 0.5}, ip.Dz)
	assert.Equal(t, []int{1, 1, 2, 2, 2, 2}, ip.Materials)
	assert.Equal(t, map[string]string{"1": "SHALE", "2": "SAND"}, ip.MaterialNames)
	assert.Equal(t, []int{0}, ip.BoundaryCells)

	require.NoError(t, ip.Validate())
}

func TestParseDefaultsNodalDistance(t *testing.T) {
	var ip MeshParameters
	require.NoError(t, ip.Parse([]byte("Dx: [1]\nDy: [1]\nDz: [1]\n")))
	assert.Equal(t, "line", ip.NodalDistance)
	assert.NoError(t, ip.Validate())
}

func TestParseMalformedYAML(t *testing.T) {
	var ip MeshParameters
	assert.Error(t, ip.Parse([]byte("Dx: [1,\n")))
}

func TestValidateRejectsBadNodalDistance(t *testing.T) {
	ip := MeshParameters{
		NodalDistance: "diagonal",
		Dx:            []float64{1},
		Dy:            []float64{1},
		Dz:            []float64{1},
	}
	err := ip.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NodalDistance")
}

func TestValidateRequiresCellSizes(t *testing.T) {
	ip := MeshParameters{NodalDistance: "line", Dx: []float64{1}, Dy: []float64{1}}
	err := ip.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Dz")
}

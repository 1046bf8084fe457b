package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellLabels(t *testing.T) {
	assert.Equal(t, "AAA00", CellLabel(0))
	assert.Equal(t, "AAA99", CellLabel(99))
	assert.Equal(t, "AAB00", CellLabel(100))
	assert.Equal(t, "AAZ99", CellLabel(26*100-1))
	assert.Equal(t, "ABA00", CellLabel(26*100))
	for _, i := range []int{0, 7, 12345, maxLabels - 1} {
		assert.Len(t, CellLabel(i), 5)
	}
}

func unitTetPoints() [][]float64 {
	return [][]float64{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

func TestNewMeshDerivesCellQuantities(t *testing.T) {
	m, err := NewMesh(unitTetPoints(), []CellBlock{
		{Shape: Tetra, Cells: [][]int{{0, 1, 2, 3}}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, m.NumCells)
	assert.Equal(t, []string{"AAA00"}, m.Labels)
	assert.InDelta(t, 1.0/6.0, m.Volumes[0], 1.e-14)
	assert.InDelta(t, 0.25, m.Centers[0][0], 1.e-14)
	assert.InDelta(t, 0.25, m.Centers[0][1], 1.e-14)
	assert.InDelta(t, 0.25, m.Centers[0][2], 1.e-14)
	require.Len(t, m.Faces[0], 4)
	for _, slot := range m.Faces[0] {
		assert.Equal(t, 3, slot.N)
		assert.Equal(t, NoNeighbor, slot.Vertices[3], "triangles pad the fourth slot entry")
	}
}

func TestShapeVolumes(t *testing.T) {
	// Unit cube.
	cube := [][]float64{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
	}
	m, err := NewMesh(cube, []CellBlock{{Shape: Hexahedron, Cells: [][]int{{0, 1, 2, 3, 4, 5, 6, 7}}}})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, m.Volumes[0], 1.e-14)

	// Triangular prism of height 1 over a half unit square base.
	wedge := [][]float64{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {0, 1, 1},
	}
	m, err = NewMesh(wedge, []CellBlock{{Shape: Wedge, Cells: [][]int{{0, 1, 2, 3, 4, 5}}}})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, m.Volumes[0], 1.e-14)

	// Pyramid with unit square base and unit height.
	pyr := [][]float64{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}, {0.5, 0.5, 1},
	}
	m, err = NewMesh(pyr, []CellBlock{{Shape: Pyramid, Cells: [][]int{{0, 1, 2, 3, 4}}}})
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3.0, m.Volumes[0], 1.e-14)
}

func TestNewMeshRejectsBadCells(t *testing.T) {
	_, err := NewMesh(unitTetPoints(), []CellBlock{
		{Shape: Tetra, Cells: [][]int{{0, 1, 2}}},
	})
	assert.Error(t, err, "wrong vertex count")

	_, err = NewMesh(unitTetPoints(), []CellBlock{
		{Shape: Tetra, Cells: [][]int{{0, 1, 2, 9}}},
	})
	assert.Error(t, err, "point index out of range")

	_, err = NewMesh(unitTetPoints(), nil)
	assert.Error(t, err, "no cells")
}

func TestAttachCellDataLengthInvariant(t *testing.T) {
	m, err := NewMesh(unitTetPoints(), []CellBlock{
		{Shape: Tetra, Cells: [][]int{{0, 1, 2, 3}}},
	})
	require.NoError(t, err)
	assert.Error(t, m.AttachCellData("material", []float64{1, 2}))
	assert.NoError(t, m.AttachCellData("material", []float64{4}))
}

func TestBuildConnectivityTwoTets(t *testing.T) {
	// Two tets sharing face {1,2,3}.
	points := [][]float64{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 1},
	}
	m, err := NewMesh(points, []CellBlock{
		{Shape: Tetra, Cells: [][]int{{0, 1, 2, 3}, {1, 2, 3, 4}}},
	})
	require.NoError(t, err)

	shared := 0
	for slot, j := range m.Neighbors[0] {
		if j == NoNeighbor {
			continue
		}
		shared++
		assert.Equal(t, 1, j)
		// The neighbor points back at cell 0 through a slot with the
		// same physical face.
		back := NoNeighbor
		for s2, j2 := range m.Neighbors[1] {
			if j2 == 0 {
				back = s2
			}
		}
		require.NotEqual(t, NoNeighbor, back, "reciprocal connectivity")
		assert.Equal(t, faceKey(m.Faces[0][slot]), faceKey(m.Faces[1][back]))
	}
	assert.Equal(t, 1, shared, "exactly one shared face")
}

func TestStructuredGrid(t *testing.T) {
	m, err := NewStructuredGrid([]float64{1, 1}, []float64{1, 1}, []float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, 8, m.NumCells)
	assert.Equal(t, 27, m.NumPoints)
	for i := 0; i < m.NumCells; i++ {
		assert.InDelta(t, 1.0, m.Volumes[i], 1.e-14)
		neighbors := 0
		for _, j := range m.Neighbors[i] {
			if j != NoNeighbor {
				neighbors++
			}
		}
		assert.Equal(t, 3, neighbors, "corner cell %d of a 2x2x2 grid", i)
	}

	_, err = NewStructuredGrid(nil, []float64{1}, []float64{1})
	assert.Error(t, err)
	_, err = NewStructuredGrid([]float64{1}, []float64{-1}, []float64{1})
	assert.Error(t, err)
}

func TestMaterialsResolution(t *testing.T) {
	m, err := NewStructuredGrid([]float64{1, 1}, []float64{1}, []float64{1})
	require.NoError(t, err)

	// Without material data every cell defaults to 1.
	mats := m.Materials()
	assert.Equal(t, []interface{}{1, 1}, mats)

	require.NoError(t, m.AttachCellData("material", []float64{1, 2}))
	m.MaterialNames = map[int]string{1: "SAND "}
	mats = m.Materials()
	assert.Equal(t, "SAND ", mats[0])
	assert.Equal(t, 2, mats[1], "unresolved ids stay numeric")
}

func TestBoundaryFlags(t *testing.T) {
	m, err := NewStructuredGrid([]float64{1, 1}, []float64{1}, []float64{1})
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false}, m.BoundaryFlags())
	require.NoError(t, m.AttachCellData(BoundaryConditionKey, []float64{1, 0}))
	assert.Equal(t, []bool{true, false}, m.BoundaryFlags())
}

package mesh

// BoundaryConditionKey is the cell-data array marking cells that model
// a fixed-state boundary: any nonzero entry flags the cell.
const BoundaryConditionKey = "boundary_condition"

// PorosityKey is the cell-data array holding per-cell porosities for
// the INCON block.
const PorosityKey = "porosity"

// materialKeys are the cell-data names recognized as material ids, in
// lookup order. The aliases cover ids imported from other mesh tools.
var materialKeys = []string{
	"material",
	"tough:material",
	"avsucd:material",
	"flac3d:zone",
	"gmsh:physical",
	"medit:ref",
}

// BoundaryFlags returns the per-cell boundary-condition flags; all
// false when the attribute is absent.
func (m *Mesh) BoundaryFlags() []bool {
	flags := make([]bool, m.NumCells)
	data, ok := m.CellData[BoundaryConditionKey]
	if !ok {
		return flags
	}
	for i, v := range data {
		flags[i] = v != 0
	}
	return flags
}

// Materials returns the per-cell material value for the ELEME block:
// the rock name when MaterialNames resolves the id, the numeric id
// otherwise, and 1 for every cell when no material data is attached.
func (m *Mesh) Materials() []interface{} {
	out := make([]interface{}, m.NumCells)
	var data []float64
	for _, key := range materialKeys {
		if d, ok := m.CellData[key]; ok {
			data = d
			break
		}
	}
	if data == nil {
		for i := range out {
			out[i] = 1
		}
		return out
	}
	for i, v := range data {
		id := int(v)
		if name, ok := m.MaterialNames[id]; ok {
			out[i] = name
		} else {
			out[i] = id
		}
	}
	return out
}

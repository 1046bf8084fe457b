package tough

import (
	"bufio"
	"io"
	"os"

	"github.com/subsurf/gotough/mesh"
)

// BoundaryVolumeFactor scales the volume of boundary-flagged cells at
// emission time so they behave as an effectively infinite reservoir.
const BoundaryVolumeFactor = 1.0e50

var elemeFormats = []ColumnFormat{
	S(5),     // ID
	SR(5),    // NSEQ
	SR(5),    // NADD
	SR(5),    // MAT
	E(10, 4), // VOLX
	SR(10),   // AHTX
	SR(10),   // PMX
	E(10, 3), // X
	E(10, 3), // Y
	E(10, 3), // Z
}

var conneFormats = []ColumnFormat{
	S(10),    // ID1-ID2
	SR(5),    // NSEQ
	SR(5),    // NAD1
	SR(5),    // NAD2
	I(5),     // ISOT
	E(10, 4), // D1
	E(10, 4), // D2
	E(10, 4), // AREAX
	E(10, 3), // BETAX
}

// ParseNodalDistance converts the option text to a nodal distance
// mode.
func ParseNodalDistance(s string) (mesh.NodalDistance, error) {
	switch s {
	case "line":
		return mesh.DistanceLine, nil
	case "orthogonal":
		return mesh.DistanceOrthogonal, nil
	}
	return 0, valueErrorf("unsupported nodal distance mode '%s' (want 'line' or 'orthogonal')", s)
}

// WriteMesh derives the finite-volume discretization of m and emits
// the ELEME and CONNE blocks. The derived records are validated
// against the block schemas before any line is encoded.
func WriteMesh(w io.Writer, m *mesh.Mesh, mode mesh.NodalDistance) error {
	records, err := m.DeriveConnections(mode)
	if err != nil {
		return err
	}
	materials := m.Materials()
	bounds := m.BoundaryFlags()

	if err := validateMeshParameters(m, materials, records); err != nil {
		return err
	}

	if err := WriteBlock(w, "ELEME", func(w io.Writer) error {
		for i := 0; i < m.NumCells; i++ {
			volume := m.Volumes[i]
			if bounds[i] {
				volume *= BoundaryVolumeFactor
			}
			line := WriteRecord([]interface{}{
				m.Labels[i],
				nil, // NSEQ
				nil, // NADD
				materials[i],
				volume,
				nil, // AHTX
				nil, // PMX
				m.Centers[i][0],
				m.Centers[i][1],
				m.Centers[i][2],
			}, elemeFormats)
			if _, err := io.WriteString(w, line); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}

	return WriteBlock(w, "CONNE", func(w io.Writer) error {
		for _, rec := range records {
			line := WriteRecord([]interface{}{
				rec.Label1 + rec.Label2,
				nil, // NSEQ
				nil, // NAD1
				nil, // NAD2
				rec.Isot,
				rec.D1,
				rec.D2,
				rec.Area,
				rec.Beta,
			}, conneFormats)
			if _, err := io.WriteString(w, line); err != nil {
				return err
			}
		}
		return nil
	})
}

// validateMeshParameters assembles the derived records into the
// parameter-tree form the block schemas describe and checks every
// entry, so malformed data is rejected with a precise location before
// anything is emitted.
func validateMeshParameters(m *mesh.Mesh, materials []interface{}, records []mesh.ConnectionRecord) error {
	elements := make(map[string]interface{}, m.NumCells)
	for i := 0; i < m.NumCells; i++ {
		elements[m.Labels[i]] = map[string]interface{}{
			"material": materials[i],
			"volume":   m.Volumes[i],
			"center":   m.Centers[i],
		}
	}
	connections := make(map[string]interface{}, len(records))
	for _, rec := range records {
		connections[rec.Label1+rec.Label2] = map[string]interface{}{
			"permeability_direction": rec.Isot,
			"nodal_distances":        []float64{rec.D1, rec.D2},
			"interface_area":         rec.Area,
			"gravity_cosine_angle":   rec.Beta,
		}
	}
	params := map[string]interface{}{
		"elements":    elements,
		"connections": connections,
	}
	if err := CheckParameters(params, "PARAMETERS"); err != nil {
		return err
	}
	if err := CheckParameterList(params, "ELEME", "elements"); err != nil {
		return err
	}
	return CheckParameterList(params, "CONNE", "connections")
}

// WriteMeshFile writes the MESH file at path. Writing is sequential
// and append-only; a failure leaves a truncated file and the whole
// operation is retried by the caller.
func WriteMeshFile(filename string, m *mesh.Mesh, mode mesh.NodalDistance) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if err := WriteMesh(w, m, mode); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}

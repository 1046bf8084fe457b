package tough

import (
	"bufio"
	"io"
	"os"

	"github.com/subsurf/gotough/mesh"
)

var inconHeadFormats = []ColumnFormat{
	S(5),     // ID
	SR(5),    // NSEQ
	SR(5),    // NADD
	E(15, 9), // PORX
}

// inconValueFormats lays out the primary variable line, four columns
// per record.
var inconValueFormats = []ColumnFormat{
	E(20, 13), E(20, 13), E(20, 13), E(20, 13),
}

// WriteIncon emits the INCON block: one header record per cell with
// its optional porosity, followed by the cell's primary thermodynamic
// variables. The mesh must carry initial-condition arrays; porosities
// come from the porosity cell-data array when attached.
func WriteIncon(w io.Writer, m *mesh.Mesh) error {
	if m.InitialConditions == nil {
		return valueErrorf("mesh carries no initial conditions")
	}
	porosity := m.CellData[mesh.PorosityKey]

	if err := validateInconParameters(m, porosity); err != nil {
		return err
	}

	return WriteBlock(w, "INCON", func(w io.Writer) error {
		for i := 0; i < m.NumCells; i++ {
			var porx interface{}
			if porosity != nil {
				porx = porosity[i]
			}
			line := WriteRecord([]interface{}{
				m.Labels[i],
				nil, // NSEQ
				nil, // NADD
				porx,
			}, inconHeadFormats)
			if _, err := io.WriteString(w, line); err != nil {
				return err
			}
			values := make([]interface{}, len(m.InitialConditions[i]))
			for k, v := range m.InitialConditions[i] {
				values[k] = v
			}
			for _, line := range WriteRecordMulti(values, inconValueFormats) {
				if _, err := io.WriteString(w, line); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func validateInconParameters(m *mesh.Mesh, porosity []float64) error {
	conditions := make(map[string]interface{}, m.NumCells)
	for i := 0; i < m.NumCells; i++ {
		entry := map[string]interface{}{
			"values": m.InitialConditions[i],
		}
		if porosity != nil {
			entry["porosity"] = porosity[i]
		}
		conditions[m.Labels[i]] = entry
	}
	params := map[string]interface{}{"initial_conditions": conditions}
	if err := CheckParameters(params, "PARAMETERS"); err != nil {
		return err
	}
	return CheckParameterList(params, "INCON", "initial_conditions")
}

// WriteInconFile writes the INCON file at path.
func WriteInconFile(filename string, m *mesh.Mesh) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if err := WriteIncon(w, m); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}

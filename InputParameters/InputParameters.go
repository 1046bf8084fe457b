package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Parameters obtained from the YAML input file
type MeshParameters struct {
	Title         string    `yaml:"Title"`
	NodalDistance string    `yaml:"NodalDistance"` // "line" or "orthogonal"
	Dx            []float64 `yaml:"Dx"`            // cell sizes along X
	Dy            []float64 `yaml:"Dy"`            // cell sizes along Y
	Dz            []float64 `yaml:"Dz"`            // cell sizes along Z
	// Materials holds one material id per cell (x fastest, then y,
	// then z); empty means a single default material.
	Materials []int `yaml:"Materials"`
	// MaterialNames maps material ids (as decimal strings) to the
	// five-character rock names emitted in the ELEME block.
	MaterialNames map[string]string `yaml:"MaterialNames"`
	// BoundaryCells lists cell indices written as fixed-state
	// boundary elements.
	BoundaryCells []int `yaml:"BoundaryCells"`
	// Incon requests an INCON file alongside the MESH file, built
	// from InitialConditions and the optional Porosity array.
	Incon             bool        `yaml:"Incon"`
	Porosity          []float64   `yaml:"Porosity"`
	InitialConditions [][]float64 `yaml:"InitialConditions"`
}

func (ip *MeshParameters) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, ip); err != nil {
		return err
	}
	if ip.NodalDistance == "" {
		ip.NodalDistance = "line"
	}
	return nil
}

func (ip *MeshParameters) Validate() error {
	return validation.ValidateStruct(ip,
		validation.Field(&ip.NodalDistance, validation.Required, validation.In("line", "orthogonal")),
		validation.Field(&ip.Dx, validation.Required, validation.Length(1, 0)),
		validation.Field(&ip.Dy, validation.Required, validation.Length(1, 0)),
		validation.Field(&ip.Dz, validation.Required, validation.Length(1, 0)),
		validation.Field(&ip.InitialConditions,
			validation.Required.When(ip.Incon).Error("required when Incon is set")),
	)
}

func (ip *MeshParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t= Nodal Distance\n", ip.NodalDistance)
	fmt.Printf("%d x %d x %d\t\t= Cells\n", len(ip.Dx), len(ip.Dy), len(ip.Dz))
	keys := make([]string, 0, len(ip.MaterialNames))
	for k := range ip.MaterialNames {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("MaterialNames[%s] = %s\n", key, ip.MaterialNames[key])
	}
	if len(ip.BoundaryCells) > 0 {
		fmt.Printf("%v\t\t= Boundary cells\n", ip.BoundaryCells)
	}
}

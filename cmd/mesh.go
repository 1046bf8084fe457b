/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/subsurf/gotough/InputParameters"
	"github.com/subsurf/gotough/mesh"
	"github.com/subsurf/gotough/tough"
)

type ModelMesh struct {
	ParamsFile string
	OutFile    string
	InconFile  string
	Verbose    bool
	Profile    bool
}

// MeshCmd represents the mesh command
var MeshCmd = &cobra.Command{
	Use:   "mesh",
	Short: "Build a grid and write the TOUGH MESH file (ELEME/CONNE blocks)",
	Long: `Builds a rectilinear hexahedral grid from a YAML parameter file, derives
the finite-volume connection records and writes the fixed-column MESH file`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		mm := &ModelMesh{}
		if mm.ParamsFile, err = cmd.Flags().GetString("inputParametersFile"); err != nil {
			panic(err)
		}
		mm.OutFile, _ = cmd.Flags().GetString("outputFile")
		mm.InconFile, _ = cmd.Flags().GetString("inconFile")
		mm.Verbose, _ = cmd.Flags().GetBool("verbose")
		mm.Profile, _ = cmd.Flags().GetBool("profile")
		ip := processMeshInput(mm)
		if err = RunMesh(mm, ip); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func processMeshInput(mm *ModelMesh) (ip *InputParameters.MeshParameters) {
	if len(mm.ParamsFile) == 0 {
		err := fmt.Errorf("must supply an input parameters file (-I, --inputParametersFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Five Spot"
NodalDistance: line # Can be "orthogonal"
Dx: [100., 100., 100.]
Dy: [100., 100., 100.]
Dz: [10.]
MaterialNames:
  "1": "SAND "
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	data, err := os.ReadFile(mm.ParamsFile)
	if err != nil {
		panic(err)
	}
	ip = &InputParameters.MeshParameters{}
	if err = ip.Parse(data); err != nil {
		panic(err)
	}
	if err = ip.Validate(); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	return
}

func init() {
	rootCmd.AddCommand(MeshCmd)
	MeshCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file for grid parameters like:\n\t- Dx/Dy/Dz\n\t- NodalDistance")
	MeshCmd.Flags().StringP("outputFile", "o", "MESH", "output MESH file path")
	MeshCmd.Flags().String("inconFile", "INCON", "output INCON file path (used when the input requests initial conditions)")
	MeshCmd.Flags().BoolP("verbose", "v", false, "print mesh statistics while converting")
	MeshCmd.Flags().Bool("profile", false, "write a CPU profile for the conversion")
}

func RunMesh(mm *ModelMesh, ip *InputParameters.MeshParameters) error {
	if mm.Profile {
		defer profile.Start(profile.CPUProfile).Stop()
	}
	if mm.Verbose {
		ip.Print()
	}

	m, err := mesh.NewStructuredGrid(ip.Dx, ip.Dy, ip.Dz)
	if err != nil {
		return err
	}
	if len(ip.Materials) > 0 {
		materials := make([]float64, len(ip.Materials))
		for i, id := range ip.Materials {
			materials[i] = float64(id)
		}
		if err = m.AttachCellData("material", materials); err != nil {
			return err
		}
	}
	if len(ip.BoundaryCells) > 0 {
		bc := make([]float64, m.NumCells)
		for _, i := range ip.BoundaryCells {
			if i < 0 || i >= m.NumCells {
				return fmt.Errorf("boundary cell index %d out of range (mesh has %d cells)", i, m.NumCells)
			}
			bc[i] = 1
		}
		if err = m.AttachCellData(mesh.BoundaryConditionKey, bc); err != nil {
			return err
		}
	}
	if ip.Incon {
		if err = m.AttachInitialConditions(ip.InitialConditions); err != nil {
			return err
		}
		if len(ip.Porosity) > 0 {
			if err = m.AttachCellData(mesh.PorosityKey, ip.Porosity); err != nil {
				return err
			}
		}
	}
	if len(ip.MaterialNames) > 0 {
		m.MaterialNames = make(map[int]string, len(ip.MaterialNames))
		for key, name := range ip.MaterialNames {
			id, err := strconv.Atoi(key)
			if err != nil {
				return fmt.Errorf("material id '%s' is not an integer", key)
			}
			m.MaterialNames[id] = name
		}
	}
	if mm.Verbose {
		m.PrintStatistics()
	}

	mode, err := tough.ParseNodalDistance(ip.NodalDistance)
	if err != nil {
		return err
	}
	registry := tough.NewRegistry()
	if err = registry.WriteMesh(mm.OutFile, "tough", m, mode); err != nil {
		return err
	}
	if mm.Verbose {
		fmt.Printf("Wrote %s\n", mm.OutFile)
	}
	if ip.Incon {
		if err = tough.WriteInconFile(mm.InconFile, m); err != nil {
			return err
		}
		if mm.Verbose {
			fmt.Printf("Wrote %s\n", mm.InconFile)
		}
	}
	return nil
}

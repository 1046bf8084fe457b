package tough

import "strconv"

// Category is the semantic type attached to every recognized block
// parameter. Runtime values are classified against these categories
// before any record is encoded.
type Category int

const (
	CatInt Category = iota
	CatFloat
	CatStr
	CatBool
	CatStrInt        // string or integer (e.g. material names vs indices)
	CatArray         // slice or array
	CatMapping       // nested parameter mapping
	CatScalar        // any numeric scalar
	CatScalarOrArray // numeric scalar or slice
	CatStrOrArray    // string or slice
)

func (c Category) String() string {
	switch c {
	case CatInt:
		return "int"
	case CatFloat:
		return "float"
	case CatStr:
		return "str"
	case CatBool:
		return "bool"
	case CatStrInt:
		return "str_int"
	case CatArray:
		return "array_like"
	case CatMapping:
		return "dict"
	case CatScalar:
		return "scalar"
	case CatScalarOrArray:
		return "scalar_array_like"
	case CatStrOrArray:
		return "str_array_like"
	}
	return "unknown"
}

// BlockSchema maps field names of one block to their categories.
type BlockSchema map[string]Category

// Schemas is the static block-name to field-schema table. It is built
// once at init and read-only afterwards, safe to share across
// concurrent writers.
var Schemas = map[string]BlockSchema{
	"PARAMETERS": {
		"title":                    CatStrOrArray,
		"eos":                      CatStr,
		"n_component":              CatInt,
		"n_phase":                  CatInt,
		"n_component_incon":        CatInt,
		"react":                    CatMapping,
		"flac":                     CatMapping,
		"chemical_properties":      CatMapping,
		"non_condensible_gas":      CatStrOrArray,
		"isothermal":               CatBool,
		"start":                    CatBool,
		"nover":                    CatBool,
		"rocks":                    CatMapping,
		"rocks_order":              CatArray,
		"options":                  CatMapping,
		"extra_options":            CatMapping,
		"more_options":             CatMapping,
		"selections":               CatMapping,
		"solver":                   CatMapping,
		"generators":               CatArray,
		"times":                    CatArray,
		"element_history":          CatArray,
		"connection_history":       CatArray,
		"generator_history":        CatArray,
		"diffusion":                CatArray,
		"output":                   CatMapping,
		"elements":                 CatMapping,
		"elements_order":           CatArray,
		"coordinates":              CatBool,
		"connections":              CatMapping,
		"connections_order":        CatArray,
		"initial_conditions":       CatMapping,
		"initial_conditions_order": CatArray,
		"meshmaker":                CatMapping,
		"default":                  CatMapping,
	},
	"ROCKS": {
		"density":                    CatScalar,
		"porosity":                   CatScalar,
		"permeability":               CatScalarOrArray,
		"conductivity":               CatScalar,
		"specific_heat":              CatScalar,
		"compressibility":            CatScalar,
		"expansivity":                CatScalar,
		"conductivity_dry":           CatScalar,
		"tortuosity":                 CatScalar,
		"klinkenberg_parameter":      CatScalar,
		"distribution_coefficient_3": CatScalar,
		"distribution_coefficient_4": CatScalar,
		"tortuosity_exponent":        CatScalar,
		"porosity_crit":              CatScalar,
		"initial_condition":          CatArray,
		"relative_permeability":      CatMapping,
		"capillarity":                CatMapping,
		"react_tp":                   CatMapping,
		"react_hcplaw":               CatMapping,
		"permeability_model":         CatMapping,
		"equivalent_pore_pressure":   CatMapping,
		"phase_composition":          CatInt,
	},
	"REACT": intKeySchema(25),
	"FLAC":  {"creep": CatBool, "porosity_model": CatInt, "version": CatInt},
	"CHEMP": {
		"temperature_crit":     CatScalar,
		"pressure_crit":        CatScalar,
		"compressibility_crit": CatScalar,
		"pitzer_factor":        CatScalar,
		"dipole_moment":        CatScalar,
		"boiling_point":        CatScalar,
		"vapor_pressure_a":     CatScalar,
		"vapor_pressure_b":     CatScalar,
		"vapor_pressure_c":     CatScalar,
		"vapor_pressure_d":     CatScalar,
		"molecular_weight":     CatScalar,
		"heat_capacity_a":      CatScalar,
		"heat_capacity_b":      CatScalar,
		"heat_capacity_c":      CatScalar,
		"heat_capacity_d":      CatScalar,
		"napl_density_ref":     CatScalar,
		"napl_temperature_ref": CatScalar,
		"gas_diffusivity_ref":  CatScalar,
		"gas_temperature_ref":  CatScalar,
		"exponent":             CatScalar,
		"napl_viscosity_a":     CatScalar,
		"napl_viscosity_b":     CatScalar,
		"napl_viscosity_c":     CatScalar,
		"napl_viscosity_d":     CatScalar,
		"volume_crit":          CatScalar,
		"solubility_a":         CatScalar,
		"solubility_b":         CatScalar,
		"solubility_c":         CatScalar,
		"solubility_d":         CatScalar,
		"oc_coeff":             CatScalar,
		"oc_fraction":          CatScalar,
		"oc_decay":             CatScalar,
	},
	"MODEL": {"id": CatInt, "parameters": CatArray},
	"PARAM": {
		"n_iteration":                CatInt,
		"n_cycle":                    CatInt,
		"n_second":                   CatInt,
		"n_cycle_print":              CatInt,
		"verbosity":                  CatInt,
		"temperature_dependence_gas": CatScalar,
		"effective_strength_vapor":   CatScalar,
		"t_ini":                      CatScalar,
		"t_max":                      CatScalar,
		"t_steps":                    CatScalarOrArray,
		"t_step_max":                 CatScalar,
		"t_reduce_factor":            CatScalar,
		"gravity":                    CatScalar,
		"mesh_scale_factor":          CatScalar,
		"eps1":                       CatScalar,
		"eps2":                       CatScalar,
		"w_upstream":                 CatScalar,
		"w_newton":                   CatScalar,
		"derivative_factor":          CatScalar,
		"react_wdata":                CatArray,
	},
	"MOP":   intKeySchema(24),
	"MOMOP": intKeySchema(40),
	"SELEC": {"integers": CatMapping, "floats": CatArray},
	"SOLVR": {
		"method":       CatInt,
		"z_precond":    CatStr,
		"o_precond":    CatStr,
		"rel_iter_max": CatScalar,
		"eps":          CatScalar,
	},
	"GENER": {
		"label":                CatStr,
		"name":                 CatStr,
		"nseq":                 CatScalar,
		"nadd":                 CatScalar,
		"nads":                 CatScalar,
		"type":                 CatStr,
		"times":                CatScalarOrArray,
		"rates":                CatScalarOrArray,
		"specific_enthalpy":    CatScalarOrArray,
		"layer_thickness":      CatScalar,
		"conductivity_times":   CatArray,
		"conductivity_factors": CatArray,
	},
	"OUTPU": {"format": CatStr, "variables": CatArray},
	"ELEME": {
		"nseq":                  CatInt,
		"nadd":                  CatInt,
		"material":              CatStrInt,
		"volume":                CatScalar,
		"heat_exchange_area":    CatScalar,
		"permeability_modifier": CatScalar,
		"center":                CatArray,
	},
	"CONNE": {
		"nseq":                     CatInt,
		"nadd":                     CatArray,
		"permeability_direction":   CatInt,
		"nodal_distances":          CatArray,
		"interface_area":           CatScalar,
		"gravity_cosine_angle":     CatScalar,
		"radiant_emittance_factor": CatScalar,
	},
	"INCON": {
		"porosity":          CatScalar,
		"userx":             CatArray,
		"values":            CatArray,
		"phase_composition": CatInt,
		"permeability":      CatScalarOrArray,
	},
	"MESHM": {"type": CatStr, "parameters": CatArray, "angle": CatScalar},
}

// intKeySchema covers blocks indexed by option number (MOP, MOMOP,
// REACT); keys are the decimal option numbers "1".."n".
func intKeySchema(n int) BlockSchema {
	s := make(BlockSchema, n)
	for i := 1; i <= n; i++ {
		s[strconv.Itoa(i)] = CatInt
	}
	return s
}

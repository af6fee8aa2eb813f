package entities

// Rules configures which records and columns each derived view keeps or
// drops. The zero value derives every view with nothing filtered; use
// DefaultRules for the naming conventions the tool was built around.
type Rules struct {
	// ColumnsToDrop are removed from the EBOM and WBOM tabular views.
	ColumnsToDrop []string `yaml:"columns_to_drop"`
	// WeldedSubstrings identify welded-assembly part numbers. Their
	// sub-components are stripped from the MBOM and kept in the WBOM.
	WeldedSubstrings SubstringSet `yaml:"welded_substrings"`
	// AssemblySubstrings identify purchased/structural assembly part
	// numbers. They form the assembly tree and are dropped from the MBOM.
	AssemblySubstrings SubstringSet `yaml:"assembly_substrings"`
	// CheckPartNumberMatchesFileName validates Number against the file-name
	// base for every record when true; when false, Number is overwritten
	// from the file-name base instead.
	CheckPartNumberMatchesFileName bool `yaml:"check_part_number_matches_filename"`
	// MaterialCandidates and FinishCandidates are ordered source-column
	// names probed when resolving the Material and Finish attributes.
	MaterialCandidates []string `yaml:"material_candidates"`
	FinishCandidates   []string `yaml:"finish_candidates"`
}

// DefaultRules mirrors the PDM naming conventions of the source system:
// "-W" families are welded assemblies, "-A" families purchased assemblies,
// and the candidate lists cover the custom-property spellings seen in
// SolidWorks exports.
func DefaultRules() Rules {
	return Rules{
		ColumnsToDrop: []string{"File Name", "Configuration"},
		WeldedSubstrings: SubstringSet{
			"BS-W", "SS-W", "TP-W", "TS-W", "SC-W", "JB-W", "PB-W", "WJ-W", "SU-W",
		},
		AssemblySubstrings: SubstringSet{
			"BS-A", "SS-A", "TP-A", "TS-A", "SC-A", "JB-A", "PB-A", "WJ-A", "SU-A", "EC-A",
		},
		CheckPartNumberMatchesFileName: true,
		MaterialCandidates: []string{
			"Material", "SW-Material", "SW Material", "Material Name",
			"Material@Part", "Material@Model", "Raw Material", "Mat",
		},
		FinishCandidates: []string{
			"Finish", "Surface Finish", "Surface-Finish", "Finish@Part",
			"Finish@Model", "Coating", "Treatment", "SurfaceTreatment",
		},
	}
}

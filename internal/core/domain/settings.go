package domain

// Settings are the user-configurable knobs, persisted as TOML.
type Settings struct {
	Output  OutputSettings  `toml:"output"`
	Collect CollectSettings `toml:"collect"`
	Catalog CatalogSettings `toml:"catalog"`
}

// OutputSettings name the artifacts written into the output directory.
type OutputSettings struct {
	FullFile  string `toml:"full_file"`
	ShortFile string `toml:"short_file"`
}

// CollectSettings extend the parse-time exclusion rules. The condensation
// recheck is not configurable; it always uses the built-in literal.
type CollectSettings struct {
	ExtraExactExclusions     []string `toml:"extra_exact_exclusions"`
	ExtraSubstringExclusions []string `toml:"extra_substring_exclusions"`
}

// CatalogSettings configure the optional SQLite run catalog.
type CatalogSettings struct {
	Path string `toml:"path"`
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() Settings {
	return Settings{
		Output: OutputSettings{
			FullFile:  "parsed_plans.json",
			ShortFile: "parsed_plans_short.json",
		},
	}
}

// Exclusions merges the built-in rules with any configured extras.
func (s Settings) Exclusions() ExclusionRules {
	rules := DefaultExclusions()
	rules.Exact = append(rules.Exact, s.Collect.ExtraExactExclusions...)
	rules.Substrings = append(rules.Substrings, s.Collect.ExtraSubstringExclusions...)
	return rules
}

// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package colorscale

// Categorical palettes, in the order the dashboard has always used them.
var (
	// Category10 is the ten-color categorical palette (d3.schemeCategory10).
	Category10 = []string{
		"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
		"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
	}

	// Set1 is ColorBrewer Set1 (d3.schemeSet1).
	Set1 = []string{
		"#e41a1c", "#377eb8", "#4daf4a", "#984ea3", "#ff7f00",
		"#ffff33", "#a65628", "#f781bf", "#999999",
	}

	// Set3 is ColorBrewer Set3 (d3.schemeSet3).
	Set3 = []string{
		"#8dd3c7", "#ffffb3", "#bebada", "#fb8072", "#80b1d3", "#fdb462",
		"#b3de69", "#fccde5", "#d9d9d9", "#bc80bd", "#ccebc5", "#ffed6f",
	}

	// Tableau10 is the Tableau 10 palette (d3.schemeTableau10).
	Tableau10 = []string{
		"#4e79a7", "#f28e2c", "#e15759", "#76b7b2", "#59a14f",
		"#edc949", "#af7aa1", "#ff9da7", "#9c755f", "#bab0ab",
	}

	// Pastel1 is ColorBrewer Pastel1 (d3.schemePastel1).
	Pastel1 = []string{
		"#fbb4ae", "#b3cde3", "#ccebc5", "#decbe4", "#fed9a6",
		"#ffffcc", "#e5d8bd", "#fddaec", "#f2f2f2",
	}
)

// concat joins palettes into a new slice.
func concat(palettes ...[]string) []string {
	n := 0
	for _, p := range palettes {
		n += len(p)
	}
	out := make([]string, 0, n)
	for _, p := range palettes {
		out = append(out, p...)
	}
	return out
}

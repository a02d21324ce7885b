// Package gemkit provides a validating loader and in-memory model for
// genome scale metabolic models encoded as SBML Level 3 with the FBC
// version 2 extension.
//
// Models are loaded into fully cross-referenced entity tables (compartments,
// species, parameters, gene products, reactions, objectives) with every
// reference checked during construction.  A set of registrable utility
// services covers everyday curation work: formula copying and mass balance
// checks, growth media handling, name cleanup, maintenance reaction
// detection, model comparison and gene knockout analysis.
//
// End-users typically interact through the high-level Service façade
// exposed by the root package:
//
//	srv := gemkit.New()
//	m, warnings, _ := srv.LoadModel(ctx, "e_coli_core.xml")
//	out, _ := srv.Execute(ctx, "summary", "stats", &summary.Input{Model: m})
//
// For more details see the README and individual sub-packages.
package gemkit

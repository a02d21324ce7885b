// Package model contains the in-memory representation of a genome-scale
// metabolic model: unit definitions, compartments, species, parameters,
// gene products, reactions with flux bounds and gene-product associations,
// and flux objectives.
//
// A model is typically loaded from an SBML Level 3 + FBC Version 2 document
// by the loader service.  Cross-entity references are plain identifier
// strings resolved through explicit table lookups, keeping models acyclic by
// construction and making copy-on-write transformations straightforward.
package model

// Package model contains the in-memory representation of the documents this
// repository hosts and consumes.
//
// A simulation experiment is typically loaded from an XML document into the
// structures defined in the `sedml` sub-package, the model it references is
// read structurally by `cellml`, and `kisao` names the algorithm ontology
// terms both of them use.  The root model package simply aggregates those
// building blocks so that they can be referenced with a single import.
package model

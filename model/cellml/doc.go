// Package cellml provides a structural reader for CellML 1.1 model
// documents: components, variables and cmeta:id metadata identifiers.  It
// deliberately does not interpret MathML, units or imports – numerical
// semantics belong to the external simulation engine.
package cellml

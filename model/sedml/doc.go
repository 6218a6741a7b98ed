// Package sedml contains the in-memory representation of SED-ML Level 1
// Version 3 simulation experiment descriptions.
//
// A document is typically loaded from an XML file into the structures defined
// here: models, uniform time course simulations with KISAO-identified
// algorithms, tasks (plain and repeated), data generators and 2-D plot
// outputs.  Vendor annotation blocks (for example OpenCOR rendering
// properties) are preserved verbatim and can be decoded on demand.
package sedml

// Package bgmodels curates bond-graph cardiovascular models and the tooling
// around them.
//
// The repository carries a CellML model of the circulation together with the
// SED-ML experiment that drives it, plus services for:
//
//   - dao       – loading and decoding the experiment and model documents
//   - validator – checking an experiment against its model
//   - annotator – generating the RDF semantic annotations for the model
//   - runner    – handing the experiment to an external engine such as OpenCOR
//   - report    – summaries and diffs of experiment documents
//
// End-users typically interact via the high-level Service façade exposed by
// the root package:
//
//	srv, _ := bgmodels.New(ctx)
//	report, _ := srv.Validate(ctx, "simulation/cvs-model.sedml")
//	if !report.OK() { ... }
//
// For more details see the README and individual sub-packages.
package bgmodels

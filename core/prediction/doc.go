// Package prediction provides the maintenance prediction contract. The
// predictor is a black box: it maps a sensor reading to a single boolean and
// must be deterministic and stateless, so the resolver can swap a rule table,
// a logistic model or a loaded model artifact without other changes.
package prediction

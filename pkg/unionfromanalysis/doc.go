// Package unionfromanalysis exposes the unionfrom checks as a go/analysis
// Analyzer, so editors and linters can report invalid unions before the
// generator runs.
package unionfromanalysis

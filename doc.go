// Package stocklens analyzes classroom inventory data: descriptive
// statistics over stock records, vector geometry and probabilities over
// labeled attribute vectors, and categorical grouping, exported as CSV
// reports and chart images.
//
// The Session type ties the analyzers, the report writers, and the chart
// renderer together behind one configuration; cmd/stocklens is the
// interactive front end.
package stocklens

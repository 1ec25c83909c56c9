// Package dataset reads the tool's input files: inventory and category
// CSVs and the labeled vector dataset.
//
// Vector datasets are JSON ([]model.AttributeVector); files ending in .gz
// or .lz4 are decompressed transparently. CSV loaders validate the header
// and report parse failures with the 1-based file line of the offending
// row.
package dataset

// Package model defines the input-facing data types shared by the
// analyzers: inventory rows, labeled attribute vectors, and categorical
// product records, together with the validation errors raised while
// loading them.
//
// All types are immutable after load and live for a single analysis run.
package model

// Package testutil provides deterministic fixture generation for tests:
// a seeded thread-safe RNG plus inventory record and attribute vector
// builders.
package testutil

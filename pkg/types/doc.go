// Package types defines the Collection contract, the Item entity, the
// comparison counters, and the standard errors shared by both backpack
// implementations.
package types

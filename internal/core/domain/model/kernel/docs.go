// Package kernel provides core domain primitives for the booking lifecycle service.
// It implements the fundamental building blocks shared across the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Location: A value object representing the geographic coordinates of a service address
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are immutable and thread-safe,
// making them suitable for use by concurrently ticking jobs.
package kernel

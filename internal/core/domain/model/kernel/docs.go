// Package kernel provides core domain primitives for the print-order service.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - SessionID: A value object identifying a chat session, the unit under
//     which orders are stored and events are serialized
//   - UUID: A value object for order identities with validation and comparison
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel

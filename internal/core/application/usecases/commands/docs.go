// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, aggregate mutation,
// persistence, and outbound notification.
//
// The command set covers the whole order lifecycle: starting an order,
// advancing it one stage per user input, attaching the print file,
// cancelling or restarting, confirming into an invoice, gating the
// provider's pre-checkout query, and finalizing a successful payment.
package commands

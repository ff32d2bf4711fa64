// Package order contains the print-order aggregate and its supporting value
// objects. The aggregate owns the workflow state machine: a session's order
// advances stage by stage as the user answers prompts (print color, page
// count, paper format, sides, file, comment), is priced and summarized, and
// finally waits for payment. Every transition validates its from-stage so the
// workflow can never skip a required step.
//
// The package follows Domain-Driven Design principles: private fields,
// constructor validation, and explicit transition methods on the Stage value
// object. Raw user input is decoded into typed choices exactly once at the
// input boundary via the Parse functions; the aggregate never sees raw text
// except for the free-form comment.
package order

// Package outcome implements a single-settlement asynchronous value container.
//
// An Outcome starts out pending and settles exactly once, either fulfilled
// with a value or rejected with an error. Continuations registered through
// Then, Catch and Finally always run asynchronously relative to the call that
// registered them, each producing a new Outcome, so chains can be built before
// or after the source settles without ever missing a settlement.
//
// All continuation dispatch goes through a Scheduler. The default Async
// scheduler runs each reaction on its own goroutine; a SerialQueue runs
// reactions one at a time under test control, which makes chain behaviour
// fully deterministic.
package outcome

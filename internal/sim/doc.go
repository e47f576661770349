// Package sim implements a priority-based job dispatch simulation.
//
// Jobs are seeded with a random priority, executed strictly one at a
// time in priority order, fail with an injected probability, and are
// retried with exponential backoff up to a configurable cap. The run
// produces wait-time, service-time, and throughput statistics.
//
// Architecture overview
//
// The simulation is composed of three loosely coupled layers:
//
//   1. Selection (jobQueue)
//      A max-heap ordering pending jobs by priority, with FIFO order
//      inside a priority band. Retried jobs re-enter with a fresh
//      enqueue timestamp and an aged-up priority.
//
//   2. Execution (Dispatcher)
//      Pops the next job, applies backoff if it is a retry, consumes
//      its service time, and resolves the attempt as success, a
//      retryable failure, or a terminal failure.
//
//   3. Observation (Observer)
//      Every finished attempt and the final run summary fan out to
//      registered observers; persistence and console reporting live
//      behind this interface, outside the core.
//
// Determinism
//
// All randomness flows through an injected ProcessModel and all time
// through an injected Clock. Given a fixed seed and a virtual clock,
// the dispatch order, every timestamp, and the final summary are
// reproducible bit-for-bit.
//
// Failure model
//
// A failed attempt is a modeled outcome, not an error: it is recorded
// and resolved locally by the retry state machine. The dispatcher has
// no recoverable-error channel for simulated failures.
package sim

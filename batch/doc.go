// SPDX-License-Identifier: MIT

// Package batch solves many independent linear systems concurrently.
//
// Each system is solved by gauss.Solve on its own goroutine; because the
// solver keeps no shared state, no coordination beyond a worker limit is
// needed. Outcomes are returned in input order, each carrying its own error
// so one malformed system does not abort the others. Cancelling the context
// stops systems that have not started yet; they report ctx.Err().
package batch

// Package portfolio implements the cost-basis ledger and unit-normalization
// core of a personal investment tracker.
//
// The core functionalities include:
//   - Purchase-Lot Ledger: each holding is an append-only ledger of discrete
//     buy events, the single source of truth for its aggregate figures.
//   - Position Aggregation: total shares, weighted-average native price,
//     cost-weighted average entry FX rate and earliest acquisition date are
//     derived from the ledger with exact decimal arithmetic, never stored
//     independently.
//   - Legacy Migration: positions recorded before lot-level tracking are
//     reconciled into a single synthetic lot without losing their cost basis.
//   - Merge Engine: incoming purchases, with or without their own lot
//     history, are merged into a position's ledger all-or-nothing.
//   - Currency-Unit Scaling: instruments quoted in a minor unit (e.g. pence)
//     are stored in that unit and presented in the major unit, with
//     per-field precision policies.
//   - Quote Normalization: prices and previous-close values from an
//     external feed with ambiguous unit reporting are corrected with
//     documented, configurable heuristics.
//
// The package is stateless and synchronous: every operation is a pure
// function over its inputs. Persistence, HTTP transport and UI concerns
// belong to collaborators; this package only owns the data contracts
// (including the JSONL encoding used by the `pm` command-line tool).
package portfolio

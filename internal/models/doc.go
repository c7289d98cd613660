// Package models defines the persisted domain models for tabsplit.
//
// Bill calculations are never stored: participants, fees, results and
// settlements live in package calculator as plain value records and are
// recomputed on every request.
//
// The only persisted model is Friend, the saved roster that seeds default
// participants for a new bill.
package models

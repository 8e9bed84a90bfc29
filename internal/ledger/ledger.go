// Package ledger implements the balance-settlement calculation: a pure,
// stateless computation over an ordered snapshot of transaction records.
// It performs no I/O, reads no clock, and never mutates its input, so every
// invocation is independent and safe to run concurrently.
package ledger

import (
	"math"

	"github.com/avdberg/shared-ledger-backend/internal/model"
)

// SettledEpsilon is the tolerance within which a net balance counts as
// settled. Balances are plain currency floats, so exact zero is not a
// meaningful comparison.
const SettledEpsilon = 0.01

// Repayment sign policy, pinned once for the whole engine: a repayment
// reduces the payer's outstanding debt to the recipient. A payment from
// PartyOne to PartyTwo therefore raises PartyOne's recorded net
// contribution (+amount), and a payment from PartyTwo to PartyOne lowers
// it (-amount). Summarize and Trace both apply this policy, which is what
// makes the trace's final running balance reconcile with the aggregate.
const (
	repaymentOneToTwoSign = 1.0
	repaymentTwoToOneSign = -1.0
)

// Summarize computes the settlement aggregates and signed net balance for a
// snapshot of records. Input order does not affect the result.
//
// Records with an unrecognized category or payer are excluded from the
// aggregates they do not match and contribute zero to the balance. Records
// with a non-positive or non-finite amount contribute zero everywhere and
// are counted in SkippedRecords; a partially malformed snapshot still
// yields a usable result.
func Summarize(records []model.Transaction) model.Summary {
	var s model.Summary

	for _, r := range records {
		amount, ok := usableAmount(r.Amount)
		if !ok {
			s.SkippedRecords++
			continue
		}

		switch r.PaidBy {
		case model.PartyOne:
			s.TotalByPartyOne += amount
		case model.PartyTwo:
			s.TotalByPartyTwo += amount
		}

		switch r.Category {
		case model.CategoryShared:
			// A shared cost with an unrecognized payer has no settlement
			// effect and stays out of the shared aggregates entirely.
			switch r.PaidBy {
			case model.PartyOne:
				s.SharedTotal += amount
				s.SharedByPartyOne += amount
			case model.PartyTwo:
				s.SharedTotal += amount
				s.SharedByPartyTwo += amount
			}
		case model.CategoryForPartyOne:
			if r.PaidBy == model.PartyTwo {
				s.OneOnlyPaidByTwo += amount
			}
		case model.CategoryForPartyTwo:
			if r.PaidBy == model.PartyOne {
				s.TwoOnlyPaidByOne += amount
			}
		case model.CategoryRepaymentOneToTwo:
			s.RepaymentOneToTwo += amount
		case model.CategoryRepaymentTwoToOne:
			s.RepaymentTwoToOne += amount
		}
	}

	if s.SharedTotal > 0 {
		s.EachShare = s.SharedTotal / 2
	}

	s.NetBalance = (s.SharedByPartyOne - s.EachShare) +
		s.TwoOnlyPaidByOne -
		s.OneOnlyPaidByTwo +
		repaymentOneToTwoSign*s.RepaymentOneToTwo +
		repaymentTwoToOneSign*s.RepaymentTwoToOne

	return s
}

// Trace decomposes the net balance record by record, in the order given.
// Each entry carries the signed delta the record contributed and the running
// balance immediately after it. Records matching none of the delta rules
// (unknown category, or a category/payer combination with no settlement
// effect) appear with a zero delta so the audit trail stays complete.
//
// The final running balance equals Summarize's NetBalance for the same
// snapshot.
func Trace(records []model.Transaction) []model.TraceEntry {
	entries := make([]model.TraceEntry, 0, len(records))

	running := 0.0
	for _, r := range records {
		delta, flagged := recordDelta(r)
		running += delta
		entries = append(entries, model.TraceEntry{
			Record:         r,
			Delta:          delta,
			RunningBalance: running,
			Flagged:        flagged,
		})
	}

	return entries
}

// Direction classifies a net balance under the engine's sign convention.
func Direction(netBalance float64) model.Direction {
	switch {
	case netBalance > SettledEpsilon:
		return model.DirectionTwoOwesOne
	case netBalance < -SettledEpsilon:
		return model.DirectionOneOwesTwo
	}
	return model.DirectionSettled
}

// recordDelta applies the per-record delta rule. It mirrors the aggregate
// formula term by term: half the amount for shared costs, the full amount
// for party-exclusive costs covered by the other party, and the pinned
// repayment signs.
func recordDelta(r model.Transaction) (delta float64, flagged bool) {
	amount, ok := usableAmount(r.Amount)
	if !ok {
		return 0, true
	}

	switch r.Category {
	case model.CategoryShared:
		switch r.PaidBy {
		case model.PartyOne:
			return amount / 2, false
		case model.PartyTwo:
			return -amount / 2, false
		}
	case model.CategoryForPartyTwo:
		if r.PaidBy == model.PartyOne {
			return amount, false
		}
	case model.CategoryForPartyOne:
		if r.PaidBy == model.PartyTwo {
			return -amount, false
		}
	case model.CategoryRepaymentOneToTwo:
		return repaymentOneToTwoSign * amount, false
	case model.CategoryRepaymentTwoToOne:
		return repaymentTwoToOneSign * amount, false
	}

	return 0, false
}

// usableAmount checks that an amount is finite and positive. Creation-time
// validation rejects anything else, but the record store may hand back rows
// normalized to zero, and the engine must not poison aggregates when it
// does.
func usableAmount(amount float64) (float64, bool) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0, false
	}
	return amount, true
}

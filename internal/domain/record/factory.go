package record

import (
	"time"

	"circulog/internal/pkg/clock"
	"circulog/internal/pkg/errs"

	"github.com/google/uuid"
)

// Factory builds well-formed records for each supported kind, allocating ids
// and stamping creation times from the injected clock.
type Factory struct {
	clock    clock.Clock
	fineRate float64
}

func NewFactory(clk clock.Clock, fineRatePerDay float64) *Factory {
	if fineRatePerDay <= 0 {
		fineRatePerDay = DefaultFineRatePerDay
	}
	return &Factory{
		clock:    clk,
		fineRate: fineRatePerDay,
	}
}

// GenerateID returns an opaque unique id. UUIDv7 combines a millisecond
// timestamp with random bits, which keeps collisions negligible within a
// single process; no cross-process guarantee is intended.
func (f *Factory) GenerateID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// NewBorrow creates a pending borrow record due at the given date.
func (f *Factory) NewBorrow(subjectID, itemID string, dueDate time.Time) (*Record, error) {
	seed := Detail{DetailDueDate: dueDate}
	return NewRecord(f.GenerateID(), KindBorrow, subjectID, itemID, seed, f.clock.Now())
}

// NewReturn creates a pending return record for a borrow. The fine is
// computed from the borrow at the factory clock's current time and the
// borrow's overdue flag is copied into the new record's detail.
func (f *Factory) NewReturn(subjectID, itemID string, borrow *Record) (*Record, error) {
	if borrow == nil {
		return nil, errs.Mark(errs.New("return requires the borrow record"), errs.ErrValidation)
	}
	now := f.clock.Now()
	seed := Detail{
		DetailFineAmount:     borrow.Fine(now, f.fineRate),
		DetailWasOverdue:     borrow.IsOverdue(now),
		DetailBorrowRecordID: borrow.ID(),
	}
	return NewRecord(f.GenerateID(), KindReturn, subjectID, itemID, seed, now)
}

// NewReservation creates a pending reservation record.
func (f *Factory) NewReservation(subjectID, itemID string) (*Record, error) {
	return NewRecord(f.GenerateID(), KindReserve, subjectID, itemID, nil, f.clock.Now())
}

// NewCancelReservation creates a pending record documenting the cancellation
// of an earlier reservation.
func (f *Factory) NewCancelReservation(subjectID, itemID, reservationID string) (*Record, error) {
	seed := Detail{}
	if reservationID != "" {
		seed[DetailRelatedRecordID] = reservationID
	}
	return NewRecord(f.GenerateID(), KindCancelReservation, subjectID, itemID, seed, f.clock.Now())
}

// NewRenewal creates a pending record documenting a loan extension to the
// given due date.
func (f *Factory) NewRenewal(subjectID, itemID string, borrowID string, newDueDate time.Time) (*Record, error) {
	seed := Detail{DetailDueDate: newDueDate}
	if borrowID != "" {
		seed[DetailBorrowRecordID] = borrowID
	}
	return NewRecord(f.GenerateID(), KindRenew, subjectID, itemID, seed, f.clock.Now())
}

// NewFinePayment creates a pending fine payment. Fine payments reference the
// subject's account, not an item.
func (f *Factory) NewFinePayment(subjectID string, amount float64, relatedID string) (*Record, error) {
	seed := Detail{DetailFineAmount: amount}
	if relatedID != "" {
		seed[DetailRelatedRecordID] = relatedID
	}
	return NewRecord(f.GenerateID(), KindFinePayment, subjectID, "", seed, f.clock.Now())
}

// FineRatePerDay exposes the configured rate so collaborators compute fines
// consistently with the factory.
func (f *Factory) FineRatePerDay() float64 {
	return f.fineRate
}

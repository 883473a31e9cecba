package usecase

import (
	"log/slog"

	"circulog/internal/domain/record"
	"circulog/internal/pkg/clock"
	"circulog/internal/pkg/config"
	"circulog/internal/pkg/errs"
)

var (
	ErrRecordNotFound = errs.New("record not found")
)

// Circulation is an in-memory ledger of circulation records. It owns every
// record it creates and drives their lifecycle through the factory and the
// configured lending policy.
//
// The ledger is single-writer by contract: records are plain in-memory state,
// and callers sharing one across goroutines must serialize access themselves.
type Circulation struct {
	records map[string]*record.Record
	order   []string
	factory *record.Factory
	clock   clock.Clock
	policy  config.CirculationConfig
	logger  *slog.Logger
}

func NewCirculation(factory *record.Factory, clk clock.Clock, policy config.CirculationConfig, logger *slog.Logger) *Circulation {
	return &Circulation{
		records: make(map[string]*record.Record),
		factory: factory,
		clock:   clk,
		policy:  policy,
		logger:  logger,
	}
}

// Borrow checks an item out to a subject for the policy loan period. The
// record is completed immediately: the ledger registers checkouts that have
// already been effected at the desk.
func (c *Circulation) Borrow(subjectID, itemID string) (*record.Record, error) {
	now := c.clock.Now()
	dueDate := now.AddDate(0, 0, c.policy.LoanPeriodDays)

	rec, err := c.factory.NewBorrow(subjectID, itemID, dueDate)
	if err != nil {
		return nil, err
	}
	if err := rec.Complete(now); err != nil {
		return nil, err
	}
	c.add(rec)

	c.logger.Info("item borrowed",
		"record_id", rec.ID(),
		"subject_id", subjectID,
		"item_id", itemID,
		"due_date", dueDate,
	)
	return rec, nil
}

// Return closes out a borrow: the fine is computed at call time from the
// borrow's due date and captured on the new return record.
func (c *Circulation) Return(borrowID string) (*record.Record, error) {
	borrow, err := c.lookup(borrowID, record.KindBorrow)
	if err != nil {
		return nil, err
	}
	if borrow.Status() != record.StatusCompleted {
		return nil, errs.Mark(errs.Newf("borrow %s was never completed", borrowID), errs.ErrInvalidState)
	}

	ret, err := c.factory.NewReturn(borrow.SubjectID(), borrow.ItemID(), borrow)
	if err != nil {
		return nil, err
	}
	if err := ret.Complete(c.clock.Now()); err != nil {
		return nil, err
	}
	c.add(ret)

	c.logger.Info("item returned",
		"record_id", ret.ID(),
		"borrow_id", borrowID,
		"fine_amount", ret.FineAmount(),
	)
	return ret, nil
}

// Reserve places a reservation. It stays Pending until fulfilled or
// cancelled.
func (c *Circulation) Reserve(subjectID, itemID string) (*record.Record, error) {
	rec, err := c.factory.NewReservation(subjectID, itemID)
	if err != nil {
		return nil, err
	}
	c.add(rec)

	c.logger.Info("item reserved",
		"record_id", rec.ID(),
		"subject_id", subjectID,
		"item_id", itemID,
	)
	return rec, nil
}

// CancelReservation cancels a pending reservation and records the
// cancellation as its own completed transaction.
func (c *Circulation) CancelReservation(reservationID, reason string) (*record.Record, error) {
	reservation, err := c.lookup(reservationID, record.KindReserve)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	if err := reservation.Cancel(reason, now); err != nil {
		return nil, err
	}

	rec, err := c.factory.NewCancelReservation(reservation.SubjectID(), reservation.ItemID(), reservation.ID())
	if err != nil {
		return nil, err
	}
	if err := rec.Complete(c.clock.Now()); err != nil {
		return nil, err
	}
	c.add(rec)

	c.logger.Info("reservation cancelled",
		"record_id", rec.ID(),
		"reservation_id", reservationID,
		"reason", reason,
	)
	return rec, nil
}

// RenewLoan extends a borrow by the policy renew period, counted from its
// current due date, and records the renewal as its own transaction.
func (c *Circulation) RenewLoan(borrowID string) (*record.Record, error) {
	borrow, err := c.lookup(borrowID, record.KindBorrow)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	newDueDate := borrow.DueDate().AddDate(0, 0, c.policy.RenewPeriodDays)
	if err := borrow.Renew(newDueDate, now); err != nil {
		return nil, err
	}

	rec, err := c.factory.NewRenewal(borrow.SubjectID(), borrow.ItemID(), borrow.ID(), newDueDate)
	if err != nil {
		return nil, err
	}
	if err := rec.Complete(c.clock.Now()); err != nil {
		return nil, err
	}
	c.add(rec)

	c.logger.Info("loan renewed",
		"record_id", rec.ID(),
		"borrow_id", borrowID,
		"due_date", newDueDate,
	)
	return rec, nil
}

// PayFine records a completed fine payment against the subject's account,
// optionally referencing the record that accrued the fine.
func (c *Circulation) PayFine(subjectID string, amount float64, relatedID string) (*record.Record, error) {
	rec, err := c.factory.NewFinePayment(subjectID, amount, relatedID)
	if err != nil {
		return nil, err
	}
	if err := rec.Complete(c.clock.Now()); err != nil {
		return nil, err
	}
	c.add(rec)

	c.logger.Info("fine paid",
		"record_id", rec.ID(),
		"subject_id", subjectID,
		"amount", amount,
	)
	return rec, nil
}

// Get returns the record with the given id.
func (c *Circulation) Get(id string) (*record.Record, error) {
	rec, ok := c.records[id]
	if !ok {
		return nil, errs.Mark(errs.Newf("record %s not found", id), ErrRecordNotFound)
	}
	return rec, nil
}

// BySubject returns the subject's records in creation order.
func (c *Circulation) BySubject(subjectID string) []*record.Record {
	var out []*record.Record
	for _, id := range c.order {
		if rec := c.records[id]; rec.SubjectID() == subjectID {
			out = append(out, rec)
		}
	}
	return out
}

func (c *Circulation) add(rec *record.Record) {
	c.records[rec.ID()] = rec
	c.order = append(c.order, rec.ID())
}

func (c *Circulation) lookup(id string, kind record.Kind) (*record.Record, error) {
	rec, ok := c.records[id]
	if !ok {
		return nil, errs.Mark(errs.Newf("record %s not found", id), ErrRecordNotFound)
	}
	if rec.Kind() != kind {
		return nil, errs.Mark(errs.Newf("record %s is a %s, not a %s", id, rec.Kind(), kind), errs.ErrInvalidKind)
	}
	return rec, nil
}

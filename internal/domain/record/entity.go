package record

import (
	"fmt"
	"math"
	"time"

	"circulog/internal/pkg/errs"
)

// DefaultFineRatePerDay is the fallback fine accrued per whole overdue day.
const DefaultFineRatePerDay = 0.5

// Record is a single circulation transaction: immutable identity, mutable
// status. All mutation goes through the lifecycle operations below (or the
// permissive Reconstruct path); a failing precondition leaves the record
// untouched.
//
// Record is not safe for concurrent use. It is meant to be owned by one
// logical caller at a time; sharing one across goroutines needs external
// synchronization.
type Record struct {
	id         string
	kind       Kind
	subjectID  string
	itemID     string
	status     Status
	detail     Detail
	fineAmount float64
	dueDate    time.Time // zero when unset; only interpreted for KindBorrow
	notes      string
	createdAt  time.Time
}

// NewRecord constructs a Pending record. The seed is shallow-copied into the
// detail bag; a seeded fineAmount and dueDate are additionally lifted into
// their typed fields.
func NewRecord(id string, kind Kind, subjectID, itemID string, seed Detail, now time.Time) (*Record, error) {
	if id == "" {
		return nil, errs.Mark(errs.New("record id must not be empty"), errs.ErrValidation)
	}
	if !kind.IsValid() {
		return nil, errs.Mark(errs.Newf("unknown record kind %q", kind), errs.ErrValidation)
	}
	if subjectID == "" {
		return nil, errs.Mark(errs.New("subject id must not be empty"), errs.ErrValidation)
	}
	if kind.RequiresItem() && itemID == "" {
		return nil, errs.Mark(errs.Newf("%s records require an item id", kind), errs.ErrValidation)
	}

	detail := Detail{}
	if seed != nil {
		detail = seed.clone()
	}

	fine, err := seededFine(detail)
	if err != nil {
		return nil, err
	}
	due, err := seededDueDate(detail)
	if err != nil {
		return nil, err
	}

	return &Record{
		id:         id,
		kind:       kind,
		subjectID:  subjectID,
		itemID:     itemID,
		status:     StatusPending,
		detail:     detail,
		fineAmount: fine,
		dueDate:    due,
		createdAt:  now,
	}, nil
}

// Complete marks a pending record as carried out.
func (r *Record) Complete(now time.Time) error {
	if r.status != StatusPending {
		return errs.Mark(errs.Newf("cannot complete record %s in status %s", r.id, r.status), errs.ErrInvalidState)
	}
	r.status = StatusCompleted
	r.detail[DetailCompletedAt] = now
	return nil
}

// Fail marks a pending record as failed with the given reason.
func (r *Record) Fail(reason string, now time.Time) error {
	if r.status != StatusPending {
		return errs.Mark(errs.Newf("cannot fail record %s in status %s", r.id, r.status), errs.ErrInvalidState)
	}
	r.status = StatusFailed
	r.detail[DetailFailureReason] = reason
	r.detail[DetailFailedAt] = now
	return nil
}

// Cancel marks the record as cancelled. Only a Completed record refuses
// cancellation; cancelling a Failed or already-Cancelled record is permitted
// and overwrites the cancellation detail. A stricter pending-only rule was
// considered and deliberately not adopted.
func (r *Record) Cancel(reason string, now time.Time) error {
	if r.status == StatusCompleted {
		return errs.Mark(errs.Newf("cannot cancel completed record %s", r.id), errs.ErrInvalidState)
	}
	r.status = StatusCancelled
	r.detail[DetailCancellationReason] = reason
	r.detail[DetailCancelledAt] = now
	return nil
}

// AddNote appends a timestamped line to the record's notes. It never fails.
func (r *Record) AddNote(text string, now time.Time) {
	r.notes += fmt.Sprintf("[%s] %s\n", now.UTC().Format(time.RFC3339), text)
}

// IsOverdue reports whether a borrow's due date lies strictly in the past.
// Non-borrow kinds are never overdue.
func (r *Record) IsOverdue(now time.Time) bool {
	return r.kind == KindBorrow && !r.dueDate.IsZero() && now.After(r.dueDate)
}

// DaysOverdue returns the number of whole days past due, rounding partial
// days up. Zero when not overdue.
func (r *Record) DaysOverdue(now time.Time) int {
	if !r.IsOverdue(now) {
		return 0
	}
	return int(math.Ceil(now.Sub(r.dueDate).Hours() / 24))
}

// Fine computes the fine accrued at the given per-day rate. Pure: nothing is
// persisted on the record.
func (r *Record) Fine(now time.Time, ratePerDay float64) float64 {
	if !r.IsOverdue(now) {
		return 0
	}
	return float64(r.DaysOverdue(now)) * ratePerDay
}

// Renew extends a completed, not-yet-overdue borrow to a new due date. The
// original due date is stamped into the detail bag on the first renewal only.
func (r *Record) Renew(newDueDate, now time.Time) error {
	if r.kind != KindBorrow {
		return errs.Mark(errs.Newf("cannot renew %s record %s", r.kind, r.id), errs.ErrInvalidKind)
	}
	if r.status != StatusCompleted {
		return errs.Mark(errs.Newf("cannot renew record %s in status %s", r.id, r.status), errs.ErrInvalidState)
	}
	if r.IsOverdue(now) {
		return errs.Mark(errs.Newf("cannot renew overdue record %s", r.id), errs.ErrOverdue)
	}
	if _, ok := r.detail[DetailOriginalDueDate]; !ok {
		r.detail[DetailOriginalDueDate] = r.dueDate
	}
	r.detail[DetailRenewedAt] = now
	r.dueDate = newDueDate
	return nil
}

func (r *Record) ID() string           { return r.id }
func (r *Record) Kind() Kind           { return r.kind }
func (r *Record) SubjectID() string    { return r.subjectID }
func (r *Record) ItemID() string       { return r.itemID }
func (r *Record) Status() Status       { return r.status }
func (r *Record) FineAmount() float64  { return r.fineAmount }
func (r *Record) DueDate() time.Time   { return r.dueDate }
func (r *Record) Notes() string        { return r.notes }
func (r *Record) CreatedAt() time.Time { return r.createdAt }

// Detail returns a copy of the detail bag; mutating it does not affect the
// record.
func (r *Record) Detail() Detail {
	return r.detail.clone()
}

// DetailValue looks up a single detail key.
func (r *Record) DetailValue(key string) (any, bool) {
	v, ok := r.detail[key]
	return v, ok
}

func seededFine(detail Detail) (float64, error) {
	v, ok := detail[DetailFineAmount]
	if !ok {
		return 0, nil
	}
	var fine float64
	switch n := v.(type) {
	case float64:
		fine = n
	case int:
		fine = float64(n)
	case int64:
		fine = float64(n)
	default:
		return 0, errs.Mark(errs.Newf("fineAmount seed has unsupported type %T", v), errs.ErrValidation)
	}
	if fine < 0 {
		return 0, errs.Mark(errs.Newf("fineAmount must not be negative, got %v", fine), errs.ErrValidation)
	}
	return fine, nil
}

func seededDueDate(detail Detail) (time.Time, error) {
	v, ok := detail[DetailDueDate]
	if !ok {
		return time.Time{}, nil
	}
	switch d := v.(type) {
	case time.Time:
		return d, nil
	case string:
		parsed, err := time.Parse(time.RFC3339, d)
		if err != nil {
			return time.Time{}, errs.Mark(errs.Wrap(err, "dueDate seed is not RFC 3339"), errs.ErrValidation)
		}
		return parsed, nil
	default:
		return time.Time{}, errs.Mark(errs.Newf("dueDate seed has unsupported type %T", v), errs.ErrValidation)
	}
}

package record

// Kind is the closed category of a circulation record. Unknown values never
// enter the domain: NewRecord rejects them and Reconstruct is the only other
// entry point.
type Kind string

const (
	KindBorrow            Kind = "borrow"
	KindReturn            Kind = "return"
	KindReserve           Kind = "reserve"
	KindCancelReservation Kind = "cancel_reservation"
	KindRenew             Kind = "renew"
	KindFinePayment       Kind = "fine_payment"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindBorrow, KindReturn, KindReserve, KindCancelReservation, KindRenew, KindFinePayment:
		return true
	default:
		return false
	}
}

// RequiresItem reports whether records of this kind must reference an item.
// Fine payments are the only kind acting on the subject's account alone.
func (k Kind) RequiresItem() bool {
	return k != KindFinePayment
}

// Status is the lifecycle stage of a record. Transitions are monotone: a
// Completed, Failed or Cancelled record never returns to Pending.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed, StatusCancelled:
		return true
	default:
		return false
	}
}

// Detail is the open string-keyed bag of auxiliary facts attached to a record.
// Only the Detail* keys below carry contractual meaning; anything else is
// passed through untouched for forward compatibility.
type Detail map[string]any

// Detail keys written by lifecycle operations and factory constructors.
const (
	DetailCompletedAt        = "completedAt"
	DetailFailedAt           = "failedAt"
	DetailFailureReason      = "failureReason"
	DetailCancelledAt        = "cancelledAt"
	DetailCancellationReason = "cancellationReason"
	DetailRenewedAt          = "renewedAt"
	DetailOriginalDueDate    = "originalDueDate"
	DetailFineAmount         = "fineAmount"
	DetailDueDate            = "dueDate"
	DetailWasOverdue         = "wasOverdue"
	DetailRelatedRecordID    = "relatedRecordId"
	DetailBorrowRecordID     = "borrowRecordId"
)

func (d Detail) clone() Detail {
	out := make(Detail, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

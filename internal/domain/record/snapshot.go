package record

import "time"

// Snapshot is the plain structured representation of a record, the hand-off
// point for any external persistence or transport collaborator. Every field
// of the record appears here exactly once.
type Snapshot struct {
	ID         string    `json:"id"`
	Kind       Kind      `json:"kind"`
	SubjectID  string    `json:"subject_id"`
	ItemID     string    `json:"item_id,omitempty"`
	Status     Status    `json:"status"`
	Detail     Detail    `json:"detail"`
	FineAmount float64   `json:"fine_amount"`
	DueDate    time.Time `json:"due_date"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Snapshot captures the record's current state. The detail bag is copied, so
// the snapshot stays stable if the record keeps mutating.
func (r *Record) Snapshot() Snapshot {
	return Snapshot{
		ID:         r.id,
		Kind:       r.kind,
		SubjectID:  r.subjectID,
		ItemID:     r.itemID,
		Status:     r.status,
		Detail:     r.detail.clone(),
		FineAmount: r.fineAmount,
		DueDate:    r.dueDate,
		Notes:      r.notes,
		CreatedAt:  r.createdAt,
	}
}

// Reconstruct restores a record from a previously taken snapshot without
// re-running construction validation: a record that was valid when captured
// must restore even if its field values would fail a fresh NewRecord check.
func Reconstruct(s Snapshot) *Record {
	detail := Detail{}
	if s.Detail != nil {
		detail = s.Detail.clone()
	}
	return &Record{
		id:         s.ID,
		kind:       s.Kind,
		subjectID:  s.SubjectID,
		itemID:     s.ItemID,
		status:     s.Status,
		detail:     detail,
		fineAmount: s.FineAmount,
		dueDate:    s.DueDate,
		notes:      s.Notes,
		createdAt:  s.CreatedAt,
	}
}

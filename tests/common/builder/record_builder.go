//go:build unit

package builder

import (
	"time"

	"circulog/internal/domain/record"
)

// RecordBuilder assembles construction input for domain tests; defaults are a
// valid borrow.
type RecordBuilder struct {
	ID        string
	Kind      record.Kind
	SubjectID string
	ItemID    string
	Seed      record.Detail
	Now       time.Time
}

func NewRecordBuilder() *RecordBuilder {
	return &RecordBuilder{
		ID:        "rec-0001",
		Kind:      record.KindBorrow,
		SubjectID: "member-42",
		ItemID:    "item-7",
		Seed:      record.Detail{},
		Now:       time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *RecordBuilder) With(mutate func(*RecordBuilder)) *RecordBuilder {
	mutate(b)
	return b
}

func (b *RecordBuilder) BuildDomain() (*record.Record, error) {
	return record.NewRecord(b.ID, b.Kind, b.SubjectID, b.ItemID, b.Seed, b.Now)
}

// Fluent builder methods
func (b *RecordBuilder) WithID(id string) *RecordBuilder {
	b.ID = id
	return b
}

func (b *RecordBuilder) WithKind(kind record.Kind) *RecordBuilder {
	b.Kind = kind
	return b
}

func (b *RecordBuilder) WithSubjectID(subjectID string) *RecordBuilder {
	b.SubjectID = subjectID
	return b
}

func (b *RecordBuilder) WithItemID(itemID string) *RecordBuilder {
	b.ItemID = itemID
	return b
}

func (b *RecordBuilder) WithSeed(key string, value any) *RecordBuilder {
	if b.Seed == nil {
		b.Seed = record.Detail{}
	}
	b.Seed[key] = value
	return b
}

func (b *RecordBuilder) WithDueDate(due time.Time) *RecordBuilder {
	return b.WithSeed(record.DetailDueDate, due)
}

func (b *RecordBuilder) WithFineAmount(amount any) *RecordBuilder {
	return b.WithSeed(record.DetailFineAmount, amount)
}

func (b *RecordBuilder) WithNow(now time.Time) *RecordBuilder {
	b.Now = now
	return b
}

func (b *RecordBuilder) AsFinePayment() *RecordBuilder {
	b.Kind = record.KindFinePayment
	b.ItemID = ""
	return b
}

package models

import "time"

// SystemActor is recorded in audit fields when no authenticated principal
// is available.
const SystemActor = "system"

// Product owns zero or more Items. ID and the creation audit fields are
// assigned once and never change.
type Product struct {
	ID          int64
	ProductName ProductName
	CreatedBy   string
	CreatedOn   time.Time
	ModifiedBy  *string
	ModifiedOn  *time.Time
	Items       []*Item
}

// StampCreated sets the creation audit fields.
func (p *Product) StampCreated(actor string, now time.Time) {
	p.CreatedBy = actorOrSystem(actor)
	p.CreatedOn = now.UTC()
}

// StampModified records the latest modification.
func (p *Product) StampModified(actor string, now time.Time) {
	by := actorOrSystem(actor)
	on := now.UTC()
	p.ModifiedBy = &by
	p.ModifiedOn = &on
}

func actorOrSystem(actor string) string {
	if actor == "" {
		return SystemActor
	}
	return actor
}

package domain

// Bank is an issuing bank. Banks are never dual-mutated with another bank, so
// no pairwise lock protocol exists for them.
type Bank struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// EntityID implements cache.Entity.
func (b Bank) EntityID() int64 { return b.ID }

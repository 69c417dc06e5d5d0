package domain

// Subject is a catalog entry (travel, experience or service) as seen by the booking flow
type Subject struct {
	Ref            SubjectRef
	Title          string
	Description    string
	PricePerPerson *float64
	Price          *float64
	DurationDays   int
}

// CatalogPricePerPerson returns the per-person price, falling back to the flat price.
// Returns 0 if the catalog has no usable price.
func (s *Subject) CatalogPricePerPerson() float64 {
	if s.PricePerPerson != nil && *s.PricePerPerson > 0 {
		return *s.PricePerPerson
	}
	if s.Price != nil && *s.Price > 0 {
		return *s.Price
	}
	return 0
}

// IsRental returns true if the subject is priced by day from a rate table
func (s *Subject) IsRental() bool {
	return s.Ref.Kind == SubjectService
}

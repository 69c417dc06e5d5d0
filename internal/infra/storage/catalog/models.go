package catalog

import (
	"time"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
)

// Subject GORM модель предмета каталога (тур, впечатление, услуга)
type Subject struct {
	Kind           string   `gorm:"column:kind;primaryKey;size:16"`
	ID             string   `gorm:"column:id;primaryKey;size:64"`
	Title          string   `gorm:"column:title;size:255;not null"`
	Description    string   `gorm:"column:description;type:text"`
	PricePerPerson *float64 `gorm:"column:price_per_person;type:decimal(10,2)"`
	Price          *float64 `gorm:"column:price;type:decimal(10,2)"`
	DurationDays   int      `gorm:"column:duration_days"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName переопределяет имя таблицы
func (Subject) TableName() string {
	return "catalog_subjects"
}

func (s *Subject) toDomain() *domain.Subject {
	return &domain.Subject{
		Ref:            domain.SubjectRef{Kind: domain.SubjectKind(s.Kind), ID: s.ID},
		Title:          s.Title,
		Description:    s.Description,
		PricePerPerson: s.PricePerPerson,
		Price:          s.Price,
		DurationDays:   s.DurationDays,
	}
}

func fromDomain(s *domain.Subject) *Subject {
	return &Subject{
		Kind:           string(s.Ref.Kind),
		ID:             s.Ref.ID,
		Title:          s.Title,
		Description:    s.Description,
		PricePerPerson: s.PricePerPerson,
		Price:          s.Price,
		DurationDays:   s.DurationDays,
	}
}

package catalog

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
)

// Repository каталог туров, впечатлений и услуг
type Repository struct {
	db *gorm.DB
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// AutoMigrate создает или обновляет таблицу каталога
func (r *Repository) AutoMigrate() error {
	return r.db.AutoMigrate(&Subject{})
}

// GetSubject получает предмет каталога по ссылке
func (r *Repository) GetSubject(ctx context.Context, ref domain.SubjectRef) (*domain.Subject, error) {
	var model Subject
	err := r.db.WithContext(ctx).
		Where("kind = ? AND id = ?", string(ref.Kind), ref.ID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		return nil, fmt.Errorf("%w: GetSubject - %s/%s: %v", ErrQuery, ref.Kind, ref.ID, err)
	}

	return model.toDomain(), nil
}

// ListByKind возвращает предметы каталога одного вида
func (r *Repository) ListByKind(ctx context.Context, kind domain.SubjectKind) ([]*domain.Subject, error) {
	var models []Subject
	err := r.db.WithContext(ctx).
		Where("kind = ?", string(kind)).
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("%w: ListByKind - %s: %v", ErrQuery, kind, err)
	}

	subjects := make([]*domain.Subject, 0, len(models))
	for i := range models {
		subjects = append(subjects, models[i].toDomain())
	}
	return subjects, nil
}

// Save создает или обновляет предмет каталога
func (r *Repository) Save(ctx context.Context, subject *domain.Subject) error {
	model := fromDomain(subject)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "kind"}, {Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "description", "price_per_person", "price", "duration_days", "updated_at"}),
		}).
		Create(model).Error
	if err != nil {
		return fmt.Errorf("%w: Save - %s/%s: %v", ErrQuery, subject.Ref.Kind, subject.Ref.ID, err)
	}
	return nil
}

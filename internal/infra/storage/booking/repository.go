package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
)

// DefaultCollection коллекция бронирований по умолчанию
const DefaultCollection = "bookings"

// Repository репозиторий бронирований в MongoDB.
// Атомарность гарантируется только в пределах одного документа.
type Repository struct {
	collection *mongo.Collection
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db *mongo.Database, collection string) *Repository {
	if collection == "" {
		collection = DefaultCollection
	}
	return &Repository{collection: db.Collection(collection)}
}

// EnsureIndexes создает индексы коллекции
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "share_token", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
		{Keys: bson.D{{Key: "owner_user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "participants.user_id", Value: 1}}},
		{Keys: bson.D{{Key: "travel_id", Value: 1}}, Options: options.Index().SetSparse(true)},
		{Keys: bson.D{{Key: "experience_id", Value: 1}}, Options: options.Index().SetSparse(true)},
		{Keys: bson.D{{Key: "service_id", Value: 1}}, Options: options.Index().SetSparse(true)},
	})
	if err != nil {
		return fmt.Errorf("%w: EnsureIndexes - %v", ErrPersistence, err)
	}
	return nil
}

// Create сохраняет новое бронирование
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) error {
	if booking.Subject.IsZero() {
		return fmt.Errorf("%w: Create - booking %s has no subject", ErrCorruptDocument, booking.ID)
	}

	if _, err := r.collection.InsertOne(ctx, toDocument(booking)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: Create - id=%s", ErrDuplicateBooking, booking.ID)
		}
		return fmt.Errorf("%w: Create - insert: %v", ErrPersistence, err)
	}
	return nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return r.findOne(ctx, "GetByID", bson.M{"_id": id})
}

// GetByShareToken получает бронирование по токену группового приглашения
func (r *Repository) GetByShareToken(ctx context.Context, token string) (*domain.Booking, error) {
	return r.findOne(ctx, "GetByShareToken", bson.M{"share_token": token})
}

// ListByUser возвращает бронирования, где пользователь владелец или участник группы
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"owner_user_id": userID},
		bson.M{"participants.user_id": userID},
	}}
	return r.find(ctx, "ListByUser", filter)
}

// ListBySubject возвращает бронирования предмета каталога, опционально по статусам
func (r *Repository) ListBySubject(ctx context.Context, ref domain.SubjectRef, statuses []domain.BookingStatus) ([]*domain.Booking, error) {
	field, err := subjectField(ref.Kind)
	if err != nil {
		return nil, err
	}

	filter := bson.M{field: ref.ID}
	if len(statuses) > 0 {
		values := make(bson.A, 0, len(statuses))
		for _, s := range statuses {
			values = append(values, string(s))
		}
		filter["status"] = bson.M{"$in": values}
	}

	return r.find(ctx, "ListBySubject", filter)
}

// Update применяет частичное обновление одним $set
func (r *Repository) Update(ctx context.Context, id string, patch domain.BookingPatch) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": setDocument(patch)})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: Update - id=%s", ErrDuplicateBooking, id)
		}
		return fmt.Errorf("%w: Update - id=%s: %v", ErrPersistence, id, err)
	}
	if result.MatchedCount == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// AppendParticipant добавляет участника в подтвержденное бронирование.
// Условие $ne в фильтре не дает двум параллельным вступлениям одного пользователя
// создать две записи.
func (r *Repository) AppendParticipant(ctx context.Context, id string, participant domain.Participant, updatedAt time.Time) error {
	filter := bson.M{
		"_id":                  id,
		"status":               string(domain.StatusConfirmed),
		"participants.user_id": bson.M{"$ne": participant.UserID},
	}
	update := bson.M{
		"$push": bson.M{"participants": toParticipantDocument(participant)},
		"$set":  bson.M{"updated_at": updatedAt},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("%w: AppendParticipant - id=%s: %v", ErrPersistence, id, err)
	}
	if result.MatchedCount > 0 {
		return nil
	}

	// Фильтр не совпал: выясняем причину
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.HasParticipant(participant.UserID) {
		return ErrParticipantExists
	}
	if current.Status != domain.StatusConfirmed {
		return ErrNotConfirmed
	}
	return fmt.Errorf("%w: AppendParticipant - id=%s: document changed concurrently", ErrPersistence, id)
}

func (r *Repository) findOne(ctx context.Context, op string, filter bson.M) (*domain.Booking, error) {
	var doc document
	if err := r.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: %s - find: %v", ErrPersistence, op, err)
	}
	return fromDocument(doc)
}

func (r *Repository) find(ctx context.Context, op string, filter bson.M) ([]*domain.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - find: %v", ErrPersistence, op, err)
	}
	defer cursor.Close(ctx)

	var docs []document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%w: %s - decode: %v", ErrPersistence, op, err)
	}

	bookings := make([]*domain.Booking, 0, len(docs))
	for _, doc := range docs {
		b, err := fromDocument(doc)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func subjectField(kind domain.SubjectKind) (string, error) {
	switch kind {
	case domain.SubjectTravel:
		return "travel_id", nil
	case domain.SubjectExperience:
		return "experience_id", nil
	case domain.SubjectService:
		return "service_id", nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownSubjectKind, kind)
	}
}

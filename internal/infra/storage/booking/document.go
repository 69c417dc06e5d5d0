package booking

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
)

// document хранимое представление бронирования.
// Ровно одно из полей travel_id, experience_id, service_id заполнено.
type document struct {
	ID           string  `bson:"_id"`
	TravelID     *string `bson:"travel_id,omitempty"`
	ExperienceID *string `bson:"experience_id,omitempty"`
	ServiceID    *string `bson:"service_id,omitempty"`

	OwnerUserID string `bson:"owner_user_id"`
	Status      string `bson:"status"`

	PersonalDetails personalDetailsDocument `bson:"personal_details"`
	CustomRequests  *string                 `bson:"custom_requests,omitempty"`
	TotalPrice      float64                 `bson:"total_price"`

	ShareToken   *string               `bson:"share_token,omitempty"`
	GroupID      *string               `bson:"group_id,omitempty"`
	Participants []participantDocument `bson:"participants"`

	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type personalDetailsDocument struct {
	Name          string     `bson:"name"`
	Email         string     `bson:"email"`
	Phone         string     `bson:"phone"`
	TravelerCount int        `bson:"traveler_count"`
	ChildCount    int        `bson:"child_count"`
	ChildrenAges  string     `bson:"children_ages,omitempty"`
	DepartureDate time.Time  `bson:"departure_date"`
	ReturnDate    *time.Time `bson:"return_date,omitempty"`
	DepartureCity *string    `bson:"departure_city,omitempty"`
}

type participantDocument struct {
	UserID   string    `bson:"user_id"`
	Name     string    `bson:"name"`
	Email    string    `bson:"email"`
	Phone    string    `bson:"phone,omitempty"`
	JoinedAt time.Time `bson:"joined_at"`
	Status   string    `bson:"status"`
	Role     string    `bson:"role"`
}

func toDocument(b *domain.Booking) document {
	doc := document{
		ID:              b.ID,
		OwnerUserID:     b.OwnerUserID,
		Status:          string(b.Status),
		PersonalDetails: toPersonalDetailsDocument(b.PersonalDetails),
		CustomRequests:  b.CustomRequests,
		TotalPrice:      b.TotalPrice,
		ShareToken:      b.ShareToken,
		GroupID:         b.GroupID,
		Participants:    toParticipantDocuments(b.Participants),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}

	subjectID := b.Subject.ID
	switch b.Subject.Kind {
	case domain.SubjectTravel:
		doc.TravelID = &subjectID
	case domain.SubjectExperience:
		doc.ExperienceID = &subjectID
	case domain.SubjectService:
		doc.ServiceID = &subjectID
	}

	return doc
}

func fromDocument(doc document) (*domain.Booking, error) {
	subject, err := subjectFromDocument(doc)
	if err != nil {
		return nil, err
	}

	status, err := domain.ParseBookingStatus(doc.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: booking %s has status %q", ErrCorruptDocument, doc.ID, doc.Status)
	}

	participants := make([]domain.Participant, 0, len(doc.Participants))
	for _, p := range doc.Participants {
		participants = append(participants, domain.Participant{
			UserID:   p.UserID,
			Name:     p.Name,
			Email:    p.Email,
			Phone:    p.Phone,
			JoinedAt: p.JoinedAt,
			Status:   domain.ParticipantStatus(p.Status),
			Role:     domain.ParticipantRole(p.Role),
		})
	}

	pd := doc.PersonalDetails
	return &domain.Booking{
		ID:          doc.ID,
		Subject:     subject,
		OwnerUserID: doc.OwnerUserID,
		Status:      status,
		PersonalDetails: domain.PersonalDetails{
			Name:          pd.Name,
			Email:         pd.Email,
			Phone:         pd.Phone,
			TravelerCount: pd.TravelerCount,
			ChildCount:    pd.ChildCount,
			ChildrenAges:  pd.ChildrenAges,
			DepartureDate: pd.DepartureDate,
			ReturnDate:    pd.ReturnDate,
			DepartureCity: pd.DepartureCity,
		},
		CustomRequests: doc.CustomRequests,
		TotalPrice:     doc.TotalPrice,
		ShareToken:     doc.ShareToken,
		GroupID:        doc.GroupID,
		Participants:   participants,
		CreatedAt:      doc.CreatedAt,
		UpdatedAt:      doc.UpdatedAt,
	}, nil
}

func subjectFromDocument(doc document) (domain.SubjectRef, error) {
	var (
		refs []domain.SubjectRef
		add  = func(kind domain.SubjectKind, id *string) {
			if id != nil && *id != "" {
				refs = append(refs, domain.SubjectRef{Kind: kind, ID: *id})
			}
		}
	)

	add(domain.SubjectTravel, doc.TravelID)
	add(domain.SubjectExperience, doc.ExperienceID)
	add(domain.SubjectService, doc.ServiceID)

	if len(refs) != 1 {
		return domain.SubjectRef{}, fmt.Errorf("%w: booking %s references %d subjects", ErrCorruptDocument, doc.ID, len(refs))
	}
	return refs[0], nil
}

func toPersonalDetailsDocument(d domain.PersonalDetails) personalDetailsDocument {
	return personalDetailsDocument{
		Name:          d.Name,
		Email:         d.Email,
		Phone:         d.Phone,
		TravelerCount: d.TravelerCount,
		ChildCount:    d.ChildCount,
		ChildrenAges:  d.ChildrenAges,
		DepartureDate: d.DepartureDate,
		ReturnDate:    d.ReturnDate,
		DepartureCity: d.DepartureCity,
	}
}

func toParticipantDocument(p domain.Participant) participantDocument {
	return participantDocument{
		UserID:   p.UserID,
		Name:     p.Name,
		Email:    p.Email,
		Phone:    p.Phone,
		JoinedAt: p.JoinedAt,
		Status:   string(p.Status),
		Role:     string(p.Role),
	}
}

func toParticipantDocuments(participants []domain.Participant) []participantDocument {
	docs := make([]participantDocument, 0, len(participants))
	for _, p := range participants {
		docs = append(docs, toParticipantDocument(p))
	}
	return docs
}

// setDocument собирает $set только из заданных полей патча.
// _id, owner_user_id, ссылки на предмет и created_at никогда не попадают в обновление.
func setDocument(patch domain.BookingPatch) bson.M {
	set := bson.M{"updated_at": patch.UpdatedAt}

	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}
	if patch.PersonalDetails != nil {
		set["personal_details"] = toPersonalDetailsDocument(*patch.PersonalDetails)
	}
	if patch.CustomRequests != nil {
		set["custom_requests"] = *patch.CustomRequests
	}
	if patch.TotalPrice != nil {
		set["total_price"] = *patch.TotalPrice
	}
	if patch.ShareToken != nil {
		set["share_token"] = *patch.ShareToken
	}
	if patch.GroupID != nil {
		set["group_id"] = *patch.GroupID
	}
	if patch.Participants != nil {
		set["participants"] = toParticipantDocuments(patch.Participants)
	}

	return set
}

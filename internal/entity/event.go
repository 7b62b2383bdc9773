package entity

// EventCategory определяет категорию мероприятия
type EventCategory string

const (
	CategoryTechnical    EventCategory = "technical"
	CategoryNonTechnical EventCategory = "non_technical"
)

func (c EventCategory) Valid() bool {
	return c == CategoryTechnical || c == CategoryNonTechnical
}

// EventType определяет тип мероприятия: бесплатное или платное
type EventType string

const (
	TypeFree EventType = "free"
	TypePaid EventType = "paid"
)

func (t EventType) Valid() bool {
	return t == TypeFree || t == TypePaid
}

type Event struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Location    string        `json:"location"`
	EventDate   EventTime     `json:"eventDate"`
	Category    EventCategory `json:"category"`
	Type        EventType     `json:"type"`
	Price       int           `json:"price"`
	Capacity    int           `json:"capacity"`
	BannerImage string        `json:"bannerImage,omitempty"`
	OrganizerID int64         `json:"organizerId"`
}

package entity

// UserStats представляет счетчики дашборда пользователя
type UserStats struct {
	RegisteredEvents int `json:"registeredEvents"`
	AttendedEvents   int `json:"attendedEvents"`
}

// EventStats представляет статистику мероприятия для организатора
type EventStats struct {
	TotalRegistrations int     `json:"totalRegistrations"`
	Attendees          int     `json:"attendees"`
	Capacity           int     `json:"capacity"`
	FillRate           float64 `json:"fillRate"`
}

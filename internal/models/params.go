package models

// ItineraryParams - параметры генерации маршрута. Поля Budget и Mood
// принимаются, но текущий генератор их не использует при подборе
// активностей (см. контракт Generator).
type ItineraryParams struct {
	Destination string `json:"destination" validate:"required"`
	Days        int    `json:"days" validate:"min=1"`
	Budget      int    `json:"budget" validate:"min=0"`
	Mood        string `json:"mood"`
	Travelers   int    `json:"travelers" validate:"min=1"`
}

// NewUser - данные для создания пользователя, id и createdAt назначает хранилище
type NewUser struct {
	Name        string          `json:"name" validate:"required"`
	Email       string          `json:"email" validate:"required,email"`
	Preferences UserPreferences `json:"preferences"`
}

// NewTripPlan - данные для создания плана поездки
type NewTripPlan struct {
	UserID      string    `json:"userId" validate:"required"`
	Destination string    `json:"destination" validate:"required"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Travelers   int       `json:"travelers" validate:"min=1"`
	Budget      int       `json:"budget" validate:"min=0"`
	Mood        string    `json:"mood"`
	Itinerary   []DayPlan `json:"itinerary"`
	TotalCost   int       `json:"totalCost"`
	Status      string    `json:"status"`
}

// TripPlanUpdate - частичное обновление плана. Заполненные поля заменяют
// существующие значения целиком, вложенный маршрут не сливается поэлементно.
type TripPlanUpdate struct {
	Destination *string    `json:"destination,omitempty"`
	StartDate   *string    `json:"startDate,omitempty"`
	EndDate     *string    `json:"endDate,omitempty"`
	Travelers   *int       `json:"travelers,omitempty"`
	Budget      *int       `json:"budget,omitempty"`
	Mood        *string    `json:"mood,omitempty"`
	Itinerary   *[]DayPlan `json:"itinerary,omitempty"`
	TotalCost   *int       `json:"totalCost,omitempty"`
	Status      *string    `json:"status,omitempty"`
}

// NewBooking - данные для создания брони, референс и createdAt назначает хранилище
type NewBooking struct {
	TripID        string `json:"tripId" validate:"required"`
	UserID        string `json:"userId" validate:"required"`
	TotalAmount   int    `json:"totalAmount" validate:"min=0"`
	PaymentStatus string `json:"paymentStatus"`
}

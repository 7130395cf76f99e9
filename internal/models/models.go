package models

// Форматы дат в ответах совпадают с исходным сайтом.
const (
	BookingTimeFormat = "02.01.2006 15:04"
	UserDateFormat    = "02.01.2006"
)

// RegisterRequest - форма регистрации нового клиента
type RegisterRequest struct {
	Name          string `form:"name" binding:"required"`
	Email         string `form:"email" binding:"required"`
	Phone         string `form:"phone" binding:"required"`
	Password      string `form:"password" binding:"required"`
	TourType      string `form:"tour_type"`
	Participants  int    `form:"participants"`
	PreferredDate string `form:"preferred_date"`
}

// RegisterResponse - ответ при успешной регистрации
type RegisterResponse struct {
	Message    string  `json:"message"`
	UserID     int64   `json:"user_id"`
	BookingID  int64   `json:"booking_id"`
	TotalPrice float64 `json:"total_price"`
}

// LoginRequest - форма входа
type LoginRequest struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// UserBookingItem - бронь в личном кабинете пользователя
type UserBookingItem struct {
	ID           int64   `json:"id"`
	Tour         string  `json:"tour"`
	Participants int     `json:"participants"`
	TotalPrice   float64 `json:"total_price"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
}

// LoginResponse - ответ при успешном входе
type LoginResponse struct {
	Message  string            `json:"message"`
	UserID   int64             `json:"user_id"`
	Name     string            `json:"name"`
	Email    string            `json:"email"`
	Bookings []UserBookingItem `json:"bookings"`
}

// UserSummary - элемент списка пользователей, пароль сюда не попадает
type UserSummary struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	TourType  string `json:"tour_type"`
	CreatedAt string `json:"created_at"`
}

// BookingSummary - элемент отчета по бронированиям
type BookingSummary struct {
	ID           int64   `json:"id"`
	UserName     string  `json:"user_name"`
	UserEmail    string  `json:"user_email"`
	TourName     string  `json:"tour_name"`
	Participants int     `json:"participants"`
	TotalPrice   float64 `json:"total_price"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
}

// AddTourRequest - форма добавления тура. Все четыре поля обязательны;
// price через указатель, чтобы нулевая цена проходила проверку наличия.
type AddTourRequest struct {
	Name        string   `form:"name" binding:"required"`
	Description string   `form:"description" binding:"required"`
	Price       *float64 `form:"price" binding:"required"`
	Duration    string   `form:"duration" binding:"required"`
}

// AddTourResponse - ответ при успешном добавлении тура
type AddTourResponse struct {
	Message string `json:"message"`
	TourID  int64  `json:"tour_id"`
	Name    string `json:"name"`
}

// ListToursResponseItem - элемент списка туров
type ListToursResponseItem struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration"`
	Available   bool    `json:"available"`
}

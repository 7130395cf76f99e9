package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	apperrors "chernotour/internal/errors"
	"chernotour/internal/messaging"
	"chernotour/internal/models"
	"chernotour/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Цены для туров, создаваемых неявно при регистрации.
const (
	singleDayTourPrice = 100
	multiDayTourPrice  = 250
)

type UserService struct {
	users      UserStore
	tours      TourStore
	bookings   BookingStore
	natsClient *messaging.NATSClient
}

func NewUserService(users UserStore, tours TourStore, bookings BookingStore, natsClient *messaging.NATSClient) *UserService {
	return &UserService{
		users:      users,
		tours:      tours,
		bookings:   bookings,
		natsClient: natsClient,
	}
}

// Register создает пользователя, подбирает или создает тур по его типу и
// сразу оформляет бронь с зафиксированной итоговой ценой.
func (s *UserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error) {
	if req.TourType == "" {
		req.TourType = models.DefaultTourType
	}
	if req.Participants <= 0 {
		req.Participants = 1
	}

	// Предварительная проверка дает чистое сообщение о конфликте; гонку с
	// параллельной регистрацией закрывает уникальный индекс по email.
	existing, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var preferredDate *string
	if req.PreferredDate != "" {
		preferredDate = &req.PreferredDate
	}

	user := &models.User{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Password:      string(hash),
		TourType:      req.TourType,
		Participants:  req.Participants,
		PreferredDate: preferredDate,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrEmailExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	tour, err := s.resolveTour(ctx, req.TourType)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		UserID:       user.ID,
		TourID:       tour.ID,
		Participants: req.Participants,
		TotalPrice:   tour.Price * float64(req.Participants),
		Status:       models.BookingStatusConfirmed,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.publish(ctx, models.EventUserRegistered, models.UserRegisteredEvent{
		UserID:    user.ID,
		Email:     user.Email,
		TourType:  user.TourType,
		Timestamp: time.Now(),
	})
	s.publish(ctx, models.EventBookingCreated, models.BookingCreatedEvent{
		BookingID:    booking.ID,
		UserID:       booking.UserID,
		TourID:       booking.TourID,
		Participants: booking.Participants,
		TotalPrice:   booking.TotalPrice,
		Timestamp:    time.Now(),
	})

	return &models.RegisterResponse{
		Message:    "Регистрация успешна! Бронь создана.",
		UserID:     user.ID,
		BookingID:  booking.ID,
		TotalPrice: booking.TotalPrice,
	}, nil
}

// resolveTour ищет тур по точному имени типа; отсутствующий создается с
// ценой 100 для "single-day" и 250 для остальных.
func (s *UserService) resolveTour(ctx context.Context, tourType string) (*models.Tour, error) {
	tour, err := s.tours.GetByName(ctx, tourType)
	if err != nil {
		return nil, fmt.Errorf("failed to get tour: %w", err)
	}
	if tour != nil {
		return tour, nil
	}

	price := float64(multiDayTourPrice)
	if tourType == models.DefaultTourType {
		price = singleDayTourPrice
	}

	tour = &models.Tour{
		Name:      tourType,
		Price:     price,
		Available: true,
	}

	if err := s.tours.Create(ctx, tour); err != nil {
		if repository.IsUniqueViolation(err) {
			// Параллельная регистрация успела создать тот же тур
			tour, err = s.tours.GetByName(ctx, tourType)
			if err != nil {
				return nil, fmt.Errorf("failed to get tour: %w", err)
			}
			if tour == nil {
				return nil, fmt.Errorf("tour %q missing after insert conflict", tourType)
			}
			return tour, nil
		}
		return nil, fmt.Errorf("failed to create tour: %w", err)
	}

	s.publish(ctx, models.EventTourCreated, models.TourCreatedEvent{
		TourID:    tour.ID,
		Name:      tour.Name,
		Price:     tour.Price,
		Implicit:  true,
		Timestamp: time.Now(),
	})

	return tour, nil
}

// Login проверяет пароль и возвращает пользователя вместе с его бронями.
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	// Неизвестный email и неверный пароль дают один и тот же ответ
	if user == nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	bookings, err := s.bookings.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	items := make([]models.UserBookingItem, 0, len(bookings))
	for _, booking := range bookings {
		tourName := models.UnknownTourName
		tour, err := s.tours.GetByID(ctx, booking.TourID)
		if err != nil {
			return nil, fmt.Errorf("failed to get tour: %w", err)
		}
		if tour != nil {
			tourName = tour.Name
		}

		items = append(items, models.UserBookingItem{
			ID:           booking.ID,
			Tour:         tourName,
			Participants: booking.Participants,
			TotalPrice:   booking.TotalPrice,
			Status:       booking.Status,
			CreatedAt:    booking.CreatedAt.Format(models.BookingTimeFormat),
		})
	}

	return &models.LoginResponse{
		Message:  "Вход выполнен успешно",
		UserID:   user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Bookings: items,
	}, nil
}

// List возвращает всех пользователей без паролей.
func (s *UserService) List(ctx context.Context) ([]models.UserSummary, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	result := make([]models.UserSummary, len(users))
	for i, user := range users {
		result[i] = models.UserSummary{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			Phone:     user.Phone,
			TourType:  user.TourType,
			CreatedAt: user.CreatedAt.Format(models.UserDateFormat),
		}
	}

	return result, nil
}

func (s *UserService) publish(ctx context.Context, subject string, data any) {
	if err := s.natsClient.Publish(subject, data); err != nil {
		slog.ErrorContext(ctx, "Failed to publish event", "error", err, "event_type", subject)
	}
}

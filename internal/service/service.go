package service

import (
	"context"

	"chernotour/internal/messaging"
	"chernotour/internal/models"
	"chernotour/internal/repository"
)

// Хранилища описаны интерфейсами, реализуются репозиториями поверх Postgres.

type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	List(ctx context.Context) ([]models.User, error)
}

type TourStore interface {
	GetByID(ctx context.Context, id int64) (*models.Tour, error)
	GetByName(ctx context.Context, name string) (*models.Tour, error)
	Create(ctx context.Context, tour *models.Tour) error
	List(ctx context.Context) ([]models.Tour, error)
}

type BookingStore interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByUserID(ctx context.Context, userID int64) ([]models.Booking, error)
	ListDetailed(ctx context.Context) ([]models.BookingDetails, error)
}

type Services struct {
	Users    *UserService
	Tours    *TourService
	Bookings *BookingService
}

func NewServices(repos *repository.Repositories, natsClient *messaging.NATSClient) *Services {
	return &Services{
		Users:    NewUserService(repos.Users, repos.Tours, repos.Bookings, natsClient),
		Tours:    NewTourService(repos.Tours, natsClient),
		Bookings: NewBookingService(repos.Bookings),
	}
}

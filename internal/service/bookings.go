package service

import (
	"context"
	"fmt"

	"chernotour/internal/models"
)

type BookingService struct {
	bookings BookingStore
}

func NewBookingService(bookings BookingStore) *BookingService {
	return &BookingService{bookings: bookings}
}

// List возвращает отчет по всем броням с данными пользователя и тура.
func (s *BookingService) List(ctx context.Context) ([]models.BookingSummary, error) {
	details, err := s.bookings.ListDetailed(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	result := make([]models.BookingSummary, len(details))
	for i, d := range details {
		result[i] = models.BookingSummary{
			ID:           d.ID,
			UserName:     d.UserName,
			UserEmail:    d.UserEmail,
			TourName:     d.TourName,
			Participants: d.Participants,
			TotalPrice:   d.TotalPrice,
			Status:       d.Status,
			CreatedAt:    d.CreatedAt.Format(models.BookingTimeFormat),
		}
	}

	return result, nil
}

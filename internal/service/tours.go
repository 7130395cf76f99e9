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
)

type TourService struct {
	tours      TourStore
	natsClient *messaging.NATSClient
}

func NewTourService(tours TourStore, natsClient *messaging.NATSClient) *TourService {
	return &TourService{
		tours:      tours,
		natsClient: natsClient,
	}
}

// Add создает тур с уникальным именем.
func (s *TourService) Add(ctx context.Context, req *models.AddTourRequest) (*models.AddTourResponse, error) {
	existing, err := s.tours.GetByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check tour name: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrTourExists
	}

	tour := &models.Tour{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Duration:    req.Duration,
		Available:   true,
	}

	if err := s.tours.Create(ctx, tour); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrTourExists
		}
		return nil, fmt.Errorf("failed to create tour: %w", err)
	}

	event := models.TourCreatedEvent{
		TourID:    tour.ID,
		Name:      tour.Name,
		Price:     tour.Price,
		Timestamp: time.Now(),
	}
	if err := s.natsClient.Publish(models.EventTourCreated, event); err != nil {
		slog.ErrorContext(ctx, "Failed to publish tour created event",
			"error", err, "tour_id", tour.ID)
	}

	return &models.AddTourResponse{
		Message: "Тур добавлен успешно",
		TourID:  tour.ID,
		Name:    tour.Name,
	}, nil
}

// List возвращает все туры, включая недоступные.
func (s *TourService) List(ctx context.Context) ([]models.ListToursResponseItem, error) {
	tours, err := s.tours.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tours: %w", err)
	}

	result := make([]models.ListToursResponseItem, len(tours))
	for i, tour := range tours {
		result[i] = models.ListToursResponseItem{
			ID:          tour.ID,
			Name:        tour.Name,
			Description: tour.Description,
			Price:       tour.Price,
			Duration:    tour.Duration,
			Available:   tour.Available,
		}
	}

	return result, nil
}

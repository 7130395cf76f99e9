package service

import (
	"context"
	"sync"
	"time"

	"chernotour/internal/models"

	"github.com/lib/pq"
)

// Общее in-memory хранилище для тестов сервисов. Уникальные индексы
// эмулируются кодом 23505, как их вернул бы lib/pq.

type memDB struct {
	mu       sync.Mutex
	users    []models.User
	tours    []models.Tour
	bookings []models.Booking
	now      time.Time
}

func newMemDB() *memDB {
	return &memDB{now: time.Date(2026, 5, 12, 10, 30, 0, 0, time.UTC)}
}

func uniqueViolation(constraint string) error {
	return &pq.Error{Code: "23505", Constraint: constraint}
}

type fakeUserStore struct{ db *memDB }

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, u := range s.db.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) Create(_ context.Context, user *models.User) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, u := range s.db.users {
		if u.Email == user.Email {
			return uniqueViolation("users_email_key")
		}
	}
	user.ID = int64(len(s.db.users) + 1)
	user.CreatedAt = s.db.now
	s.db.users = append(s.db.users, *user)
	return nil
}

func (s *fakeUserStore) List(_ context.Context) ([]models.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return append([]models.User(nil), s.db.users...), nil
}

type fakeTourStore struct{ db *memDB }

func (s *fakeTourStore) GetByID(_ context.Context, id int64) (*models.Tour, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, t := range s.db.tours {
		if t.ID == id {
			tour := t
			return &tour, nil
		}
	}
	return nil, nil
}

func (s *fakeTourStore) GetByName(_ context.Context, name string) (*models.Tour, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, t := range s.db.tours {
		if t.Name == name {
			tour := t
			return &tour, nil
		}
	}
	return nil, nil
}

func (s *fakeTourStore) Create(_ context.Context, tour *models.Tour) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, t := range s.db.tours {
		if t.Name == tour.Name {
			return uniqueViolation("tours_name_key")
		}
	}
	tour.ID = int64(len(s.db.tours) + 1)
	tour.CreatedAt = s.db.now
	s.db.tours = append(s.db.tours, *tour)
	return nil
}

func (s *fakeTourStore) List(_ context.Context) ([]models.Tour, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return append([]models.Tour(nil), s.db.tours...), nil
}

type fakeBookingStore struct{ db *memDB }

func (s *fakeBookingStore) Create(_ context.Context, booking *models.Booking) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	booking.ID = int64(len(s.db.bookings) + 1)
	booking.CreatedAt = s.db.now
	s.db.bookings = append(s.db.bookings, *booking)
	return nil
}

func (s *fakeBookingStore) GetByUserID(_ context.Context, userID int64) ([]models.Booking, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var result []models.Booking
	for _, b := range s.db.bookings {
		if b.UserID == userID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (s *fakeBookingStore) ListDetailed(_ context.Context) ([]models.BookingDetails, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var result []models.BookingDetails
	for _, b := range s.db.bookings {
		var user *models.User
		for i := range s.db.users {
			if s.db.users[i].ID == b.UserID {
				user = &s.db.users[i]
				break
			}
		}
		var tour *models.Tour
		for i := range s.db.tours {
			if s.db.tours[i].ID == b.TourID {
				tour = &s.db.tours[i]
				break
			}
		}
		// INNER JOIN: бронь без пользователя или тура выпадает из отчета
		if user == nil || tour == nil {
			continue
		}
		result = append(result, models.BookingDetails{
			ID:           b.ID,
			UserName:     user.Name,
			UserEmail:    user.Email,
			TourName:     tour.Name,
			Participants: b.Participants,
			TotalPrice:   b.TotalPrice,
			Status:       b.Status,
			CreatedAt:    b.CreatedAt,
		})
	}
	return result, nil
}

// raceUserStore эмулирует проигранную гонку проверка-затем-вставка: проверка
// email ничего не находит, а вставка упирается в уникальный индекс.
type raceUserStore struct{ fakeUserStore }

func (s *raceUserStore) GetByEmail(context.Context, string) (*models.User, error) {
	return nil, nil
}

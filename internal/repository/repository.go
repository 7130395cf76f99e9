package repository

import (
	"errors"

	"chernotour/internal/database"

	"github.com/lib/pq"
)

type Repositories struct {
	Users    *UserRepository
	Tours    *TourRepository
	Bookings *BookingRepository
}

func NewRepositories(db *database.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(db),
		Tours:    NewTourRepository(db),
		Bookings: NewBookingRepository(db),
	}
}

// IsUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation. Уникальный индекс - единственный надежный арбитр для гонок
// проверка-затем-вставка.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

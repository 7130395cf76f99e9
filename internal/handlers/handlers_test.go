package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"chernotour/internal/messaging"
	"chernotour/internal/models"
	"chernotour/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory хранилище вместо Postgres; поведение уникальных индексов
// эмулируется кодом 23505.

type memDB struct {
	mu       sync.Mutex
	users    []models.User
	tours    []models.Tour
	bookings []models.Booking
	now      time.Time
}

type memUserStore struct{ db *memDB }

func (s *memUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
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

func (s *memUserStore) Create(_ context.Context, user *models.User) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, u := range s.db.users {
		if u.Email == user.Email {
			return &pq.Error{Code: "23505", Constraint: "users_email_key"}
		}
	}
	user.ID = int64(len(s.db.users) + 1)
	user.CreatedAt = s.db.now
	s.db.users = append(s.db.users, *user)
	return nil
}

func (s *memUserStore) List(_ context.Context) ([]models.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return append([]models.User(nil), s.db.users...), nil
}

type memTourStore struct{ db *memDB }

func (s *memTourStore) GetByID(_ context.Context, id int64) (*models.Tour, error) {
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

func (s *memTourStore) GetByName(_ context.Context, name string) (*models.Tour, error) {
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

func (s *memTourStore) Create(_ context.Context, tour *models.Tour) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, t := range s.db.tours {
		if t.Name == tour.Name {
			return &pq.Error{Code: "23505", Constraint: "tours_name_key"}
		}
	}
	tour.ID = int64(len(s.db.tours) + 1)
	tour.CreatedAt = s.db.now
	s.db.tours = append(s.db.tours, *tour)
	return nil
}

func (s *memTourStore) List(_ context.Context) ([]models.Tour, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return append([]models.Tour(nil), s.db.tours...), nil
}

type memBookingStore struct{ db *memDB }

func (s *memBookingStore) Create(_ context.Context, booking *models.Booking) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	booking.ID = int64(len(s.db.bookings) + 1)
	booking.CreatedAt = s.db.now
	s.db.bookings = append(s.db.bookings, *booking)
	return nil
}

func (s *memBookingStore) GetByUserID(_ context.Context, userID int64) ([]models.Booking, error) {
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

func (s *memBookingStore) ListDetailed(_ context.Context) ([]models.BookingDetails, error) {
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

func setupRouter(t *testing.T, staticDir string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := &memDB{now: time.Date(2026, 5, 12, 10, 30, 0, 0, time.UTC)}
	nats := messaging.Disabled()
	services := &service.Services{
		Users:    service.NewUserService(&memUserStore{db: db}, &memTourStore{db: db}, &memBookingStore{db: db}, nats),
		Tours:    service.NewTourService(&memTourStore{db: db}, nats),
		Bookings: service.NewBookingService(&memBookingStore{db: db}),
	}

	h := NewHandlers(services, nil, staticDir)

	r := gin.New()
	r.GET("/", h.Index)
	r.GET("/about", h.About)
	r.GET("/contacts", h.Contacts)

	api := r.Group("/api")
	{
		api.POST("/register", h.Register)
		api.POST("/login", h.Login)
		api.GET("/users", h.ListUsers)
		api.GET("/bookings", h.ListBookings)
		api.POST("/add_tour", h.AddTour)
		api.GET("/tours", h.ListTours)
	}

	return r
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerForm() url.Values {
	return url.Values{
		"name":         {"A"},
		"email":        {"a@x.com"},
		"phone":        {"1"},
		"password":     {"p"},
		"tour_type":    {"single-day"},
		"participants": {"2"},
	}
}

func TestRegisterAndLogin(t *testing.T) {
	r := setupRouter(t, t.TempDir())

	w := postForm(r, "/api/register", registerForm())
	require.Equal(t, http.StatusCreated, w.Code)

	var registered models.RegisterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registered))
	assert.Equal(t, float64(200), registered.TotalPrice)
	assert.NotZero(t, registered.UserID)
	assert.NotZero(t, registered.BookingID)

	w = postForm(r, "/api/login", url.Values{
		"email":    {"a@x.com"},
		"password": {"p"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var login models.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	assert.Equal(t, registered.UserID, login.UserID)
	require.Len(t, login.Bookings, 1)
	assert.Equal(t, "single-day", login.Bookings[0].Tour)
	assert.Equal(t, 2, login.Bookings[0].Participants)
	assert.Equal(t, float64(200), login.Bookings[0].TotalPrice)
	assert.Equal(t, "подтверждено", login.Bookings[0].Status)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := setupRouter(t, t.TempDir())

	w := postForm(r, "/api/register", registerForm())
	require.Equal(t, http.StatusCreated, w.Code)

	w = postForm(r, "/api/register", registerForm())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email")
}

func TestRegisterMissingRequiredField(t *testing.T) {
	r := setupRouter(t, t.TempDir())

	form := registerForm()
	form.Del("password")

	w := postForm(r, "/api/register", form)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginInvalidCredentials(t *testing.T) {
	r := setupRouter(t, t.TempDir())

	w := postForm(r, "/api/register", registerForm())
	require.Equal(t, http.StatusCreated, w.Code)

	w = postForm(r, "/api/login", url.Values{
		"email":    {"a@x.com"},
		"password": {"wrong"},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	wrongPassword := w.Body.String()

	// Несуществующий email дает тот же ответ, что и неверный пароль
	w = postForm(r, "/api/login", url.Values{
		"email":    {"nobody@x.com"},
		"password": {"p"},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, wrongPassword, w.Body.String())
}

func TestListUsersOmitsPassword(t *testing.T) {
	r := setupRouter(t, t.TempDir())

	w := postForm(r, "/api/register", registerForm())
	require.Equal(t, http.StatusCreated, w.Code)

	w = get(r, "/api/users")
	require.Equal(t, http.StatusOK, w.Code)

	var users []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 1)

	assert.NotContains(t, users[0], "password")
	assert.Equal(t, "A", users[0]["name"])
	assert.Equal(t, "a@x.com", users[0]["email"])
	assert.Equal(t, "12.05.2026", users[0]["created_at"])
}

func TestAddTourAndList(t *testing.T) {
	r := setupRouter(t, t.TempDir())

	w := postForm(r, "/api/add_tour", url.Values{
		"name":        {"Припять"},
		"description": {"Двухдневная поездка"},
		"price":       {"300"},
		"duration":    {"2 дня"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var added models.AddTourResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &added))
	assert.Equal(t, "Припять", added.Name)
	assert.NotZero(t, added.TourID)

	// Повторное имя - конфликт
	w = postForm(r, "/api/add_tour", url.Values{
		"name":        {"Припять"},
		"description": {"другое описание"},
		"price":       {"999"},
		"duration":    {"3 дня"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "существует")

	w = get(r, "/api/tours")
	require.Equal(t, http.StatusOK, w.Code)

	var tours []models.ListToursResponseItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tours))
	require.Len(t, tours, 1)
	assert.Equal(t, float64(300), tours[0].Price)
	assert.True(t, tours[0].Available)
}

func TestAddTourNegativePrice(t *testing.T) {
	r := setupRouter(t, t.TempDir())

	w := postForm(r, "/api/add_tour", url.Values{
		"name":        {"Припять"},
		"description": {"поездка"},
		"price":       {"-5"},
		"duration":    {"2 дня"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddTourMissingFields(t *testing.T) {
	r := setupRouter(t, t.TempDir())

	// Одного имени недостаточно: все четыре поля формы обязательны
	w := postForm(r, "/api/add_tour", url.Values{
		"name": {"Припять"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	form := url.Values{
		"name":        {"Припять"},
		"description": {"поездка"},
		"duration":    {"2 дня"},
	}
	w = postForm(r, "/api/add_tour", form)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Тур не должен был создаться
	w = get(r, "/api/tours")
	require.Equal(t, http.StatusOK, w.Code)
	var tours []models.ListToursResponseItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tours))
	assert.Empty(t, tours)

	// Нулевая цена - это присутствующее поле, а не отсутствующее
	form.Set("price", "0")
	w = postForm(r, "/api/add_tour", form)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestListBookingsReport(t *testing.T) {
	r := setupRouter(t, t.TempDir())

	w := postForm(r, "/api/register", registerForm())
	require.Equal(t, http.StatusCreated, w.Code)

	second := registerForm()
	second.Set("email", "b@x.com")
	second.Set("name", "B")
	second.Set("tour_type", "экстремальный")
	second.Set("participants", "1")
	w = postForm(r, "/api/register", second)
	require.Equal(t, http.StatusCreated, w.Code)

	w = get(r, "/api/bookings")
	require.Equal(t, http.StatusOK, w.Code)

	var report []models.BookingSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	require.Len(t, report, 2)

	assert.Equal(t, "A", report[0].UserName)
	assert.Equal(t, "single-day", report[0].TourName)
	assert.Equal(t, float64(200), report[0].TotalPrice)
	assert.Equal(t, "B", report[1].UserName)
	assert.Equal(t, "экстремальный", report[1].TourName)
	assert.Equal(t, float64(250), report[1].TotalPrice)
	assert.Equal(t, "12.05.2026 10:30", report[1].CreatedAt)
}

func TestStaticPagesFallback(t *testing.T) {
	r := setupRouter(t, t.TempDir())

	w := get(r, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Главная страница")

	w = get(r, "/about")
	assert.Contains(t, w.Body.String(), "О поездках")

	w = get(r, "/contacts")
	assert.Contains(t, w.Body.String(), "Контакты")
}

func TestStaticPageFromDisk(t *testing.T) {
	dir := t.TempDir()
	content := "<html><body>Добро пожаловать</body></html>"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte(content), 0o644))

	r := setupRouter(t, dir)

	w := get(r, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, content, w.Body.String())
}

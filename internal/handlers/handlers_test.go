package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joshua-takyi/tixgate/internal/helpers"
	"github.com/joshua-takyi/tixgate/internal/middleware"
	"github.com/joshua-takyi/tixgate/internal/models"
	"github.com/joshua-takyi/tixgate/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	repo   *models.Repo
	router *gin.Engine
}

// newTestEnv wires the order and auth surface onto a throwaway sqlite
// database, mirroring how the route table is built in production.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("JWT_SECRET", "handler-test-secret")
	gin.SetMode(gin.TestMode)

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Venue{}, &models.Event{}, &models.TicketType{},
		&models.Order{}, &models.OrderItem{}, &models.Ticket{},
		&models.Payment{}, &models.SupportTicket{}, &models.Favourite{},
	))

	repo := models.NewRepo(db)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	userService := services.NewUserService(repo)
	orderService := services.NewOrderService(repo)
	ticketService := services.NewTicketService(repo)
	paymentService := services.NewPaymentService(repo, repo, "whsec_test")

	r := gin.New()
	r.POST("/api/v1/register", Register(userService))
	r.POST("/api/v1/login", Login(userService))
	r.POST("/api/v1/verify", Verify(userService))

	protected := r.Group("/api/v1")
	protected.Use(middleware.AuthMiddleware(log))
	protected.GET("/users/:id", GetUser(userService))
	protected.POST("/orders", CreateOrder(orderService))
	protected.GET("/orders/:id", GetOrder(orderService))
	protected.POST("/orders/:id/cancel", CancelOrder(orderService))
	protected.GET("/payments/:id", GetPayment(paymentService, orderService))

	host := protected.Group("/")
	host.Use(middleware.RequireRole("host"))
	host.POST("/tickets/:id/scan", ScanTicket(ticketService))

	return &testEnv{repo: repo, router: r}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// tokenFor issues a JWT the way Login would, without going through the
// password flow.
func tokenFor(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := helpers.GenerateToken(user.ID.String(), user.Email, user.Username, user.Role)
	require.NoError(t, err)
	return token
}

func TestRegisterVerifyLoginFlow(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/register", "", gin.H{
		"username": "concertgoer",
		"email":    "goer@test.dev",
		"password": "Sup3r!Secret",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Weak passwords are rejected before anything is stored.
	w = env.do(t, http.MethodPost, "/api/v1/register", "", gin.H{
		"username": "lazy",
		"email":    "lazy@test.dev",
		"password": "password",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Login before verification is refused.
	w = env.do(t, http.MethodPost, "/api/v1/login", "", gin.H{
		"email":    "goer@test.dev",
		"password": "Sup3r!Secret",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	var stored models.User
	require.NoError(t, env.repo.DB().First(&stored, "email = ?", "goer@test.dev").Error)

	w = env.do(t, http.MethodPost, "/api/v1/verify", "", gin.H{
		"email": "goer@test.dev",
		"token": stored.VerificationToken,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.do(t, http.MethodPost, "/api/v1/login", "", gin.H{
		"email":    "goer@test.dev",
		"password": "Sup3r!Secret",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Header().Get("Set-Cookie"), "access_token=")

	// Wrong password is a 401, not a 500.
	w = env.do(t, http.MethodPost, "/api/v1/login", "", gin.H{
		"email":    "goer@test.dev",
		"password": "Wr0ng!Secret",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/v1/users/"+uuid.NewString(), "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/users/"+uuid.NewString(), "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func seedEventForHandlers(t *testing.T, env *testEnv) (*models.Event, *models.User) {
	t.Helper()

	host, err := env.repo.CreateUser(t.Context(), &models.User{
		Username: "hosty",
		Email:    uuid.NewString() + "@host.test",
		Password: "hash",
		Role:     models.RoleHost,
	})
	require.NoError(t, err)

	venue, err := env.repo.CreateVenue(t.Context(), &models.Venue{
		HostId:   host.ID,
		Name:     "Test Hall",
		Address:  "1 Test Way",
		City:     "Accra",
		Capacity: 300,
	})
	require.NoError(t, err)

	event, err := env.repo.CreateEvent(t.Context(), &models.Event{
		VenueId:   venue.ID,
		HostId:    host.ID,
		Title:     "Launch Night",
		Category:  "music",
		StartTime: time.Now().Add(24 * time.Hour),
		TicketTypes: []models.TicketType{
			{Name: "General", Price: decimal.RequireFromString("12.00"), QuantityAvailable: 2},
		},
	})
	require.NoError(t, err)
	return event, host
}

func TestOrderAndScanOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	event, host := seedEventForHandlers(t, env)

	buyer, err := env.repo.CreateUser(t.Context(), &models.User{
		Username:   "buyer",
		Email:      "buyer@test.dev",
		Password:   "hash",
		IsVerified: true,
	})
	require.NoError(t, err)
	buyerToken := tokenFor(t, buyer)

	w := env.do(t, http.MethodPost, "/api/v1/orders", buyerToken, gin.H{
		"items": []gin.H{
			{"ticket_type_id": event.TicketTypes[0].ID.String(), "quantity": 2},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data models.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Len(t, created.Data.Items, 1)
	require.Len(t, created.Data.Items[0].Tickets, 2)

	// Inventory is exhausted now; the next purchase conflicts.
	w = env.do(t, http.MethodPost, "/api/v1/orders", buyerToken, gin.H{
		"items": []gin.H{
			{"ticket_type_id": event.TicketTypes[0].ID.String(), "quantity": 1},
		},
	})
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	// The buyer cannot scan; the host can, exactly once.
	ticketID := created.Data.Items[0].Tickets[0].ID.String()
	scanPath := fmt.Sprintf("/api/v1/tickets/%s/scan", ticketID)

	w = env.do(t, http.MethodPost, scanPath, buyerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	hostToken := tokenFor(t, host)
	w = env.do(t, http.MethodPost, scanPath, hostToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.do(t, http.MethodPost, scanPath, hostToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
}

func TestGetOrderOwnership(t *testing.T) {
	env := newTestEnv(t)

	event, _ := seedEventForHandlers(t, env)

	buyer, err := env.repo.CreateUser(t.Context(), &models.User{
		Username: "buyer", Email: "buyer@test.dev", Password: "hash", IsVerified: true,
	})
	require.NoError(t, err)
	stranger, err := env.repo.CreateUser(t.Context(), &models.User{
		Username: "stranger", Email: "stranger@test.dev", Password: "hash", IsVerified: true,
	})
	require.NoError(t, err)

	order, err := env.repo.CreateOrder(t.Context(), buyer.ID, []models.OrderLine{
		{TicketTypeId: event.TicketTypes[0].ID, Quantity: 1},
	})
	require.NoError(t, err)

	w := env.do(t, http.MethodGet, "/api/v1/orders/"+order.ID.String(), tokenFor(t, buyer), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/orders/"+order.ID.String(), tokenFor(t, stranger), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/orders/"+uuid.NewString(), tokenFor(t, buyer), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPaymentOwnership(t *testing.T) {
	env := newTestEnv(t)

	event, _ := seedEventForHandlers(t, env)

	buyer, err := env.repo.CreateUser(t.Context(), &models.User{
		Username: "buyer", Email: "buyer@test.dev", Password: "hash", IsVerified: true,
	})
	require.NoError(t, err)
	stranger, err := env.repo.CreateUser(t.Context(), &models.User{
		Username: "stranger", Email: "stranger@test.dev", Password: "hash", IsVerified: true,
	})
	require.NoError(t, err)

	order, err := env.repo.CreateOrder(t.Context(), buyer.ID, []models.OrderLine{
		{TicketTypeId: event.TicketTypes[0].ID, Quantity: 1},
	})
	require.NoError(t, err)

	payment, err := env.repo.CreatePayment(t.Context(), &models.Payment{
		OrderId:       order.ID,
		Amount:        order.TotalAmount,
		Status:        models.PaymentPending,
		Method:        "card",
		TransactionID: "pi_test_123",
	})
	require.NoError(t, err)

	w := env.do(t, http.MethodGet, "/api/v1/payments/"+payment.ID.String(), tokenFor(t, buyer), nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.do(t, http.MethodGet, "/api/v1/payments/"+payment.ID.String(), tokenFor(t, stranger), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

// Cancelling an order that was already paid is a conflict, not a missing
// order.
func TestCancelPaidOrderConflicts(t *testing.T) {
	env := newTestEnv(t)

	event, _ := seedEventForHandlers(t, env)

	buyer, err := env.repo.CreateUser(t.Context(), &models.User{
		Username: "buyer", Email: "buyer@test.dev", Password: "hash", IsVerified: true,
	})
	require.NoError(t, err)

	order, err := env.repo.CreateOrder(t.Context(), buyer.ID, []models.OrderLine{
		{TicketTypeId: event.TicketTypes[0].ID, Quantity: 1},
	})
	require.NoError(t, err)
	require.NoError(t, env.repo.SetOrderStatus(t.Context(), order.ID, models.OrderPendingPayment, models.OrderPaid))

	w := env.do(t, http.MethodPost, "/api/v1/orders/"+order.ID.String()+"/cancel", tokenFor(t, buyer), nil)
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
}

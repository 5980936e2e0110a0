package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"events-backend/internal/domains/booking/model"
	cartmodel "events-backend/internal/domains/cart/model"
	"events-backend/internal/shared"
)

// fakeBookingService records the call the handler makes.
type fakeBookingService struct {
	createErr    error
	setStatusErr error

	gotActor    *shared.Identity
	gotStatus   model.Status
	gotOverride bool

	listed []model.Booking
}

func (f *fakeBookingService) CreateBooking(ctx context.Context, actor *shared.Identity, req model.CreateBookingRequest) (*model.Booking, error) {
	f.gotActor = actor
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &model.Booking{
		ID:        uuid.New(),
		UserEmail: actor.Email,
		Price:     req.Price,
		Status:    model.StatusPending,
		Lines:     req.Lines,
	}, nil
}

func (f *fakeBookingService) ListBookings(ctx context.Context, actor *shared.Identity) ([]model.Booking, error) {
	f.gotActor = actor
	return f.listed, nil
}

func (f *fakeBookingService) GetBooking(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	return nil, model.ErrBookingNotFound
}

func (f *fakeBookingService) ConfirmByIntent(ctx context.Context, intentRef string) (*model.Booking, error) {
	return nil, model.ErrBookingNotFound
}

func (f *fakeBookingService) SetStatus(ctx context.Context, actor *shared.Identity, id uuid.UUID, status model.Status, override bool) (*model.Booking, error) {
	f.gotActor = actor
	f.gotStatus = status
	f.gotOverride = override
	if f.setStatusErr != nil {
		return nil, f.setStatusErr
	}
	return &model.Booking{ID: id, Status: status}, nil
}

func identityStub(email, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if email != "" {
			c.Set("userID", uuid.New())
			c.Set("email", email)
			c.Set("role", role)
		}
		c.Next()
	}
}

func setupRouter(svc *fakeBookingService, email, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(svc)

	router := gin.New()
	router.Use(identityStub(email, role))
	router.POST("/bookings", h.CreateBooking)
	router.GET("/bookings", h.ListBookings)
	router.PUT("/bookings/:id", h.SetStatus)
	return router
}

func validBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(model.CreateBookingRequest{
		Lines: []cartmodel.LineItem{
			{EventID: "E1", Title: "Jazz Night", Quantity: 2, LineTotal: decimal.NewFromInt(40)},
		},
		Price: decimal.NewFromInt(40),
	})
	require.NoError(t, err)
	return body
}

func TestCreateBookingEndpoint(t *testing.T) {
	t.Run("unauthenticated request gets 401", func(t *testing.T) {
		router := setupRouter(&fakeBookingService{}, "", "")

		req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(validBody(t)))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid snapshot gets 201", func(t *testing.T) {
		svc := &fakeBookingService{}
		router := setupRouter(svc, "ann@example.com", shared.RoleCustomer)

		req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(validBody(t)))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, svc.gotActor)
		assert.Equal(t, "ann@example.com", svc.gotActor.Email)
	})

	t.Run("empty snapshot gets 400", func(t *testing.T) {
		router := setupRouter(&fakeBookingService{}, "ann@example.com", shared.RoleCustomer)

		body, err := json.Marshal(model.CreateBookingRequest{Lines: []cartmodel.LineItem{}})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListBookingsEndpoint(t *testing.T) {
	svc := &fakeBookingService{
		listed: []model.Booking{{ID: uuid.New(), UserEmail: "ann@example.com"}},
	}
	router := setupRouter(svc, "ann@example.com", shared.RoleCustomer)

	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.gotActor)
	assert.Equal(t, "ann@example.com", svc.gotActor.Email)
}

func TestSetStatusEndpoint(t *testing.T) {
	id := uuid.New()

	t.Run("raw JSON string body", func(t *testing.T) {
		svc := &fakeBookingService{}
		router := setupRouter(svc, "ops@example.com", shared.RoleAdmin)

		req := httptest.NewRequest(http.MethodPut, "/bookings/"+id.String(), bytes.NewReader([]byte(`"cancelled"`)))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, model.StatusCancelled, svc.gotStatus)
		assert.False(t, svc.gotOverride)
	})

	t.Run("plain text body", func(t *testing.T) {
		svc := &fakeBookingService{}
		router := setupRouter(svc, "ops@example.com", shared.RoleAdmin)

		req := httptest.NewRequest(http.MethodPut, "/bookings/"+id.String(), bytes.NewReader([]byte(`cancelled`)))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, model.StatusCancelled, svc.gotStatus)
	})

	t.Run("structured body with override flag", func(t *testing.T) {
		svc := &fakeBookingService{}
		router := setupRouter(svc, "ops@example.com", shared.RoleAdmin)

		req := httptest.NewRequest(http.MethodPut, "/bookings/"+id.String(),
			bytes.NewReader([]byte(`{"status":"paid","override":true}`)))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, model.StatusPaid, svc.gotStatus)
		assert.True(t, svc.gotOverride)
	})

	t.Run("override query parameter", func(t *testing.T) {
		svc := &fakeBookingService{}
		router := setupRouter(svc, "ops@example.com", shared.RoleAdmin)

		req := httptest.NewRequest(http.MethodPut, "/bookings/"+id.String()+"?override=true",
			bytes.NewReader([]byte(`"paid"`)))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, svc.gotOverride)
	})

	t.Run("unknown booking gets 404", func(t *testing.T) {
		svc := &fakeBookingService{setStatusErr: model.ErrBookingNotFound}
		router := setupRouter(svc, "ops@example.com", shared.RoleAdmin)

		req := httptest.NewRequest(http.MethodPut, "/bookings/"+id.String(), bytes.NewReader([]byte(`"paid"`)))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid transition gets 422", func(t *testing.T) {
		svc := &fakeBookingService{setStatusErr: model.ErrInvalidTransition}
		router := setupRouter(svc, "ops@example.com", shared.RoleAdmin)

		req := httptest.NewRequest(http.MethodPut, "/bookings/"+id.String(), bytes.NewReader([]byte(`"paid"`)))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	bookingmodel "events-backend/internal/domains/booking/model"
	"events-backend/internal/domains/payment/model"
	"events-backend/internal/shared"
)

type fakePaymentService struct {
	err       error
	gotID     uuid.UUID
	clientSec string
}

func (f *fakePaymentService) CreateIntent(ctx context.Context, bookingID uuid.UUID) (*model.CreateIntentResponse, error) {
	f.gotID = bookingID
	if f.err != nil {
		return nil, f.err
	}
	return &model.CreateIntentResponse{ClientSecret: f.clientSec}, nil
}

type fakeConfirmService struct {
	err       error
	gotRef    string
	confirmed *bookingmodel.Booking
}

func (f *fakeConfirmService) CreateBooking(ctx context.Context, actor *shared.Identity, req bookingmodel.CreateBookingRequest) (*bookingmodel.Booking, error) {
	return nil, bookingmodel.ErrUnauthorized
}

func (f *fakeConfirmService) ListBookings(ctx context.Context, actor *shared.Identity) ([]bookingmodel.Booking, error) {
	return nil, nil
}

func (f *fakeConfirmService) GetBooking(ctx context.Context, id uuid.UUID) (*bookingmodel.Booking, error) {
	return nil, bookingmodel.ErrBookingNotFound
}

func (f *fakeConfirmService) ConfirmByIntent(ctx context.Context, intentRef string) (*bookingmodel.Booking, error) {
	f.gotRef = intentRef
	if f.err != nil {
		return nil, f.err
	}
	return f.confirmed, nil
}

func (f *fakeConfirmService) SetStatus(ctx context.Context, actor *shared.Identity, id uuid.UUID, status bookingmodel.Status, override bool) (*bookingmodel.Booking, error) {
	return nil, bookingmodel.ErrForbidden
}

func setupRouter(payments *fakePaymentService, bookings *fakeConfirmService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPaymentHandler(payments, bookings)

	router := gin.New()
	router.POST("/payment-intents/:bookingId", h.CreateIntent)
	router.PUT("/confirm/:intentRef", h.ConfirmByIntent)
	return router
}

func TestCreateIntentEndpoint(t *testing.T) {
	t.Run("returns the client secret", func(t *testing.T) {
		id := uuid.New()
		payments := &fakePaymentService{clientSec: "pi_123_secret"}
		router := setupRouter(payments, &fakeConfirmService{})

		req := httptest.NewRequest(http.MethodPost, "/payment-intents/"+id.String(), nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"clientSecret":"pi_123_secret"}`, rec.Body.String())
		assert.Equal(t, id, payments.gotID)
	})

	t.Run("unknown booking gets 404", func(t *testing.T) {
		payments := &fakePaymentService{err: bookingmodel.ErrBookingNotFound}
		router := setupRouter(payments, &fakeConfirmService{})

		req := httptest.NewRequest(http.MethodPost, "/payment-intents/"+uuid.New().String(), nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("gateway outage gets 500 with upstream code", func(t *testing.T) {
		payments := &fakePaymentService{err: model.ErrGatewayUnavailable}
		router := setupRouter(payments, &fakeConfirmService{})

		req := httptest.NewRequest(http.MethodPost, "/payment-intents/"+uuid.New().String(), nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "UPSTREAM_ERROR")
	})

	t.Run("malformed booking id gets 400", func(t *testing.T) {
		router := setupRouter(&fakePaymentService{}, &fakeConfirmService{})

		req := httptest.NewRequest(http.MethodPost, "/payment-intents/not-a-uuid", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestConfirmEndpoint(t *testing.T) {
	t.Run("advances the booking", func(t *testing.T) {
		bookings := &fakeConfirmService{
			confirmed: &bookingmodel.Booking{ID: uuid.New(), Status: bookingmodel.StatusConfirming},
		}
		router := setupRouter(&fakePaymentService{}, bookings)

		req := httptest.NewRequest(http.MethodPut, "/confirm/pi_123", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "pi_123", bookings.gotRef)
		assert.Contains(t, rec.Body.String(), string(bookingmodel.StatusConfirming))
	})

	t.Run("unknown intent gets 404", func(t *testing.T) {
		bookings := &fakeConfirmService{err: bookingmodel.ErrBookingNotFound}
		router := setupRouter(&fakePaymentService{}, bookings)

		req := httptest.NewRequest(http.MethodPut, "/confirm/pi_missing", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

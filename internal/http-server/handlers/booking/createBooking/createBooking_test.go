package createBooking

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"artistBooker/internal/http-server/handlers/booking/createBooking/mocks"
	"artistBooker/internal/lib/logger/handlers/slogdiscard"
	"artistBooker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	lastWeek := time.Now().AddDate(0, 0, -7).Format("2006-01-02")

	imageURL := "http://x/q.jpg"
	address := "Rua A, 100"
	amount := models.Money(1500.5)

	savedBooking := &models.Booking{
		ID:             42,
		ContractorName: "Ana Silva",
		ArtistID:       "123",
		ArtistName:     "Queen",
		ArtistImageURL: &imageURL,
		EventDate:      models.DateOf(time.Now().AddDate(0, 0, 1)),
		CacheAmount:    &amount,
		EventAddress:   &address,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(saver *mocks.BookingSaver)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			requestBody: fmt.Sprintf(`{
				"contractor_name": "Ana Silva",
				"artist_id": "123",
				"artist_name": "Queen",
				"artist_image_url": "http://x/q.jpg",
				"event_date": "%s",
				"cache_amount": 1500.5,
				"event_address": "Rua A, 100"
			}`, tomorrow),
			mockSetup: func(saver *mocks.BookingSaver) {
				saver.On("SaveBooking", mock.Anything, mock.MatchedBy(func(in models.NewBooking) bool {
					return in.ContractorName == "Ana Silva" &&
						in.ArtistID == "123" &&
						in.ArtistName == "Queen" &&
						in.CacheAmount != nil && *in.CacheAmount == 1500.5
				})).Return(savedBooking, nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"id":42`)
				assert.Contains(t, body, `"cache_amount":1500.50`)
				assert.Contains(t, body, `"contractor_name":"Ana Silva"`)
			},
		},
		{
			name: "Success without optional fields",
			requestBody: fmt.Sprintf(`{
				"contractor_name": "Ana Silva",
				"artist_id": "123",
				"artist_name": "Queen",
				"event_date": "%s"
			}`, tomorrow),
			mockSetup: func(saver *mocks.BookingSaver) {
				saver.On("SaveBooking", mock.Anything, mock.MatchedBy(func(in models.NewBooking) bool {
					return in.ArtistImageURL == nil && in.CacheAmount == nil && in.EventAddress == nil
				})).Return(savedBooking, nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"id":42`)
			},
		},
		{
			name: "Yesterday is still accepted",
			requestBody: fmt.Sprintf(`{
				"contractor_name": "Ana Silva",
				"artist_id": "123",
				"artist_name": "Queen",
				"event_date": "%s"
			}`, yesterday),
			mockSetup: func(saver *mocks.BookingSaver) {
				saver.On("SaveBooking", mock.Anything, mock.Anything).Return(savedBooking, nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"id":42`)
			},
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			mockSetup:      func(saver *mocks.BookingSaver) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"failed to decode request"}`, body)
			},
		},
		{
			name: "Missing contractor_name",
			requestBody: fmt.Sprintf(`{
				"artist_id": "123",
				"artist_name": "Queen",
				"event_date": "%s"
			}`, tomorrow),
			mockSetup:      func(saver *mocks.BookingSaver) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "ContractorName")
			},
		},
		{
			name: "Too short contractor_name",
			requestBody: fmt.Sprintf(`{
				"contractor_name": "An",
				"artist_id": "123",
				"artist_name": "Queen",
				"event_date": "%s"
			}`, tomorrow),
			mockSetup:      func(saver *mocks.BookingSaver) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "ContractorName")
			},
		},
		{
			name: "Missing artist_id",
			requestBody: fmt.Sprintf(`{
				"contractor_name": "Ana Silva",
				"artist_name": "Queen",
				"event_date": "%s"
			}`, tomorrow),
			mockSetup:      func(saver *mocks.BookingSaver) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "ArtistID")
			},
		},
		{
			name: "Missing event_date",
			requestBody: `{
				"contractor_name": "Ana Silva",
				"artist_id": "123",
				"artist_name": "Queen"
			}`,
			mockSetup:      func(saver *mocks.BookingSaver) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "EventDate")
			},
		},
		{
			name: "Event date before yesterday",
			requestBody: fmt.Sprintf(`{
				"contractor_name": "Ana Silva",
				"artist_id": "123",
				"artist_name": "Queen",
				"event_date": "%s"
			}`, lastWeek),
			mockSetup:      func(saver *mocks.BookingSaver) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"event_date must not be before yesterday"}`, body)
			},
		},
		{
			name: "Negative cache_amount",
			requestBody: fmt.Sprintf(`{
				"contractor_name": "Ana Silva",
				"artist_id": "123",
				"artist_name": "Queen",
				"event_date": "%s",
				"cache_amount": -10
			}`, tomorrow),
			mockSetup:      func(saver *mocks.BookingSaver) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "CacheAmount")
			},
		},
		{
			name: "Internal server error",
			requestBody: fmt.Sprintf(`{
				"contractor_name": "Ana Silva",
				"artist_id": "123",
				"artist_name": "Queen",
				"event_date": "%s"
			}`, tomorrow),
			mockSetup: func(saver *mocks.BookingSaver) {
				saver.On("SaveBooking", mock.Anything, mock.Anything).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"failed to create booking"}`, body)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockSaver := mocks.NewBookingSaver(t)
			tc.mockSetup(mockSaver)

			handler := New(logger, mockSaver)

			req, err := http.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			tc.checkBody(t, rr.Body.String())
		})
	}
}

func TestCreateBookingResponseShape(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	mockSaver := mocks.NewBookingSaver(t)

	amount := models.Money(2000)
	booking := &models.Booking{
		ID:             7,
		ContractorName: "Ana Silva",
		ArtistID:       "123",
		ArtistName:     "Queen",
		EventDate:      models.DateOf(time.Now().AddDate(0, 0, 1)),
		CacheAmount:    &amount,
	}

	mockSaver.On("SaveBooking", mock.Anything, mock.Anything).Return(booking, nil)

	handler := New(logger, mockSaver)

	requestBody := fmt.Sprintf(`{
		"contractor_name": "Ana Silva",
		"artist_id": "123",
		"artist_name": "Queen",
		"event_date": "%s",
		"cache_amount": 2000
	}`, time.Now().AddDate(0, 0, 1).Format("2006-01-02"))

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString(requestBody))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var got models.Booking
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))

	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "Ana Silva", got.ContractorName)
	require.NotNil(t, got.CacheAmount)
	assert.Equal(t, models.Money(2000), *got.CacheAmount)
	assert.Nil(t, got.ArtistImageURL)
}

package getAllBookings

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"artistBooker/internal/http-server/handlers/booking/getAllBookings/mocks"
	"artistBooker/internal/lib/logger/handlers/slogdiscard"
	"artistBooker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func makeBookings(n int) []models.Booking {
	bookings := make([]models.Booking, 0, n)
	for i := 0; i < n; i++ {
		bookings = append(bookings, models.Booking{
			ID:             int64(n - i),
			ContractorName: fmt.Sprintf("Contractor %d", n-i),
			ArtistID:       "123",
			ArtistName:     "Queen",
			EventDate:      models.DateOf(time.Now().AddDate(0, 0, 1)),
		})
	}
	return bookings
}

func TestGetAllBookingsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		url            string
		perPage        int
		mockSetup      func(lister *mocks.BookingLister)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:    "First page of many",
			url:     "/api/bookings",
			perPage: 10,
			mockSetup: func(lister *mocks.BookingLister) {
				lister.On("AllBookings", mock.Anything, "", 1, 10).Return(makeBookings(10), 25, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp Response
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Len(t, resp.Data, 10)
				assert.Equal(t, 1, resp.CurrentPage)
				assert.Equal(t, 3, resp.LastPage)
				assert.Equal(t, 25, resp.Total)
				assert.Equal(t, 10, resp.PerPage)
			},
		},
		{
			name:    "Last short page",
			url:     "/api/bookings?page=3",
			perPage: 10,
			mockSetup: func(lister *mocks.BookingLister) {
				lister.On("AllBookings", mock.Anything, "", 3, 10).Return(makeBookings(5), 25, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp Response
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Len(t, resp.Data, 5)
				assert.Equal(t, 3, resp.CurrentPage)
				assert.Equal(t, 3, resp.LastPage)
			},
		},
		{
			name:    "Page size nine",
			url:     "/api/bookings",
			perPage: 9,
			mockSetup: func(lister *mocks.BookingLister) {
				lister.On("AllBookings", mock.Anything, "", 1, 9).Return(makeBookings(9), 20, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp Response
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Len(t, resp.Data, 9)
				assert.Equal(t, 3, resp.LastPage)
				assert.Equal(t, 9, resp.PerPage)
			},
		},
		{
			name:    "Out of range page is empty, not an error",
			url:     "/api/bookings?page=99",
			perPage: 10,
			mockSetup: func(lister *mocks.BookingLister) {
				lister.On("AllBookings", mock.Anything, "", 99, 10).Return([]models.Booking{}, 25, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp Response
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Empty(t, resp.Data)
				assert.Equal(t, 99, resp.CurrentPage)
				assert.Equal(t, 3, resp.LastPage)
				assert.Contains(t, body, `"data":[]`)
			},
		},
		{
			name:    "Search term is passed through",
			url:     "/api/bookings?q=queen",
			perPage: 10,
			mockSetup: func(lister *mocks.BookingLister) {
				lister.On("AllBookings", mock.Anything, "queen", 1, 10).Return(makeBookings(1), 1, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp Response
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Len(t, resp.Data, 1)
				assert.Equal(t, 1, resp.LastPage)
			},
		},
		{
			name:    "No bookings at all",
			url:     "/api/bookings",
			perPage: 10,
			mockSetup: func(lister *mocks.BookingLister) {
				lister.On("AllBookings", mock.Anything, "", 1, 10).Return([]models.Booking{}, 0, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp Response
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Empty(t, resp.Data)
				assert.Equal(t, 0, resp.Total)
				assert.Equal(t, 1, resp.LastPage)
			},
		},
		{
			name:    "Non-positive page size falls back to the default",
			url:     "/api/bookings",
			perPage: 0,
			mockSetup: func(lister *mocks.BookingLister) {
				lister.On("AllBookings", mock.Anything, "", 1, 10).Return([]models.Booking{}, 0, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp Response
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, 10, resp.PerPage)
				assert.Equal(t, 1, resp.LastPage)
			},
		},
		{
			name:           "Invalid page number",
			url:            "/api/bookings?page=abc",
			perPage:        10,
			mockSetup:      func(lister *mocks.BookingLister) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"invalid page number"}`, body)
			},
		},
		{
			name:           "Zero page number",
			url:            "/api/bookings?page=0",
			perPage:        10,
			mockSetup:      func(lister *mocks.BookingLister) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"invalid page number"}`, body)
			},
		},
		{
			name:    "Internal server error",
			url:     "/api/bookings",
			perPage: 10,
			mockSetup: func(lister *mocks.BookingLister) {
				lister.On("AllBookings", mock.Anything, "", 1, 10).Return(nil, 0, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"failed to get bookings"}`, body)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockLister := mocks.NewBookingLister(t)
			tc.mockSetup(mockLister)

			handler := New(logger, mockLister, tc.perPage)

			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			tc.checkBody(t, rr.Body.String())
		})
	}
}

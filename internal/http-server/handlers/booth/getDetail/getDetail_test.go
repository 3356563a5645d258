package getDetail

import (
	"encoding/json"
	"expoBooths/internal/http-server/handlers/booth/getDetail/mocks"
	"expoBooths/internal/lib/logger/handlers/slogdiscard"
	"expoBooths/internal/models"
	"expoBooths/internal/storage/catalog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var basicSheet = models.PackageDetails{
	SizeLabel: "3m x 3m",
	Benefits:  []string{"Standard booth", "Website listing", "2 exhibitor passes"},
}

func TestGetDetailHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		boothID        string
		mockSetup      func(detailer *mocks.BoothDetailer, observer *mocks.DetailObserver)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:    "Available booth",
			boothID: "B01",
			mockSetup: func(detailer *mocks.BoothDetailer, observer *mocks.DetailObserver) {
				detailer.On("GetEntry", "B01").Return(models.Booth("B01", models.Size3x3, models.PackageBasic, models.StatusAvailable), nil)
				detailer.On("PackageDetails", models.PackageBasic).Return(basicSheet, true)
				observer.On("ObserveDetail", models.PackageBasic).Once()
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp DetailResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				assert.Equal(t, "Basic Package", resp.Detail.Title)
				assert.Equal(t, "B01", resp.Detail.ID)
				assert.Equal(t, "3m x 3m", resp.Detail.SizeLabel)
				assert.Equal(t, basicSheet.Benefits, resp.Detail.Benefits)
				assert.Equal(t, models.StatusAvailable, resp.Detail.Status)

				u, err := url.Parse(resp.Detail.InquiryURL)
				require.NoError(t, err)
				assert.Equal(t, "/inquiry", u.Path)
				assert.Equal(t, "B01", u.Query().Get("boothId"))
				assert.Equal(t, "basic", u.Query().Get("package"))
			},
		},
		{
			name:    "Sold booth is a no-op",
			boothID: "G01",
			mockSetup: func(detailer *mocks.BoothDetailer, observer *mocks.DetailObserver) {
				detailer.On("GetEntry", "G01").Return(models.Booth("G01", models.Size4x3, models.PackageGold, models.StatusSold), nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:    "Spacer",
			boothID: "spacer1",
			mockSetup: func(detailer *mocks.BoothDetailer, observer *mocks.DetailObserver) {
				detailer.On("GetEntry", "spacer1").Return(models.Spacer("spacer1", models.SpacerCell), nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"booth not found"}`,
		},
		{
			name:    "Unknown booth",
			boothID: "Z99",
			mockSetup: func(detailer *mocks.BoothDetailer, observer *mocks.DetailObserver) {
				detailer.On("GetEntry", "Z99").Return(models.Entry{}, catalog.ErrEntryNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"booth not found"}`,
		},
		{
			name:           "Booth id too long",
			boothID:        "B0123456789012345678",
			mockSetup:      func(detailer *mocks.BoothDetailer, observer *mocks.DetailObserver) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid booth id"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockDetailer := mocks.NewBoothDetailer(t)
			mockObserver := mocks.NewDetailObserver(t)
			tc.mockSetup(mockDetailer, mockObserver)

			router := chi.NewRouter()
			router.Get("/api/booths/{id}/detail", New(logger, mockDetailer, "/inquiry", mockObserver))

			req, err := http.NewRequest(http.MethodGet, "/api/booths/"+tc.boothID+"/detail", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			switch {
			case tc.expectedBody != "":
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			case tc.checkBody != nil:
				tc.checkBody(t, rr.Body.String())
			default:
				assert.Empty(t, rr.Body.String())
			}
		})
	}
}

func TestGetDetailWithoutObserver(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Get("/api/booths/{id}/detail", New(slogdiscard.NewDiscardLogger(), catalog.Default(), "/inquiry", nil))

	req := httptest.NewRequest(http.MethodGet, "/api/booths/P01/detail", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp DetailResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Platinum Package", resp.Detail.Title)
	assert.Len(t, resp.Detail.Benefits, 6)
}

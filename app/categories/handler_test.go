package categories

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mytheresa/product-categories/models"
	"github.com/stretchr/testify/assert"
)

// --- Mock Provider ---

type MockCategoryProvider struct {
	List []models.Category
}

func (m *MockCategoryProvider) Categories() []models.Category {
	return m.List
}

// --- Tests: GET /categories ---

func TestHandleGetAll(t *testing.T) {
	testCases := []struct {
		name               string
		mockSetup          func() *MockCategoryProvider
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Success with multiple categories",
			mockSetup: func() *MockCategoryProvider {
				return &MockCategoryProvider{
					List: []models.Category{
						{ID: 1, Title: "Grocery", Icon: "🍞", OwnerID: 2},
						{ID: 2, Title: "Drinks", Icon: "🍺", OwnerID: 1},
					},
				}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp []CategoryResponse
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Len(t, resp, 2)
				assert.Equal(t, "Grocery", resp[0].Title)
				assert.Equal(t, "🍺", resp[1].Icon)
				assert.Equal(t, 1, resp[1].OwnerID)
			},
		},
		{
			name: "Success with empty list",
			mockSetup: func() *MockCategoryProvider {
				return &MockCategoryProvider{}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.JSONEq(t, `[]`, rec.Body.String())
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			handler := NewCategoryHandler(tc.mockSetup())
			req := httptest.NewRequest("GET", "/categories", nil)
			rec := httptest.NewRecorder()

			// Act
			handler.HandleGetAll(rec, req)

			// Assert
			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}
		})
	}
}

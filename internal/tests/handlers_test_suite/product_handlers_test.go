package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rogerio-castellano/expiry-tracker/internal/expiry"
	api "github.com/rogerio-castellano/expiry-tracker/internal/http"
	handler "github.com/rogerio-castellano/expiry-tracker/internal/http/handlers"
)

func TestCreateProductHandler_Valid(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Milk", ExpiryDate: futureDate(2), Quantity: 1})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if resp.Name != "Milk" {
		t.Errorf("expected name 'Milk', got %v", resp.Name)
	}
	if resp.Quantity != 1 {
		t.Errorf("expected quantity 1, got %v", resp.Quantity)
	}
	if resp.Urgency != expiry.UrgencyCritical {
		t.Errorf("expected urgency critical for a product expiring in 2 days, got %v", resp.Urgency)
	}
	if resp.DaysUntilExpiry != 2 {
		t.Errorf("expected 2 days until expiry, got %d", resp.DaysUntilExpiry)
	}
	if resp.Id == "" {
		t.Error("expected a generated id")
	}
}

func TestCreateProductHandler_DefaultsQuantityToOne(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Yogurt", ExpiryDate: futureDate(7)})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Quantity != 1 {
		t.Errorf("expected omitted quantity to default to 1, got %d", resp.Quantity)
	}
}

func TestCreateProductHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	tests := []struct {
		name           string
		payload        handler.ProductRequest
		expectedErrors []string
	}{
		{
			name:           "Empty name and expiry date",
			payload:        handler.ProductRequest{Name: "", ExpiryDate: ""},
			expectedErrors: []string{"Name", "ExpiryDate"},
		},
		{
			name:           "Empty name only",
			payload:        handler.ProductRequest{Name: "", ExpiryDate: "2030-01-01"},
			expectedErrors: []string{"Name"},
		},
		{
			name:           "Malformed date",
			payload:        handler.ProductRequest{Name: "Milk", ExpiryDate: "01/06/2030"},
			expectedErrors: []string{"ExpiryDate"},
		},
		{
			name:           "Impossible calendar date",
			payload:        handler.ProductRequest{Name: "Milk", ExpiryDate: "2030-02-30"},
			expectedErrors: []string{"ExpiryDate"},
		},
		{
			name:           "Negative quantity",
			payload:        handler.ProductRequest{Name: "Milk", ExpiryDate: "2030-01-01", Quantity: -1},
			expectedErrors: []string{"Quantity"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createProduct(r, tt.payload)

			if w.Code != http.StatusUnprocessableEntity {
				t.Errorf("expected status 422, got %d", w.Code)
			}

			var resp []handler.ProductValidationError
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}

			for _, field := range tt.expectedErrors {
				found := false
				for _, err := range resp {
					if strings.EqualFold(err.Field, field) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected error for field %q, but not found", field)
				}
			}
		})
	}
}

func TestCreateProductHandler_MalformedJSON(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	badJSON := `{Name: "Invalid" ExpiryDate: "2030-01-01" "}` // missing comma
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewBufferString(badJSON))
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 Bad Request, got %d", w.Code)
	}

	expectedBody := "invalid input\n"
	if w.Body.String() != expectedBody {
		t.Errorf("expected response body %q, got %q", expectedBody, w.Body.String())
	}
}

func TestCreateProductHandler_UnknownCategory(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	categoryID := "2c4e9f1a-0000-0000-0000-000000000000"
	w := createProduct(r, handler.ProductRequest{
		Name:       "Milk",
		ExpiryDate: futureDate(5),
		Quantity:   1,
		CategoryID: &categoryID,
	})

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected status 422 for unknown category, got %d", w.Code)
	}
}

func TestGetProductsHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	createProduct(r, handler.ProductRequest{Name: "Milk", ExpiryDate: futureDate(2), Quantity: 1})
	createProduct(r, handler.ProductRequest{Name: "Rice", ExpiryDate: futureDate(200), Quantity: 3})

	w := doJSON(r, http.MethodGet, "/products", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp []handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 products, got %d", len(resp))
	}
	if resp[0].Name != "Milk" || resp[1].Name != "Rice" {
		t.Errorf("expected products ordered by expiry date, got %v then %v", resp[0].Name, resp[1].Name)
	}
}

func TestGetProductByIDHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Cheese", ExpiryDate: futureDate(12), Quantity: 1})
	var created handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&created)

	w = doJSON(r, http.MethodGet, "/products/"+created.Id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Name != "Cheese" {
		t.Errorf("expected name 'Cheese', got %v", resp.Name)
	}
	if resp.Urgency != expiry.UrgencySoon {
		t.Errorf("expected urgency soon for 12 days out, got %v", resp.Urgency)
	}
}

func TestGetProductByIDHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	w := doJSON(r, http.MethodGet, "/products/9e107d9d-0000-0000-0000-000000000000", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestGetProductByIDHandler_OtherUsersProductHidden(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	// Product stored under another account must look nonexistent to admin.
	other, err := userRepo.GetByUsername("admin")
	if err != nil {
		t.Fatalf("admin user missing: %v", err)
	}
	p, _ := productRepo.Create(productWithOwner("Secret Jam", futureDate(4), other.ID+"-other"))

	w := doJSON(r, http.MethodGet, "/products/"+p.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for another user's product, got %d", w.Code)
	}
}

func TestUpdateProductHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Juice", ExpiryDate: futureDate(3), Quantity: 2})
	var created handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&created)

	w = doJSON(r, http.MethodPut, "/products/"+created.Id, handler.ProductRequest{
		Name:       "Orange Juice",
		ExpiryDate: futureDate(20),
		Quantity:   5,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Name != "Orange Juice" || resp.Quantity != 5 {
		t.Errorf("expected updated fields, got %+v", resp)
	}
	if resp.Urgency != expiry.UrgencyMonth {
		t.Errorf("expected urgency month after moving the date 20 days out, got %v", resp.Urgency)
	}
}

func TestUpdateProductHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	w := doJSON(r, http.MethodPut, "/products/9e107d9d-0000-0000-0000-000000000000", handler.ProductRequest{
		Name:       "Ghost",
		ExpiryDate: futureDate(1),
		Quantity:   1,
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestDeleteProductHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Butter", ExpiryDate: futureDate(30), Quantity: 1})
	var created handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&created)

	w = doJSON(r, http.MethodDelete, "/products/"+created.Id, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}

	w = doJSON(r, http.MethodGet, "/products/"+created.Id, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}
}

func TestFilterProductsHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	createProduct(r, handler.ProductRequest{Name: "Whole Milk", ExpiryDate: futureDate(2), Quantity: 1})
	createProduct(r, handler.ProductRequest{Name: "Oat Milk", ExpiryDate: futureDate(8), Quantity: 1})
	createProduct(r, handler.ProductRequest{Name: "Rice", ExpiryDate: futureDate(200), Quantity: 1})

	t.Run("by name substring", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/products/search?name=milk", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		var resp handler.ProductsSearchResult
		json.NewDecoder(w.Body).Decode(&resp)
		if resp.Meta.TotalCount != 2 || len(resp.Data) != 2 {
			t.Errorf("expected 2 milk products, got %d (total %d)", len(resp.Data), resp.Meta.TotalCount)
		}
	})

	t.Run("by expiry window", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/products/search?expiring_within_days=10", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		var resp handler.ProductsSearchResult
		json.NewDecoder(w.Body).Decode(&resp)
		if resp.Meta.TotalCount != 2 {
			t.Errorf("expected 2 products within 10 days, got %d", resp.Meta.TotalCount)
		}
	})

	t.Run("pagination keeps total count", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/products/search?limit=1", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		var resp handler.ProductsSearchResult
		json.NewDecoder(w.Body).Decode(&resp)
		if len(resp.Data) != 1 {
			t.Errorf("expected 1 product page, got %d", len(resp.Data))
		}
		if resp.Meta.TotalCount != 3 {
			t.Errorf("expected total count 3, got %d", resp.Meta.TotalCount)
		}
	})

	t.Run("rejects negative window", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/products/search?expiring_within_days=-1", nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 Bad Request, got %d", w.Code)
		}
	})
}

func TestGetProductCountdownHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Cream", ExpiryDate: futureDate(3), Quantity: 1})
	var created handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&created)

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/products/%s/countdown", created.Id), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp expiry.CountdownResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.IsExpired {
		t.Error("expected product three days out not to be expired")
	}
	if resp.Days < 2 || resp.Days > 3 {
		t.Errorf("expected roughly 3 days remaining, got %d", resp.Days)
	}
}

func TestGetProductCountdownHandler_Expired(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Old Ham", ExpiryDate: futureDate(-2), Quantity: 1})
	var created handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&created)

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/products/%s/countdown", created.Id), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp expiry.CountdownResult
	json.NewDecoder(w.Body).Decode(&resp)
	if !resp.IsExpired {
		t.Error("expected expired countdown for a past date")
	}
	if resp.Days != 0 || resp.Hours != 0 || resp.Minutes != 0 || resp.Seconds != 0 {
		t.Errorf("expected zeroed fields once expired, got %+v", resp)
	}
}

func TestProductsHandler_Unauthorized(t *testing.T) {
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", w.Code)
	}
}

package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/rogerio-castellano/expiry-tracker/internal/expiry"
	api "github.com/rogerio-castellano/expiry-tracker/internal/http"
	handler "github.com/rogerio-castellano/expiry-tracker/internal/http/handlers"
)

func TestGetTimelineHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	createProduct(r, handler.ProductRequest{Name: "Milk", ExpiryDate: futureDate(1), Quantity: 1})
	createProduct(r, handler.ProductRequest{Name: "Eggs", ExpiryDate: futureDate(4), Quantity: 1})
	createProduct(r, handler.ProductRequest{Name: "Rice", ExpiryDate: futureDate(200), Quantity: 1})

	w := doJSON(r, http.MethodGet, "/timeline", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var groups []handler.TimelineGroupResponse
	if err := json.NewDecoder(w.Body).Decode(&groups); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if len(groups) != 3 {
		t.Fatalf("expected 3 non-empty groups, got %d", len(groups))
	}

	expected := []struct {
		urgency expiry.Urgency
		product string
	}{
		{expiry.UrgencyCritical, "Milk"},
		{expiry.UrgencyUrgent, "Eggs"},
		{expiry.UrgencyYear, "Rice"},
	}
	for i, exp := range expected {
		g := groups[i]
		if g.Urgency != exp.urgency {
			t.Errorf("group %d: expected urgency %v, got %v", i, exp.urgency, g.Urgency)
		}
		if len(g.Products) != 1 || g.Products[0].Name != exp.product {
			t.Errorf("group %d: expected product %q, got %+v", i, exp.product, g.Products)
		}
		if g.Label == "" || g.Icon == "" || g.Color == "" || g.BorderColor == "" {
			t.Errorf("group %d: expected label, icon and colors to be set, got %+v", i, g)
		}
	}
}

func TestGetTimelineHandler_GroupsSortedByDate(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	// All three land in the sixmonths bucket, out of insertion order.
	createProduct(r, handler.ProductRequest{Name: "C", ExpiryDate: futureDate(120), Quantity: 1})
	createProduct(r, handler.ProductRequest{Name: "A", ExpiryDate: futureDate(60), Quantity: 1})
	createProduct(r, handler.ProductRequest{Name: "B", ExpiryDate: futureDate(90), Quantity: 1})

	w := doJSON(r, http.MethodGet, "/timeline", nil)
	var groups []handler.TimelineGroupResponse
	json.NewDecoder(w.Body).Decode(&groups)

	if len(groups) != 1 {
		t.Fatalf("expected a single group, got %d", len(groups))
	}
	names := []string{}
	for _, p := range groups[0].Products {
		names = append(names, p.Name)
	}
	if len(names) != 3 || names[0] != "A" || names[1] != "B" || names[2] != "C" {
		t.Errorf("expected products sorted by expiry date, got %v", names)
	}
}

func TestGetTimelineHandler_Empty(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	w := doJSON(r, http.MethodGet, "/timeline", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if body := w.Body.String(); body != "[]" {
		t.Errorf("expected an empty array, got %q", body)
	}
}

package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/rogerio-castellano/expiry-tracker/internal/auth"
	api "github.com/rogerio-castellano/expiry-tracker/internal/http"
	handler "github.com/rogerio-castellano/expiry-tracker/internal/http/handlers"
	"github.com/rogerio-castellano/expiry-tracker/internal/models"
	"github.com/rogerio-castellano/expiry-tracker/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

var (
	token            string
	adminID          string
	productRepo      *repo.InMemoryProductRepository
	categoryRepo     *repo.InMemoryCategoryRepository
	userRepo         *repo.InMemoryUserRepository
	profileRepo      *repo.InMemoryProfileRepository
	notificationRepo *repo.InMemoryNotificationRepository
)

func init() {
	auth.Configure("secret", 15*time.Minute)
	auth.SetRefreshTokenStore(auth.NewInMemoryRefreshTokenStore(), 7*24*time.Hour)
	setupTestRepos("secret")
	r := api.NewRouter()

	var err error
	token, err = generateToken(r, "admin", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)

	categoryRepo = repo.NewInMemoryCategoryRepository()
	handler.SetCategoryRepo(categoryRepo)

	userRepo = repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	profileRepo = repo.NewInMemoryProfileRepository()
	handler.SetProfileRepo(profileRepo)

	notificationRepo = repo.NewInMemoryNotificationRepository()
	handler.SetNotificationRepo(notificationRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	admin, _ := userRepo.CreateUser(models.User{
		Username:     "admin",
		PasswordHash: string(hash),
	})
	adminID = admin.ID

	profileRepo.Create(models.Profile{
		UserID:                 adminID,
		DisplayName:            "admin",
		NotificationDaysBefore: 3,
	})
}

func clearAllProducts() {
	productRepo.Clear()
}

func clearAllNotifications() {
	notificationRepo.Clear()
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

// doJSON sends a JSON request with the admin token attached.
func doJSON(r http.Handler, method, target string, payload any) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/products", p)
}

// productWithOwner builds a product record stored directly in the repo,
// bypassing the API, for ownership tests.
func productWithOwner(name, expiryDate, userID string) models.Product {
	return models.Product{
		UserID:     userID,
		Name:       name,
		ExpiryDate: expiryDate,
		Quantity:   1,
	}
}

// futureDate is a YYYY-MM-DD string the given number of days from today.
func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

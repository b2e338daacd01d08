package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/rogerio-castellano/expiry-tracker/internal/auth"
	"github.com/rogerio-castellano/expiry-tracker/internal/models"
	"github.com/rogerio-castellano/expiry-tracker/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

// defaultCategories are seeded for every new account so the add-product form
// has something to pick from immediately.
var defaultCategories = []models.Category{
	{Name: "Food", Icon: "🍎", IsDefault: true},
	{Name: "Drinks", Icon: "🥤", IsDefault: true},
	{Name: "Household", Icon: "🧹", IsDefault: true},
	{Name: "Cosmetics", Icon: "💄", IsDefault: true},
	{Name: "Other", Icon: "📦", IsDefault: true},
}

// RegisterHandler godoc
// @Summary Register new user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 201 {object} RegisterResult
// @Failure 400 {string} string "Invalid input"
// @Failure 409 {string} string "User exists"
// @Router /register [post]
func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var creds CredentialsRequest
	if err := readJSON(w, r, &creds); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if creds.Username == "" || creds.Password == "" {
		http.Error(w, "missing credentials", http.StatusBadRequest)
		return
	}

	if len(creds.Username) < 3 || len(creds.Password) < 6 {
		http.Error(w, "username or password too short", http.StatusBadRequest)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "failed to hash password", http.StatusInternalServerError)
		return
	}

	user, err := userRepo.CreateUser(models.User{
		Username:     creds.Username,
		PasswordHash: string(hashed),
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			http.Error(w, "username already exists", http.StatusConflict)
		} else {
			http.Error(w, "failed to register user", http.StatusInternalServerError)
		}
		return
	}

	if _, err := profileRepo.Create(models.Profile{
		UserID:                 user.ID,
		DisplayName:            user.Username,
		NotificationDaysBefore: 3,
	}); err != nil {
		log.Printf("failed to create profile for user %s: %v", user.ID, err)
	}

	for _, c := range defaultCategories {
		c.UserID = user.ID
		if _, err := categoryRepo.Create(c); err != nil {
			log.Printf("failed to seed category %q for user %s: %v", c.Name, user.ID, err)
		}
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		http.Error(w, "failed to generate token", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusCreated, RegisterResult{
		Message: "user registered",
		Token:   token,
	}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// LoginHandler godoc
// @Summary Authenticate user and return JWT plus refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 200 {object} LoginResult
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Unauthorized"
// @Router /login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var credentials CredentialsRequest
	if err := readJSON(w, r, &credentials); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	user, err := userRepo.GetByUsername(credentials.Username)
	if err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)) != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}

	refreshToken, err := auth.IssueRefreshToken(r.Context(), user.ID)
	if err != nil {
		http.Error(w, "could not generate refresh token", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, LoginResult{Token: token, RefreshToken: refreshToken}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// RefreshHandler godoc
// @Summary Exchange a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body RefreshRequest true "refresh token"
// @Success 200 {object} LoginResult
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Unauthorized"
// @Router /refresh [post]
func RefreshHandler(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := readJSON(w, r, &req); err != nil || req.RefreshToken == "" {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	userID, err := auth.RedeemRefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		http.Error(w, "invalid refresh token", http.StatusUnauthorized)
		return
	}

	user, err := userRepo.GetByID(userID)
	if err != nil {
		http.Error(w, "invalid refresh token", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}

	refreshToken, err := auth.IssueRefreshToken(r.Context(), user.ID)
	if err != nil {
		http.Error(w, "could not generate refresh token", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, LoginResult{Token: token, RefreshToken: refreshToken}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

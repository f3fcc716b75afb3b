package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	db "github.com/AkshatM1707/finance-assistant/src/db/sql"
	"github.com/AkshatM1707/finance-assistant/src/models"
	"github.com/AkshatM1707/finance-assistant/src/util"
)

const (
	bcryptCost  = 12
	tokenTTL    = 7 * 24 * time.Hour
	tokenCookie = "auth-token"
)

func Register(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode register request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		req.FirstName = strings.TrimSpace(req.FirstName)
		req.LastName = strings.TrimSpace(req.LastName)
		req.Email = strings.ToLower(strings.TrimSpace(req.Email))

		if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
			http.Error(w, "All fields are required", http.StatusBadRequest)
			return
		}

		if !util.ValidateEmail(req.Email) {
			log.Printf("ERROR: Email validation failed during registration - Email: %s", req.Email)
			http.Error(w, "invalid email format", http.StatusBadRequest)
			return
		}

		if !util.ValidatePassword(req.Password) {
			http.Error(w, "Password must be at least 6 characters long", http.StatusBadRequest)
			return
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
		if err != nil {
			log.Printf("ERROR: Failed to hash password for %s: %v", req.Email, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		user, err := db.CreateUser(r.Context(), pool, req, string(hashedPassword))
		if err != nil {
			if strings.Contains(err.Error(), "duplicate key") {
				log.Printf("ERROR: Registration failed - email already exists - Email: %s", req.Email)
				http.Error(w, "User with this email already exists", http.StatusConflict)
				return
			}
			log.Printf("ERROR: Failed to create user %s: %v", req.Email, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Successful registration - User: %s, ID: %d", user.Email, user.ID)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "User registered successfully",
			"user":    user,
		})
	}
}

func Login(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var credentials struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
			log.Printf("ERROR: Failed to decode login request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if credentials.Email == "" || credentials.Password == "" {
			http.Error(w, "Email and password are required", http.StatusBadRequest)
			return
		}

		user, err := db.GetUserByEmail(r.Context(), pool, strings.ToLower(credentials.Email))
		if err != nil {
			// Generic message so login attempts cannot enumerate accounts.
			log.Printf("ERROR: Failed to find user during login - Email: %s: %v", credentials.Email, err)
			http.Error(w, "Invalid email or password", http.StatusUnauthorized)
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)); err != nil {
			log.Printf("ERROR: Invalid password attempt for %s from IP %s", credentials.Email, r.RemoteAddr)
			http.Error(w, "Invalid email or password", http.StatusUnauthorized)
			return
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": user.ID,
			"email":   user.Email,
			"exp":     time.Now().Add(tokenTTL).Unix(),
		})

		tokenString, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
		if err != nil {
			log.Printf("ERROR: Failed to generate JWT token for user %s: %v", user.Email, err)
			http.Error(w, "Error generating token", http.StatusInternalServerError)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     tokenCookie,
			Value:    tokenString,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteStrictMode,
			MaxAge:   int(tokenTTL.Seconds()),
		})

		log.Printf("INFO: Successful login - User: %s, ID: %d", user.Email, user.ID)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "Login successful",
			"user":    user,
			"token":   tokenString,
		})
	}
}

func Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     tokenCookie,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteStrictMode,
			MaxAge:   -1,
		})

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Logged out successfully",
		})
	}
}

package handlers

import (
	"errors"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dpolyakov/planmate/internal/common"
	"github.com/dpolyakov/planmate/internal/server/auth"
	"github.com/dpolyakov/planmate/internal/server/models"
	"github.com/dpolyakov/planmate/internal/server/store"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type AuthHandler struct {
	store     *store.Store
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthHandler(s *store.Store, jwtSecret []byte, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{store: s, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if err := validateRegisterRequest(req); err != nil {
		sendError(w, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("password hashing failed: %v", err)
		sendError(w, http.StatusInternalServerError, "server error")
		return
	}

	user, err := h.store.CreateUser(req.Username, req.Email, string(hash))
	if errors.Is(err, common.ErrConflict) {
		sendError(w, http.StatusConflict, "a user with this email already exists")
		return
	}
	if err != nil {
		log.Printf("user creation failed: %v", err)
		sendError(w, http.StatusInternalServerError, "server error")
		return
	}

	h.respondWithToken(w, http.StatusCreated, user)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		sendError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.store.UserByEmail(strings.TrimSpace(strings.ToLower(req.Email)))
	if errors.Is(err, common.ErrNotFound) {
		sendError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	if err != nil {
		log.Printf("user lookup failed: %v", err)
		sendError(w, http.StatusInternalServerError, "server error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		sendError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	h.respondWithToken(w, http.StatusOK, user)
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, status int, user models.User) {
	token, err := auth.GenerateToken(user.ID, user.Username, user.Email, h.jwtSecret, h.tokenTTL)
	if err != nil {
		log.Printf("token generation failed: %v", err)
		sendError(w, http.StatusInternalServerError, "server error")
		return
	}

	sendJSON(w, status, models.AuthResponse{
		Token:    token,
		Username: user.Username,
		Email:    user.Email,
	})
}

func validateRegisterRequest(req models.RegisterRequest) error {
	if req.Email == "" {
		return errors.New("email is required")
	}
	if !emailRegex.MatchString(req.Email) {
		return errors.New("invalid email format")
	}
	if len(req.Username) < 3 || len(req.Username) > 32 {
		return errors.New("username must be between 3 and 32 characters")
	}
	if len(req.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}

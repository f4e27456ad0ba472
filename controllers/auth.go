package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"schedulepro-backend/models"
	"schedulepro-backend/utils"
)

type SetupInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Setup creates the single practitioner account. It refuses once an account
// exists; this is a one-seat system.
func (a *API) Setup(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	existing, err := a.store.LoadPractitioner()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load account")
		return
	}
	if existing != nil {
		utils.RespondWithError(c, http.StatusConflict, "Practitioner account already exists")
		return
	}

	var input SetupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}
	practitioner := models.Practitioner{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: hash,
		Name:         input.Name,
	}
	if err := a.store.SavePractitioner(practitioner); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save account")
		return
	}

	c.JSON(http.StatusCreated, practitioner)
}

// Login checks credentials and issues a JWT.
func (a *API) Login(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	practitioner, err := a.store.LoadPractitioner()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load account")
		return
	}
	if practitioner == nil || practitioner.Email != input.Email ||
		!utils.CheckPasswordHash(input.Password, practitioner.PasswordHash) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	now := time.Now()
	practitioner.LastLogin = &now
	if err := a.store.SavePractitioner(*practitioner); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update account")
		return
	}

	token, err := utils.GenerateToken(practitioner.ID.String())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "practitioner": practitioner})
}

// Me returns the authenticated practitioner.
func (a *API) Me(c *gin.Context) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	practitioner, err := a.store.LoadPractitioner()
	if err != nil || practitioner == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Practitioner account not found")
		return
	}
	c.JSON(http.StatusOK, practitioner)
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schedulepro-backend/utils"
)

type DefineSlotInput struct {
	Label string `json:"label" binding:"required"`
}

type ReplaceSlotsInput struct {
	Labels []string `json:"labels" binding:"required"`
}

type SetFeeInput struct {
	Amount *float64 `json:"amount" binding:"required"`
}

// GetSchedule returns the slot labels in time-of-day order plus the default
// session fee.
func (a *API) GetSchedule(c *gin.Context) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	c.JSON(http.StatusOK, gin.H{
		"time_slots":  a.sys.Slots.ListSlots(),
		"session_fee": a.sys.Slots.DefaultFee(),
	})
}

// DefineSlot adds one time slot label.
func (a *API) DefineSlot(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var input DefineSlotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := a.sys.Slots.DefineSlot(input.Label); err != nil {
		respondCoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"time_slots": a.sys.Slots.ListSlots()})
}

// RemoveSlot deletes one time slot label.
func (a *API) RemoveSlot(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.sys.Slots.RemoveSlot(c.Param("label")); err != nil {
		respondCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"time_slots": a.sys.Slots.ListSlots()})
}

// ReplaceSlots swaps the whole slot set, the way the settings form submits.
func (a *API) ReplaceSlots(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var input ReplaceSlotsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := a.sys.Slots.ReplaceSlots(input.Labels); err != nil {
		respondCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"time_slots": a.sys.Slots.ListSlots()})
}

// SetFee updates the default session fee.
func (a *API) SetFee(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var input SetFeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := a.sys.Slots.SetDefaultFee(*input.Amount); err != nil {
		respondCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session_fee": a.sys.Slots.DefaultFee()})
}

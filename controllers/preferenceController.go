package controllers

import (
	"net/http"

	"comanda-api/services"

	"github.com/gin-gonic/gin"
)

// PreferenceController serves the per-user client state (last view
// index and similar) through an injected SessionStore.
type PreferenceController struct {
	store services.SessionStore
}

func NewPreferenceController(store services.SessionStore) *PreferenceController {
	return &PreferenceController{store: store}
}

func (pc *PreferenceController) Get(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	prefs, err := pc.store.Load(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prefs)
}

func (pc *PreferenceController) Put(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var input struct {
		Key   string `json:"key" binding:"required,max=64"`
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := pc.store.Save(userID, input.Key, input.Value); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Preference saved"})
}

func (pc *PreferenceController) Clear(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	if err := pc.store.Clear(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Preferences cleared"})
}

package handlers

import (
	"net/http"

	"elysium/models"
	"elysium/store"
	"elysium/utils"

	"github.com/gin-gonic/gin"
)

// ContentHandler serves the editable site content.
type ContentHandler struct {
	Content store.ContentStore
}

func NewContentHandler(content store.ContentStore) *ContentHandler {
	return &ContentHandler{Content: content}
}

// GetContent returns the current CMS snapshot.
func (h *ContentHandler) GetContent(c *gin.Context) {
	c.JSON(http.StatusOK, h.Content.Get())
}

// UpdateContent replaces the CMS content (admin).
func (h *ContentHandler) UpdateContent(c *gin.Context) {
	var content models.CMSContent
	if err := c.ShouldBindJSON(&content); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	h.Content.Update(content)
	c.JSON(http.StatusOK, content)
}

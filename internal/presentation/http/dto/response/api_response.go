package response

import (
	"net/http"

	"github.com/epositalia/scontrino-api/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// Success sends a success envelope: {"success": true, ...fields}.
func Success(c *gin.Context, fields gin.H) {
	body := gin.H{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// Error sends the error envelope {"errore": ..., "dettaglio": ...} with an
// HTTP status mirroring the upstream status when known, else 500.
func Error(c *gin.Context, err error) {
	appErr := apperror.GetAppError(err)
	body := gin.H{"errore": appErr.Message}
	if appErr.Detail != nil {
		body["dettaglio"] = appErr.Detail
	}
	c.JSON(appErr.Code, body)
}

// BadRequest sends a 400 with the given message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"errore": message})
}

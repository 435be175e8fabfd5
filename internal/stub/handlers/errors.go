package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/awsrest/internal/protocol"
	"github.com/jroosing/awsrest/internal/route53"
	"github.com/jroosing/awsrest/internal/stub/middleware"
	"github.com/jroosing/awsrest/internal/stub/models"
)

// API Gateway error codes.
const (
	codeNotFound   = "NotFoundException"
	codeBadRequest = "BadRequestException"
	codeInternal   = "InternalFailure"
)

// Route 53 error codes.
const (
	codeInvalidInput       = "InvalidInput"
	codeInvalidChangeBatch = "InvalidChangeBatch"
	codeServiceFailure     = "ServiceFailure"
)

// jsonError writes an API Gateway style error: the code in X-Amzn-ErrorType,
// the message in the JSON body.
func (h *Handler) jsonError(c *gin.Context, status int, code, msg string) {
	c.Header(protocol.HeaderErrorType, code)
	c.AbortWithStatusJSON(status, models.ErrorResponse{Message: msg})
}

// xmlError writes a Route 53 style ErrorResponse document.
func (h *Handler) xmlError(c *gin.Context, status int, code, msg string) {
	errType := "Sender"
	if status >= http.StatusInternalServerError {
		errType = "Receiver"
	}

	g := h.xmlFactory.NewXMLGenerator()
	g.WriteStartElement("ErrorResponse", route53.Namespace)
	g.WriteStartElement("Error", "")
	g.WriteElement("Type", errType)
	g.WriteElement("Code", code)
	g.WriteElement("Message", msg)
	g.WriteEndElement()
	g.WriteElement("RequestId", c.GetString(middleware.ContextKeyRequestID))
	g.WriteEndElement()

	body, err := g.Bytes()
	if err != nil {
		h.logger.Error("failed to render error response", "err", err)
		c.AbortWithStatus(status)
		return
	}
	c.Abort()
	c.Data(status, h.xmlFactory.ContentType(), body)
}

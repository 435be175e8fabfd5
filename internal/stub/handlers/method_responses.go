package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/awsrest/internal/apigateway"
	"github.com/jroosing/awsrest/internal/stub/store"
)

func methodKey(c *gin.Context) store.MethodKey {
	return store.MethodKey{
		RestAPIID:  c.Param("restapi_id"),
		ResourceID: c.Param("resource_id"),
		HTTPMethod: c.Param("http_method"),
		StatusCode: c.Param("status_code"),
	}
}

func (h *Handler) writeMethodResponse(c *gin.Context, status int, mr *apigateway.MethodResponse) {
	body, err := apigateway.EncodeMethodResponse(h.jsonFactory, mr)
	if err != nil {
		h.logger.Error("failed to encode method response", "err", err)
		h.jsonError(c, http.StatusInternalServerError, codeInternal, "internal failure")
		return
	}
	c.Data(status, h.jsonFactory.ContentType(), body)
}

func (h *Handler) methodStoreError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		h.jsonError(c, http.StatusNotFound, codeNotFound, "Invalid Response status code specified")
		return
	}
	h.logger.Error("method response store failure", "err", err)
	h.jsonError(c, http.StatusInternalServerError, codeInternal, "internal failure")
}

// PutMethodResponse godoc
// @Summary Create or replace a method response
// @Tags apigateway
// @Accept json
// @Produce json
// @Param restapi_id path string true "REST API id"
// @Param resource_id path string true "Resource id"
// @Param http_method path string true "HTTP method"
// @Param status_code path string true "Status code"
// @Success 201 {object} apigateway.MethodResponse
// @Failure 400 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /restapis/{restapi_id}/resources/{resource_id}/methods/{http_method}/responses/{status_code} [put]
func (h *Handler) PutMethodResponse(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.jsonError(c, http.StatusBadRequest, codeBadRequest, "unreadable request body")
		return
	}

	in := &apigateway.MethodResponse{}
	if len(data) > 0 {
		if in, err = apigateway.UnmarshalMethodResponse(data); err != nil {
			h.jsonError(c, http.StatusBadRequest, codeBadRequest, err.Error())
			return
		}
	}

	mr, err := h.store.PutMethodResponse(c.Request.Context(), methodKey(c), in)
	if err != nil {
		h.methodStoreError(c, err)
		return
	}
	h.writeMethodResponse(c, http.StatusCreated, mr)
}

// GetMethodResponse godoc
// @Summary Get a method response
// @Tags apigateway
// @Produce json
// @Param restapi_id path string true "REST API id"
// @Param resource_id path string true "Resource id"
// @Param http_method path string true "HTTP method"
// @Param status_code path string true "Status code"
// @Success 200 {object} apigateway.MethodResponse
// @Failure 404 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /restapis/{restapi_id}/resources/{resource_id}/methods/{http_method}/responses/{status_code} [get]
func (h *Handler) GetMethodResponse(c *gin.Context) {
	mr, err := h.store.GetMethodResponse(c.Request.Context(), methodKey(c))
	if err != nil {
		h.methodStoreError(c, err)
		return
	}
	h.writeMethodResponse(c, http.StatusOK, mr)
}

// UpdateMethodResponse godoc
// @Summary Patch a method response
// @Description Applies add, replace and remove operations on /responseParameters/{header} and /responseModels/{contentType}
// @Tags apigateway
// @Accept json
// @Produce json
// @Param restapi_id path string true "REST API id"
// @Param resource_id path string true "Resource id"
// @Param http_method path string true "HTTP method"
// @Param status_code path string true "Status code"
// @Success 200 {object} apigateway.MethodResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /restapis/{restapi_id}/resources/{resource_id}/methods/{http_method}/responses/{status_code} [patch]
func (h *Handler) UpdateMethodResponse(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.jsonError(c, http.StatusBadRequest, codeBadRequest, "unreadable request body")
		return
	}

	var ops []*apigateway.PatchOperation
	if len(data) > 0 {
		if ops, err = apigateway.UnmarshalPatchOperations(data); err != nil {
			h.jsonError(c, http.StatusBadRequest, codeBadRequest, err.Error())
			return
		}
	}

	mr, err := h.store.UpdateMethodResponse(c.Request.Context(), methodKey(c), func(mr *apigateway.MethodResponse) (*apigateway.MethodResponse, error) {
		return applyPatch(mr, ops)
	})
	if errors.Is(err, errInvalidPatch) {
		h.jsonError(c, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}
	if err != nil {
		h.methodStoreError(c, err)
		return
	}
	h.writeMethodResponse(c, http.StatusOK, mr)
}

// DeleteMethodResponse godoc
// @Summary Delete a method response
// @Tags apigateway
// @Param restapi_id path string true "REST API id"
// @Param resource_id path string true "Resource id"
// @Param http_method path string true "HTTP method"
// @Param status_code path string true "Status code"
// @Success 202 "Accepted"
// @Failure 404 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /restapis/{restapi_id}/resources/{resource_id}/methods/{http_method}/responses/{status_code} [delete]
func (h *Handler) DeleteMethodResponse(c *gin.Context) {
	if err := h.store.DeleteMethodResponse(c.Request.Context(), methodKey(c)); err != nil {
		h.methodStoreError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}

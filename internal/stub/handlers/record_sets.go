package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/gin-gonic/gin"
	"github.com/jroosing/awsrest/internal/route53"
	"github.com/jroosing/awsrest/internal/stub/store"
)

const (
	// zoneIDParam matches the {Id} token of the Route 53 path templates.
	zoneIDParam = "Id"

	defaultMaxItems = 300
	maxMaxItems     = 300
)

// ChangeResourceRecordSets godoc
// @Summary Apply a change batch
// @Description All changes succeed or none do. CREATE fails on an existing record set, DELETE on a missing one.
// @Tags route53
// @Accept xml
// @Produce xml
// @Param Id path string true "Hosted zone id"
// @Success 200 {string} string "ChangeResourceRecordSetsResponse document"
// @Failure 400 {string} string "ErrorResponse document"
// @Security ApiKeyAuth
// @Router /2013-04-01/hostedzone/{Id}/rrset/ [post]
func (h *Handler) ChangeResourceRecordSets(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.xmlError(c, http.StatusBadRequest, codeInvalidInput, "unreadable request body")
		return
	}
	batch, err := route53.UnmarshalChangeResourceRecordSetsRequest(data)
	if err != nil {
		h.xmlError(c, http.StatusBadRequest, codeInvalidInput, err.Error())
		return
	}

	zoneID := c.Param(zoneIDParam)
	in := new(route53.ChangeResourceRecordSetsInput).SetHostedZoneID(zoneID).SetChangeBatch(batch)
	if err := in.Validate(); err != nil {
		h.xmlError(c, http.StatusBadRequest, codeInvalidInput, err.Error())
		return
	}

	info, err := h.store.ApplyChangeBatch(c.Request.Context(), zoneID, batch)
	var ce *store.ChangeError
	if errors.As(err, &ce) {
		h.xmlError(c, http.StatusBadRequest, codeInvalidChangeBatch, changeErrorMessage(ce))
		return
	}
	if err != nil {
		h.logger.Error("change batch failed", "zone", zoneID, "err", err)
		h.xmlError(c, http.StatusInternalServerError, codeServiceFailure, "internal failure")
		return
	}

	body, err := route53.EncodeChangeResourceRecordSetsResponse(h.xmlFactory, info)
	if err != nil {
		h.logger.Error("failed to encode change info", "err", err)
		h.xmlError(c, http.StatusInternalServerError, codeServiceFailure, "internal failure")
		return
	}
	h.logger.Debug("change batch applied", "zone", zoneID, "changes", len(batch.Changes), "change_id", aws.StringValue(info.ID))
	c.Data(http.StatusOK, h.xmlFactory.ContentType(), body)
}

func changeErrorMessage(ce *store.ChangeError) string {
	switch {
	case errors.Is(ce.Err, store.ErrAlreadyExists):
		return "Tried to create resource record set [name='" + ce.Key.Name + "', type='" + ce.Key.Type + "'] but it already exists"
	case errors.Is(ce.Err, store.ErrNotFound):
		return "Tried to delete resource record set [name='" + ce.Key.Name + "', type='" + ce.Key.Type + "'] but it was not found"
	default:
		return ce.Error()
	}
}

// ListResourceRecordSets godoc
// @Summary List record sets
// @Description Record sets are ordered by name, then type, then set identifier.
// @Tags route53
// @Produce xml
// @Param Id path string true "Hosted zone id"
// @Param name query string false "Start record name"
// @Param type query string false "Start record type (requires name)"
// @Param identifier query string false "Start set identifier (requires name and type)"
// @Param maxitems query int false "Page size (1-300)"
// @Success 200 {string} string "ListResourceRecordSetsResponse document"
// @Failure 400 {string} string "ErrorResponse document"
// @Security ApiKeyAuth
// @Router /2013-04-01/hostedzone/{Id}/rrset [get]
func (h *Handler) ListResourceRecordSets(c *gin.Context) {
	from := store.RecordKey{
		Type:          c.Query("type"),
		SetIdentifier: c.Query("identifier"),
	}
	if name := c.Query("name"); name != "" {
		from.Name = store.CanonicalName(name)
	}
	if from.Type != "" && from.Name == "" {
		h.xmlError(c, http.StatusBadRequest, codeInvalidInput, "type requires name")
		return
	}
	if from.SetIdentifier != "" && from.Type == "" {
		h.xmlError(c, http.StatusBadRequest, codeInvalidInput, "identifier requires name and type")
		return
	}

	limit := defaultMaxItems
	if raw := c.Query("maxitems"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			h.xmlError(c, http.StatusBadRequest, codeInvalidInput, "maxitems must be a positive integer")
			return
		}
		limit = min(n, maxMaxItems)
	}

	sets, next, err := h.store.ListRecordSets(c.Request.Context(), c.Param(zoneIDParam), from, limit)
	if err != nil {
		h.logger.Error("list record sets failed", "zone", c.Param(zoneIDParam), "err", err)
		h.xmlError(c, http.StatusInternalServerError, codeServiceFailure, "internal failure")
		return
	}

	out := &route53.ListResourceRecordSetsOutput{
		ResourceRecordSets: sets,
		IsTruncated:        aws.Bool(next != nil),
		MaxItems:           aws.String(strconv.Itoa(limit)),
	}
	if next != nil {
		out.NextRecordName = aws.String(next.Name)
		out.NextRecordType = aws.String(next.Type)
		if next.SetIdentifier != "" {
			out.NextRecordIdentifier = aws.String(next.SetIdentifier)
		}
	}

	body, err := route53.EncodeListResourceRecordSetsResponse(h.xmlFactory, out)
	if err != nil {
		h.logger.Error("failed to encode record sets", "err", err)
		h.xmlError(c, http.StatusInternalServerError, codeServiceFailure, "internal failure")
		return
	}
	c.Data(http.StatusOK, h.xmlFactory.ContentType(), body)
}

package handlers

import (
	"net/http"

	"tourdesk/internal/domain"
	"tourdesk/internal/domain/models"
	"tourdesk/internal/finance"
	"tourdesk/internal/upstream"

	"github.com/gin-gonic/gin"
)

// CatalogHandler proxies the read-mostly reference data: members, packages
// and enquiries.
type CatalogHandler struct {
	Upstream *upstream.Client
}

func (h CatalogHandler) ListMembers(c *gin.Context) {
	list, err := h.Upstream.ListMembers(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}

func (h CatalogHandler) ListTourPackages(c *gin.Context) {
	list, err := h.Upstream.ListTourPackages(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":    list,
		"metrics": finance.ComputePackageMetrics(list),
	})
}

func (h CatalogHandler) GetTourPackage(c *gin.Context) {
	pkg, err := h.Upstream.GetTourPackage(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": pkg})
}

func (h CatalogHandler) ListEnquiries(c *gin.Context) {
	list, err := h.Upstream.ListEnquiries(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}

func (h CatalogHandler) CreateEnquiry(c *gin.Context) {
	var in models.NewEnquiry
	if !BindJSONOrError(c, &in) {
		return
	}
	if err := in.Validate(); err != nil {
		RespondDomainError(c, err)
		return
	}

	e, err := h.Upstream.CreateEnquiry(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": e})
}

type enquiryStatusRequest struct {
	Status domain.EnquiryStatus `json:"status"`
}

func (h CatalogHandler) UpdateEnquiryStatus(c *gin.Context) {
	var req enquiryStatusRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Status == "" {
		RespondDomainError(c, domain.ValidationError{Field: "status", Msg: "status is required"})
		return
	}

	e, err := h.Upstream.UpdateEnquiryStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": e})
}

package handlers

import (
	"net/http"

	"tourdesk/internal/domain/models"
	"tourdesk/internal/finance"
	"tourdesk/internal/http/middleware"
	"tourdesk/internal/services"
	"tourdesk/internal/upstream"

	"github.com/gin-gonic/gin"
)

// TourMemberHandler proxies booking CRUD to the upstream backend and adds the
// derived cost fields the dashboard renders.
type TourMemberHandler struct {
	Upstream *upstream.Client
	Invoices services.InvoiceService
}

type tourMemberView struct {
	models.TourMember

	PaidAmount      int64   `json:"paidAmount"`
	DueAmount       int64   `json:"dueAmount"`
	PaymentProgress float64 `json:"paymentProgress"`
}

func toView(tm models.TourMember) tourMemberView {
	return tourMemberView{
		TourMember:      tm,
		PaidAmount:      finance.PaidAmount(tm),
		DueAmount:       finance.DueAmount(tm),
		PaymentProgress: finance.PaymentProgress(tm),
	}
}

func (h TourMemberHandler) List(c *gin.Context) {
	list, err := h.Upstream.ListTourMembers(c.Request.Context(), c.Query("tourPackageId"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	out := make([]tourMemberView, 0, len(list))
	for _, tm := range list {
		out = append(out, toView(tm))
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

func (h TourMemberHandler) Get(c *gin.Context) {
	tm, err := h.Upstream.GetTourMember(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": toView(tm)})
}

// Quote derives member count, net cost, discount and total in one shot. The
// creation form renders exactly what this returns.
func (h TourMemberHandler) Quote(c *gin.Context) {
	var in finance.QuoteInput
	if !BindJSONOrError(c, &in) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": finance.ComputeQuote(in)})
}

// Create validates the payload, recomputes the quote server-side and submits
// the booking with the derived fields filled in, so the stored cost never
// disagrees with the pipeline.
func (h TourMemberHandler) Create(c *gin.Context) {
	var in models.NewTourMember
	if !BindJSONOrError(c, &in) {
		return
	}
	if err := in.Validate(); err != nil {
		RespondDomainError(c, err)
		return
	}

	q := finance.ComputeQuote(finance.QuoteInput{
		MemberIDs:     in.MemberIDs,
		PackagePrice:  in.PackagePrice,
		DiscountType:  in.DiscountType,
		DiscountValue: in.DiscountValue,
	})
	in.MemberCount = q.MemberCount
	in.NetCost = q.NetCost
	in.Discount = q.Discount
	in.TotalCost = q.TotalCost

	tm, err := h.Upstream.CreateTourMember(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": toView(tm)})
}

func (h TourMemberHandler) AddPayment(c *gin.Context) {
	var in models.NewPayment
	if !BindJSONOrError(c, &in) {
		return
	}
	if err := in.Validate(); err != nil {
		RespondDomainError(c, err)
		return
	}

	p, err := h.Upstream.AddPayment(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": p})
}

func (h TourMemberHandler) invoices(c *gin.Context) services.InvoiceService {
	s := h.Invoices
	s.RequestID = middleware.GetRequestID(c)
	return s
}

func (h TourMemberHandler) InvoicePDF(c *gin.Context) {
	pdf, filename, err := h.invoices(c).GenerateInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h TourMemberHandler) ReceiptPDF(c *gin.Context) {
	pdf, filename, err := h.invoices(c).GenerateReceipt(c.Request.Context(), c.Param("id"), c.Param("paymentId"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h TourMemberHandler) Stats(c *gin.Context) {
	stats, err := h.Upstream.GetTourMemberStats(c.Request.Context(), c.Query("tourId"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": stats})
}

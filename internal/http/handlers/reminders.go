package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"tourdesk/internal/domain"
	"tourdesk/internal/finance"
	"tourdesk/internal/http/middleware"
	"tourdesk/internal/services"

	"github.com/gin-gonic/gin"
)

// ReminderHandler exposes the payment-reminder table and SMS dispatch.
type ReminderHandler struct {
	Svc services.ReminderService
}

func (h ReminderHandler) svc(c *gin.Context) services.ReminderService {
	s := h.Svc
	s.RequestID = middleware.GetRequestID(c)
	return s
}

// parseFilters reads the filter state from query parameters. Dates accept
// either a bare day or full RFC 3339; the bare-day form covers the whole day
// inclusively on the "to" side.
func parseFilters(c *gin.Context) (finance.Filters, error) {
	f := finance.Filters{
		Search:        c.Query("search"),
		TourPackageID: c.Query("tourPackageId"),
		PaymentStatus: domain.PaymentStatus(strings.ToUpper(c.Query("paymentStatus"))),
		PaymentType:   domain.PaymentType(strings.ToUpper(c.Query("paymentType"))),
	}

	parse := func(raw string, endOfDay bool) (*time.Time, error) {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return nil, nil
		}
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return &t, nil
		}
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, domain.ValidationError{Field: "date", Msg: "expected YYYY-MM-DD or RFC 3339"}
		}
		if endOfDay {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		return &t, nil
	}

	var err error
	if f.DateFrom, err = parse(c.Query("dateFrom"), false); err != nil {
		return finance.Filters{}, err
	}
	if f.DateTo, err = parse(c.Query("dateTo"), true); err != nil {
		return finance.Filters{}, err
	}
	return f, nil
}

// List returns the filtered, priority-sorted reminder table with its summary.
func (h ReminderHandler) List(c *gin.Context) {
	f, err := parseFilters(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	view, err := h.svc(c).ListView(c.Request.Context(), f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":          view,
		"activeFilters": f.ActiveCount(),
	})
}

func (h ReminderHandler) SendBulk(c *gin.Context) {
	var req services.BulkSendRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	req.SentBy = middleware.GetRequestContext(c).UserID

	res, err := h.svc(c).SendBulk(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": res})
}

func (h ReminderHandler) SendIndividual(c *gin.Context) {
	var req services.IndividualSendRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	req.BookingID = c.Param("id")
	req.SentBy = middleware.GetRequestContext(c).UserID

	msg, warnings, err := h.svc(c).SendIndividual(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": msg, "warnings": warnings})
}

// History lists the audit log of reminders sent to one booking.
func (h ReminderHandler) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	entries, err := h.Svc.Log.ListByTourMember(c.Param("id"), limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": entries})
}

// Frequency returns the advisory reminder cadence for one booking.
func (h ReminderHandler) Frequency(c *gin.Context) {
	freq, overdue, err := h.svc(c).Frequency(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"frequency": freq,
		"isOverdue": overdue,
	}})
}

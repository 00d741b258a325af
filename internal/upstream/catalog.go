package upstream

import (
	"context"
	"net/http"
	"net/url"

	"tourdesk/internal/domain"
	"tourdesk/internal/domain/models"
)

func (c *Client) ListMembers(ctx context.Context) ([]models.Member, error) {
	return getList[models.Member](ctx, c, "members", "/members", nil)
}

func (c *Client) ListTourPackages(ctx context.Context) ([]models.TourPackage, error) {
	return getList[models.TourPackage](ctx, c, "tour-packages", "/tour-packages", nil)
}

func (c *Client) GetTourPackage(ctx context.Context, id string) (models.TourPackage, error) {
	return getObject[models.TourPackage](ctx, c, "tour-package", "/tour-packages/"+url.PathEscape(id))
}

func (c *Client) ListEnquiries(ctx context.Context) ([]models.Enquiry, error) {
	return getList[models.Enquiry](ctx, c, "enquiries", "/enquiries", nil)
}

func (c *Client) CreateEnquiry(ctx context.Context, in models.NewEnquiry) (models.Enquiry, error) {
	var env objectEnvelope[models.Enquiry]
	err := c.do(ctx, "create enquiry", http.MethodPost, "/enquiries", nil, in, &env)
	return env.Data, err
}

func (c *Client) UpdateEnquiryStatus(ctx context.Context, id string, status domain.EnquiryStatus) (models.Enquiry, error) {
	var env objectEnvelope[models.Enquiry]
	body := map[string]domain.EnquiryStatus{"status": status}
	err := c.do(ctx, "update enquiry", http.MethodPut, "/enquiries/"+url.PathEscape(id)+"/status", nil, body, &env)
	return env.Data, err
}

// GetDashboardStats fetches the backend-computed overview block. It is
// independent of the client-side summary over a filtered list.
func (c *Client) GetDashboardStats(ctx context.Context) (models.DashboardStats, error) {
	return getObject[models.DashboardStats](ctx, c, "dashboard stats", "/dashboard/stats")
}

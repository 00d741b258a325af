package upstream

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"tourdesk/internal/domain/models"
)

// ListTourMembers fetches the full booking collection, optionally scoped to
// one package. Payments and members come back as empty slices, never nil.
func (c *Client) ListTourMembers(ctx context.Context, tourPackageID string) ([]models.TourMember, error) {
	var q url.Values
	if tourPackageID != "" {
		q = url.Values{"tourPackageId": []string{tourPackageID}}
	}
	list, err := getList[models.TourMember](ctx, c, "tour-members", "/tour-members", q)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].Payments == nil {
			list[i].Payments = []models.Payment{}
		}
		if list[i].Members == nil {
			list[i].Members = []models.Member{}
		}
	}
	return list, nil
}

func (c *Client) GetTourMember(ctx context.Context, id string) (models.TourMember, error) {
	tm, err := getObject[models.TourMember](ctx, c, "tour-member", "/tour-members/"+url.PathEscape(id))
	if err != nil {
		return models.TourMember{}, err
	}
	if tm.Payments == nil {
		tm.Payments = []models.Payment{}
	}
	if tm.Members == nil {
		tm.Members = []models.Member{}
	}
	return tm, nil
}

func (c *Client) CreateTourMember(ctx context.Context, in models.NewTourMember) (models.TourMember, error) {
	var env objectEnvelope[models.TourMember]
	err := c.do(ctx, "create tour-member", http.MethodPost, "/tour-members", nil, in, &env)
	return env.Data, err
}

func (c *Client) UpdateTourMember(ctx context.Context, id string, in models.NewTourMember) (models.TourMember, error) {
	var env objectEnvelope[models.TourMember]
	err := c.do(ctx, "update tour-member", http.MethodPut, "/tour-members/"+url.PathEscape(id), nil, in, &env)
	return env.Data, err
}

func (c *Client) DeleteTourMember(ctx context.Context, id string) error {
	return c.do(ctx, "delete tour-member", http.MethodDelete, "/tour-members/"+url.PathEscape(id), nil, nil, nil)
}

// AddPayment appends a payment row to the booking. Rows are immutable after
// this call from the gateway's point of view.
func (c *Client) AddPayment(ctx context.Context, tourMemberID string, in models.NewPayment) (models.Payment, error) {
	var env objectEnvelope[models.Payment]
	err := c.do(ctx, "add payment", http.MethodPost,
		"/tour-members/"+url.PathEscape(tourMemberID)+"/payments", nil, in, &env)
	return env.Data, err
}

// ReminderState is the backend-confirmed mutation applied after an SMS went
// out; lastReminder/reminderCount are never changed locally without it.
type ReminderState struct {
	LastReminder  time.Time  `json:"lastReminder"`
	NextReminder  *time.Time `json:"nextReminder,omitempty"`
	ReminderCount int        `json:"reminderCount"`
}

func (c *Client) UpdateReminderState(ctx context.Context, tourMemberID string, state ReminderState) error {
	return c.do(ctx, "update reminder state", http.MethodPut,
		"/tour-members/"+url.PathEscape(tourMemberID)+"/reminder", nil, state, nil)
}

func (c *Client) GetTourMemberStats(ctx context.Context, tourID string) (models.TourMemberStats, error) {
	var env objectEnvelope[models.TourMemberStats]
	q := url.Values{}
	if tourID != "" {
		q.Set("tourId", tourID)
	}
	err := c.do(ctx, "tour-member stats", http.MethodGet, "/tour-members/stats", q, nil, &env)
	return env.Data, err
}

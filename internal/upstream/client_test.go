package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"tourdesk/internal/domain"
)

func TestListTourMembersUnwrapsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tour-members" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Fatalf("missing bearer token, got %q", got)
		}
		if got := r.URL.Query().Get("tourPackageId"); got != "pkg-1" {
			t.Fatalf("tourPackageId = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"data":[
			{"id":"tm-1","totalCost":10000,"payments":[{"id":"p1","amount":3000}]},
			{"id":"tm-2","totalCost":5000}
		]}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	list, err := c.ListTourMembers(context.Background(), "pkg-1")
	if err != nil {
		t.Fatalf("ListTourMembers: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
	if list[0].Payments[0].Amount != 3000 {
		t.Fatalf("payment not decoded: %+v", list[0])
	}
	// Absent payments decode to an empty slice, never nil.
	if list[1].Payments == nil || list[1].Members == nil {
		t.Fatalf("nested slices must not be nil: %+v", list[1])
	}
}

func TestGetTourMemberNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	_, err := c.GetTourMember(context.Background(), "missing")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestUpstreamErrorOnServerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	_, err := c.ListTourPackages(context.Background())
	if !domain.IsUpstream(err) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func TestGetDashboardStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dashboard/stats" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"data":{"totalBookings":12,"totalRevenue":250000}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	stats, err := c.GetDashboardStats(context.Background())
	if err != nil {
		t.Fatalf("GetDashboardStats: %v", err)
	}
	if stats.TotalBookings != 12 || stats.TotalRevenue != 250000 {
		t.Fatalf("stats = %+v", stats)
	}
}

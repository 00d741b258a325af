package models

import "time"

// Member is a customer record shared across bookings (many-to-many via
// memberIds). Lifecycle is independent of any booking.
type Member struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	MobileNo  string    `json:"mobileNo"`
	Address   string    `json:"address"`
	Documents []string  `json:"documents,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TourPackage is read-mostly reference data consulted when composing a booking.
type TourPackage struct {
	ID          string    `json:"id"`
	PackageName string    `json:"packageName"`
	TourPrice   int64     `json:"tourPrice"`
	TotalSeat   int       `json:"totalSeat"`
	Desc        string    `json:"desc,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DashboardStats is the backend-computed overview block. It is fetched and
// displayed as-is, side by side with (never merged into) the client-side
// summary over the filtered booking list.
type DashboardStats struct {
	TotalEnquiries   int   `json:"totalEnquiries"`
	TotalMembers     int   `json:"totalMembers"`
	TotalPackages    int   `json:"totalPackages"`
	TotalBookings    int   `json:"totalBookings"`
	TotalRevenue     int64 `json:"totalRevenue"`
	PendingPayments  int   `json:"pendingPayments"`
	ActiveTours      int   `json:"activeTours"`
	RemindersSent    int   `json:"remindersSent"`
}

package http

import "github.com/helloChirag28/BookEase/internal/admin"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AdminTag struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	DisplayName *string `json:"display_name,omitempty"`
}

type LoginResponse struct {
	AccessToken string   `json:"access_token"`
	Admin       AdminTag `json:"admin"`
}

type StatsResponse struct {
	TodayBookings  int   `json:"today_bookings"`
	TodayRevenue   int64 `json:"today_revenue"`
	TotalCustomers int   `json:"total_customers"`
}

func NewStatsResponse(s *admin.Stats) StatsResponse {
	return StatsResponse{
		TodayBookings:  s.TodayBookings,
		TodayRevenue:   s.TodayRevenue,
		TotalCustomers: s.TotalCustomers,
	}
}

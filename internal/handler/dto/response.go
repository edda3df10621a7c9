package dto

import (
	"time"

	"github.com/wesamghrayeb/crm-app/internal/domain"
)

type ClientResponse struct {
	ID               string `json:"id"`
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	Role             string `json:"role"`
	SubscriptionType string `json:"subscription_type"`
	TotalSessions    int    `json:"total_sessions"`
	UsedSessions     int    `json:"used_sessions"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date,omitempty"`
	CreatedAt        string `json:"created_at"`
}

type SlotResponse struct {
	ID            string   `json:"id"`
	Date          string   `json:"date"`
	Time          string   `json:"time"`
	MaxClients    int      `json:"max_clients"`
	BookedClients []string `json:"booked_clients"`
	IsFull        bool     `json:"is_full"`
}

type ActivityResponse struct {
	SlotID     string `json:"slot_id"`
	SlotDate   string `json:"slot_date"`
	SlotTime   string `json:"slot_time"`
	ClientName string `json:"client_name"`
	Action     string `json:"action"`
	Timestamp  string `json:"timestamp"`
}

type LoginResponse struct {
	Token  string         `json:"token"`
	Client ClientResponse `json:"client"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToClientResponse(c *domain.Client) ClientResponse {
	resp := ClientResponse{
		ID:               c.ID,
		FullName:         c.FullName,
		Email:            c.Email,
		Role:             string(c.Role),
		SubscriptionType: c.SubscriptionType,
		TotalSessions:    c.TotalSessions,
		UsedSessions:     c.UsedSessions,
		StartDate:        c.StartDate.Format(time.RFC3339),
		CreatedAt:        c.CreatedAt.Format(time.RFC3339),
	}
	if c.EndDate != nil {
		resp.EndDate = c.EndDate.Format(time.RFC3339)
	}

	return resp
}

func ToSlotResponse(s *domain.Slot) SlotResponse {
	booked := s.BookedClients
	if booked == nil {
		booked = []string{}
	}

	return SlotResponse{
		ID:            s.ID,
		Date:          s.Date,
		Time:          s.Time,
		MaxClients:    s.MaxClients,
		BookedClients: booked,
		IsFull:        s.IsFull(),
	}
}

func ToSlotResponses(slots []*domain.Slot) []SlotResponse {
	resp := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, ToSlotResponse(s))
	}

	return resp
}

func ToActivityResponse(e *domain.ActivityEntry) ActivityResponse {
	return ActivityResponse{
		SlotID:     e.SlotID,
		SlotDate:   e.SlotDate,
		SlotTime:   e.SlotTime,
		ClientName: e.ClientName,
		Action:     string(e.Action),
		Timestamp:  e.Timestamp.Format(time.RFC3339),
	}
}

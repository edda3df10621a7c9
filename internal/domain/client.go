package domain

import "time"

type Role string

const (
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

// Client is a member of a studio run by one administrator. UsedSessions is
// maintained by the booking flow only; renewal resets it together with the quota.
type Client struct {
	ID               string     `json:"id"`
	FullName         string     `json:"full_name"`
	Email            string     `json:"email"`
	PasswordHash     string     `json:"-"`
	Role             Role       `json:"role"`
	AdminID          string     `json:"admin_id,omitempty"`
	SubscriptionType string     `json:"subscription_type"`
	TotalSessions    int        `json:"total_sessions"`
	UsedSessions     int        `json:"used_sessions"`
	StartDate        time.Time  `json:"start_date"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

func (c *Client) HasRemainingSessions() bool {
	return c.UsedSessions < c.TotalSessions
}

type RegisterClientInput struct {
	FullName         string
	Email            string
	Password         string
	AdminID          string
	SubscriptionType string
	TotalSessions    int
	StartDate        time.Time
	EndDate          *time.Time
}

type RenewMembershipInput struct {
	SubscriptionType string
	TotalSessions    int
	StartDate        time.Time
	EndDate          *time.Time
}

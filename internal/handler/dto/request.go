package dto

type RegisterRequest struct {
	FullName         string `json:"full_name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required"`
	AdminID          string `json:"admin_id" binding:"required,uuid"`
	SubscriptionType string `json:"subscription_type"`
	TotalSessions    int    `json:"total_sessions" binding:"gte=0"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateSlotRequest struct {
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	MaxClients int    `json:"max_clients" binding:"required,gt=0"`
}

type UpdateSlotRequest struct {
	MaxClients int `json:"max_clients" binding:"required,gt=0"`
}

type AddClientRequest struct {
	ClientID string `json:"client_id" binding:"required,uuid"`
}

type RenewRequest struct {
	SubscriptionType string `json:"subscription_type"`
	TotalSessions    int    `json:"total_sessions" binding:"required,gt=0"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
}

type NotifyRequest struct {
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

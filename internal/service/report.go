package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/wesamghrayeb/crm-app/internal/domain"
	"github.com/wesamghrayeb/crm-app/internal/service/ports"
)

const recentActivityLimit = 20

type UsageRow struct {
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	SubscriptionType string `json:"subscription_type"`
	TotalSessions    int    `json:"total_sessions"`
	UsedSessions     int    `json:"used_sessions"`
	UsageRate        string `json:"usage_rate"`
}

type Overview struct {
	TotalClients  int `json:"total_clients"`
	TotalSlots    int `json:"total_slots"`
	TotalBookings int `json:"total_bookings"`
	TotalSessions int `json:"total_sessions"`
	UsedSessions  int `json:"used_sessions"`
}

// ReportService is a read-only projection over the client ledger and the slot
// registry. It never mutates either.
type ReportService struct {
	clientRepo ports.ClientRepo
	slotRepo   ports.SlotRepo
}

func NewReportService(clientRepo ports.ClientRepo, slotRepo ports.SlotRepo) *ReportService {
	return &ReportService{
		clientRepo: clientRepo,
		slotRepo:   slotRepo,
	}
}

func (s *ReportService) Usage(ctx context.Context, adminID string) ([]UsageRow, error) {
	clients, err := s.clientRepo.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	rows := make([]UsageRow, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, UsageRow{
			FullName:         c.FullName,
			Email:            c.Email,
			SubscriptionType: c.SubscriptionType,
			TotalSessions:    c.TotalSessions,
			UsedSessions:     c.UsedSessions,
			UsageRate:        usageRate(c),
		})
	}

	return rows, nil
}

// UsageCSV renders the usage report with the export header the dashboard
// download expects.
func (s *ReportService) UsageCSV(ctx context.Context, adminID string) ([]byte, error) {
	rows, err := s.Usage(ctx, adminID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{
		{"Name", "Email", "Subscription", "TotalSessions", "UsedSessions", "UsageRate"},
	}
	for _, r := range rows {
		records = append(records, []string{
			r.FullName, r.Email, r.SubscriptionType,
			strconv.Itoa(r.TotalSessions), strconv.Itoa(r.UsedSessions), r.UsageRate,
		})
	}

	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}

	return buf.Bytes(), nil
}

func (s *ReportService) Overview(ctx context.Context, adminID string) (*Overview, error) {
	clients, err := s.clientRepo.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	slots, err := s.slotRepo.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}

	ov := &Overview{
		TotalClients: len(clients),
		TotalSlots:   len(slots),
	}
	for _, slot := range slots {
		ov.TotalBookings += len(slot.BookedClients)
	}
	for _, c := range clients {
		ov.TotalSessions += c.TotalSessions
		ov.UsedSessions += c.UsedSessions
	}

	return ov, nil
}

func (s *ReportService) RecentActivity(ctx context.Context, adminID string) ([]*domain.ActivityEntry, error) {
	return s.slotRepo.ListHistory(ctx, adminID, recentActivityLimit)
}

func usageRate(c *domain.Client) string {
	if c.TotalSessions <= 0 {
		return "0%"
	}
	rate := float64(c.UsedSessions) / float64(c.TotalSessions) * 100
	return fmt.Sprintf("%d%%", int(rate+0.5))
}

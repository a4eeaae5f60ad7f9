package monitor

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"kainan/internal/model"
	"kainan/internal/repository"
)

const (
	ringCapacity        = 20
	recentActivityLimit = 10
	recentOrdersLimit   = 5
	queueWindow         = 30 * time.Minute

	baseWaitMinutes     = 5
	perOrderWaitMinutes = 2
	maxWaitMinutes      = 30
)

// Activity is one inbound request as seen by the monitor.
type Activity struct {
	Time    time.Time `json:"time"`
	Path    string    `json:"path"`
	Method  string    `json:"method"`
	Address string    `json:"address"`
}

// QueueEntry is one pending order in the queue view. Status is always
// "Pending": there is no fulfillment state machine behind it.
type QueueEntry struct {
	OrderID  int64     `json:"orderId"`
	Time     time.Time `json:"time"`
	Ulam     string    `json:"ulam"`
	Customer string    `json:"customer"`
	Stall    int       `json:"stall"`
	Status   string    `json:"status"`
}

// SystemStatus is the coarse health/traffic view polled by dashboards.
type SystemStatus struct {
	Uptime           int64       `json:"uptime"`
	ConnectedDevices int         `json:"connectedDevices"`
	TotalRequests    uint64      `json:"totalRequests"`
	TotalOrders      int         `json:"totalOrders"`
	TotalUsers       int         `json:"totalUsers"`
	OrdersByStall    map[int]int `json:"ordersByStall"`
	RecentActivity   []Activity  `json:"recentActivity"`
}

// QueueStatus is the live-order view over the trailing 30 minutes.
type QueueStatus struct {
	TotalPending    int                  `json:"totalPending"`
	QueueByStall    map[int][]QueueEntry `json:"queueByStall"`
	RecentOrders    []QueueEntry         `json:"recentOrders"`
	AverageWaitTime string               `json:"averageWaitTime"`
}

// Monitor aggregates request activity in process memory and recomputes order
// and user counters from the record store on every call. Everything here is
// lost on restart; the persisted collections are the only durable state.
type Monitor struct {
	userRepo        repository.UserRepository
	reservationRepo repository.ReservationRepository
	now             func() time.Time

	mu            sync.Mutex
	start         time.Time
	devices       map[string]struct{}
	totalRequests uint64
	recent        []Activity // newest first, bounded by ringCapacity
}

// New creates a Monitor scoped to the process lifetime.
func New(userRepo repository.UserRepository, reservationRepo repository.ReservationRepository) *Monitor {
	m := &Monitor{
		userRepo:        userRepo,
		reservationRepo: reservationRepo,
		now:             time.Now,
	}
	m.start = m.now()
	m.devices = make(map[string]struct{})
	return m
}

// RecordActivity counts a request and prepends it to the activity ring.
func (m *Monitor) RecordActivity(address, path, method string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalRequests++
	m.devices[address] = struct{}{}
	m.recent = append([]Activity{{
		Time:    m.now(),
		Path:    path,
		Method:  method,
		Address: address,
	}}, m.recent...)
	if len(m.recent) > ringCapacity {
		m.recent = m.recent[:ringCapacity]
	}
}

// Track returns middleware that records every inbound request.
func (m *Monitor) Track() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			m.RecordActivity(c.RealIP(), c.Request().URL.Path, c.Request().Method)
			return next(c)
		}
	}
}

// SystemStatus builds the status view. Store read failures degrade the
// affected counters to zero; the endpoint itself never fails.
func (m *Monitor) SystemStatus(c echo.Context) SystemStatus {
	ctx := c.Request().Context()

	totalUsers := 0
	if n, err := m.userRepo.Count(ctx); err == nil {
		totalUsers = n
	}
	totalOrders := 0
	ordersByStall := map[int]int{}
	if counts, err := m.reservationRepo.CountByStall(ctx); err == nil {
		ordersByStall = counts
		for _, n := range counts {
			totalOrders += n
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	limit := recentActivityLimit
	if len(m.recent) < limit {
		limit = len(m.recent)
	}
	recent := make([]Activity, limit)
	copy(recent, m.recent[:limit])

	return SystemStatus{
		Uptime:           int64(m.now().Sub(m.start).Seconds()),
		ConnectedDevices: len(m.devices),
		TotalRequests:    m.totalRequests,
		TotalOrders:      totalOrders,
		TotalUsers:       totalUsers,
		OrdersByStall:    ordersByStall,
		RecentActivity:   recent,
	}
}

// QueueStatus builds the live-order view over reservations created within the
// trailing 30 minutes.
func (m *Monitor) QueueStatus(c echo.Context) QueueStatus {
	ctx := c.Request().Context()
	cutoff := m.now().Add(-queueWindow)

	var pending []model.Reservation
	if recent, err := m.reservationRepo.CreatedSince(ctx, cutoff); err == nil {
		pending = recent
	}

	byStall := make(map[int][]QueueEntry)
	entries := make([]QueueEntry, 0, len(pending))
	for _, res := range pending {
		entry := QueueEntry{
			OrderID:  res.ID,
			Time:     res.CreatedAt,
			Ulam:     res.UlamName,
			Customer: res.UserName,
			Stall:    res.Stall,
			Status:   "Pending",
		}
		byStall[res.Stall] = append(byStall[res.Stall], entry)
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Time.After(entries[j].Time)
	})
	if len(entries) > recentOrdersLimit {
		entries = entries[:recentOrdersLimit]
	}

	return QueueStatus{
		TotalPending:    len(pending),
		QueueByStall:    byStall,
		RecentOrders:    entries,
		AverageWaitTime: waitEstimate(len(pending)),
	}
}

// waitEstimate is a coarse guess from queue depth; there is no real
// fulfillment data to derive wait times from.
func waitEstimate(pending int) string {
	minutes := baseWaitMinutes + perOrderWaitMinutes*pending
	if minutes > maxWaitMinutes {
		minutes = maxWaitMinutes
	}
	return fmt.Sprintf("%d mins", minutes)
}

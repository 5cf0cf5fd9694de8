package storage

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Generated schedules are kept in memory only: the engine is stateless and
// artifacts exist solely so the client can fetch the Excel/PDF it just
// requested. Nothing survives a restart.

// StoredReport holds the rendered artifacts for one analysis run.
type StoredReport struct {
	ID          string
	ProjectName string
	Excel       []byte
	PDF         []byte
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

// ReportStore is a TTL-bounded in-memory report registry.
type ReportStore struct {
	mu      sync.RWMutex
	reports map[string]*StoredReport
	ttl     time.Duration
}

func NewReportStore(ttl time.Duration) *ReportStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &ReportStore{
		reports: make(map[string]*StoredReport),
		ttl:     ttl,
	}
}

// NewID mints a download id. Ids are minted before storage so the PDF can
// embed its own download link.
func (s *ReportStore) NewID() string {
	return uuid.NewString()
}

// Put registers the artifacts under the given download id.
func (s *ReportStore) Put(id, projectName string, excel, pdf []byte) {
	now := time.Now()
	s.mu.Lock()
	s.reports[id] = &StoredReport{
		ID:          id,
		ProjectName: projectName,
		Excel:       excel,
		PDF:         pdf,
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.ttl),
	}
	s.mu.Unlock()
}

// Get returns the stored report, or false if the id is unknown or expired.
// Expired entries are left for PurgeExpired to collect.
func (s *ReportStore) Get(id string) (*StoredReport, bool) {
	s.mu.RLock()
	report, ok := s.reports[id]
	s.mu.RUnlock()
	if !ok || time.Now().After(report.ExpiresAt) {
		return nil, false
	}
	return report, true
}

// PurgeExpired drops expired reports and returns how many were removed.
func (s *ReportStore) PurgeExpired() int {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, report := range s.reports {
		if now.After(report.ExpiresAt) {
			delete(s.reports, id)
			removed++
		}
	}
	return removed
}

// Len reports how many entries are currently held, expired or not.
func (s *ReportStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reports)
}

var store *ReportStore

// InitStore creates the process-wide report store.
func InitStore(ttl time.Duration) *ReportStore {
	store = NewReportStore(ttl)
	return store
}

// GetStore returns the process-wide report store.
func GetStore() *ReportStore {
	return store
}

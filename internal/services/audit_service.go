package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/opsdesk/backend/internal/audittrail"
	"github.com/opsdesk/backend/internal/config"
	"github.com/opsdesk/backend/internal/models"
	"github.com/opsdesk/backend/internal/repositories"
	"go.uber.org/zap"
)

var (
	ErrAuditTableNotFound    = errors.New("audit log table not found")
	ErrAuditPermissionDenied = errors.New("permission denied reading audit logs")
)

// SQLSTATE codes surfaced to the caller with their own messages.
const (
	pgUndefinedTable        = "42P01"
	pgInsufficientPrivilege = "42501"
)

// RecordSource reads raw change records.
type RecordSource interface {
	ListRecent(ctx context.Context, f repositories.AuditFilter) ([]models.ChangeRecord, error)
}

type AuditService struct {
	records  RecordSource
	resolver *audittrail.Resolver
	cfg      *config.Config
	log      *zap.Logger
}

func NewAuditService(records RecordSource, lookups audittrail.Store, cfg *config.Config, log *zap.Logger) *AuditService {
	return &AuditService{
		records:  records,
		resolver: audittrail.NewResolver(lookups, cfg.AuditLookupTimeout, log),
		cfg:      cfg,
		log:      log,
	}
}

// AuditList is one filtered view of a resolution pass.
type AuditList struct {
	Entries  []models.ResolvedLogEntry `json:"entries"`
	Total    int                       `json:"total"`
	Filtered int                       `json:"filtered"`
}

// Load fetches the most recent records and resolves them. Only the record fetch can fail;
// lookup failures degrade the labels instead. limit <= 0 uses the configured limit and
// anything above config.MaxFetchLimit is capped.
func (s *AuditService) Load(ctx context.Context, limit int) ([]models.ResolvedLogEntry, error) {
	if limit <= 0 {
		limit = s.cfg.AuditFetchLimit
	}
	if limit > config.MaxFetchLimit {
		limit = config.MaxFetchLimit
	}

	records, err := s.records.ListRecent(ctx, repositories.AuditFilter{
		Limit:                limit,
		ExcludeSystemActions: s.cfg.AuditExcludeSystemActions,
	})
	if err != nil {
		err = classifyFetchError(err)
		s.log.Error("failed to fetch audit records", zap.Int("limit", limit), zap.Error(err))
		return nil, err
	}

	return s.resolver.Resolve(ctx, records), nil
}

func (s *AuditService) List(ctx context.Context, f audittrail.Filter) (*AuditList, error) {
	entries, err := s.Load(ctx, 0)
	if err != nil {
		return nil, err
	}
	filtered := f.Apply(entries)
	return &AuditList{Entries: filtered, Total: len(entries), Filtered: len(filtered)}, nil
}

func (s *AuditService) Facets(ctx context.Context) (*audittrail.Facets, error) {
	entries, err := s.Load(ctx, 0)
	if err != nil {
		return nil, err
	}
	facets := audittrail.BuildFacets(entries)
	return &facets, nil
}

func classifyFetchError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUndefinedTable:
			return fmt.Errorf("%w: %w", ErrAuditTableNotFound, err)
		case pgInsufficientPrivilege:
			return fmt.Errorf("%w: %w", ErrAuditPermissionDenied, err)
		}
	}
	return fmt.Errorf("fetch audit records: %w", err)
}

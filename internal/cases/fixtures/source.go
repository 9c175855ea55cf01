package fixtures

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"casedesk/internal/cases/models"
	"casedesk/pkg/platform/sentinel"
)

const (
	casesFile   = "cases.json"
	detailsFile = "caseDetails.json"
)

//go:embed data/cases.json data/caseDetails.json
var embedded embed.FS

// Snapshot is the raw content of both fixture collections.
type Snapshot struct {
	Cases   []models.CaseRecord
	Details map[string]*models.CaseDetail
}

// Source produces a snapshot. It is called once, at start.
type Source interface {
	Load(ctx context.Context) (*Snapshot, error)
	Name() string
}

// Decode parses the two fixture documents.
func Decode(casesJSON, detailsJSON []byte) (*Snapshot, error) {
	snap := &Snapshot{}
	if err := json.Unmarshal(casesJSON, &snap.Cases); err != nil {
		return nil, fmt.Errorf("decode %s: %w: %v", casesFile, sentinel.ErrMalformed, err)
	}
	if len(detailsJSON) > 0 {
		if err := json.Unmarshal(detailsJSON, &snap.Details); err != nil {
			return nil, fmt.Errorf("decode %s: %w: %v", detailsFile, sentinel.ErrMalformed, err)
		}
	}
	if snap.Details == nil {
		snap.Details = map[string]*models.CaseDetail{}
	}
	return snap, nil
}

// EmbeddedSource serves the fixtures compiled into the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) Name() string { return "embedded" }

func (EmbeddedSource) Load(_ context.Context) (*Snapshot, error) {
	cases, err := embedded.ReadFile("data/" + casesFile)
	if err != nil {
		return nil, err
	}
	details, err := embedded.ReadFile("data/" + detailsFile)
	if err != nil {
		return nil, err
	}
	return Decode(cases, details)
}

// DirSource reads cases.json and caseDetails.json from a directory. A missing
// detail file is treated as an empty detail map.
type DirSource struct {
	Dir string
}

func (s DirSource) Name() string { return "dir:" + s.Dir }

func (s DirSource) Load(_ context.Context) (*Snapshot, error) {
	cases, err := os.ReadFile(filepath.Join(s.Dir, casesFile))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", casesFile, err)
	}
	details, err := os.ReadFile(filepath.Join(s.Dir, detailsFile))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read %s: %w", detailsFile, err)
	}
	return Decode(cases, details)
}

// RedisSource reads both documents from string keys <prefix>:cases and
// <prefix>:case_details.
type RedisSource struct {
	Client redis.Cmdable
	Prefix string
}

func (s RedisSource) Name() string { return "redis:" + s.Prefix }

// CasesKey is the key holding the case list document.
func (s RedisSource) CasesKey() string { return s.Prefix + ":cases" }

// DetailsKey is the key holding the case detail map document.
func (s RedisSource) DetailsKey() string { return s.Prefix + ":case_details" }

func (s RedisSource) Load(ctx context.Context) (*Snapshot, error) {
	cases, err := s.Client.Get(ctx, s.CasesKey()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("redis key %s: %w", s.CasesKey(), sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w: %v", s.CasesKey(), sentinel.ErrUnavailable, err)
	}
	details, err := s.Client.Get(ctx, s.DetailsKey()).Bytes()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("redis get %s: %w: %v", s.DetailsKey(), sentinel.ErrUnavailable, err)
	}
	return Decode(cases, details)
}

// Row names of the two documents in a Postgres fixture table.
const (
	PostgresCasesRow   = "cases"
	PostgresDetailsRow = "case_details"
)

// PostgresSource reads both documents from a table with columns
// name text primary key and body jsonb, one row per document.
type PostgresSource struct {
	DB    *sql.DB
	Table string
}

func (s PostgresSource) Name() string { return "postgres:" + s.Table }

func (s PostgresSource) Load(ctx context.Context) (*Snapshot, error) {
	cases, err := s.document(ctx, PostgresCasesRow)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("postgres row %s: %w", PostgresCasesRow, sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("postgres select %s: %w: %v", PostgresCasesRow, sentinel.ErrUnavailable, err)
	}
	details, err := s.document(ctx, PostgresDetailsRow)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("postgres select %s: %w: %v", PostgresDetailsRow, sentinel.ErrUnavailable, err)
	}
	return Decode(cases, details)
}

func (s PostgresSource) document(ctx context.Context, name string) ([]byte, error) {
	query := "SELECT body::text FROM " + pq.QuoteIdentifier(s.Table) + " WHERE name = $1"
	var body string
	if err := s.DB.QueryRowContext(ctx, query, name).Scan(&body); err != nil {
		return nil, err
	}
	return []byte(body), nil
}

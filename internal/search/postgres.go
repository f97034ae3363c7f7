package search

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSearcher implements Searcher using PostgreSQL full-text search.
// Chunks are ranked with ts_rank over an english tsvector, which is good
// enough for surfacing related project material without an embedding
// service.
type PostgresSearcher struct {
	pool *pgxpool.Pool
}

var _ Searcher = (*PostgresSearcher)(nil)

// Connect establishes a connection pool and ensures the chunk table exists.
func Connect(ctx context.Context, databaseURL string) (*PostgresSearcher, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &PostgresSearcher{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the connection pool
func (s *PostgresSearcher) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *PostgresSearcher) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS document_chunks (
			id         UUID PRIMARY KEY,
			namespace  TEXT NOT NULL,
			content    TEXT NOT NULL,
			metadata   JSONB,
			tsv        TSVECTOR GENERATED ALWAYS AS (to_tsvector('english', content)) STORED,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create chunk table: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`CREATE INDEX IF NOT EXISTS document_chunks_tsv_idx
		 ON document_chunks USING GIN (tsv)`)
	if err != nil {
		return fmt.Errorf("failed to create chunk index: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`CREATE INDEX IF NOT EXISTS document_chunks_namespace_idx
		 ON document_chunks (namespace)`)
	if err != nil {
		return fmt.Errorf("failed to create namespace index: %w", err)
	}
	return nil
}

// Store indexes chunks under the given namespace. Chunks without an ID
// are assigned one.
func (s *PostgresSearcher) Store(ctx context.Context, namespace string, chunks []Chunk) error {
	for _, chunk := range chunks {
		id := chunk.ID
		if id == "" {
			id = uuid.NewString()
		}

		var metaJSON []byte
		if len(chunk.Metadata) > 0 {
			var err error
			metaJSON, err = json.Marshal(chunk.Metadata)
			if err != nil {
				return fmt.Errorf("failed to marshal chunk metadata: %w", err)
			}
		}

		_, err := s.pool.Exec(ctx,
			`INSERT INTO document_chunks (id, namespace, content, metadata)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (id) DO UPDATE SET namespace = $2, content = $3, metadata = $4`,
			id, namespace, chunk.Content, metaJSON,
		)
		if err != nil {
			return fmt.Errorf("failed to store chunk %s: %w", id, err)
		}
	}
	return nil
}

// Query returns up to topK chunks ranked by full-text relevance, best first.
func (s *PostgresSearcher) Query(ctx context.Context, namespace, query string, topK int) ([]Match, error) {
	if topK <= 0 {
		topK = 5
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, content, metadata, ts_rank(tsv, plainto_tsquery('english', $2)) AS rank
		 FROM document_chunks
		 WHERE namespace = $1 AND tsv @@ plainto_tsquery('english', $2)
		 ORDER BY rank DESC, created_at ASC
		 LIMIT $3`,
		namespace, query, topK,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query chunks: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var m Match
		var metaJSON []byte
		if err := rows.Scan(&m.ID, &m.Content, &metaJSON, &m.Score); err != nil {
			return nil, fmt.Errorf("failed to scan chunk row: %w", err)
		}
		if len(metaJSON) > 0 {
			if err := json.Unmarshal(metaJSON, &m.Metadata); err != nil {
				return nil, fmt.Errorf("failed to unmarshal chunk metadata: %w", err)
			}
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read chunk rows: %w", err)
	}
	return matches, nil
}

// Clear removes every chunk in the namespace.
func (s *PostgresSearcher) Clear(ctx context.Context, namespace string) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM document_chunks WHERE namespace = $1`, namespace)
	if err != nil {
		return fmt.Errorf("failed to clear namespace %s: %w", namespace, err)
	}
	return nil
}

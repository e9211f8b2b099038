package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema is applied in order; every statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
	id         BIGSERIAL PRIMARY KEY,
	username   VARCHAR(50)  NOT NULL UNIQUE,
	full_name  VARCHAR(100) NOT NULL,
	role       VARCHAR(20)  NOT NULL CHECK (role IN ('owner', 'caster', 'filer', 'setter', 'polisher')),
	is_active  BOOLEAN      NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ  NOT NULL DEFAULT NOW()
);`,
	`CREATE TABLE IF NOT EXISTS jobs (
	id                BIGSERIAL PRIMARY KEY,
	design_no         VARCHAR(50)      NOT NULL,
	item_category     VARCHAR(50)      NOT NULL,
	initial_weight    NUMERIC(12,3)    NOT NULL CHECK (initial_weight > 0),
	total_loss        NUMERIC(12,3)    NOT NULL DEFAULT 0 CHECK (total_loss >= 0),
	loss_percentage   DOUBLE PRECISION NOT NULL DEFAULT 0,
	status            VARCHAR(30)      NOT NULL DEFAULT 'created'
		CHECK (status IN ('created', 'in_progress', 'pending_assignment', 'completed', 'cancelled')),
	current_stage     VARCHAR(20) CHECK (current_stage IN ('casting', 'filing', 'setting', 'polishing')),
	current_worker_id BIGINT REFERENCES users(id),
	created_by        BIGINT      NOT NULL REFERENCES users(id),
	description       TEXT,
	created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`,
	`CREATE TABLE IF NOT EXISTS transactions (
	id              BIGSERIAL PRIMARY KEY,
	job_id          BIGINT        NOT NULL REFERENCES jobs(id),
	worker_id       BIGINT        NOT NULL REFERENCES users(id),
	stage           VARCHAR(20)   NOT NULL CHECK (stage IN ('casting', 'filing', 'setting', 'polishing')),
	issued_weight   NUMERIC(12,3) NOT NULL CHECK (issued_weight > 0),
	issued_at       TIMESTAMPTZ   NOT NULL DEFAULT NOW(),
	status          VARCHAR(20)   NOT NULL DEFAULT 'in_progress' CHECK (status IN ('in_progress', 'completed')),
	returned_weight NUMERIC(12,3) CHECK (returned_weight > 0 AND returned_weight <= issued_weight),
	returned_at     TIMESTAMPTZ,
	loss            NUMERIC(12,3),
	loss_percentage DOUBLE PRECISION,
	notes           TEXT
);`,
	`CREATE INDEX IF NOT EXISTS jobs_status_idx ON jobs (status);`,
	`CREATE INDEX IF NOT EXISTS jobs_created_at_idx ON jobs (created_at);`,
	`CREATE INDEX IF NOT EXISTS transactions_job_issued_idx ON transactions (job_id, issued_at);`,
	`CREATE INDEX IF NOT EXISTS transactions_open_worker_idx ON transactions (worker_id) WHERE status = 'in_progress';`,
	`CREATE UNIQUE INDEX IF NOT EXISTS transactions_one_open_per_job_idx ON transactions (job_id) WHERE status = 'in_progress';`,
}

// Migrate creates the tables and indexes if they do not exist.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for i, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate step %d: %w", i+1, err)
		}
	}
	return nil
}

// Package migrate applies the notary schema. Statements are idempotent so
// the server can run them on every startup.
package migrate

import (
	"context"
	"database/sql"
	"fmt"
)

var statements = []string{
	`CREATE SCHEMA IF NOT EXISTS notary`,

	`CREATE TABLE IF NOT EXISTS notary.roles (
		role_id     uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		role_name   varchar(50) NOT NULL UNIQUE,
		description text,
		created_at  timestamptz NOT NULL DEFAULT now(),
		updated_at  timestamptz NOT NULL DEFAULT now()
	)`,

	// user_id comes from Keycloak, so no default here.
	`CREATE TABLE IF NOT EXISTS notary.users (
		user_id    uuid PRIMARY KEY,
		username   varchar(100) NOT NULL UNIQUE,
		email      varchar(255) NOT NULL UNIQUE,
		first_name varchar(100),
		last_name  varchar(100),
		is_active  boolean NOT NULL DEFAULT true,
		role_id    uuid NOT NULL REFERENCES notary.roles (role_id) ON DELETE RESTRICT,
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS notary.ai_agent_configurations (
		agent_id            uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		agent_name          varchar(100) NOT NULL UNIQUE,
		provider            varchar(50) NOT NULL,
		model_name          varchar(100) NOT NULL,
		api_base_url        varchar(255),
		api_key_secret_name varchar(100),
		config_json         jsonb NOT NULL DEFAULT '{}'::jsonb,
		is_active           boolean NOT NULL DEFAULT true,
		is_default          boolean NOT NULL DEFAULT false,
		created_at          timestamptz NOT NULL DEFAULT now(),
		updated_at          timestamptz NOT NULL DEFAULT now()
	)`,

	// At most one default agent.
	`CREATE UNIQUE INDEX IF NOT EXISTS ai_agent_configurations_one_default
		ON notary.ai_agent_configurations (is_default) WHERE is_default`,

	`CREATE TABLE IF NOT EXISTS notary.transcriptions (
		transcription_id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		audio_url        varchar(512) NOT NULL,
		text_content     text,
		duration_seconds integer,
		status           varchar(20) NOT NULL DEFAULT 'pending',
		agent_id         uuid REFERENCES notary.ai_agent_configurations (agent_id) ON DELETE SET NULL,
		created_by       uuid REFERENCES notary.users (user_id) ON DELETE SET NULL,
		created_at       timestamptz NOT NULL DEFAULT now(),
		updated_at       timestamptz NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS notary.document_types (
		document_type_id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		type_name        varchar(100) NOT NULL UNIQUE,
		description      text,
		created_at       timestamptz NOT NULL DEFAULT now(),
		updated_at       timestamptz NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS notary.templates (
		template_id      uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		template_name    varchar(150) NOT NULL UNIQUE,
		description      text,
		document_type_id uuid REFERENCES notary.document_types (document_type_id),
		is_active        boolean NOT NULL DEFAULT true,
		created_by       uuid REFERENCES notary.users (user_id),
		created_at       timestamptz NOT NULL DEFAULT now(),
		updated_at       timestamptz NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS notary.template_sections (
		section_id               uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		section_name             varchar(150) NOT NULL UNIQUE,
		section_content_template text NOT NULL,
		variables_schema         jsonb NOT NULL DEFAULT '{}'::jsonb,
		description              text
	)`,

	`CREATE TABLE IF NOT EXISTS notary.template_section_compositions (
		template_id  uuid NOT NULL REFERENCES notary.templates (template_id) ON DELETE CASCADE,
		section_id   uuid NOT NULL REFERENCES notary.template_sections (section_id) ON DELETE RESTRICT,
		order_index  integer NOT NULL,
		is_mandatory boolean NOT NULL DEFAULT true,
		PRIMARY KEY (template_id, section_id),
		UNIQUE (template_id, order_index)
	)`,

	`CREATE TABLE IF NOT EXISTS notary.documents (
		document_id      uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		document_name    varchar(255) NOT NULL,
		document_type_id uuid REFERENCES notary.document_types (document_type_id) ON DELETE SET NULL,
		template_id      uuid REFERENCES notary.templates (template_id) ON DELETE SET NULL,
		text_content     text,
		pdf_url          varchar(512),
		dynamic_data     jsonb NOT NULL DEFAULT '{}'::jsonb,
		created_by       uuid REFERENCES notary.users (user_id) ON DELETE SET NULL,
		created_at       timestamptz NOT NULL DEFAULT now(),
		updated_at       timestamptz NOT NULL DEFAULT now()
	)`,
}

// Run executes every schema statement in order.
func Run(ctx context.Context, db *sql.DB) error {
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %v", err)
		}
	}
	return nil
}

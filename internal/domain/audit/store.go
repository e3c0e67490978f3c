package audit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"aisg/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

const auditColumns = "id::text, input_json, result_json, created_at"

func (s *Store) CreateAudit(ctx context.Context, a Audit) (Audit, error) {
	inputJSON, err := json.Marshal(a.Input)
	if err != nil {
		return Audit{}, fmt.Errorf("encode audit input: %w", err)
	}
	resultJSON, err := json.Marshal(a.Result)
	if err != nil {
		return Audit{}, fmt.Errorf("encode audit result: %w", err)
	}

	err = s.DB.QueryRow(ctx, `
    INSERT INTO audits (id, nama, jabatan, cabang, tanggal_lahir, input_json, result_json, total_reality_score, zona_final, profil)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
    RETURNING created_at
  `, a.ID, a.Input.Name, a.Input.JobTitle, a.Input.Branch, a.Input.BirthDate, inputJSON, resultJSON,
		a.Result.TotalRealityScore, string(a.Result.ZonaFinal), string(a.Result.Profil)).Scan(&a.CreatedAt)
	if err != nil {
		return Audit{}, fmt.Errorf("insert audit: %w", err)
	}
	return a, nil
}

func (s *Store) GetAudit(ctx context.Context, id string) (Audit, error) {
	row := s.DB.QueryRow(ctx, "SELECT "+auditColumns+" FROM audits WHERE id = $1", id)
	a, err := scanAudit(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Audit{}, ErrNotFound
	}
	return a, err
}

func (s *Store) ListAudits(ctx context.Context, nameFilter string) ([]Audit, error) {
	query := "SELECT " + auditColumns + " FROM audits"
	var args []any
	if name := strings.TrimSpace(nameFilter); name != "" {
		query += ` WHERE lower(nama) LIKE $1 ESCAPE '\'`
		args = append(args, containsPattern(name))
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list audits: %w", err)
	}
	defer rows.Close()

	out := []Audit{}
	for rows.Next() {
		a, err := scanAudit(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a case-insensitive LIKE pattern that matches name
// literally anywhere in the column.
func containsPattern(name string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(name)) + "%"
}

// DeleteAudit removes the audit; chat messages go with it through the
// foreign key cascade.
func (s *Store) DeleteAudit(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM audits WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete audit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	if p, ok := s.DB.(interface{ Ping(context.Context) error }); ok {
		return p.Ping(ctx)
	}
	var one int
	return s.DB.QueryRow(ctx, "SELECT 1").Scan(&one)
}

func scanAudit(row pgx.Row) (Audit, error) {
	var a Audit
	var inputJSON, resultJSON []byte
	if err := row.Scan(&a.ID, &inputJSON, &resultJSON, &a.CreatedAt); err != nil {
		return Audit{}, err
	}
	if err := json.Unmarshal(inputJSON, &a.Input); err != nil {
		return Audit{}, fmt.Errorf("decode audit %s input: %w", a.ID, err)
	}
	if err := json.Unmarshal(resultJSON, &a.Result); err != nil {
		return Audit{}, fmt.Errorf("decode audit %s result: %w", a.ID, err)
	}
	return a, nil
}

package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/ticket"
)

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository returns the Postgres-backed ticket store.
func NewTicketRepository(pool *pgxpool.Pool) TicketStore {
	return &ticketRepository{pool: pool}
}

const ticketColumns = `id, user_id, customer_name, location_name, task_id, service_request,
               hostname, subject, analyst_name, support_start_time, support_end_time,
               description, analyst_action, is_due_call, used_acfs, has_ink_staining,
               part_replaced, part_description, tag_vldd, tag_nlvdd, test_with_card,
               sic_withdrawal, sic_deposit, sic_sensors, sic_smart_power,
               client_witness_name, client_witness_id, validated_by, validated_at,
               ai_suggested_solution, status, priority, is_escalated, created_at`

func (r *ticketRepository) Create(ctx context.Context, t *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (` + ticketColumns + `)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,
                $18,$19,$20,$21,$22,$23,$24,$25,$26,$27,$28,$29,$30,$31,$32,$33,$34)`
	row := ticket.ToRemoteRow(t)
	_, err := r.pool.Exec(ctx, query, rowArgs(row)...)
	return err
}

func (r *ticketRepository) List(ctx context.Context) ([]domain.Ticket, error) {
	const query = `
        SELECT ` + ticketColumns + `
        FROM tickets ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

func (r *ticketRepository) Update(ctx context.Context, t *domain.Ticket) error {
	const query = `
        UPDATE tickets SET customer_name=$1, location_name=$2, task_id=$3, service_request=$4,
            hostname=$5, subject=$6, analyst_name=$7, support_start_time=$8, support_end_time=$9,
            description=$10, analyst_action=$11, is_due_call=$12, used_acfs=$13,
            has_ink_staining=$14, part_replaced=$15, part_description=$16, tag_vldd=$17,
            tag_nlvdd=$18, test_with_card=$19, sic_withdrawal=$20, sic_deposit=$21,
            sic_sensors=$22, sic_smart_power=$23, client_witness_name=$24, client_witness_id=$25,
            validated_by=$26, validated_at=$27, ai_suggested_solution=$28, status=$29,
            priority=$30, is_escalated=$31
        WHERE id=$32`
	row := ticket.ToRemoteRow(t)
	cmd, err := r.pool.Exec(ctx, query,
		row.CustomerName,
		row.LocationName,
		row.TaskID,
		row.ServiceRequest,
		row.Hostname,
		row.Subject,
		row.AnalystName,
		row.SupportStartTime,
		row.SupportEndTime,
		row.Description,
		row.AnalystAction,
		row.IsDueCall,
		row.UsedACFS,
		row.HasInkStaining,
		row.PartReplaced,
		row.PartDescription,
		row.TagVLDD,
		row.TagNLVDD,
		row.TestWithCard,
		row.SICWithdrawal,
		row.SICDeposit,
		row.SICSensors,
		row.SICSmartPower,
		row.ClientWitnessName,
		row.ClientWitnessID,
		row.ValidatedBy,
		row.ValidatedAt,
		row.AISuggestedSolution,
		row.Status,
		row.Priority,
		row.IsEscalated,
		row.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ticketRepository) Delete(ctx context.Context, id string) error {
	// deleting an already-absent id is a no-op
	_, err := r.pool.Exec(ctx, `DELETE FROM tickets WHERE id=$1`, id)
	return err
}

func rowArgs(row ticket.RemoteRow) []any {
	return []any{
		row.ID,
		row.UserID,
		row.CustomerName,
		row.LocationName,
		row.TaskID,
		row.ServiceRequest,
		row.Hostname,
		row.Subject,
		row.AnalystName,
		row.SupportStartTime,
		row.SupportEndTime,
		row.Description,
		row.AnalystAction,
		row.IsDueCall,
		row.UsedACFS,
		row.HasInkStaining,
		row.PartReplaced,
		row.PartDescription,
		row.TagVLDD,
		row.TagNLVDD,
		row.TestWithCard,
		row.SICWithdrawal,
		row.SICDeposit,
		row.SICSensors,
		row.SICSmartPower,
		row.ClientWitnessName,
		row.ClientWitnessID,
		row.ValidatedBy,
		row.ValidatedAt,
		row.AISuggestedSolution,
		row.Status,
		row.Priority,
		row.IsEscalated,
		row.CreatedAt,
	}
}

func scanTickets(rows pgx.Rows) ([]domain.Ticket, error) {
	var result []domain.Ticket
	for rows.Next() {
		var row ticket.RemoteRow
		var supportEnd, validatedAt *time.Time
		if err := rows.Scan(
			&row.ID,
			&row.UserID,
			&row.CustomerName,
			&row.LocationName,
			&row.TaskID,
			&row.ServiceRequest,
			&row.Hostname,
			&row.Subject,
			&row.AnalystName,
			&row.SupportStartTime,
			&supportEnd,
			&row.Description,
			&row.AnalystAction,
			&row.IsDueCall,
			&row.UsedACFS,
			&row.HasInkStaining,
			&row.PartReplaced,
			&row.PartDescription,
			&row.TagVLDD,
			&row.TagNLVDD,
			&row.TestWithCard,
			&row.SICWithdrawal,
			&row.SICDeposit,
			&row.SICSensors,
			&row.SICSmartPower,
			&row.ClientWitnessName,
			&row.ClientWitnessID,
			&row.ValidatedBy,
			&validatedAt,
			&row.AISuggestedSolution,
			&row.Status,
			&row.Priority,
			&row.IsEscalated,
			&row.CreatedAt,
		); err != nil {
			return nil, err
		}
		row.SupportEndTime = supportEnd
		if validatedAt != nil {
			formatted := validatedAt.UTC().Format(time.RFC3339Nano)
			row.ValidatedAt = &formatted
		}
		t, err := ticket.FromRemoteRow(row)
		if err != nil {
			return nil, err
		}
		result = append(result, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-points/internal/domain"
	"github.com/fsdevblog/groph-points/internal/repository/repoargs"
	"github.com/fsdevblog/groph-points/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const eventColumns = `id, created_at, updated_at, name, starts_at, ends_at, capacity,
	points_budget, points_awarded, published, active`

type EventRepository struct {
	conn uow.DBTX
}

func NewEventRepository(conn uow.DBTX) *EventRepository {
	return &EventRepository{conn: conn}
}

// Create создает событие вместе со списком организаторов. Вызывать внутри транзакции uow.
func (e *EventRepository) Create(ctx context.Context, args repoargs.EventCreate) (*domain.Event, error) {
	row := e.conn.QueryRow(ctx, `
		INSERT INTO events (name, starts_at, ends_at, capacity, points_budget)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+eventColumns,
		args.Name, args.StartsAt, args.EndsAt, args.Capacity, args.PointsBudget,
	)
	event, err := scanEvent(row)
	if err != nil {
		return nil, convertErr(err, "creating event `%s`", args.Name)
	}

	for _, userID := range args.Organizers {
		if addErr := e.AddOrganizer(ctx, event.ID, userID); addErr != nil {
			return nil, addErr
		}
	}
	event.Organizers = args.Organizers
	return event, nil
}

func (e *EventRepository) FindByID(ctx context.Context, id int64) (*domain.Event, error) {
	row := e.conn.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
	return e.findWithMembers(ctx, row, id)
}

// FindByIDForUpdate блокирует строку события до конца текущей транзакции. Через эту
// блокировку сериализуются конкурирующие начисления против бюджета события.
func (e *EventRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.Event, error) {
	row := e.conn.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1 FOR UPDATE`, id)
	return e.findWithMembers(ctx, row, id)
}

func (e *EventRepository) findWithMembers(ctx context.Context, row pgx.Row, id int64) (*domain.Event, error) {
	event, err := scanEvent(row)
	if err != nil {
		return nil, convertErr(err, "finding event by id %d", id)
	}

	organizers, organizersErr := e.memberIDs(ctx, "event_organizers", id)
	if organizersErr != nil {
		return nil, organizersErr
	}
	guests, guestsErr := e.memberIDs(ctx, "event_guests", id)
	if guestsErr != nil {
		return nil, guestsErr
	}
	event.Organizers = organizers
	event.Guests = guests
	return event, nil
}

// AddAwarded увеличивает счетчик выданных событием баллов. Проверка бюджета выполняется
// сервисным слоем под блокировкой FindByIDForUpdate.
func (e *EventRepository) AddAwarded(ctx context.Context, id int64, amount int64) error {
	tag, err := e.conn.Exec(ctx, `
		UPDATE events SET points_awarded = points_awarded + $2, updated_at = now()
		WHERE id = $1`,
		id, amount,
	)
	if err != nil {
		return convertErr(err, "adding %d awarded points to event %d", amount, id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "adding awarded points to event %d", id)
	}
	return nil
}

func (e *EventRepository) AddOrganizer(ctx context.Context, eventID, userID int64) error {
	_, err := e.conn.Exec(ctx, `
		INSERT INTO event_organizers (event_id, user_id) VALUES ($1, $2)`,
		eventID, userID,
	)
	if err != nil {
		return convertErr(err, "adding organizer %d to event %d", userID, eventID)
	}
	return nil
}

func (e *EventRepository) AddGuest(ctx context.Context, eventID, userID int64) error {
	_, err := e.conn.Exec(ctx, `
		INSERT INTO event_guests (event_id, user_id) VALUES ($1, $2)`,
		eventID, userID,
	)
	if err != nil {
		return convertErr(err, "adding guest %d to event %d", userID, eventID)
	}
	return nil
}

func (e *EventRepository) RemoveGuest(ctx context.Context, eventID, userID int64) error {
	tag, err := e.conn.Exec(ctx, `
		DELETE FROM event_guests WHERE event_id = $1 AND user_id = $2`,
		eventID, userID,
	)
	if err != nil {
		return convertErr(err, "removing guest %d from event %d", userID, eventID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "removing guest %d from event %d", userID, eventID)
	}
	return nil
}

func (e *EventRepository) SetPublished(ctx context.Context, id int64, published bool) error {
	tag, err := e.conn.Exec(ctx, `
		UPDATE events SET published = $2, updated_at = now() WHERE id = $1`,
		id, published,
	)
	if err != nil {
		return convertErr(err, "publishing event %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "publishing event %d", id)
	}
	return nil
}

// SetActive - мягкая деактивация. События с привязанными транзакциями физически не удаляются.
func (e *EventRepository) SetActive(ctx context.Context, id int64, active bool) error {
	tag, err := e.conn.Exec(ctx, `
		UPDATE events SET active = $2, updated_at = now() WHERE id = $1`,
		id, active,
	)
	if err != nil {
		return convertErr(err, "deactivating event %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "deactivating event %d", id)
	}
	return nil
}

func (e *EventRepository) memberIDs(ctx context.Context, table string, eventID int64) ([]int64, error) {
	rows, err := e.conn.Query(ctx, `SELECT user_id FROM `+table+` WHERE event_id = $1 ORDER BY user_id`, eventID)
	if err != nil {
		return nil, convertErr(err, "loading %s for event %d", table, eventID)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if scanErr := rows.Scan(&id); scanErr != nil {
			return nil, convertErr(scanErr, "scanning %s row", table)
		}
		ids = append(ids, id)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterating %s rows", table)
	}
	return ids, nil
}

func scanEvent(row pgx.Row) (*domain.Event, error) {
	var event domain.Event
	err := row.Scan(
		&event.ID,
		&event.CreatedAt,
		&event.UpdatedAt,
		&event.Name,
		&event.StartsAt,
		&event.EndsAt,
		&event.Capacity,
		&event.PointsBudget,
		&event.PointsAwarded,
		&event.Published,
		&event.Active,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

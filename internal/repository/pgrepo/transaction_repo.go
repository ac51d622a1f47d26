package pgrepo

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsdevblog/groph-points/internal/domain"
	"github.com/fsdevblog/groph-points/internal/repository/repoargs"
	"github.com/fsdevblog/groph-points/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const transactionColumns = `id, created_at, updated_at, user_id, type, amount, spent,
	related_id, created_by, processed, processed_by, suspicious, remark`

type TransactionRepository struct {
	conn uow.DBTX
}

func NewTransactionRepository(conn uow.DBTX) *TransactionRepository {
	return &TransactionRepository{conn: conn}
}

func (t *TransactionRepository) Create(
	ctx context.Context,
	args repoargs.TransactionCreate,
) (*domain.Transaction, error) {
	row := t.conn.QueryRow(ctx, `
		INSERT INTO transactions (user_id, type, amount, spent, related_id, created_by, suspicious, remark)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+transactionColumns,
		args.UserID, string(args.Type), args.Amount, args.Spent,
		args.RelatedID, args.CreatedBy, args.Suspicious, args.Remark,
	)
	transaction, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "creating %s transaction", args.Type)
	}
	return transaction, nil
}

// CreatePair создает обе ноги трансфера и связывает их через related_id.
// Вызывать только внутри транзакции uow, иначе атомарность пары не гарантируется.
func (t *TransactionRepository) CreatePair(
	ctx context.Context,
	outgoing repoargs.TransactionCreate,
	incoming repoargs.TransactionCreate,
) (*domain.Transaction, *domain.Transaction, error) {
	out, outErr := t.Create(ctx, outgoing)
	if outErr != nil {
		return nil, nil, outErr
	}

	incoming.RelatedID = &out.ID
	in, inErr := t.Create(ctx, incoming)
	if inErr != nil {
		return nil, nil, inErr
	}

	row := t.conn.QueryRow(ctx, `
		UPDATE transactions SET related_id = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+transactionColumns,
		out.ID, in.ID,
	)
	linked, linkErr := scanTransaction(row)
	if linkErr != nil {
		return nil, nil, convertErr(linkErr, "linking transfer pair %d <-> %d", out.ID, in.ID)
	}
	return linked, in, nil
}

func (t *TransactionRepository) FindByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	row := t.conn.QueryRow(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id)
	transaction, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "finding transaction by id %d", id)
	}
	return transaction, nil
}

// FindByIDForUpdate блокирует строку журнала до конца текущей транзакции.
func (t *TransactionRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.Transaction, error) {
	row := t.conn.QueryRow(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1 FOR UPDATE`, id)
	transaction, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "finding transaction by id %d for update", id)
	}
	return transaction, nil
}

// Search возвращает страницу журнала по фильтру и общее число записей, попавших под фильтр
// до пагинации. Сортировка по id по убыванию.
func (t *TransactionRepository) Search(
	ctx context.Context,
	filter repoargs.TransactionFilter,
	page repoargs.Page,
) ([]domain.Transaction, int64, error) {
	where, args := buildTransactionFilter(filter)

	var total int64
	countRow := t.conn.QueryRow(ctx, `SELECT count(*) FROM transactions`+where, args...)
	if err := countRow.Scan(&total); err != nil {
		return nil, 0, convertErr(err, "counting transactions")
	}

	page = page.Normalize()
	args = append(args, page.Size, page.Offset())
	query := fmt.Sprintf(
		`SELECT %s FROM transactions%s ORDER BY id DESC LIMIT $%d OFFSET $%d`,
		transactionColumns, where, len(args)-1, len(args),
	)

	rows, queryErr := t.conn.Query(ctx, query, args...)
	if queryErr != nil {
		return nil, 0, convertErr(queryErr, "searching transactions")
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		transaction, scanErr := scanTransaction(rows)
		if scanErr != nil {
			return nil, 0, convertErr(scanErr, "scanning transaction row")
		}
		transactions = append(transactions, *transaction)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, 0, convertErr(rowsErr, "iterating transaction rows")
	}
	return transactions, total, nil
}

func (t *TransactionRepository) SetSuspicious(
	ctx context.Context,
	id int64,
	suspicious bool,
) (*domain.Transaction, error) {
	row := t.conn.QueryRow(ctx, `
		UPDATE transactions SET suspicious = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+transactionColumns,
		id, suspicious,
	)
	transaction, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "setting suspicious=%t on transaction %d", suspicious, id)
	}
	return transaction, nil
}

func (t *TransactionRepository) SetProcessed(
	ctx context.Context,
	id int64,
	processedBy int64,
) (*domain.Transaction, error) {
	row := t.conn.QueryRow(ctx, `
		UPDATE transactions SET processed = true, processed_by = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+transactionColumns,
		id, processedBy,
	)
	transaction, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "processing transaction %d", id)
	}
	return transaction, nil
}

// EffectiveBalance - сумма amount всех не-подозрительных транзакций юзера.
// Погашения учитываются сразу при создании (хранятся с отрицательным amount).
func (t *TransactionRepository) EffectiveBalance(ctx context.Context, userID int64) (int64, error) {
	var balance int64
	row := t.conn.QueryRow(ctx, `
		SELECT coalesce(sum(amount), 0) FROM transactions
		WHERE user_id = $1 AND suspicious = false`,
		userID,
	)
	if err := row.Scan(&balance); err != nil {
		return 0, convertErr(err, "summing balance for user %d", userID)
	}
	return balance, nil
}

// buildTransactionFilter собирает WHERE часть запроса и срез аргументов под фильтр.
func buildTransactionFilter(filter repoargs.TransactionFilter) (string, []any) {
	var conditions []string
	var args []any

	add := func(condition string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(condition, len(args)))
	}

	if filter.UserID != nil {
		add("user_id = $%d", *filter.UserID)
	}
	if filter.Type != nil {
		add("type = $%d", string(*filter.Type))
	}
	if filter.Amount != nil {
		if filter.AmountOp == repoargs.AmountLTE {
			add("amount <= $%d", *filter.Amount)
		} else {
			add("amount >= $%d", *filter.Amount)
		}
	}
	if filter.RelatedIDNull {
		conditions = append(conditions, "related_id IS NULL")
	} else if filter.RelatedID != nil {
		add("related_id = $%d", *filter.RelatedID)
	}
	if filter.Suspicious != nil {
		add("suspicious = $%d", *filter.Suspicious)
	}
	if filter.Processed != nil {
		add("processed = $%d", *filter.Processed)
	}
	if filter.CreatedBy != nil {
		add("created_by = $%d", *filter.CreatedBy)
	}
	if filter.CreatedFrom != nil {
		add("created_at >= $%d", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		add("created_at <= $%d", *filter.CreatedTo)
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var transaction domain.Transaction
	err := row.Scan(
		&transaction.ID,
		&transaction.CreatedAt,
		&transaction.UpdatedAt,
		&transaction.UserID,
		&transaction.Type,
		&transaction.Amount,
		&transaction.Spent,
		&transaction.RelatedID,
		&transaction.CreatedBy,
		&transaction.Processed,
		&transaction.ProcessedBy,
		&transaction.Suspicious,
		&transaction.Remark,
	)
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

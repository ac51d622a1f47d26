package memrepo

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/fsdevblog/groph-points/internal/domain"
	"github.com/fsdevblog/groph-points/internal/repository/repoargs"
)

type TransactionRepository struct {
	store *Store
	lk    sync.Locker
}

func (t *TransactionRepository) Create(
	_ context.Context,
	args repoargs.TransactionCreate,
) (*domain.Transaction, error) {
	t.lk.Lock()
	defer t.lk.Unlock()
	return t.createLocked(args), nil
}

func (t *TransactionRepository) createLocked(args repoargs.TransactionCreate) *domain.Transaction {
	t.store.nextTransactionID++
	now := t.store.now()
	transaction := &domain.Transaction{
		ID:         t.store.nextTransactionID,
		CreatedAt:  now,
		UpdatedAt:  now,
		UserID:     args.UserID,
		Type:       args.Type,
		Amount:     args.Amount,
		Spent:      args.Spent,
		RelatedID:  args.RelatedID,
		CreatedBy:  args.CreatedBy,
		Suspicious: args.Suspicious,
		Remark:     args.Remark,
	}
	t.store.transactions[transaction.ID] = transaction
	cp := *transaction
	return &cp
}

func (t *TransactionRepository) CreatePair(
	_ context.Context,
	outgoing repoargs.TransactionCreate,
	incoming repoargs.TransactionCreate,
) (*domain.Transaction, *domain.Transaction, error) {
	t.lk.Lock()
	defer t.lk.Unlock()

	out := t.createLocked(outgoing)
	incoming.RelatedID = &out.ID
	in := t.createLocked(incoming)

	t.store.transactions[out.ID].RelatedID = &in.ID
	out.RelatedID = &in.ID
	return out, in, nil
}

func (t *TransactionRepository) FindByID(_ context.Context, id int64) (*domain.Transaction, error) {
	t.lk.Lock()
	defer t.lk.Unlock()
	return t.findLocked(id)
}

// FindByIDForUpdate в памяти эквивалентен FindByID: эксклюзивность дает блокировка Do.
func (t *TransactionRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.Transaction, error) {
	return t.FindByID(ctx, id)
}

func (t *TransactionRepository) findLocked(id int64) (*domain.Transaction, error) {
	transaction, ok := t.store.transactions[id]
	if !ok {
		return nil, fmt.Errorf("[memrepo] transaction %d: %w", id, domain.ErrRecordNotFound)
	}
	cp := *transaction
	return &cp, nil
}

func (t *TransactionRepository) Search(
	_ context.Context,
	filter repoargs.TransactionFilter,
	page repoargs.Page,
) ([]domain.Transaction, int64, error) {
	t.lk.Lock()
	defer t.lk.Unlock()

	var matched []domain.Transaction
	for _, transaction := range t.store.transactions {
		if matchesFilter(transaction, filter) {
			matched = append(matched, *transaction)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	total := int64(len(matched))
	page = page.Normalize()
	offset := int(page.Offset())
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + int(page.Size)
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (t *TransactionRepository) SetSuspicious(
	_ context.Context,
	id int64,
	suspicious bool,
) (*domain.Transaction, error) {
	t.lk.Lock()
	defer t.lk.Unlock()

	transaction, ok := t.store.transactions[id]
	if !ok {
		return nil, fmt.Errorf("[memrepo] transaction %d: %w", id, domain.ErrRecordNotFound)
	}
	transaction.Suspicious = suspicious
	transaction.UpdatedAt = t.store.now()
	cp := *transaction
	return &cp, nil
}

func (t *TransactionRepository) SetProcessed(
	_ context.Context,
	id int64,
	processedBy int64,
) (*domain.Transaction, error) {
	t.lk.Lock()
	defer t.lk.Unlock()

	transaction, ok := t.store.transactions[id]
	if !ok {
		return nil, fmt.Errorf("[memrepo] transaction %d: %w", id, domain.ErrRecordNotFound)
	}
	transaction.Processed = true
	transaction.ProcessedBy = &processedBy
	transaction.UpdatedAt = t.store.now()
	cp := *transaction
	return &cp, nil
}

func (t *TransactionRepository) EffectiveBalance(_ context.Context, userID int64) (int64, error) {
	t.lk.Lock()
	defer t.lk.Unlock()

	var balance int64
	for _, transaction := range t.store.transactions {
		if transaction.UserID == userID && !transaction.Suspicious {
			balance += transaction.Amount
		}
	}
	return balance, nil
}

func matchesFilter(transaction *domain.Transaction, filter repoargs.TransactionFilter) bool {
	if filter.UserID != nil && transaction.UserID != *filter.UserID {
		return false
	}
	if filter.Type != nil && transaction.Type != *filter.Type {
		return false
	}
	if filter.Amount != nil {
		if filter.AmountOp == repoargs.AmountLTE {
			if transaction.Amount > *filter.Amount {
				return false
			}
		} else if transaction.Amount < *filter.Amount {
			return false
		}
	}
	if filter.RelatedIDNull {
		if transaction.RelatedID != nil {
			return false
		}
	} else if filter.RelatedID != nil {
		if transaction.RelatedID == nil || *transaction.RelatedID != *filter.RelatedID {
			return false
		}
	}
	if filter.Suspicious != nil && transaction.Suspicious != *filter.Suspicious {
		return false
	}
	if filter.Processed != nil && transaction.Processed != *filter.Processed {
		return false
	}
	if filter.CreatedBy != nil && transaction.CreatedBy != *filter.CreatedBy {
		return false
	}
	if filter.CreatedFrom != nil && transaction.CreatedAt.Before(*filter.CreatedFrom) {
		return false
	}
	if filter.CreatedTo != nil && transaction.CreatedAt.After(*filter.CreatedTo) {
		return false
	}
	return true
}

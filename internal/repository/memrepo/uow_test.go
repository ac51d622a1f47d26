package memrepo

import (
	"context"
	"errors"
	"testing"

	"github.com/fsdevblog/groph-points/internal/domain"
	"github.com/fsdevblog/groph-points/internal/repository/repoargs"
	"github.com/fsdevblog/groph-points/pkg/uow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoRollsBackOnError(t *testing.T) {
	u := NewUnitOfWork(NewStore())
	ctx := context.Background()
	boom := errors.New("boom")

	err := u.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, getErr := uow.GetAs[*TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
		require.NoError(t, getErr)

		_, createErr := repo.Create(c, repoargs.TransactionCreate{
			UserID: 1,
			Type:   domain.TransactionAdjustment,
			Amount: 100,
		})
		require.NoError(t, createErr)
		return boom
	})
	require.ErrorIs(t, err, boom)

	// запись созданная внутри откатившейся транзакции не видна снаружи
	repo, repoErr := uow.GetRepositoryAs[*TransactionRepository](u, uow.RepositoryName(repoargs.TransactionRepoName))
	require.NoError(t, repoErr)

	_, findErr := repo.FindByID(ctx, 1)
	assert.ErrorIs(t, findErr, domain.ErrRecordNotFound)

	balance, balanceErr := repo.EffectiveBalance(ctx, 1)
	require.NoError(t, balanceErr)
	assert.Equal(t, int64(0), balance)
}

func TestDoCommits(t *testing.T) {
	u := NewUnitOfWork(NewStore())
	ctx := context.Background()

	err := u.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, getErr := uow.GetAs[*TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
		if getErr != nil {
			return getErr
		}
		_, createErr := repo.Create(c, repoargs.TransactionCreate{
			UserID: 1,
			Type:   domain.TransactionAdjustment,
			Amount: 42,
		})
		return createErr
	})
	require.NoError(t, err)

	repo, repoErr := uow.GetRepositoryAs[*TransactionRepository](u, uow.RepositoryName(repoargs.TransactionRepoName))
	require.NoError(t, repoErr)

	balance, balanceErr := repo.EffectiveBalance(ctx, 1)
	require.NoError(t, balanceErr)
	assert.Equal(t, int64(42), balance)
}

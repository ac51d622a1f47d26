package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-points/internal/domain"
	"github.com/fsdevblog/groph-points/internal/repository/repoargs"
	"github.com/fsdevblog/groph-points/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, created_at, updated_at, username, password, role, verified`

type UserRepository struct {
	conn uow.DBTX
}

func NewUserRepository(conn uow.DBTX) *UserRepository {
	return &UserRepository{conn: conn}
}

func (u *UserRepository) CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `
		INSERT INTO users (username, password, role, verified)
		VALUES ($1, $2, $3, $4)
		RETURNING `+userColumns,
		args.Username, args.Password, string(args.Role), args.Verified,
	)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user `%s`", args.Username)
	}
	return user, nil
}

func (u *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by id %d", id)
	}
	return user, nil
}

func (u *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by username `%s`", username)
	}
	return user, nil
}

// LockByID берет блокировку строки юзера до конца текущей транзакции. Это зона взаимного
// исключения для пары "проверка баланса - списание": конкурирующие списания по одному юзеру
// выстраиваются в очередь на этой блокировке.
func (u *UserRepository) LockByID(ctx context.Context, id int64) error {
	var locked int64
	row := u.conn.QueryRow(ctx, `SELECT id FROM users WHERE id = $1 FOR UPDATE`, id)
	if err := row.Scan(&locked); err != nil {
		return convertErr(err, "locking user %d", id)
	}
	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.Username,
		&user.Password,
		&user.Role,
		&user.Verified,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

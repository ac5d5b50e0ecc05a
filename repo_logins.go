package techquiry

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/uptrace/bun"
)

type logins struct {
	db *bun.DB
}

var _ UserLogins = (*logins)(nil)

// NewUserLoginsRepository creates the Bun-backed UserLogins store.
func NewUserLoginsRepository(db *bun.DB) UserLogins {
	return &logins{db: db}
}

func (l *logins) Select(ctx context.Context, id int) (*UserLogin, error) {
	record := &UserLogin{}
	err := l.db.NewSelect().
		Model(record).
		Where("?TableAlias.user_id = ?", id).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return record, nil
}

func (l *logins) SelectFromUsername(ctx context.Context, username string) (*UserLogin, error) {
	record := &UserLogin{}
	err := l.db.NewSelect().
		Model(record).
		Where("?TableAlias.username = ?", username).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return record, nil
}

func (l *logins) Insert(ctx context.Context, login *UserLogin) (int, error) {
	// The UNIQUE constraint on username is the final authority for the
	// concurrent create race; a violation here fails the insert.
	if _, err := l.db.NewInsert().Model(login).Exec(ctx); err != nil {
		return 0, err
	}

	return login.ID, nil
}

func (l *logins) Update(ctx context.Context, login *UserLogin) error {
	res, err := l.db.NewUpdate().Model(login).WherePK().Exec(ctx)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (l *logins) Delete(ctx context.Context, id int) error {
	_, err := l.db.NewDelete().
		Model((*UserLogin)(nil)).
		Where("user_id = ?", id).
		Exec(ctx)

	return err
}

// RepositoryManager exposes all repositories
type RepositoryManager interface {
	UserLogins() UserLogins
	CreateSchema(ctx context.Context) error
	RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error
	Validate() error
	MustValidate()
}

type mngr struct {
	db     *bun.DB
	logins UserLogins
}

// NewRepositoryManager wires the repositories over the given database.
func NewRepositoryManager(db *bun.DB) RepositoryManager {
	return &mngr{
		db:     db,
		logins: NewUserLoginsRepository(db),
	}
}

func (m mngr) UserLogins() UserLogins {
	return m.logins
}

// CreateSchema bootstraps the user_login table.
func (m mngr) CreateSchema(ctx context.Context) error {
	_, err := m.db.NewCreateTable().
		Model((*UserLogin)(nil)).
		IfNotExists().
		Exec(ctx)

	return err
}

func (m mngr) RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return m.db.RunInTx(ctx, opts, f)
	}
}

func (m mngr) Validate() error {
	if m.logins == nil {
		return errors.New("repository user logins should be initialized")
	}

	return nil
}

func (m mngr) MustValidate() {
	if err := m.Validate(); err != nil {
		log.Panic(err)
	}
}

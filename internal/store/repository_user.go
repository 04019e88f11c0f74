package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/models"
)

// userRepository is the SQL-backed implementation of [UserStorage].
// It handles employee records in the "users" table of PostgreSQL or SQLite.
//
// Every mutating method runs its read-check-write sequence in one
// transaction so the uniqueness check and the write are atomic. The partial
// unique index on LOWER(email) for active rows backs this up on PostgreSQL
// where concurrent transactions may both pass the check.
type userRepository struct {
	db *DB

	// emailUniqueIncludingDeleted makes inactive records block their email too.
	emailUniqueIncludingDeleted bool

	logger *logger.Logger
}

// NewUserRepository constructs a [UserStorage] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, emailUniqueIncludingDeleted bool, logger *logger.Logger) UserStorage {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:                          db,
		emailUniqueIncludingDeleted: emailUniqueIncludingDeleted,
		logger:                      logger,
	}
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	return r.queryUsers(ctx, "*userRepository.List", r.db.selectActiveUsers().OrderBy("id"))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (models.User, error) {
	return r.queryUser(ctx, r.db, "*userRepository.GetByID", r.db.selectActiveUserByID(id, false))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	q := r.db.selectActiveUsers().Where("LOWER(email) = ?", strings.ToLower(email))
	return r.queryUser(ctx, r.db, "*userRepository.GetByEmail", q)
}

func (r *userRepository) ListByDepartment(ctx context.Context, department string) ([]models.User, error) {
	q := r.db.selectActiveUsers().
		Where("LOWER(department) = ?", strings.ToLower(department)).
		OrderBy("id")
	return r.queryUsers(ctx, "*userRepository.ListByDepartment", q)
}

// Create checks the email and inserts the record in one transaction.
//
// Error handling:
//   - email held by another record → [ErrEmailAlreadyExists].
//   - unique index violation → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped low-level sentinel.
func (r *userRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		if err := r.ensureEmailFree(ctx, tx, user.Email, 0); err != nil {
			return err
		}

		query, args, err := r.db.insertUser(user).ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if err = tx.QueryRowContext(ctx, query, args...).Scan(&user.ID); err != nil {
			return r.classify(err, user.Email, ErrExecutingStatement)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Create").Msg("error creating user")
		return models.User{}, err
	}

	user.Active = true
	user.UpdatedAt = nil
	return user, nil
}

func (r *userRepository) Update(ctx context.Context, id int64, patch models.UserPatch, now time.Time) (models.User, error) {
	log := logger.FromContext(ctx)

	var updated models.User
	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		current, err := r.queryUser(ctx, tx, "*userRepository.Update", r.db.selectActiveUserByID(id, true))
		if err != nil {
			return err
		}

		if patch.Email != nil && !strings.EqualFold(*patch.Email, current.Email) {
			if err = r.ensureEmailFree(ctx, tx, *patch.Email, id); err != nil {
				return err
			}
		}

		query, args, err := r.db.updateUser(id, patch, now).ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			email := current.Email
			if patch.Email != nil {
				email = *patch.Email
			}
			return r.classify(err, email, ErrExecutingStatement)
		}

		patch.Apply(&current)
		current.UpdatedAt = &now
		updated = current
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNoUserWasFound) {
			log.Err(err).Str("func", "*userRepository.Update").Msg("error updating user")
		}
		return models.User{}, err
	}

	return updated, nil
}

func (r *userRepository) SoftDelete(ctx context.Context, id int64, now time.Time) (models.User, error) {
	log := logger.FromContext(ctx)

	var deleted models.User
	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		current, err := r.queryUser(ctx, tx, "*userRepository.SoftDelete", r.db.selectActiveUserByID(id, true))
		if err != nil {
			return err
		}

		query, args, err := r.db.deactivateUser(id, now).ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		current.Active = false
		current.UpdatedAt = &now
		deleted = current
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNoUserWasFound) {
			log.Err(err).Str("func", "*userRepository.SoftDelete").Msg("error deleting user")
		}
		return models.User{}, err
	}

	return deleted, nil
}

func (r *userRepository) Count(ctx context.Context) (int, error) {
	query, args, err := r.db.builder.
		Select("COUNT(*)").
		From(usersTable).
		Where(sq.Eq{"active": true}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var n int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return n, nil
}

func (r *userRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// querier is satisfied by *sql.DB, *sql.Tx and *DB.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *userRepository) ensureEmailFree(ctx context.Context, q querier, email string, exceptID int64) error {
	query, args, err := r.db.countEmailHolders(email, exceptID, r.emailUniqueIncludingDeleted).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var n int
	if err = q.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if n > 0 {
		return fmt.Errorf("%w: %s", ErrEmailAlreadyExists, email)
	}
	return nil
}

// classify maps a driver error to a domain error, falling back to fallback.
func (r *userRepository) classify(err error, email string, fallback error) error {
	if r.db.errorClassificator.Classify(err) == UniqueViolation {
		return fmt.Errorf("%w: %s", ErrEmailAlreadyExists, email)
	}
	return fmt.Errorf("%w: %w", fallback, err)
}

func (r *userRepository) queryUser(ctx context.Context, q querier, funcName string, b sq.SelectBuilder) (models.User, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return user, nil
}

func (r *userRepository) queryUsers(ctx context.Context, funcName string, b sq.SelectBuilder) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user      models.User
		updatedAt sql.NullTime
	)

	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PhoneNumber,
		&user.Department,
		&user.Position,
		&user.HireDate,
		&user.Active,
		&user.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	if updatedAt.Valid {
		user.UpdatedAt = &updatedAt.Time
	}
	return user, nil
}

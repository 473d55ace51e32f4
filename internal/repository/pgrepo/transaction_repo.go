package pgrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/borislavgotsev27/pepeplay/internal/domain"
	"github.com/borislavgotsev27/pepeplay/internal/repository/repoargs"
	"github.com/borislavgotsev27/pepeplay/pkg/uow"
)

const transactionColumns = `id, created_at, updated_at, user_id, type, amount, fee, status,
	track_id, wallet_address, notes`

type TransactionRepository struct {
	db uow.DBTX
}

func NewTransactionRepository(db uow.DBTX) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create создает запись о движении средств. Конфликт по track_id (частичный уникальный
// индекс) вернется как domain.ErrDuplicateKey.
func (t *TransactionRepository) Create(
	ctx context.Context,
	args repoargs.CreateTransaction,
) (*domain.Transaction, error) {
	row := t.db.QueryRow(ctx, `
		INSERT INTO transactions (user_id, type, amount, fee, status, track_id, wallet_address, notes)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8)
		RETURNING `+transactionColumns,
		args.UserID, args.Type, args.Amount, args.Fee, args.Status, args.TrackID, args.WalletAddress, args.Notes,
	)
	transaction, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "creating %s transaction for user %d", args.Type, args.UserID)
	}
	return transaction, nil
}

// GetByUserID возвращает историю операций юзера, отсортированную по дате создания по убыванию.
func (t *TransactionRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	rows, err := t.db.Query(ctx, `
		SELECT `+transactionColumns+` FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "getting transactions by userID %d", userID)
	}
	return collectTransactions(rows, "getting transactions by userID %d", userID)
}

func (t *TransactionRepository) FindByTrackID(ctx context.Context, trackID string) (*domain.Transaction, error) {
	row := t.db.QueryRow(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE track_id = $1`, trackID)
	transaction, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "finding transaction by trackID %s", trackID)
	}
	return transaction, nil
}

// GetPendingDeposits возвращает неподтвержденные депозиты для фонового опроса
// платежной системы, от старых к новым.
func (t *TransactionRepository) GetPendingDeposits(ctx context.Context, limit uint) ([]domain.Transaction, error) {
	safeLimit, safeLimitErr := safeConvertUintToInt32(limit)
	if safeLimitErr != nil {
		return nil, convertErr(safeLimitErr, "converting limit to int32")
	}

	rows, err := t.db.Query(ctx, `
		SELECT `+transactionColumns+` FROM transactions
		WHERE type = $1 AND status = $2
		ORDER BY created_at
		LIMIT $3`,
		domain.TransactionTypeDeposit, domain.TransactionStatusPending, safeLimit,
	)
	if err != nil {
		return nil, convertErr(err, "getting pending deposits")
	}
	return collectTransactions(rows, "getting pending deposits")
}

// CompletePendingDeposit переводит депозит pending -> completed одним условным запросом
// и фиксирует подтвержденную платежной системой сумму. Если депозит уже подтвержден
// (или не существует), строка не затрагивается и возвращается domain.ErrRecordNotFound -
// на этом свойстве держится защита от двойного зачисления при повторных опросах.
func (t *TransactionRepository) CompletePendingDeposit(
	ctx context.Context,
	trackID string,
	amount decimal.Decimal,
) (*domain.Transaction, error) {
	row := t.db.QueryRow(ctx, `
		UPDATE transactions
		SET status = $3, amount = $4, updated_at = now()
		WHERE track_id = $1 AND type = $5 AND status = $2
		RETURNING `+transactionColumns,
		trackID, domain.TransactionStatusPending, domain.TransactionStatusCompleted,
		amount, domain.TransactionTypeDeposit,
	)
	transaction, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "completing pending deposit %s", trackID)
	}
	return transaction, nil
}

// FailPendingDeposit помечает неподтвержденный депозит как проваленный. Уже
// подтвержденный депозит не трогает.
func (t *TransactionRepository) FailPendingDeposit(ctx context.Context, trackID string) error {
	_, err := t.db.Exec(ctx, `
		UPDATE transactions
		SET status = $3, updated_at = now()
		WHERE track_id = $1 AND type = $4 AND status = $2`,
		trackID, domain.TransactionStatusPending, domain.TransactionStatusFailed,
		domain.TransactionTypeDeposit,
	)
	if err != nil {
		return convertErr(err, "failing pending deposit %s", trackID)
	}
	return nil
}

// FailPendingDepositsBefore страховка на случай пропущенных вочером депозитов: помечает
// проваленными все pending депозиты, созданные раньше cutoff. Возвращает число затронутых строк.
func (t *TransactionRepository) FailPendingDepositsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := t.db.Exec(ctx, `
		UPDATE transactions
		SET status = $3, updated_at = now()
		WHERE type = $4 AND status = $2 AND created_at < $1`,
		cutoff, domain.TransactionStatusPending, domain.TransactionStatusFailed,
		domain.TransactionTypeDeposit,
	)
	if err != nil {
		return 0, convertErr(err, "failing stale pending deposits")
	}
	return tag.RowsAffected(), nil
}

func collectTransactions(rows pgx.Rows, format string, args ...any) ([]domain.Transaction, error) {
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, convertErr(err, format, args...)
		}
		transactions = append(transactions, *transaction)
	}
	if err := rows.Err(); err != nil {
		return nil, convertErr(err, format, args...)
	}
	return transactions, nil
}

func scanTransaction(row interface{ Scan(...any) error }) (*domain.Transaction, error) {
	var transaction domain.Transaction
	var trackID *string
	err := row.Scan(
		&transaction.ID,
		&transaction.CreatedAt,
		&transaction.UpdatedAt,
		&transaction.UserID,
		&transaction.Type,
		&transaction.Amount,
		&transaction.Fee,
		&transaction.Status,
		&trackID,
		&transaction.WalletAddress,
		&transaction.Notes,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if trackID != nil {
		transaction.TrackID = *trackID
	}
	return &transaction, nil
}

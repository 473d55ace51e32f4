package pgrepo

import (
	"context"

	"github.com/borislavgotsev27/pepeplay/internal/domain"
	"github.com/borislavgotsev27/pepeplay/internal/repository/repoargs"
	"github.com/borislavgotsev27/pepeplay/pkg/uow"
)

const referralEarningColumns = `id, created_at, user_id, referred_user_id, level, percent, amount, source_type`

type ReferralEarningRepository struct {
	db uow.DBTX
}

func NewReferralEarningRepository(db uow.DBTX) *ReferralEarningRepository {
	return &ReferralEarningRepository{db: db}
}

func (r *ReferralEarningRepository) Create(
	ctx context.Context,
	args repoargs.CreateReferralEarning,
) (*domain.ReferralEarning, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO referral_earnings (user_id, referred_user_id, level, percent, amount, source_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+referralEarningColumns,
		args.UserID, args.ReferredUserID, args.Level, args.Percent, args.Amount, args.SourceType,
	)
	earning, err := scanReferralEarning(row)
	if err != nil {
		return nil, convertErr(err, "creating referral earning for user %d", args.UserID)
	}
	return earning, nil
}

// GetByReferrer возвращает реферальные начисления юзера, от новых к старым.
func (r *ReferralEarningRepository) GetByReferrer(ctx context.Context, userID int64) ([]domain.ReferralEarning, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+referralEarningColumns+` FROM referral_earnings
		WHERE user_id = $1
		ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "getting referral earnings by userID %d", userID)
	}
	defer rows.Close()

	var earnings []domain.ReferralEarning
	for rows.Next() {
		earning, scanErr := scanReferralEarning(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "getting referral earnings by userID %d", userID)
		}
		earnings = append(earnings, *earning)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting referral earnings by userID %d", userID)
	}
	return earnings, nil
}

// SumByReferrer агрегирует начисления юзера по уровням цепочки. Count считает
// уникальных рефералов уровня, а не количество начислений.
func (r *ReferralEarningRepository) SumByReferrer(
	ctx context.Context,
	userID int64,
) ([]repoargs.ReferralLevelSum, error) {
	rows, err := r.db.Query(ctx, `
		SELECT level, COUNT(DISTINCT referred_user_id), COALESCE(SUM(amount), 0)
		FROM referral_earnings
		WHERE user_id = $1
		GROUP BY level
		ORDER BY level`,
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "summing referral earnings by userID %d", userID)
	}
	defer rows.Close()

	var sums []repoargs.ReferralLevelSum
	for rows.Next() {
		var sum repoargs.ReferralLevelSum
		if scanErr := rows.Scan(&sum.Level, &sum.Count, &sum.Amount); scanErr != nil {
			return nil, convertErr(scanErr, "summing referral earnings by userID %d", userID)
		}
		sums = append(sums, sum)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "summing referral earnings by userID %d", userID)
	}
	return sums, nil
}

func scanReferralEarning(row interface{ Scan(...any) error }) (*domain.ReferralEarning, error) {
	var earning domain.ReferralEarning
	err := row.Scan(
		&earning.ID,
		&earning.CreatedAt,
		&earning.UserID,
		&earning.ReferredUserID,
		&earning.Level,
		&earning.Percent,
		&earning.Amount,
		&earning.SourceType,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &earning, nil
}

package pgrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/borislavgotsev27/pepeplay/internal/domain"
	"github.com/borislavgotsev27/pepeplay/pkg/uow"
)

type DailyClicksRepository struct {
	db uow.DBTX
}

func NewDailyClicksRepository(db uow.DBTX) *DailyClicksRepository {
	return &DailyClicksRepository{db: db}
}

// Increment атомарно увеличивает счетчик кликов юзера за день day. Проверка лимита
// выполняется в самом запросе: upsert с условием clicks < limit не затрагивает строку,
// когда лимит уже исчерпан, и метод возвращает domain.ErrDailyLimitReached. Гонки двух
// конкурентных кликов разрешает база, счетчик никогда не превышает limit.
func (d *DailyClicksRepository) Increment(
	ctx context.Context,
	userID int64,
	day time.Time,
	limit int32,
) (int32, error) {
	row := d.db.QueryRow(ctx, `
		INSERT INTO daily_clicks (user_id, click_date, clicks)
		VALUES ($1, $2, 1)
		ON CONFLICT (user_id, click_date)
		DO UPDATE SET clicks = daily_clicks.clicks + 1, updated_at = now()
		WHERE daily_clicks.clicks < $3
		RETURNING clicks`,
		userID, day, limit,
	)

	var clicks int32
	if err := row.Scan(&clicks); err != nil {
		converted := convertErr(err, "incrementing daily clicks for user %d", userID)
		if errorIsNotFound(converted) {
			return 0, fmt.Errorf("[repository/incrementing daily clicks for user %d] %w",
				userID, domain.ErrDailyLimitReached)
		}
		return 0, converted
	}
	return clicks, nil
}

// Get возвращает счетчик кликов юзера за день day. Если юзер сегодня не кликал,
// возвращает нулевой счетчик, а не ErrRecordNotFound.
func (d *DailyClicksRepository) Get(ctx context.Context, userID int64, day time.Time) (*domain.DailyClicks, error) {
	row := d.db.QueryRow(ctx, `
		SELECT user_id, click_date, clicks FROM daily_clicks
		WHERE user_id = $1 AND click_date = $2`,
		userID, day,
	)

	var clicks domain.DailyClicks
	if err := row.Scan(&clicks.UserID, &clicks.ClickDate, &clicks.Clicks); err != nil {
		converted := convertErr(err, "getting daily clicks for user %d", userID)
		if errorIsNotFound(converted) {
			return &domain.DailyClicks{UserID: userID, ClickDate: day}, nil
		}
		return nil, converted
	}
	return &clicks, nil
}

// PurgeBefore удаляет счетчики за дни раньше cutoff. Лимит ключуется датой, так что
// записи прошлых дней на него не влияют - чистка нужна только от разрастания таблицы.
func (d *DailyClicksRepository) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := d.db.Exec(ctx, `DELETE FROM daily_clicks WHERE click_date < $1`, cutoff)
	if err != nil {
		return 0, convertErr(err, "purging daily clicks")
	}
	return tag.RowsAffected(), nil
}

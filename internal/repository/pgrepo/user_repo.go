package pgrepo

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/borislavgotsev27/pepeplay/internal/domain"
	"github.com/borislavgotsev27/pepeplay/internal/repository/repoargs"
	"github.com/borislavgotsev27/pepeplay/pkg/uow"
)

const userColumns = `id, created_at, updated_at, username, encrypted_password, wallet_address,
	referral_code, referred_by, balance, total_earnings`

type UserRepository struct {
	db uow.DBTX
}

func NewUserRepository(db uow.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser создает юзера. В случае конфликта юзернейма или реферального кода возвращает
// ошибку domain.ErrDuplicateKey, во всех других случаях - domain.ErrUnknown.
func (u *UserRepository) CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `
		INSERT INTO profiles (username, encrypted_password, wallet_address, referral_code, referred_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+userColumns,
		args.Username, args.Password, args.WalletAddress, args.ReferralCode, args.ReferredBy,
	)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user")
	}
	return user, nil
}

// FindUserByUsername возвращает ошибку domain.ErrRecordNotFound если запись не найдена.
func (u *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM profiles WHERE username = $1`, username)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by username %s", username)
	}
	return user, nil
}

func (u *UserRepository) FindUserByID(ctx context.Context, id int64) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM profiles WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by id %d", id)
	}
	return user, nil
}

func (u *UserRepository) FindUserByReferralCode(ctx context.Context, code string) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM profiles WHERE referral_code = $1`, code)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by referral code %s", code)
	}
	return user, nil
}

// AddEarnings атомарно увеличивает баланс и суммарный заработок юзера одним запросом.
// Инкремент выполняется на стороне базы, конкурентные начисления не теряются.
func (u *UserRepository) AddEarnings(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `
		UPDATE profiles
		SET balance = balance + $2, total_earnings = total_earnings + $2, updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns,
		userID, amount,
	)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "adding earnings for user %d", userID)
	}
	return user, nil
}

// CreditBalance атомарно увеличивает баланс юзера, не трогая total_earnings.
func (u *UserRepository) CreditBalance(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `
		UPDATE profiles
		SET balance = balance + $2, updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns,
		userID, amount,
	)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "crediting balance for user %d", userID)
	}
	return user, nil
}

// DebitBalance атомарно списывает amount с баланса юзера. Условие balance >= amount
// проверяется в том же запросе: при нехватке средств запрос не затрагивает ни одной
// строки и метод возвращает domain.ErrNotEnoughBalance.
func (u *UserRepository) DebitBalance(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `
		UPDATE profiles
		SET balance = balance - $2, updated_at = now()
		WHERE id = $1 AND balance >= $2
		RETURNING `+userColumns,
		userID, amount,
	)
	user, err := scanUser(row)
	if err != nil {
		converted := convertErr(err, "debiting balance for user %d", userID)
		// отсутствие строки в ответе означает либо неизвестного юзера, либо нехватку
		// средств; различать их здесь нет смысла - баланс в любом случае не изменился.
		if errorIsNotFound(converted) {
			return nil, convertNotEnoughBalance(userID)
		}
		return nil, converted
	}
	return user, nil
}

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.Username,
		&user.EncryptedPassword,
		&user.WalletAddress,
		&user.ReferralCode,
		&user.ReferredBy,
		&user.Balance,
		&user.TotalEarnings,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &user, nil
}

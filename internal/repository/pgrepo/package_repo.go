package pgrepo

import (
	"context"

	"github.com/borislavgotsev27/pepeplay/internal/domain"
	"github.com/borislavgotsev27/pepeplay/internal/repository/repoargs"
	"github.com/borislavgotsev27/pepeplay/pkg/uow"
)

const (
	packageColumns     = `id, created_at, name, amount, bonus_percent, is_active, sort_order`
	userPackageColumns = `id, created_at, user_id, package_id, amount, bonus_amount, status`
)

type PackageRepository struct {
	db uow.DBTX
}

func NewPackageRepository(db uow.DBTX) *PackageRepository {
	return &PackageRepository{db: db}
}

// GetActive возвращает доступные к покупке пакеты в витринном порядке.
func (p *PackageRepository) GetActive(ctx context.Context) ([]domain.Package, error) {
	rows, err := p.db.Query(ctx, `
		SELECT `+packageColumns+` FROM packages
		WHERE is_active = true
		ORDER BY sort_order, id`,
	)
	if err != nil {
		return nil, convertErr(err, "getting active packages")
	}
	defer rows.Close()

	var packages []domain.Package
	for rows.Next() {
		pkg, scanErr := scanPackage(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "getting active packages")
		}
		packages = append(packages, *pkg)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting active packages")
	}
	return packages, nil
}

func (p *PackageRepository) FindByID(ctx context.Context, id int64) (*domain.Package, error) {
	row := p.db.QueryRow(ctx, `SELECT `+packageColumns+` FROM packages WHERE id = $1`, id)
	pkg, err := scanPackage(row)
	if err != nil {
		return nil, convertErr(err, "finding package by id %d", id)
	}
	return pkg, nil
}

func (p *PackageRepository) CreateUserPackage(
	ctx context.Context,
	args repoargs.CreateUserPackage,
) (*domain.UserPackage, error) {
	row := p.db.QueryRow(ctx, `
		INSERT INTO user_packages (user_id, package_id, amount, bonus_amount, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+userPackageColumns,
		args.UserID, args.PackageID, args.Amount, args.BonusAmount, args.Status,
	)
	userPackage, err := scanUserPackage(row)
	if err != nil {
		return nil, convertErr(err, "creating user package for user %d", args.UserID)
	}
	return userPackage, nil
}

// GetUserPackages возвращает покупки юзера, от новых к старым.
func (p *PackageRepository) GetUserPackages(ctx context.Context, userID int64) ([]domain.UserPackage, error) {
	rows, err := p.db.Query(ctx, `
		SELECT `+userPackageColumns+` FROM user_packages
		WHERE user_id = $1
		ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "getting user packages by userID %d", userID)
	}
	defer rows.Close()

	var userPackages []domain.UserPackage
	for rows.Next() {
		userPackage, scanErr := scanUserPackage(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "getting user packages by userID %d", userID)
		}
		userPackages = append(userPackages, *userPackage)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting user packages by userID %d", userID)
	}
	return userPackages, nil
}

// FindActiveUserPackage возвращает последнюю завершенную покупку юзера - от нее
// считается текущая ставка за клик.
func (p *PackageRepository) FindActiveUserPackage(ctx context.Context, userID int64) (*domain.UserPackage, error) {
	row := p.db.QueryRow(ctx, `
		SELECT `+userPackageColumns+` FROM user_packages
		WHERE user_id = $1 AND status = $2
		ORDER BY created_at DESC
		LIMIT 1`,
		userID, domain.TransactionStatusCompleted,
	)
	userPackage, err := scanUserPackage(row)
	if err != nil {
		return nil, convertErr(err, "finding active user package by userID %d", userID)
	}
	return userPackage, nil
}

func scanPackage(row interface{ Scan(...any) error }) (*domain.Package, error) {
	var pkg domain.Package
	err := row.Scan(
		&pkg.ID,
		&pkg.CreatedAt,
		&pkg.Name,
		&pkg.Amount,
		&pkg.BonusPercent,
		&pkg.IsActive,
		&pkg.SortOrder,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &pkg, nil
}

func scanUserPackage(row interface{ Scan(...any) error }) (*domain.UserPackage, error) {
	var userPackage domain.UserPackage
	err := row.Scan(
		&userPackage.ID,
		&userPackage.CreatedAt,
		&userPackage.UserID,
		&userPackage.PackageID,
		&userPackage.Amount,
		&userPackage.BonusAmount,
		&userPackage.Status,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &userPackage, nil
}

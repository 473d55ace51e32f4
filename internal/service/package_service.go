package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/borislavgotsev27/pepeplay/internal/domain"
	"github.com/borislavgotsev27/pepeplay/internal/repository/repoargs"
	"github.com/borislavgotsev27/pepeplay/pkg/uow"
)

type PackageService struct {
	uow         uow.UOW
	packageRepo PackageRepository
	userRepo    UserRepository
}

func NewPackageService(u uow.UOW) (*PackageService, error) {
	packageRepo, packageRepoErr := uow.GetRepositoryAs[PackageRepository](u, uow.RepositoryName(repoargs.PackageRepoName))
	if packageRepoErr != nil {
		return nil, packageRepoErr
	}
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	return &PackageService{
		uow:         u,
		packageRepo: packageRepo,
		userRepo:    userRepo,
	}, nil
}

func (s *PackageService) List(ctx context.Context) ([]domain.Package, error) {
	packages, err := s.packageRepo.GetActive(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return packages, nil
}

func (s *PackageService) UserPackages(ctx context.Context, userID int64) ([]domain.UserPackage, error) {
	userPackages, err := s.packageRepo.GetUserPackages(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return userPackages, nil
}

// Purchase покупает юзеру пакет packageID с его внутреннего баланса.
//
// Алгоритм работы (одна транзакция базы):
//  1. Пакет должен существовать и быть активным, иначе domain.ErrPackageUnavailable.
//  2. Условное списание стоимости с баланса. При нехватке средств вернется
//     *domain.InsufficientBalanceError.
//  3. Запись покупки, транзакция package_purchase и зачисление бонуса пакета на баланс.
func (s *PackageService) Purchase(ctx context.Context, userID, packageID int64) (*domain.UserPackage, error) {
	var userPackage *domain.UserPackage
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		packageRepo, packageRepoErr :=
			uow.GetAs[PackageRepository](tx, uow.RepositoryName(repoargs.PackageRepoName))
		if packageRepoErr != nil {
			return packageRepoErr //nolint:wrapcheck
		}
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}
		transactionRepo, transactionRepoErr :=
			uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
		if transactionRepoErr != nil {
			return transactionRepoErr //nolint:wrapcheck
		}

		pkg, pkgErr := packageRepo.FindByID(c, packageID)
		if pkgErr != nil {
			if errors.Is(pkgErr, domain.ErrRecordNotFound) {
				return domain.ErrPackageUnavailable
			}
			return pkgErr //nolint:wrapcheck
		}
		if !pkg.IsActive {
			return domain.ErrPackageUnavailable
		}

		user, debitErr := userRepo.DebitBalance(c, userID, pkg.Amount)
		if debitErr != nil {
			if errors.Is(debitErr, domain.ErrNotEnoughBalance) {
				currentUser, currentUserErr := userRepo.FindUserByID(c, userID)
				if currentUserErr != nil {
					return currentUserErr //nolint:wrapcheck
				}
				return domain.NewInsufficientBalanceError(pkg.Amount, currentUser.Balance)
			}
			return debitErr //nolint:wrapcheck
		}

		bonus := pkg.Amount.Mul(pkg.BonusPercent).Div(oneHundred)

		var createErr error
		userPackage, createErr = packageRepo.CreateUserPackage(c, repoargs.CreateUserPackage{
			UserID:      userID,
			PackageID:   pkg.ID,
			Amount:      pkg.Amount,
			BonusAmount: bonus,
			Status:      domain.TransactionStatusCompleted,
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		if _, err := transactionRepo.Create(c, repoargs.CreateTransaction{
			UserID: userID,
			Type:   domain.TransactionTypePackagePurchase,
			Amount: pkg.Amount,
			Status: domain.TransactionStatusCompleted,
			Notes:  pkg.Name,
		}); err != nil {
			return err //nolint:wrapcheck
		}

		if bonus.IsPositive() {
			if _, err := userRepo.CreditBalance(c, user.ID, bonus); err != nil {
				return err //nolint:wrapcheck
			}
		}
		return nil
	})

	if txErr != nil {
		var insufficientErr *domain.InsufficientBalanceError
		if errors.As(txErr, &insufficientErr) {
			return nil, insufficientErr
		}
		if errors.Is(txErr, domain.ErrPackageUnavailable) {
			return nil, txErr
		}
		return nil, fmt.Errorf("purchasing package %d: %w", packageID, txErr)
	}
	return userPackage, nil
}

// PerClickRate считает текущую ставку юзера за клик: сумма последнего купленного
// пакета с бонусом, разложенная на срок окупаемости и дневной лимит кликов. Без
// купленного пакета ставка нулевая.
func (s *PackageService) PerClickRate(ctx context.Context, userID int64) (decimal.Decimal, error) {
	userPackage, err := s.packageRepo.FindActiveUserPackage(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err //nolint:wrapcheck
	}

	principal := userPackage.Amount.Add(userPackage.BonusAmount)
	return principal.
		Div(decimal.NewFromInt(domain.DaysToROI)).
		Div(decimal.NewFromInt32(domain.MaxDailyClicks)).
		Round(8), nil
}

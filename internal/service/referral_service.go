package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/borislavgotsev27/pepeplay/internal/domain"
	"github.com/borislavgotsev27/pepeplay/internal/repository/repoargs"
	"github.com/borislavgotsev27/pepeplay/pkg/uow"
)

// referralLevelPercents проценты бонуса по уровням цепочки пригласивших:
// прямой реферер, его реферер и так далее.
var referralLevelPercents = [domain.MaxReferralDepth]decimal.Decimal{
	decimal.NewFromInt(10),
	decimal.NewFromInt(5),
	decimal.NewFromInt(2),
}

var oneHundred = decimal.NewFromInt(100)

type ReferralService struct {
	uow          uow.UOW
	userRepo     UserRepository
	referralRepo ReferralEarningRepository
	logger       logrus.FieldLogger
}

func NewReferralService(u uow.UOW, logger logrus.FieldLogger) (*ReferralService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	rName := uow.RepositoryName(repoargs.ReferralEarningRepoName)
	referralRepo, referralRepoErr := uow.GetRepositoryAs[ReferralEarningRepository](u, rName)
	if referralRepoErr != nil {
		return nil, referralRepoErr
	}
	return &ReferralService{
		uow:          u,
		userRepo:     userRepo,
		referralRepo: referralRepo,
		logger:       logger.WithField("component", "referral"),
	}, nil
}

// Distribute раздает реферальные бонусы по цепочке пригласивших юзера sourceUserID,
// заработавшего amount. Каждый уровень начисляется в собственной транзакции: провал
// одного уровня логируется и не откатывает ни исходный заработок, ни другие уровни.
func (s *ReferralService) Distribute(ctx context.Context, sourceUserID int64, amount decimal.Decimal) {
	sourceUser, sourceErr := s.userRepo.FindUserByID(ctx, sourceUserID)
	if sourceErr != nil {
		s.logger.WithError(sourceErr).
			WithField("SourceUserID", sourceUserID).
			Error("distributing referral bonuses: source user lookup failed")
		return
	}

	referredBy := sourceUser.ReferredBy
	for level := int32(1); level <= domain.MaxReferralDepth; level++ {
		if referredBy == nil {
			return
		}
		referrerID := *referredBy

		percent := referralLevelPercents[level-1]
		bonus := amount.Mul(percent).Div(oneHundred)

		if err := s.creditReferrer(ctx, referrerID, sourceUserID, level, percent, bonus); err != nil {
			s.logger.WithError(err).WithFields(logrus.Fields{
				"SourceUserID": sourceUserID,
				"ReferrerID":   referrerID,
				"Level":        level,
			}).Error("distributing referral bonuses: level skipped")
		}

		referrer, referrerErr := s.userRepo.FindUserByID(ctx, referrerID)
		if referrerErr != nil {
			s.logger.WithError(referrerErr).
				WithField("ReferrerID", referrerID).
				Error("distributing referral bonuses: chain walk stopped")
			return
		}
		referredBy = referrer.ReferredBy
	}
}

// creditReferrer атомарно начисляет бонус рефереру: пополнение баланса, транзакция
// referral_bonus и строка статистики создаются в одной транзакции базы.
func (s *ReferralService) creditReferrer(
	ctx context.Context,
	referrerID int64,
	sourceUserID int64,
	level int32,
	percent decimal.Decimal,
	bonus decimal.Decimal,
) error {
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}
		transactionRepo, transactionRepoErr :=
			uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
		if transactionRepoErr != nil {
			return transactionRepoErr //nolint:wrapcheck
		}
		referralRepo, referralRepoErr :=
			uow.GetAs[ReferralEarningRepository](tx, uow.RepositoryName(repoargs.ReferralEarningRepoName))
		if referralRepoErr != nil {
			return referralRepoErr //nolint:wrapcheck
		}

		if _, err := userRepo.AddEarnings(c, referrerID, bonus); err != nil {
			return err //nolint:wrapcheck
		}
		if _, err := transactionRepo.Create(c, repoargs.CreateTransaction{
			UserID: referrerID,
			Type:   domain.TransactionTypeReferralBonus,
			Amount: bonus,
			Status: domain.TransactionStatusCompleted,
			Notes:  fmt.Sprintf("level %d referral bonus", level),
		}); err != nil {
			return err //nolint:wrapcheck
		}
		if _, err := referralRepo.Create(c, repoargs.CreateReferralEarning{
			UserID:         referrerID,
			ReferredUserID: sourceUserID,
			Level:          level,
			Percent:        percent,
			Amount:         bonus,
			SourceType:     domain.ReferralSourceGameEarnings,
		}); err != nil {
			return err //nolint:wrapcheck
		}
		return nil
	})

	if txErr != nil {
		return fmt.Errorf("crediting referrer %d: %w", referrerID, txErr)
	}
	return nil
}

// ReferralStats сводка реферальной программы юзера: его код и агрегаты по уровням.
type ReferralStats struct {
	ReferralCode string
	Levels       []repoargs.ReferralLevelSum
	TotalAmount  decimal.Decimal
}

func (s *ReferralService) Stats(ctx context.Context, userID int64) (*ReferralStats, error) {
	user, userErr := s.userRepo.FindUserByID(ctx, userID)
	if userErr != nil {
		return nil, userErr //nolint:wrapcheck
	}

	levels, sumErr := s.referralRepo.SumByReferrer(ctx, userID)
	if sumErr != nil {
		return nil, sumErr //nolint:wrapcheck
	}

	total := decimal.Zero
	for _, level := range levels {
		total = total.Add(level.Amount)
	}
	return &ReferralStats{
		ReferralCode: user.ReferralCode,
		Levels:       levels,
		TotalAmount:  total,
	}, nil
}

func (s *ReferralService) Earnings(ctx context.Context, userID int64) ([]domain.ReferralEarning, error) {
	earnings, err := s.referralRepo.GetByReferrer(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return earnings, nil
}

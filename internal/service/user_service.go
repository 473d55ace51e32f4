package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/borislavgotsev27/pepeplay/internal/domain"
	"github.com/borislavgotsev27/pepeplay/internal/repository/repoargs"
	"github.com/borislavgotsev27/pepeplay/internal/service/refcode"
	"github.com/borislavgotsev27/pepeplay/internal/service/tokens"
	"github.com/borislavgotsev27/pepeplay/pkg/uow"
)

const JWTTokenExpire = 1 * time.Hour

// createUserMaxAttempts количество попыток создать юзера при коллизии
// сгенерированного реферального кода.
const createUserMaxAttempts = 3

type UserService struct {
	uow            uow.UOW
	userRepo       UserRepository
	hasher         PasswordHasher
	jwtTokenSecret []byte
}

func NewUserService(u uow.UOW, hasher PasswordHasher, jwtTokenSecret []byte) (*UserService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	return &UserService{
		uow:            u,
		userRepo:       userRepo,
		hasher:         hasher,
		jwtTokenSecret: jwtTokenSecret,
	}, nil
}

type RegisterUserArgs struct {
	Username      string
	Password      string
	WalletAddress string
	ReferralCode  string
}

// Register создает юзера. Регистрация только по приглашению: args.ReferralCode обязан
// указывать на существующего юзера, иначе вернется domain.ErrInvalidReferral. После
// успешного создания генерирует jwt token. Возвращает 3 значения: созданный юзер,
// токен и ошибку.
func (s *UserService) Register(ctx context.Context, args RegisterUserArgs) (*domain.User, string, error) {
	referrer, referrerErr := s.userRepo.FindUserByReferralCode(ctx, args.ReferralCode)
	if referrerErr != nil {
		if errors.Is(referrerErr, domain.ErrRecordNotFound) {
			return nil, "", domain.ErrInvalidReferral
		}
		return nil, "", fmt.Errorf("registering user: %w", referrerErr)
	}

	password, hashErr := s.hasher.HashPassword(args.Password)
	if hashErr != nil {
		return nil, "", fmt.Errorf("registering user: %s", hashErr.Error())
	}

	user, createErr := s.createUserWithUniqueCode(ctx, repoargs.CreateUser{
		Username:      args.Username,
		Password:      password,
		WalletAddress: args.WalletAddress,
		ReferredBy:    &referrer.ID,
	})
	if createErr != nil {
		return nil, "", createErr
	}

	token, tokenErr := tokens.GenerateUserJWT(user.ID, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("registering user: %s", tokenErr.Error())
	}
	return user, token, nil
}

// createUserWithUniqueCode создает юзера со свежесгенерированным реферальным кодом.
// Дубликат кода крайне маловероятен, но при конфликте код генерируется заново. Чтобы
// отличить коллизию кода от занятого юзернейма, юзернейм проверяется отдельным запросом.
func (s *UserService) createUserWithUniqueCode(
	ctx context.Context,
	args repoargs.CreateUser,
) (*domain.User, error) {
	for attempt := 0; attempt < createUserMaxAttempts; attempt++ {
		args.ReferralCode = refcode.Generate()

		user, createErr := s.userRepo.CreateUser(ctx, args)
		if createErr == nil {
			return user, nil
		}
		if !errors.Is(createErr, domain.ErrDuplicateKey) {
			return nil, fmt.Errorf("registering user: %w", createErr)
		}

		if _, findErr := s.userRepo.FindUserByUsername(ctx, args.Username); findErr == nil {
			return nil, fmt.Errorf("registering user: %w", domain.ErrDuplicateKey)
		}
	}
	return nil, fmt.Errorf("registering user: referral code collision after %d attempts", createUserMaxAttempts)
}

// Login проверяет пару юзернейм/пароль. При неверном юзернейме и при неверном пароле
// возвращается одна и та же ошибка domain.ErrPasswordMissMatch, чтобы не раскрывать
// существование аккаунта.
func (s *UserService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	user, findErr := s.userRepo.FindUserByUsername(ctx, username)
	if findErr != nil {
		if errors.Is(findErr, domain.ErrRecordNotFound) {
			return nil, "", domain.ErrPasswordMissMatch
		}
		return nil, "", fmt.Errorf("logging in user: %w", findErr)
	}

	if !s.hasher.ComparePassword(password, user.EncryptedPassword) {
		return nil, "", domain.ErrPasswordMissMatch
	}

	token, tokenErr := tokens.GenerateUserJWT(user.ID, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("logging in user: %s", tokenErr.Error())
	}
	return user, token, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return user, nil
}

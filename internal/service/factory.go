package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/borislavgotsev27/pepeplay/internal/service/psswd"
	"github.com/borislavgotsev27/pepeplay/pkg/uow"
)

type AppServices struct {
	UserService     *UserService
	GameService     *GameService
	ReferralService *ReferralService
	WalletService   *WalletService
	PackageService  *PackageService
}

func Factory(
	unitOfWork uow.UOW,
	gateway PaymentGateway,
	jwtSecret []byte,
	logger logrus.FieldLogger,
) (*AppServices, error) {
	userService, userServiceErr := NewUserService(unitOfWork, psswd.PasswordHash(""), jwtSecret)
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	referralService, referralServiceErr := NewReferralService(unitOfWork, logger)
	if referralServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", referralServiceErr.Error())
	}

	gameService, gameServiceErr := NewGameService(unitOfWork, referralService)
	if gameServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", gameServiceErr.Error())
	}

	walletService, walletServiceErr := NewWalletService(unitOfWork, gateway)
	if walletServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", walletServiceErr.Error())
	}

	packageService, packageServiceErr := NewPackageService(unitOfWork)
	if packageServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", packageServiceErr.Error())
	}

	return &AppServices{
		UserService:     userService,
		GameService:     gameService,
		ReferralService: referralService,
		WalletService:   walletService,
		PackageService:  packageService,
	}, nil
}

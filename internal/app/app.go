package app

import (
	"context"
	"fmt"

	"github.com/borislavgotsev27/pepeplay/internal/repository/repoargs"

	"github.com/borislavgotsev27/pepeplay/internal/jobs"
	"github.com/borislavgotsev27/pepeplay/internal/transport/payments"
	"github.com/borislavgotsev27/pepeplay/internal/transport/payments/client"

	"github.com/borislavgotsev27/pepeplay/pkg/uow"

	"github.com/borislavgotsev27/pepeplay/internal/config"
	"github.com/borislavgotsev27/pepeplay/internal/repository/pgrepo"
	"github.com/borislavgotsev27/pepeplay/internal/service"
	"github.com/borislavgotsev27/pepeplay/internal/transport/api"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	"os/signal"
	"syscall"

	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app on %s", a.Config.RunAddress)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	oxaPayClient := client.New(a.Config.OxaPayBaseURL, a.Config.OxaPayMerchantKey, a.Config.OxaPayPayoutKey)

	services, sErr := service.Factory(
		unitOfWork,
		payments.NewGateway(oxaPayClient),
		[]byte(a.Config.JWTUserSecret),
		a.Logger,
	)
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router := api.New(api.RouterArgs{
		Logger:          a.Logger,
		UserService:     services.UserService,
		GameService:     services.GameService,
		WalletService:   services.WalletService,
		PackageService:  services.PackageService,
		ReferralService: services.ReferralService,
		JWTSecretKey:    []byte(a.Config.JWTUserSecret),
	})

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	processor := payments.New(services.WalletService, oxaPayClient, a.Logger)

	go processor.Run(notifyCtx)

	scheduler := jobs.NewScheduler(services.GameService, services.WalletService, a.Logger)
	if schedErr := scheduler.Start(notifyCtx); schedErr != nil {
		return fmt.Errorf("app run: %s", schedErr.Error())
	}
	defer scheduler.Stop()

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewUserRepository(dbtx)
		},
		repoargs.TransactionRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewTransactionRepository(dbtx)
		},
		repoargs.ReferralEarningRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewReferralEarningRepository(dbtx)
		},
		repoargs.PackageRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewPackageRepository(dbtx)
		},
		repoargs.DailyClicksRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewDailyClicksRepository(dbtx)
		},
	}

	for name, factoryFn := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factoryFn); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}

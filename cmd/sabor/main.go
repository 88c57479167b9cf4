package main

import (
	"context"
	"log/slog"
	"os"

	"sabor/config"
	"sabor/internal/domain/service"
	"sabor/internal/infra/api"
	logs "sabor/internal/infra/log"
	"sabor/internal/infra/qrcode"
	"sabor/internal/infra/rest"
	"sabor/internal/infra/storage"
	"sabor/internal/usecase"
	"sabor/internal/usecase/impl"
	"sabor/internal/validation"

	"go.uber.org/fx"
)

type sessionParams struct {
	fx.In
	fx.Shutdowner

	Logger    *slog.Logger
	Session   usecase.SessionUsecase
	Addresses usecase.AddressUsecase
	Cards     usecase.PaymentCardUsecase
	Checkout  usecase.CheckoutUsecase
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.Invoke(
			restoreSession,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		storage.NewTokenStore,
		api.NewTokenSource,
		api.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			rest.NewAuthRepository,
			rest.NewAddressRepository,
			rest.NewPaymentCardRepository,
			rest.NewOrderRepository,
			rest.NewPaymentRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			validation.New,
			newPixQRService,
		),
	)
}

// newPixQRService creates a PIX QR renderer with dependency injection
func newPixQRService(cfg *config.Config) service.PixQRService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewPixQRService(256, "M")
	}

	return qrcode.NewPixQRService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCartService,
			impl.NewAddressService,
			impl.NewPaymentCardService,
			impl.NewSessionService,
			impl.NewOrderService,
			impl.NewCheckoutService,
		),
	)
}

// restoreSession resumes any persisted session, reports what the stores hold
// and shuts the process down. The binary is a smoke harness for the client
// library, not a long-running service.
func restoreSession(ctx context.Context, params sessionParams) {
	go func() {
		defer func() {
			if err := params.Shutdowner.Shutdown(); err != nil {
				params.Logger.Error("shutdown failed", slog.Any("error", err))
				os.Exit(1)
			}
		}()

		user, err := params.Session.Restore(ctx)
		if err != nil {
			params.Logger.Error("session restore failed", slog.Any("error", err))

			return
		}
		if user == nil {
			params.Logger.Info("no persisted session")

			return
		}

		params.Logger.Info("session restored",
			slog.String("email", user.Email),
			slog.Int("addresses", len(params.Addresses.List())),
			slog.Int("payment_cards", len(params.Cards.List())),
			slog.String("payment_selection", params.Checkout.Selection().Method.String()),
		)
	}()
}

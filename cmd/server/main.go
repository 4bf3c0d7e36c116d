package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"igrejaconnect/internal/adapters/httpapi"
	"igrejaconnect/internal/application"
	"igrejaconnect/internal/config"
	"igrejaconnect/internal/infrastructure/database"
	"igrejaconnect/internal/infrastructure/i18n"
	"igrejaconnect/internal/infrastructure/identity"
	"igrejaconnect/internal/infrastructure/push"
	"igrejaconnect/pkg/tz"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Erro na configuração: %v", err)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Erro ao inicializar o banco de dados: %v", err)
	}
	defer pool.Close()

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatalf("❌ Erro nas migrações: %v", err)
	}

	userRepo := database.NewUserRepository(pool)
	eventRepo := database.NewEventRepository(pool)
	prayerRepo := database.NewPrayerRequestRepository(pool)

	provider := identity.NewProvider(pool, cfg.JWTSecret, cfg.TokenTTL)
	translator := i18n.NewTranslator(cfg.DefaultLocale)
	pushGateway := push.NewExpoGateway()
	authState := application.NewAuthState()

	authSvc := application.NewAuthService(provider, userRepo, pushGateway, authState)
	catalogSvc := application.NewCatalogService(eventRepo, userRepo, tz.SaoPaulo)
	participationSvc := application.NewParticipationService(eventRepo, userRepo, tz.SaoPaulo)
	profileSvc := application.NewProfileService(userRepo, provider, authState)
	prayerSvc := application.NewPrayerService(prayerRepo, userRepo)
	reminderSvc := application.NewReminderService(eventRepo, userRepo, pushGateway, translator, cfg.DefaultLocale, tz.SaoPaulo)

	scheduler := cron.New(cron.WithLocation(tz.SaoPaulo))
	if _, err := scheduler.AddFunc(cfg.ReminderCron, func() {
		if err := reminderSvc.SendDailyReminders(context.Background()); err != nil {
			log.Printf("lembrete: %v", err)
		}
	}); err != nil {
		log.Fatalf("❌ Agenda de lembretes inválida (%q): %v", cfg.ReminderCron, err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	handler := httpapi.NewHandler(
		authSvc, catalogSvc, participationSvc, profileSvc, prayerSvc,
		provider, translator,
		httpapi.DonationInfo{
			PixKey:   cfg.DonationPixKey,
			BankInfo: cfg.DonationBankInfo,
			Note:     cfg.DonationNote,
		},
		tz.SaoPaulo,
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Servidor escutando em :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Erro no servidor: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Encerrando o servidor...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Encerramento forçado: %v", err)
	}
	log.Println("Servidor finalizado.")
}

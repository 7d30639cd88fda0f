package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/Yenn-ink/WhisperNet/internal/config"
	"github.com/Yenn-ink/WhisperNet/internal/infra/http/handlers"
	"github.com/Yenn-ink/WhisperNet/internal/infra/integration/textbee"
	"github.com/Yenn-ink/WhisperNet/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logCloser := setupLogging(cfg.LogFile)
	defer logCloser.Close()
	// o logger de requisições do chi escreve no mesmo destino
	middleware.DefaultLogger = middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: log.Default(), NoColor: cfg.LogFile != ""})

	if !cfg.HasCredentials() {
		log.Println("⚠️ TEXTBEE_API_KEY ou TEXTBEE_DEVICE_ID não configurados; /send-sms vai responder erro de configuração")
	}

	// 1. Gateway
	client := textbee.NewClient(cfg.APIKey, cfg.DeviceID, cfg.BaseURL, cfg.Timeout)

	// 2. UseCase
	sendSMSUC := usecase.NewSendSMSUseCase(client, usecase.Credentials{
		APIKey:   cfg.APIKey,
		DeviceID: cfg.DeviceID,
	})

	// 3. Handlers
	smsHandler := handlers.NewSMSHandler(sendSMSUC)
	healthHandler := handlers.NewHealthHandler(cfg.HasCredentials())

	// 4. Router
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newRouter(cfg, smsHandler, healthHandler),
		ReadHeaderTimeout: 5 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	log.Printf("🚀 WhisperNet backend (TextBee Gateway) rodando em http://localhost%s", cfg.Addr())
	log.Printf("Abra http://localhost%s/index.html para usar o app.", cfg.Addr())

	if err := serve(srv, stop); err != nil {
		log.Printf("❌ Erro no ListenAndServe: %v", err)
		// os.Exit pula os defers: fecha o log rotacionado antes
		logCloser.Close()
		os.Exit(1)
	}

	log.Println("✅ Servidor encerrado")
}

// serve roda o servidor até um sinal em stop. Devolve o erro do listener
// (porta ocupada, por exemplo) ou nil depois do shutdown.
func serve(srv *http.Server, stop <-chan os.Signal) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-stop:
		log.Println("⚠️ Sinal recebido, encerrando...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("❌ Erro no shutdown: %v", err)
	}
	return nil
}

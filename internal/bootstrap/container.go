package bootstrap

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"ai-triage-be/internal/config"
	"ai-triage-be/internal/controller"
	"ai-triage-be/internal/entity"
	"ai-triage-be/internal/pkg/logger"
	"ai-triage-be/internal/pkg/mailer"
	"ai-triage-be/internal/repository/contract"
	"ai-triage-be/internal/repository/implementation"
	"ai-triage-be/internal/repository/memory"
	"ai-triage-be/internal/service"
	"ai-triage-be/internal/websocket"
	"ai-triage-be/pkg/database"
	"ai-triage-be/pkg/events"
	"ai-triage-be/pkg/llm/factory"
	pktNats "ai-triage-be/pkg/nats"
	"ai-triage-be/pkg/triage/cascade"
	"ai-triage-be/pkg/triage/extract"
	"ai-triage-be/pkg/triage/knowledge"
	"ai-triage-be/pkg/triage/prescribe"
	"ai-triage-be/pkg/triage/severity"
)

type Container struct {
	ConsultController controller.IConsultController

	// WebSocket alert fan-out (exposed for main.go to run)
	AlertHub *websocket.Hub

	Logger logger.ILogger
	Bus    *events.Bus
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	bus := events.NewBus()

	// 3. Knowledge base and pipeline components
	kb := knowledge.Load()
	extractor := extract.New(kb)
	classifier := severity.New(kb)
	prescriber := prescribe.New(kb)

	// Remote tier provider (may be nil: pattern tier carries the load)
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.LLMBaseURL,
		cfg.Ai.GroqAPIKey,
		cfg.Ai.RemoteTimeout,
	)
	if err != nil {
		log.Printf("[WARN] LLM provider unavailable, running on pattern tier only: %v", err)
		llmProvider = nil
	} else if llmProvider != nil {
		log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	}

	remoteLogger := log.New(os.Stdout, "[CASCADE] ", log.LstdFlags)
	responder := cascade.NewResponder(kb, llmProvider, cfg.Ai.RemoteTimeout, remoteLogger)

	// 4. Session storage: Redis when configured, in-memory otherwise
	sessionTTL := time.Duration(cfg.App.SessionTTLMinutes) * time.Minute
	var sessionRepo contract.ISessionRepository = memory.NewSessionRepository(sessionTTL)
	if cfg.Redis.Enabled {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Printf("[WARN] Invalid REDIS_URL, using in-memory sessions: %v", err)
		} else {
			sessionRepo = implementation.NewRedisSessionRepository(redis.NewClient(opts), sessionTTL, sysLogger)
			log.Printf("[INFO] Using Redis session storage")
		}
	}

	// 5. Transcript audit (optional)
	var transcripts implementation.ITranscriptRepository
	if cfg.Database.Connection != "" {
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			log.Printf("[WARN] Transcript DB unavailable, auditing disabled: %v", err)
		} else {
			if err := db.AutoMigrate(&entity.ConsultTurn{}); err != nil {
				log.Printf("[WARN] Transcript migration failed: %v", err)
			}
			transcripts = implementation.NewTranscriptRepository(db)
			log.Printf("[INFO] Transcript auditing enabled")
		}
	}

	// 6. Emergency alert fan-out
	alertHub := websocket.NewHub(sysLogger)
	wireEmergencySubscribers(cfg, bus, alertHub, sysLogger)

	// 7. Services and controllers
	consultService := service.NewConsultService(
		sessionRepo,
		transcripts,
		kb,
		extractor,
		classifier,
		responder,
		prescriber,
		bus,
		sysLogger,
	)

	return &Container{
		ConsultController: controller.NewConsultController(consultService),
		AlertHub:          alertHub,
		Logger:            sysLogger,
		Bus:               bus,
	}
}

// wireEmergencySubscribers fans TRIAGE_EMERGENCY_DETECTED out to the
// clinician websocket hub, the care-team mailer and NATS.
func wireEmergencySubscribers(cfg *config.Config, bus *events.Bus, hub *websocket.Hub, sysLogger logger.ILogger) {
	if err := bus.Subscribe(events.TypeEmergencyDetected, func(env events.Envelope) {
		payload, err := json.Marshal(env)
		if err != nil {
			return
		}
		hub.Broadcast(payload)
	}); err != nil {
		log.Printf("[WARN] Failed to wire websocket alert subscriber: %v", err)
	}

	if cfg.Alerts.CareTeamEmail != "" && cfg.SMTP.Host != "" {
		alertMailer := mailer.NewAlertMailer(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Email,
			cfg.SMTP.Password,
			cfg.SMTP.Email,
			cfg.Alerts.CareTeamEmail,
		)
		if err := bus.Subscribe(events.TypeEmergencyDetected, func(env events.Envelope) {
			sessionID, _ := env.Data["session_id"].(string)
			text, _ := env.Data["text"].(string)
			symptoms, _ := env.Data["symptoms"].(string)
			if err := alertMailer.SendEmergencyAlert(sessionID, text, symptoms); err != nil {
				sysLogger.Error("AlertMailer", "Failed to mail emergency alert", map[string]interface{}{
					"session_id": sessionID,
					"error":      err.Error(),
				})
			}
		}); err != nil {
			log.Printf("[WARN] Failed to wire mail alert subscriber: %v", err)
		}
	}

	if cfg.App.NatsEnabled {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			return
		}
		if err := bus.Subscribe(events.TypeEmergencyDetected, func(env events.Envelope) {
			ev := events.BaseEvent{Type: env.Type, Data: env.Data, OccurredAt: time.Now()}
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := natsPub.Publish(ctx, ev); err != nil {
				sysLogger.Warn("NatsPublisher", "Failed to forward emergency event", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}); err != nil {
			log.Printf("[WARN] Failed to wire NATS alert subscriber: %v", err)
		}
	}
}

package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	changeReservationHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/change_reservation"
	getBookingHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_booking"
	getHotelHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_hotel"
	healthHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/health"
	listHotelsHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/list_hotels"
	reserveRoomHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/reserve_room"
	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBookingService/internal/config"
	"github.com/m04kA/SMC-HotelBookingService/internal/infra/cache"
	bookingRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/booking"
	enrollmentRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/enrollment"
	hotelRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/hotel"
	roomRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/room"
	ticketRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/ticket"
	"github.com/m04kA/SMC-HotelBookingService/internal/integrations/bookingevents"
	bookingsService "github.com/m04kA/SMC-HotelBookingService/internal/service/bookings"
	hotelsService "github.com/m04kA/SMC-HotelBookingService/internal/service/hotels"
	changeReservationUC "github.com/m04kA/SMC-HotelBookingService/internal/usecase/change_reservation"
	reserveRoomUC "github.com/m04kA/SMC-HotelBookingService/internal/usecase/reserve_room"
	"github.com/m04kA/SMC-HotelBookingService/migrations"
	"github.com/m04kA/SMC-HotelBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelBookingService/pkg/logger"
	"github.com/m04kA/SMC-HotelBookingService/pkg/metrics"
	"github.com/m04kA/SMC-HotelBookingService/pkg/txmanager"
)

const (
	configPath = "config.toml"

	// visitorTTL время, после которого лимитер забывает неактивного пользователя
	visitorTTL = 10 * time.Minute

	startupTimeout = 5 * time.Second
)

// eventPublisher publisher событий бронирования, который нужно закрыть при остановке
type eventPublisher interface {
	PublishBookingCreated(ctx context.Context, event bookingevents.BookingCreated) error
	PublishBookingChanged(ctx context.Context, event bookingevents.BookingChanged) error
	Close() error
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-HotelBookingService...")
	log.Info("Configuration loaded from %s", configPath)

	// Метрики создаются всегда (счетчик бронирований нужен use case), наружу отдаются только если включены
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)
	stopMetricsCh := make(chan struct{})

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	pingCtx, cancelPing := context.WithTimeout(context.Background(), startupTimeout)
	err = db.PingContext(pingCtx)
	cancelPing()
	if err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции
	if cfg.Database.AutoMigrate {
		if err := migrations.Apply(context.Background(), db); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Database migrations applied")
	}

	// Обёртка над БД: с метриками или без
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	txMgr := txmanager.NewTransactionManager(wrappedDB, txmanager.WithMaxAttempts(cfg.Database.TxMaxAttempts))

	// Кэш отелей
	var hotelCache hotelsService.Cache = cache.NopCache{}

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		redisCtx, cancelRedis := context.WithTimeout(context.Background(), startupTimeout)
		err := redisClient.Ping(redisCtx).Err()
		cancelRedis()
		if err != nil {
			log.Warn("Redis is unavailable at %s, hotel cache disabled: %v", cfg.Redis.Addr, err)
			_ = redisClient.Close()
			redisClient = nil
		} else {
			hotelCache = cache.NewRedisCache(redisClient, cfg.Cache.Prefix)
			log.Info("Redis cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Cache.HotelsTTL)
		}
	}

	// Публикация событий
	var publisher eventPublisher = bookingevents.NopPublisher{}
	if cfg.RabbitMQ.Enabled {
		p, err := bookingevents.NewPublisher(
			cfg.RabbitMQ.URL,
			time.Duration(cfg.RabbitMQ.PublishTimeout)*time.Second,
			log,
		)
		if err != nil {
			log.Warn("RabbitMQ is unavailable, booking events disabled: %v", err)
		} else {
			publisher = p
			log.Info("RabbitMQ publisher initialized")
		}
	}

	// Инициализируем репозитории
	enrollmentRepository := enrollmentRepo.NewRepository(wrappedDB)
	ticketRepository := ticketRepo.NewRepository(wrappedDB)
	hotelRepository := hotelRepo.NewRepository(wrappedDB)
	roomRepository := roomRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	hotelSvc := hotelsService.NewService(
		enrollmentRepository,
		ticketRepository,
		hotelRepository,
		roomRepository,
		bookingRepository,
		hotelCache,
		time.Duration(cfg.Cache.HotelsTTL)*time.Second,
		log,
	)

	// Инициализируем use cases
	reserveRoomUseCase := reserveRoomUC.NewUseCase(
		enrollmentRepository,
		ticketRepository,
		roomRepository,
		bookingRepository,
		publisher,
		metricsCollector,
		txMgr,
		log,
	)

	changeReservationUseCase := changeReservationUC.NewUseCase(
		roomRepository,
		bookingRepository,
		publisher,
		metricsCollector,
		txMgr,
		log,
	)

	// Инициализируем handlers
	reserveRoom := reserveRoomHandler.NewHandler(reserveRoomUseCase, log)
	changeReservation := changeReservationHandler.NewHandler(changeReservationUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listHotels := listHotelsHandler.NewHandler(hotelSvc, log)
	getHotel := getHotelHandler.NewHandler(hotelSvc, log)
	health := healthHandler.NewHandler(wrappedDB, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := r.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.JWTSecret, log))

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, visitorTTL)
		protected.Use(limiter.Limit(log))
		log.Info("Rate limit enabled (rps=%.2f, burst=%d)", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// --- Бронирования ---
	// Текущее бронирование пользователя
	protected.HandleFunc("/booking", getBooking.Handle).Methods(http.MethodGet)

	// Бронирование комнаты
	protected.HandleFunc("/booking", reserveRoom.Handle).Methods(http.MethodPost)

	// Перенос бронирования в другую комнату
	protected.HandleFunc("/booking/{bookingId}", changeReservation.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/booking", changeReservation.Handle).Methods(http.MethodPut)

	// --- Отели ---
	protected.HandleFunc("/hotels", listHotels.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/hotels/{hotelId}", getHotel.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	if err := publisher.Close(); err != nil {
		log.Warn("Failed to close RabbitMQ publisher: %v", err)
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Warn("Failed to close Redis client: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}

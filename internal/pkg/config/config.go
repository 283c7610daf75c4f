package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultLivenessWindow         = 2 * time.Minute
	defaultLivenessReportInterval = 30 * time.Second
	defaultMaxConns               = 10
	defaultMinConns               = 2
	defaultAttemptWindow          = time.Minute
	defaultMQTTTopicPrefix        = "lockers"
	defaultMQTTClientID           = "locker-service"
	defaultKafkaTopic             = "shipment.assigned"
)

type (
	Tasks struct {
		LivenessReportInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
		Migrate  bool
		MaxConns int
		MinConns int
	}

	Locker struct {
		LivenessWindow              time.Duration
		CourierStickyManualInactive bool
	}

	// Redis backs the per-locker controller attempt limiter. Empty Addr
	// disables the limiter.
	Redis struct {
		Addr          string
		Password      string
		DB            int
		AttemptLimit  int
		AttemptWindow time.Duration
	}

	// MQTT carries the command-pending nudge. Empty Broker disables it.
	MQTT struct {
		Broker      string
		ClientID    string
		Username    string
		Password    string
		TopicPrefix string
		QoS         byte
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		ShipmentAssigned ShipmentAssigned
	}

	ShipmentAssigned struct {
		ProcessTimeout time.Duration
	}

	Log struct {
		Level string
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Locker   Locker
		Redis    Redis
		MQTT     MQTT
		Kafka    Kafka
		Log      Log
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	livenessReportInterval, err := osGetEnvDuration("BACKGROUND_LIVENESS_REPORT_INTERVAL", defaultLivenessReportInterval)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT", 0)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS", 0)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST", 0)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	migrate, err := osGetBool("POSTGRES_MIGRATE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	maxConns, err := osGetInt("POSTGRES_MAX_CONNS", defaultMaxConns)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	minConns, err := osGetInt("POSTGRES_MIN_CONNS", defaultMinConns)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	livenessWindow, err := osGetEnvDuration("LIVENESS_WINDOW", defaultLivenessWindow)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	stickyInactive, err := osGetBool("COURIER_STICKY_MANUAL_INACTIVE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisDB, err := osGetInt("REDIS_DB", 0)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	attemptLimit, err := osGetInt("REDIS_ATTEMPT_LIMIT", 0)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	attemptWindow, err := osGetEnvDuration("REDIS_ATTEMPT_WINDOW", defaultAttemptWindow)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	mqttQoS, err := osGetInt("MQTT_QOS", 1)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	shipmentAssignedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_SHIPMENT_ASSIGNED_PROCESS_TIMEOUT", 0)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			LivenessReportInterval: livenessReportInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
			Migrate:  migrate,
			MaxConns: maxConns,
			MinConns: minConns,
		},
		Locker: Locker{
			LivenessWindow:              livenessWindow,
			CourierStickyManualInactive: stickyInactive,
		},
		Redis: Redis{
			Addr:          os.Getenv("REDIS_ADDR"),
			Password:      os.Getenv("REDIS_PASSWORD"),
			DB:            redisDB,
			AttemptLimit:  attemptLimit,
			AttemptWindow: attemptWindow,
		},
		MQTT: MQTT{
			Broker:      os.Getenv("MQTT_BROKER"),
			ClientID:    osGetString("MQTT_CLIENT_ID", defaultMQTTClientID),
			Username:    os.Getenv("MQTT_USERNAME"),
			Password:    os.Getenv("MQTT_PASSWORD"),
			TopicPrefix: osGetString("MQTT_TOPIC_PREFIX", defaultMQTTTopicPrefix),
			QoS:         byte(mqttQoS),
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           osGetString("KAFKA_TOPIC", defaultKafkaTopic),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				ShipmentAssigned: ShipmentAssigned{
					ProcessTimeout: shipmentAssignedTimeout,
				},
			},
		},
		Log: Log{
			Level: osGetString("LOG_LEVEL", "info"),
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Database.MaxConns <= 0 || cfg.Database.MinConns < 0 || cfg.Database.MinConns > cfg.Database.MaxConns {
		return errors.New("POSTGRES_MIN_CONNS must be between 0 and POSTGRES_MAX_CONNS")
	}

	if cfg.Locker.LivenessWindow <= 0 {
		return errors.New("LIVENESS_WINDOW must be positive")
	}
	if cfg.Tasks.LivenessReportInterval <= 0 {
		return errors.New("BACKGROUND_LIVENESS_REPORT_INTERVAL must be positive")
	}

	if cfg.Redis.Addr != "" && cfg.Redis.AttemptLimit <= 0 {
		return errors.New("REDIS_ATTEMPT_LIMIT is required when REDIS_ADDR is set")
	}
	if cfg.Redis.Addr != "" && cfg.Redis.AttemptWindow <= 0 {
		return errors.New("REDIS_ATTEMPT_WINDOW must be positive when REDIS_ADDR is set")
	}
	if cfg.MQTT.QoS > 2 {
		return errors.New("MQTT_QOS must be 0, 1 or 2")
	}

	return nil
}

// ValidateKafka checks the settings only the assignment worker needs.
func (cfg *Config) ValidateKafka() error {
	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.ShipmentAssigned.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_SHIPMENT_ASSIGNED_PROCESS_TIMEOUT is required")
	}

	return nil
}

func osGetString(s, fallback string) string {
	if val := os.Getenv(s); val != "" {
		return val
	}
	return fallback
}

func osGetInt(s string, fallback int) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return fallback, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string, fallback time.Duration) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return fallback, nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Store     StoreConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Facility  FacilityConfig
	Pricing   PricingConfig
	Admission AdmissionConfig
	Events    EventsConfig
	Telemetry TelemetryConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type StoreConfig struct {
	Driver string `envconfig:"STORE_DRIVER" default:"postgres"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type JWTConfig struct {
	Secret        string        `envconfig:"JWT_SECRET" required:"true"`
	TokenDuration time.Duration `envconfig:"JWT_TOKEN_DURATION" default:"1h"`
}

// Layout is only read when the facility is created for the first time.
type FacilityConfig struct {
	Name            string `envconfig:"FACILITY_NAME" default:"Smart Parking Downtown"`
	Floors          int    `envconfig:"FACILITY_FLOORS" default:"5"`
	SpotsPerFloor   int    `envconfig:"FACILITY_SPOTS_PER_FLOOR" default:"50"`
	BusSpots        int    `envconfig:"FACILITY_BUS_SPOTS" default:"5"`
	MotorcycleSpots int    `envconfig:"FACILITY_MOTORCYCLE_SPOTS" default:"10"`
}

// Rates are whole currency units per started hour.
type PricingConfig struct {
	MotorcycleRate int64 `envconfig:"RATE_MOTORCYCLE" default:"2"`
	CarRate        int64 `envconfig:"RATE_CAR" default:"5"`
	BusRate        int64 `envconfig:"RATE_BUS" default:"10"`
}

type AdmissionConfig struct {
	LockTimeout      time.Duration `envconfig:"ADMISSION_LOCK_TIMEOUT" default:"5s"`
	ReconcileOnStart bool          `envconfig:"RECONCILE_ON_START" default:"true"`
}

type EventsConfig struct {
	BufferSize int `envconfig:"EVENT_BUFFER_SIZE" default:"256"`
}

type TelemetryConfig struct {
	Enabled      bool   `envconfig:"OTEL_ENABLED" default:"false"`
	ServiceName  string `envconfig:"OTEL_SERVICE_NAME" default:"smart-parking"`
	OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"http://localhost:4318"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Store.Driver {
	case StoreDriverPostgres:
		if c.DB.User == "" || c.DB.DBName == "" {
			return fmt.Errorf("DB_USER and DB_NAME are required when STORE_DRIVER=%s", StoreDriverPostgres)
		}
	case StoreDriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Admission.LockTimeout <= 0 {
		return fmt.Errorf("ADMISSION_LOCK_TIMEOUT must be positive")
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
			MaxConns: 10,
		},
		Store: StoreConfig{
			Driver: StoreDriverPostgres,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret:        "test-secret",
			TokenDuration: 15 * time.Minute,
		},
		Facility: FacilityConfig{
			Name:            "Test Facility",
			Floors:          5,
			SpotsPerFloor:   50,
			BusSpots:        5,
			MotorcycleSpots: 10,
		},
		Pricing: PricingConfig{
			MotorcycleRate: 2,
			CarRate:        5,
			BusRate:        10,
		},
		Admission: AdmissionConfig{
			LockTimeout:      2 * time.Second,
			ReconcileOnStart: false,
		},
		Events: EventsConfig{
			BufferSize: 64,
		},
		Telemetry: TelemetryConfig{
			Enabled:     false,
			ServiceName: "smart-parking-test",
		},
	}
}

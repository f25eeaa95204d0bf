package config

import (
	"fmt"
	"net"
	"net/url"
	"nomad/shared/constant"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// PostgresNode is one side of the read/write split.
type PostgresNode struct {
	Host     string `envconfig:"HOST"      default:"localhost"`
	Port     string `envconfig:"PORT"      default:"5432"`
	Username string `envconfig:"USER"      default:"postgres"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"      default:"nomad"`
	Timezone string `envconfig:"TIMEZONE"  default:"UTC"`
	SSLMode  string `envconfig:"SSL_MODE"  default:"disable"`
}

// DSN renders the lib/pq URL. Extra query values (e.g. x-migrations-table) are appended as given.
func (n PostgresNode) DSN(prefix string, extra url.Values) string {
	query := url.Values{}
	query.Set("sslmode", n.SSLMode)

	if n.Timezone != "" {
		query.Set("timezone", n.Timezone)
	}

	for key, values := range extra {
		query[key] = values
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(n.Username, n.Password),
		Host:     net.JoinHostPort(n.Host, n.Port),
		Path:     "/" + prefix + n.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

type Postgres struct {
	MaxRetry        int          `envconfig:"MAX_RETRY"        default:"5"`
	RetryWaitTime   int          `envconfig:"RETRY_WAIT_TIME"  default:"2"`
	MigrationTable  string       `envconfig:"MIGRATION_TABLE"  default:"schema_migrations"`
	MigrationSource string       `envconfig:"MIGRATION_SOURCE" default:"file://migrations/postgres"`
	AutoMigrate     bool         `envconfig:"AUTO_MIGRATE"`
	Prefix          string       `envconfig:"PREFIX"`
	Read            PostgresNode `envconfig:"READ"`
	Write           PostgresNode `envconfig:"WRITE"`
}

type CORS struct {
	AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
	AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS" default:"Authorization,Content-Type,X-API-Key,X-Request-ID"`
	AllowedMethods   []string `envconfig:"ALLOWED_METHODS" default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
	Enable           bool     `envconfig:"ENABLE"`
	MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS" default:"300"`
}

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"       default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
		Port     string `envconfig:"PORT"      default:"8080"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"5"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"   default:"10"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name        string `envconfig:"APP_NAME" default:"nomad"`
		Timezone    string `envconfig:"TIMEZONE" default:"UTC"`
		CORS        CORS   `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"   default:"100"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS" default:"60"`
		} `envconfig:"RATE_LIMITER"`
		APIKey         string `envconfig:"API_KEY"`
		MetricsEnabled bool   `envconfig:"METRICS_ENABLED"`
		SwaggerEnabled bool   `envconfig:"SWAGGER_ENABLED"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST" default:"localhost"`
				Port     string `envconfig:"PORT" default:"6379"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		// TTL in seconds.
		TTL int `envconfig:"TTL" default:"300"`
	} `envconfig:"CACHE"`

	JWT struct {
		AccessSecret     string `envconfig:"ACCESS_SECRET"`
		RefreshSecret    string `envconfig:"REFRESH_SECRET"`
		AccessExpireMin  int    `envconfig:"ACCESS_EXPIRE_MIN"  default:"15"`
		RefreshExpireMin int    `envconfig:"REFRESH_EXPIRE_MIN" default:"10080"`
	} `envconfig:"JWT"`

	DB struct {
		Postgres Postgres `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Kafka struct {
		Enable        bool     `envconfig:"ENABLE"`
		Brokers       []string `envconfig:"BROKERS"`
		ConsumerGroup string   `envconfig:"CONSUMER_GROUP"`
		Topic         string   `envconfig:"TOPIC" default:"notification-events"`
		SASL          struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
	} `envconfig:"KAFKA"`

	External struct {
		Otel struct {
			Endpoint    string  `envconfig:"ENDPOINT"`
			SampleRatio float64 `envconfig:"SAMPLE_RATIO" default:"1"`
		} `envconfig:"OTEL"`
		S3 struct {
			APIEndpoint      string `envconfig:"API_ENDPOINT"`
			AccessKeyID      string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey  string `envconfig:"SECRET_ACCESS_KEY"`
			BucketName       string `envconfig:"BUCKET_NAME"`
			PublicDomain     string `envconfig:"PUBLIC_DOMAIN"`
			ProfileDir       string `envconfig:"PROFILE_DIR"       default:"profiles"`
			AccommodationDir string `envconfig:"ACCOMMODATION_DIR" default:"accommodations"`
		} `envconfig:"S3"`
		NATS struct {
			// Empty URL keeps live fanout inside this process.
			URL           string `envconfig:"URL"`
			SubjectPrefix string `envconfig:"SUBJECT_PREFIX" default:"nomad.notifications"`
		} `envconfig:"NATS"`
	} `envconfig:"EXTERNAL"`

	Websocket struct {
		WriteWaitSeconds int      `envconfig:"WRITE_WAIT_SECONDS" default:"10"`
		PongWaitSeconds  int      `envconfig:"PONG_WAIT_SECONDS"  default:"60"`
		SendBufferSize   int      `envconfig:"SEND_BUFFER_SIZE"   default:"16"`
		AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
	} `envconfig:"WEBSOCKET"`
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == constant.ServerEnvDevelopment
}

var (
	conf Config
	once sync.Once
	err  error
)

// Init loads .env (when present) into the environment and decodes it once.
func Init() error {
	once.Do(func() {
		if loadErr := godotenv.Load(".env"); loadErr != nil {
			log.Warn().Err(loadErr).Msg("No .env file, reading configuration from the environment only")
		}

		if err = envconfig.Process("", &conf); err != nil {
			err = fmt.Errorf("processing environment: %w", err)
			return
		}

		log.Info().Str("env", conf.Server.Env).Msg("Configuration loaded")
	})

	return err
}

func Get() *Config {
	if initErr := Init(); initErr != nil {
		log.Fatal().Err(initErr).Msg("Failed to initialize configuration")
	}

	return &conf
}

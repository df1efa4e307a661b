package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Password     PasswordConfig
	Checkout     CheckoutConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"PNGSME_APP_ENV" required:"true"`
	Port         string `envconfig:"PNGSME_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"PNGSME_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"PNGSME_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"PNGSME_DB_DSN"`
	Driver string `envconfig:"PNGSME_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"PNGSME_DB_HOST"`
	Port     int    `envconfig:"PNGSME_DB_PORT" default:"5432"`
	User     string `envconfig:"PNGSME_DB_USER"`
	Password string `envconfig:"PNGSME_DB_PASSWORD"`
	Name     string `envconfig:"PNGSME_DB_NAME"`
	SSLMode  string `envconfig:"PNGSME_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"PNGSME_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"PNGSME_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"PNGSME_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"PNGSME_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"PNGSME_REDIS_URL"`
	Address      string        `envconfig:"PNGSME_REDIS_ADDR"`
	Password     string        `envconfig:"PNGSME_REDIS_PASSWORD"`
	DB           int           `envconfig:"PNGSME_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"PNGSME_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"PNGSME_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"PNGSME_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"PNGSME_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"PNGSME_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"PNGSME_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"PNGSME_JWT_ISSUER" default:"pngsme"`
	ExpirationMinutes      int    `envconfig:"PNGSME_JWT_EXPIRATION_MINUTES" default:"60"`
	RefreshTokenTTLMinutes int    `envconfig:"PNGSME_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"PNGSME_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"PNGSME_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"PNGSME_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"PNGSME_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"PNGSME_ARGON_KEY_LEN" default:"32"`
}

// CheckoutConfig carries the marketplace pricing constants. Amounts are in
// PGK; the delivery fee is flat (no per-distance pricing in this system).
type CheckoutConfig struct {
	DeliveryFee    float64 `envconfig:"PNGSME_CHECKOUT_DELIVERY_FEE" default:"10"`
	CommissionRate float64 `envconfig:"PNGSME_CHECKOUT_COMMISSION_RATE" default:"0.05"`
	MinOrderAmount float64 `envconfig:"PNGSME_CHECKOUT_MIN_ORDER_AMOUNT" default:"5"`
	Currency       string  `envconfig:"PNGSME_CHECKOUT_CURRENCY" default:"PGK"`
}

// DeliveryFeeAmount returns the flat delivery fee as a decimal amount.
func (c CheckoutConfig) DeliveryFeeAmount() decimal.Decimal {
	return decimal.NewFromFloat(c.DeliveryFee)
}

// CommissionRateFraction returns the platform commission as a decimal fraction.
func (c CheckoutConfig) CommissionRateFraction() decimal.Decimal {
	return decimal.NewFromFloat(c.CommissionRate)
}

// MinOrderAmountValue returns the minimum cart total required at checkout,
// measured across all sellers before delivery fees.
func (c CheckoutConfig) MinOrderAmountValue() decimal.Decimal {
	return decimal.NewFromFloat(c.MinOrderAmount)
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"PNGSME_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"PNGSME_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	values := map[string]string{
		EnvDBHost: db.Host,
		EnvDBUser: db.User,
		EnvDBName: db.Name,
	}
	for _, env := range requiredDBEnvVars {
		if values[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}

	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}

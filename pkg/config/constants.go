package config

// EnvPrefix scopes every environment variable read by envconfig.
const EnvPrefix = "PNGSME"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "PNGSME_DB_DSN"
	EnvDBHost = "PNGSME_DB_HOST"
	EnvDBUser = "PNGSME_DB_USER"
	EnvDBName = "PNGSME_DB_NAME"
)

var requiredDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

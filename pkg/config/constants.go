package config

// EnvPrefix is passed to envconfig; individual fields carry explicit
// VAHANBAZAR_* names so the prefix only matters for untagged fields.
const EnvPrefix = "vahanbazar"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"

	DefaultSQLitePath = "file:vahanbazar.db?_fk=1"
)

const (
	EnvDBDSN  = "VAHANBAZAR_DB_DSN"
	EnvDBHost = "VAHANBAZAR_DB_HOST"
	EnvDBUser = "VAHANBAZAR_DB_USER"
	EnvDBName = "VAHANBAZAR_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

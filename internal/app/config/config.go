package config

import (
	"dentalclinic-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                     utils.GetEnvString("APP_ENV", "development"),
			Port:                    utils.GetEnvString("APP_PORT", ":8080"),
			Version:                 utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                utils.GetEnvString("APP_TIMEZONE", "Asia/Manila"),
			Locale:                  utils.GetEnvString("APP_LOCALE", "en-US"),
			CurrencyLabel:           utils.GetEnvString("APP_CURRENCY_LABEL", "PHP"),
			EndpointPrefix:          utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:             utils.GetEnvInt("APP_MAX_REQUESTS", 10),
			ShutdownTimeout:         utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds: utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			BlockTimeInSeconds:      utils.GetEnvInt("APP_BLOCK_TIME_IN_SECONDS", 60),
		},
	}
}

// Validate checks both configs before anything is wired.
func Validate(internalConfig *InternalConfig, driverConfig *DriverConfig) error {
	if err := utils.ValidateStruct(internalConfig); err != nil {
		return err
	}
	return utils.ValidateStruct(driverConfig)
}

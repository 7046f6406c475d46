package config

type (
	InternalConfig struct {
		App App
	}

	DriverConfig struct {
		Logger Logger
	}

	App struct {
		Env                     string `validate:"required,oneof=development staging production"`
		Port                    string `validate:"required"`
		Version                 string `validate:"required"`
		Timezone                string `validate:"required"`
		Locale                  string `validate:"required"`
		CurrencyLabel           string
		EndpointPrefix          string `validate:"required"`
		MaxRequests             int    `validate:"min=1"`
		ShutdownTimeout         int    `validate:"min=0"`
		RequestTimeoutInSeconds int    `validate:"min=1"`
		BlockTimeInSeconds      int    `validate:"min=0"`
	}

	Logger struct {
		Level               string `validate:"required,oneof=debug info warn error"`
		OutputFileName      string
		OutputErrorFileName string
	}
)

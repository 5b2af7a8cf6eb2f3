package config

// Config holds the configuration of the application
// Use config.LoadConfig to create a new instance
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	DocAI  DocAIConfig  `mapstructure:"docai"`
	Gemini GeminiConfig `mapstructure:"gemini"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"        validate:"required,gte=1,lte=65535"`
	// MaxUploadMB caps the request body size for file uploads
	MaxUploadMB int64 `mapstructure:"max_upload_mb" validate:"gte=1"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// DocAIConfig identifies the Document AI processor used for
// identity document extraction
type DocAIConfig struct {
	ProjectID        string `mapstructure:"project_id"        validate:"required"`
	Location         string `mapstructure:"location"          validate:"required"`
	ProcessorID      string `mapstructure:"processor_id"      validate:"required"`
	ProcessorVersion string `mapstructure:"processor_version" validate:"required"`
	// CredentialsFile points at a service account key file. When empty,
	// application default credentials are used.
	CredentialsFile string `mapstructure:"credentials_file"`
}

// GeminiConfig selects the Gemini model used for audio transcription
type GeminiConfig struct {
	Model string `mapstructure:"model" validate:"required"`
	// APIKey is loaded from ENV not config file.
	APIKey string `mapstructure:"api_key" validate:"required"`
}

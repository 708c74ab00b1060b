package config

// Config holds all configuration, assembled at startup and passed into
// each component at construction.
type Config struct {
	GitHub    GitHubConfig    `json:"github"`
	Report    ReportConfig    `json:"report"`
	Reconcile ReconcileConfig `json:"reconcile"`
	Retry     RetryConfig     `json:"retry"`
	Log       LogConfig       `json:"log"`
	DynamoDB  DynamoDBConfig  `json:"dynamodb"`
	Metrics   MetricsConfig   `json:"metrics"`
	IsLambda  bool            `json:"-"`
}

// GitHubConfig holds GitHub API settings.
type GitHubConfig struct {
	Organization string `json:"organization"`
	Token        string `json:"-"`
	TokenSecret  string `json:"token_secret,omitempty"`
}

// ReportConfig holds settings for the repository report.
type ReportConfig struct {
	Output            string `json:"output"`
	LinkedMembersFile string `json:"linked_members_file,omitempty"`
}

// ReconcileConfig holds settings for the cross-org membership policy.
type ReconcileConfig struct {
	SourceOrg          string `json:"source_org"`
	DestinationOrg     string `json:"destination_org"`
	RemovedMembersFile string `json:"removed_members_file,omitempty"`
	DryRun             bool   `json:"dry_run"`
}

// RetryConfig holds the shared API retry settings.
type RetryConfig struct {
	MaxAttempts int     `json:"max_attempts"`
	BaseDelayMs int     `json:"base_delay_ms"`
	Multiplier  float64 `json:"multiplier"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

// DynamoDBConfig holds DynamoDB settings for removal tracking.
type DynamoDBConfig struct {
	TableName string `json:"table_name"`
	Region    string `json:"region"`
	Endpoint  string `json:"endpoint,omitempty"`
	Enabled   bool   `json:"enabled"`
	TTLDays   int    `json:"ttl_days"`
}

// MetricsConfig holds CloudWatch metrics settings.
type MetricsConfig struct {
	Enabled   bool   `json:"enabled"`
	Namespace string `json:"namespace"`
}

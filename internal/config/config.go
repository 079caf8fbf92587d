package config

import "time"

// Config is the root application configuration.
type Config struct {
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Search     SearchConfig     `yaml:"search"`
	Server     ServerConfig     `yaml:"server"`
	Log        LogConfig        `yaml:"log"`
}

// DictionaryConfig describes where the word files live.
type DictionaryConfig struct {
	Dir             string `yaml:"dir"              env:"DICTIONARY_DIR"              env-required:"true"`
	Alphabet        string `yaml:"alphabet"         env:"DICTIONARY_ALPHABET"         env-default:"abcdefghijklmnñopqrstuvwxyz"`
	SkipMissing     bool   `yaml:"skip_missing"     env:"DICTIONARY_SKIP_MISSING"     env-default:"false"`
	LoadConcurrency int    `yaml:"load_concurrency" env:"DICTIONARY_LOAD_CONCURRENCY" env-default:"4"`
}

// SearchConfig holds anagram search settings. MaxQueryLength is counted in
// runes; a zero value falls back to the default.
type SearchConfig struct {
	CaseSensitive  bool `yaml:"case_sensitive"   env:"SEARCH_CASE_SENSITIVE"   env-default:"false"`
	KeepDiacritics bool `yaml:"keep_diacritics"  env:"SEARCH_KEEP_DIACRITICS"  env-default:"false"`
	MaxResults     int  `yaml:"max_results"      env:"SEARCH_MAX_RESULTS"      env-default:"0"`
	MaxQueryLength int  `yaml:"max_query_length" env:"SEARCH_MAX_QUERY_LENGTH" env-default:"64"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

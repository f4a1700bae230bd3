package config

// Config 配置主体
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	DB         DBConfig         `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	LLM        LLMConfig        `mapstructure:"llm"`
	Moderation ModerationConfig `mapstructure:"moderation"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Trending   TrendingConfig   `mapstructure:"trending"`
	Logstash   LogstashConfig   `mapstructure:"logstash"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type LLMConfig struct {
	URL         string           `mapstructure:"url"`
	TextModel   string           `mapstructure:"text_model"`
	EmbedModel  string           `mapstructure:"embed_model"`
	ApiKey      string           `mapstructure:"api_key"`
	PromptsPath PromptPathConfig `mapstructure:"prompts_path"`
}

type PromptPathConfig struct {
	Describe string `mapstructure:"describe"`
	Title    string `mapstructure:"title"`
	Tags     string `mapstructure:"tags"`
	Critique string `mapstructure:"critique"`
	Insights string `mapstructure:"insights"`
}

// ModerationConfig 内容安全分类服务配置，HF text-classification 风格接口
type ModerationConfig struct {
	URL     string `mapstructure:"url"`
	Token   string `mapstructure:"token"`
	Timeout int    `mapstructure:"timeout"`
}

// CacheConfig 向量缓存配置
type CacheConfig struct {
	Capacity int `mapstructure:"capacity"`
}

// TrendingConfig 热度榜配置
type TrendingConfig struct {
	CorpusSize int `mapstructure:"corpus_size"`
	Limit      int `mapstructure:"limit"`
	CacheTTL   int `mapstructure:"cache_ttl"`
}

// LogstashConfig 日志上报配置
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

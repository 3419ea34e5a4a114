package config

import "github.com/caarlos0/env/v11"

type Config struct {
	ChannelSecret   string   `env:"LINE_CHANNEL_SECRET,required,notEmpty"`
	ChannelToken    string   `env:"LINE_CHANNEL_ACCESS_TOKEN,required,notEmpty"`
	OpenAIAPIKey    string   `env:"OPENAI_API_KEY,required,notEmpty"`
	Model           string   `env:"OPENAI_MODEL"     envDefault:"gpt-4o-2024-05-13"`
	BucketName      string   `env:"BUCKET_NAME,required,notEmpty"`
	DBPath          string   `env:"DB_PATH"          envDefault:"db.sqlite"`
	Addr            string   `env:"ADDR"             envDefault:":8080"`
	TranscriptLangs []string `env:"TRANSCRIPT_LANGS" envDefault:"ja,en"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := env.Parse(&cfg)
	return cfg, err
}

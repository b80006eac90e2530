package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/conorfennell/quizflow/internal/flow"
)

// EnvPrefix marks environment variables read by Load. Nested keys use a
// double underscore, e.g. QUIZFLOW_HTTP__ADDR.
const EnvPrefix = "QUIZFLOW_"

// Config is the full application configuration.
type Config struct {
	HTTP    HTTP    `koanf:"http"`
	Quiz    Quiz    `koanf:"quiz"`
	Promo   Promo   `koanf:"promo"`
	Offer   Offer   `koanf:"offer"`
	Session Session `koanf:"session"`
	Log     Log     `koanf:"log"`
}

type HTTP struct {
	Addr            string        `koanf:"addr" validate:"required,hostname_port"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

type Quiz struct {
	// Bank is a question bank file; empty uses the built-in bank.
	Bank            string        `koanf:"bank" validate:"omitempty,file"`
	QuestionSeconds int           `koanf:"question_seconds" validate:"min=1,max=600"`
	RevealDelay     time.Duration `koanf:"reveal_delay" validate:"gte=0"`
	CelebrateDelay  time.Duration `koanf:"celebrate_delay" validate:"gte=0"`
}

type Promo struct {
	Countdown time.Duration `koanf:"countdown" validate:"gte=0"`
}

type Offer struct {
	CheckoutURL string `koanf:"checkout_url" validate:"required,http_url"`
}

type Session struct {
	IdleTTL       time.Duration `koanf:"idle_ttl" validate:"gt=0"`
	SweepInterval time.Duration `koanf:"sweep_interval" validate:"gt=0"`
}

type Log struct {
	Level       string `koanf:"level" validate:"oneof=debug info warn error"`
	Development bool   `koanf:"development"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		HTTP: HTTP{
			Addr:            "localhost:8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Quiz: Quiz{
			QuestionSeconds: 30,
			RevealDelay:     2 * time.Second,
			CelebrateDelay:  3 * time.Second,
		},
		Promo: Promo{
			Countdown: 5 * time.Minute,
		},
		Offer: Offer{
			CheckoutURL: "https://pay.hotmart.com/exercicios-mentais",
		},
		Session: Session{
			IdleTTL:       30 * time.Minute,
			SweepInterval: time.Minute,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// RegisterFlags adds the overridable keys to fs. Flag names are the koanf keys.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String("config", "", "Path to a YAML configuration file")
	fs.String("http.addr", d.HTTP.Addr, "Address the HTTP server listens on")
	fs.String("quiz.bank", d.Quiz.Bank, "Question bank file (default: built-in bank)")
	fs.Int("quiz.question_seconds", d.Quiz.QuestionSeconds, "Seconds allowed per question")
	fs.Duration("quiz.reveal_delay", d.Quiz.RevealDelay, "How long the answer is revealed before moving on")
	fs.Duration("quiz.celebrate_delay", d.Quiz.CelebrateDelay, "Pause after the last question before the result")
	fs.Duration("promo.countdown", d.Promo.Countdown, "Length of the promotional countdown")
	fs.String("offer.checkout_url", d.Offer.CheckoutURL, "Checkout destination of the offer")
	fs.String("log.level", d.Log.Level, "Log level: debug, info, warn or error")
	fs.Bool("log.development", d.Log.Development, "Use human-friendly development logging")
}

// Load layers the YAML file named by --config, QUIZFLOW_ environment
// variables and explicitly set flags over Default, then validates the result.
func Load(fs *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")

	path, _ := fs.GetString("config")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.TrimPrefix(s, EnvPrefix)
		return strings.ReplaceAll(strings.ToLower(key), "__", ".")
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load environment: %w", err)
	}

	err = k.Load(posflag.ProviderWithFlag(fs, ".", nil, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed || f.Name == "config" {
			return "", nil
		}
		return f.Name, posflag.FlagVal(fs, f)
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load flags: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks field constraints.
func Validate(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// FlowOptions converts the quiz timings into controller options.
func (c Config) FlowOptions() flow.Options {
	opts := flow.DefaultOptions()
	opts.QuestionSeconds = c.Quiz.QuestionSeconds
	opts.CountdownSeconds = int(c.Promo.Countdown / time.Second)
	opts.RevealDelay = c.Quiz.RevealDelay
	opts.CelebrateDelay = c.Quiz.CelebrateDelay
	return opts
}

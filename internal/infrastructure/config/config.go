package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
)

// Config is decoded from the environment (a .env file is loaded by godotenv/autoload
// before main runs).
type Config struct {
	Port    string `env:"PORT,default=8080"`
	GinMode string `env:"GIN_MODE,default=debug"`

	AWSRegion          string `env:"AWS_REGION,default=us-east-1"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID,default=local"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY,default=local"`
	DynamoDBEndpoint   string `env:"DYNAMODB_ENDPOINT"`

	AppointmentServiceURL  string `env:"APPOINTMENT_SERVICE_URL,default=http://localhost:8083"`
	NotificationServiceURL string `env:"NOTIFICATION_SERVICE_URL,default=http://localhost:8088"`

	// SideEffectTimeout bounds each attempt of a call to a collaborator.
	SideEffectTimeout  time.Duration `env:"SIDE_EFFECT_TIMEOUT,default=5s"`
	SideEffectAttempts int           `env:"SIDE_EFFECT_ATTEMPTS,default=1"`
	SideEffectDelay    time.Duration `env:"SIDE_EFFECT_RETRY_DELAY,default=200ms"`

	MercadoPagoAccessToken     string `env:"MERCADOPAGO_ACCESS_TOKEN"`
	MercadoPagoTestPayerEmail  string `env:"MERCADOPAGO_TEST_PAYER_EMAIL"`
	MercadoPagoTestPayerUserID string `env:"MERCADOPAGO_TEST_PAYER_USER_ID"`
	PaymentGatewayMock         string `env:"PAYMENT_GATEWAY_MOCK"`
	MercadoPagoMock            string `env:"MERCADOPAGO_MOCK"`
}

// Load decodes Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		log.Printf("[config] decode failed err=%v", err)
		return Config{}, err
	}
	return cfg, nil
}

// PaymentMockEnabled accepts the same truthy spellings for both mock switches.
func (c Config) PaymentMockEnabled() bool {
	for _, raw := range []string{c.PaymentGatewayMock, c.MercadoPagoMock} {
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

// SandboxToken reports whether the access token points at the Mercado Pago sandbox.
func (c Config) SandboxToken() bool {
	return strings.HasPrefix(strings.TrimSpace(c.MercadoPagoAccessToken), "TEST-")
}

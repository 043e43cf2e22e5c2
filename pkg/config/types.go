package config

import (
	"time"

	"github.com/raywall/fast-items-service/dyndb"
)

// Runtimes suportados. "lambda" atende eventos do API Gateway; os demais
// sobem um servidor HTTP de longa duração.
const (
	RuntimeLocal  = "local"
	RuntimeLambda = "lambda"
)

// ServiceConfig representa a configuração completa do serviço.
//
// Cada campo pode vir do arquivo YAML (tag yaml) e/ou de variável de
// ambiente (tag env); o ambiente sempre vence.
type ServiceConfig struct {
	Service  ServiceDetails     `yaml:"service"`
	DynamoDB dyndb.ClientConfig `yaml:"dynamodb"`
	Logging  LoggingConf        `yaml:"logging"`
	Metrics  MetricsConf        `yaml:"metrics"`
}

// ServiceDetails contém os metadados e configurações de runtime do serviço.
type ServiceDetails struct {
	Name    string        `yaml:"name" env:"SERVICE_NAME" envDefault:"items-api" validate:"required,hostname_rfc1123"`
	Runtime string        `yaml:"runtime" env:"SERVICE_RUNTIME" envDefault:"local" validate:"required,oneof=local lambda ecs eks ec2"`
	Port    int           `yaml:"port" env:"PORT" envDefault:"8080"`
	Timeout time.Duration `yaml:"timeout" env:"SERVICE_TIMEOUT" envDefault:"10s" validate:"gt=0"`
}

type LoggingConf struct {
	Enabled bool   `yaml:"enabled" env:"LOG_ENABLED" envDefault:"true"`
	Level   string `yaml:"level" env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	Format  string `yaml:"format" env:"LOG_FORMAT" envDefault:"json" validate:"oneof=json console"`
}

type MetricsConf struct {
	Datadog DatadogConf `yaml:"datadog"`
}

type DatadogConf struct {
	Enabled   bool     `yaml:"enabled" env:"DD_ENABLED" envDefault:"false"`
	Addr      string   `yaml:"addr" env:"DD_AGENT_HOST" validate:"required_if=Enabled true"`
	Namespace string   `yaml:"namespace" env:"DD_NAMESPACE" envDefault:"items."`
	Tags      []string `yaml:"tags" env:"DD_TAGS"`
}

// IsLambda indica se o serviço roda como função Lambda.
func (s ServiceDetails) IsLambda() bool {
	return s.Runtime == RuntimeLambda
}

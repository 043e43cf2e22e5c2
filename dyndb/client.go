package dyndb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ClientConfig descreve a conexão com a tabela.
//
// Endpoint vazio conecta no endpoint regional de produção; preenchido,
// aponta para um backend alternativo (DynamoDB Local, LocalStack).
type ClientConfig struct {
	TableName string `yaml:"table" env:"DYNAMODB_TABLE" envDefault:"items" validate:"required"`
	Region    string `yaml:"region" env:"AWS_REGION" envDefault:"us-east-1" validate:"required"`
	Endpoint  string `yaml:"endpoint" env:"DYNAMODB_ENDPOINT_URL" validate:"omitempty,url"`
}

// NewClient cria o cliente DynamoDB a partir da cadeia padrão de credenciais
// (env vars, profile, IAM role) e da região configurada.
func NewClient(ctx context.Context, cfg ClientConfig) (*dynamodb.Client, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("dyndb: load aws config: %w", err)
	}
	return dynamodb.NewFromConfig(awsCfg, clientOptions(cfg)...), nil
}

// NewItemStore liga um Store[T] à tabela de cfg, com "id" como chave primária.
func NewItemStore[T any](client DynamoDBClient, cfg ClientConfig) Store[T] {
	return New(client, TableConfig[T]{
		TableName: cfg.TableName,
		HashKey:   "id",
	})
}

func clientOptions(cfg ClientConfig) []func(*dynamodb.Options) {
	var opts []func(*dynamodb.Options)
	if cfg.Endpoint != "" {
		opts = append(opts, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		})
	}
	return opts
}

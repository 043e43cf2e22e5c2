// dyndb/types.go
package dyndb

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ErrNotFound – erro padrão quando o item não existe
var ErrNotFound = errors.New("dyndb: item not found")

// DynamoDBClient interface para abstrair o cliente DynamoDB.
//
// Contém apenas as primitivas consumidas pelo Store; *dynamodb.Client a
// satisfaz, assim como os mocks de teste.
type DynamoDBClient interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// Store: interface principal (genérica) sobre uma única tabela.
type Store[T any] interface {
	// Get busca pela chave primária. Retorna ErrNotFound se o item não existe.
	Get(ctx context.Context, hashKey any) (*T, error)
	// Put grava o item (upsert: a mesma chave sobrescreve o registro anterior).
	Put(ctx context.Context, item T) error
	// Scan lê até Limit itens, sem ordem definida e sem continuação.
	Scan(ctx context.Context, opts ...ScanOption) ([]T, error)
}

// TableConfig: configuração da tabela
type TableConfig[T any] struct {
	TableName string `env:"DYNAMODB_TABLE"`
	HashKey   string `env:"DYNAMODB_HASH_KEY" envDefault:"id"`
}

// ScanOptions agrupa os parâmetros de um Scan.
type ScanOptions struct {
	Limit      int32
	Projection []string
}

// ScanOption: opção funcional aplicada sobre ScanOptions
type ScanOption func(*ScanOptions)

// WithLimit limita o número de itens avaliados pelo Scan.
func WithLimit(n int32) ScanOption {
	return func(o *ScanOptions) {
		o.Limit = n
	}
}

// WithProjection restringe os atributos retornados.
func WithProjection(fields ...string) ScanOption {
	return func(o *ScanOptions) {
		o.Projection = append(o.Projection, fields...)
	}
}

// ApplyScanOptions resolve as opções informadas. Exportado para que
// implementações alternativas de Store (mocks, fakes) leiam o mesmo contrato.
func ApplyScanOptions(opts ...ScanOption) ScanOptions {
	var o ScanOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

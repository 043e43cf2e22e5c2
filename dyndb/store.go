// dyndb/store.go
package dyndb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/raywall/fast-items-service/envloader"
)

type dynamoStore[T any] struct {
	client DynamoDBClient
	cfg    TableConfig[T]
}

// New cria um store reutilizável. Campos vazios de cfg são completados
// a partir do ambiente (DYNAMODB_TABLE, DYNAMODB_HASH_KEY).
//
// A existência da tabela não é verificada: falhas aparecem na primeira chamada.
func New[T any](client DynamoDBClient, cfg TableConfig[T]) Store[T] {
	if cfg.TableName == "" || cfg.HashKey == "" {
		_ = envloader.Load(&cfg)
	}

	return &dynamoStore[T]{
		client: client,
		cfg:    cfg,
	}
}

// Get item por chave primária
func (s *dynamoStore[T]) Get(ctx context.Context, hashKey any) (*T, error) {
	key, err := attributevalue.Marshal(hashKey)
	if err != nil {
		return nil, s.fail("marshal", err)
	}

	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.cfg.TableName),
		Key:            map[string]types.AttributeValue{s.cfg.HashKey: key},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, s.fail("get", err)
	}
	if out == nil || out.Item == nil {
		return nil, ErrNotFound
	}

	var item T
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, s.fail("unmarshal", err)
	}
	return &item, nil
}

// Put item (upsert)
func (s *dynamoStore[T]) Put(ctx context.Context, item T) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return s.fail("marshal", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.cfg.TableName),
		Item:      av,
	})
	if err != nil {
		return s.fail("put", err)
	}
	return nil
}

// Scan executa uma única página de Scan. Limit <= 0 deixa o limite a cargo do DynamoDB.
func (s *dynamoStore[T]) Scan(ctx context.Context, opts ...ScanOption) ([]T, error) {
	o := ApplyScanOptions(opts...)

	input := &dynamodb.ScanInput{
		TableName: aws.String(s.cfg.TableName),
	}
	if o.Limit > 0 {
		input.Limit = aws.Int32(o.Limit)
	}

	// "name" e "timestamp" são palavras reservadas, então a projeção
	// passa pelo expression builder para gerar os placeholders.
	if len(o.Projection) > 0 {
		names := make([]expression.NameBuilder, 0, len(o.Projection))
		for _, f := range o.Projection {
			names = append(names, expression.Name(f))
		}
		proj := expression.NamesList(names[0], names[1:]...)
		expr, err := expression.NewBuilder().WithProjection(proj).Build()
		if err != nil {
			return nil, s.fail("scan", err)
		}
		input.ProjectionExpression = expr.Projection()
		input.ExpressionAttributeNames = expr.Names()
	}

	out, err := s.client.Scan(ctx, input)
	if err != nil {
		return nil, s.fail("scan", err)
	}
	if out == nil {
		return []T{}, nil
	}
	return s.unmarshalResults(out.Items)
}

func (s *dynamoStore[T]) unmarshalResults(items []map[string]types.AttributeValue) ([]T, error) {
	result := make([]T, 0, len(items))
	for _, item := range items {
		var t T
		if err := attributevalue.UnmarshalMap(item, &t); err != nil {
			return nil, s.fail("unmarshal", err)
		}
		result = append(result, t)
	}
	return result, nil
}

func (s *dynamoStore[T]) fail(op string, err error) error {
	return &StoreError{Op: op, Table: s.cfg.TableName, Err: err}
}

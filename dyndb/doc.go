// Package dyndb fornece uma abstração genérica e tipada sobre uma única
// tabela do AWS DynamoDB (SDK v2).
//
// Visão Geral:
// O pacote expõe a interface `Store[T]` com as três primitivas usadas pelo
// serviço de itens: `Get` por chave primária, `Put` (upsert) e `Scan`
// limitado. Os tipos de baixo nível do SDK (AttributeValue) ficam
// escondidos atrás de `attributevalue.MarshalMap` / `UnmarshalMap`.
//
// Erros:
//   - `ErrNotFound` quando Get não encontra o item.
//   - `*StoreError` para qualquer falha do SDK ou de conversão; a mensagem
//     inclui o texto original do erro.
//
// Conexão:
// `NewClient` monta o *dynamodb.Client a partir de `ClientConfig` (tabela,
// região e endpoint alternativo opcional). A tabela não é criada nem
// verificada na inicialização.
//
// Exemplo:
//
//	client, err := dyndb.NewClient(ctx, dyndb.ClientConfig{
//		TableName: "items",
//		Region:    "us-east-1",
//		Endpoint:  "http://localhost:8000", // opcional
//	})
//	if err != nil { /* ... */ }
//
//	store := dyndb.NewItemStore[models.Item](client, cfg)
//	item, err := store.Get(ctx, "abc-123")
//	if errors.Is(err, dyndb.ErrNotFound) { /* 404 */ }
//
//	items, err := store.Scan(ctx, dyndb.WithLimit(100))
//
// Testes:
// `MockStore[T]` permite simular o Store com campos de função.
package dyndb

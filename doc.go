// Package fastitems é a raiz do serviço de itens: uma API HTTP mínima que
// grava e lê registros de uma tabela DynamoDB.
//
// Rotas:
//
//	POST /items/              cria (ou sobrescreve) um item
//	GET  /items/{item_id}     busca um item pelo id
//	GET  /items/?limit=N      lista até N itens (default 100, sem ordem)
//	GET  /health              verificação de saúde
//
// Sub-Pacotes Principais:
//
// 1. envloader:
//   - Carregamento de configurações via tags "env" e "envDefault".
//   - Defaults e Override separados para compor com arquivos YAML.
//
// 2. dyndb:
//   - Store[T] genérico sobre o DynamoDB (Get, Put, Scan com limite e projeção).
//   - Erros tipados (ErrNotFound, *StoreError) e MockStore para testes.
//
// 3. easyrepo:
//   - EasyService[T]: validação, hooks BeforeCreate e revalidação dos registros lidos.
//
// 4. pkg/...:
//   - models: schema do Item e erros de validação.
//   - handler: handlers HTTP das operações de item.
//   - transport: router gorilla/mux, servidor HTTP e adaptador Lambda.
//   - config, logger, metrics, observability: camada de suporte.
//
// Os binários ficam em cmd/server (serviço) e cmd/toolkit (validação da configuração).
//
// Exemplo de Início Rápido:
//
//	DYNAMODB_ENDPOINT_URL=http://localhost:8000 go run ./cmd/server
//
//	curl -X POST localhost:8080/items/ -d '{"name":"Test Item","description":"sample"}'
package fastitems

/*
Package easyrepo fornece uma abstração genérica para o padrão Service-Repository
sobre um dyndb.Store.

O objetivo deste pacote é reduzir o boilerplate em microserviços Go, entregando:
  - Validação de entrada automática via struct tags (validator/v10) ou função própria.
  - Hooks BeforeCreate para completar o item (ex: id e timestamp) antes da gravação.
  - Leituras (Get, List) revalidadas pelo mesmo schema antes de sair do serviço.

Exemplo de uso:

	type Item struct {
		ID   string `json:"id" dynamodbav:"id"`
		Name string `json:"name" dynamodbav:"name" validate:"required,max=100"`
	}

	service := easyrepo.NewService[Item](store)
	service.RegisterHook(easyrepo.BeforeCreate, func(ctx context.Context, it *Item) error {
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		return nil
	})
	err := service.Create(ctx, &Item{Name: "Test Item"})
*/
package easyrepo

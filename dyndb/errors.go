package dyndb

import "fmt"

// StoreError encapsula qualquer falha vinda do DynamoDB (conectividade,
// throttling, permissão, tabela inexistente) ou da conversão dos registros.
//
// A mensagem carrega o texto original do SDK sem alterações.
type StoreError struct {
	// Op é a operação que falhou: "get", "put", "scan", "marshal", "unmarshal"
	// ou "reshape" (registro lido que viola o schema).
	Op    string
	Table string
	Err   error
}

func (e *StoreError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("dyndb: %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("dyndb: %s failed on table %q: %v", e.Op, e.Table, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

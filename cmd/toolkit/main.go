package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/raywall/fast-items-service/pkg/config"
)

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdout))
}

// execute roda o subcomando e devolve o exit code.
func execute(ctx context.Context, args []string, out io.Writer) int {
	validateCmd := flag.NewFlagSet("validate", flag.ContinueOnError)
	validateCmd.SetOutput(out)
	filePtr := validateCmd.String("file", "", "Caminho do arquivo YAML (local, file:// ou s3://). Vazio usa só o ambiente")

	if len(args) < 1 {
		fmt.Fprintln(out, "Comandos esperados: validate")
		return 1
	}

	switch args[0] {
	case "validate":
		if err := validateCmd.Parse(args[1:]); err != nil {
			return 1
		}
		return runValidate(ctx, *filePtr, out)
	default:
		fmt.Fprintln(out, "Comando desconhecido")
		return 1
	}
}

// runValidate carrega a configuração como o servidor faria e imprime o
// resultado efetivo (YAML, ou JSON com OUTPUT_FORMAT=json).
func runValidate(ctx context.Context, path string, out io.Writer) int {
	source := path
	if source == "" {
		source = "(somente ambiente)"
	}
	fmt.Fprintf(out, "🔍 Analisando configuração: %s ...\n", source)

	cfg, err := config.NewLoader().Load(ctx, path)
	if err != nil {
		fmt.Fprintf(out, "❌ Erro de Carregamento/Estrutura:\n%v\n", err)
		return 1
	}

	if os.Getenv("OUTPUT_FORMAT") == "json" {
		jsonOutput, _ := json.MarshalIndent(cfg, "", "  ")
		fmt.Fprintln(out, string(jsonOutput))
		return 0
	}

	effective, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(out, "❌ Erro ao serializar configuração: %v\n", err)
		return 1
	}
	fmt.Fprintln(out, "✅ Configuração Válida e Pronta para Deploy!")
	fmt.Fprint(out, string(effective))
	return 0
}

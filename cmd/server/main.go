package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"

	"github.com/raywall/fast-items-service/dyndb"
	"github.com/raywall/fast-items-service/pkg/config"
	"github.com/raywall/fast-items-service/pkg/handler"
	"github.com/raywall/fast-items-service/pkg/logger"
	"github.com/raywall/fast-items-service/pkg/metrics"
	"github.com/raywall/fast-items-service/pkg/models"
	"github.com/raywall/fast-items-service/pkg/observability"
	"github.com/raywall/fast-items-service/pkg/transport"
)

var (
	// Variáveis injetáveis para mocking
	serverStarter = transport.StartHTTPServer
	lambdaStarter = lambda.Start
	clientFactory = func(ctx context.Context, cfg dyndb.ClientConfig) (dyndb.DynamoDBClient, error) {
		return dyndb.NewClient(ctx, cfg)
	}
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Getenv(config.EnvConfigFile)); err != nil {
		log.Fatal().Err(err).Msg("FATAL: falha na inicialização do serviço")
	}
}

// run contém a lógica principal testável
func run(ctx context.Context, cfgPath string) error {
	// 1. Configuração: defaults -> YAML opcional -> ambiente
	cfg, err := config.NewLoader().Load(ctx, cfgPath)
	if err != nil {
		return err
	}

	// 2. Logger global
	log.Logger = logger.ForService(logger.Configure(cfg.Logging), cfg.Service)

	// 3. Métricas
	provider, err := observability.SetupMetrics(cfg.Metrics)
	if err != nil {
		return err
	}
	defer provider.Close()

	// 4. Store e serviço
	client, err := clientFactory(ctx, cfg.DynamoDB)
	if err != nil {
		return fmt.Errorf("falha ao criar cliente DynamoDB: %w", err)
	}
	store := dyndb.NewItemStore[models.Item](client, cfg.DynamoDB)
	recorder := metrics.NewRecorder(provider, "service:"+cfg.Service.Name)
	items := handler.NewItemsHandler(handler.NewItemsService(store), recorder)
	h := transport.NewHandler(items)

	log.Info().
		Str("table", cfg.DynamoDB.TableName).
		Str("region", cfg.DynamoDB.Region).
		Str("endpoint", cfg.DynamoDB.Endpoint).
		Msg("serviço inicializado")

	// 5. Seleciona Runtime Strategy
	switch cfg.Service.Runtime {
	case "local", "ec2", "ecs", "eks":
		return serverStarter(ctx, cfg.Service, h)
	case config.RuntimeLambda:
		lambdaStarter(transport.NewLambdaHandler(h).Handle)
		return nil
	default:
		return fmt.Errorf("runtime desconhecido: %s", cfg.Service.Runtime)
	}
}

package config

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/raywall/fast-items-service/envloader"
	"github.com/raywall/fast-items-service/pkg/config/injector"
	"gopkg.in/yaml.v3"
)

// EnvConfigFile aponta para o arquivo YAML opcional (caminho local, file:// ou s3://).
const EnvConfigFile = "ITEMS_CONFIG_FILE"

// S3Downloader abstrai o cliente S3 (permite Mocking)
type S3Downloader interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Loader monta a configuração em camadas:
// defaults (envDefault) -> arquivo YAML -> variáveis de ambiente -> placeholders -> validação.
type Loader struct {
	validator *ConfigValidator
	injector  *injector.Injector
	s3        S3Downloader
}

// LoaderOption customiza o Loader (usado principalmente em testes).
type LoaderOption func(*Loader)

// WithS3Client define o cliente usado para fontes s3://
func WithS3Client(client S3Downloader) LoaderOption {
	return func(l *Loader) {
		l.s3 = client
	}
}

// WithInjector substitui o resolvedor de placeholders ${...}
func WithInjector(inj *injector.Injector) LoaderOption {
	return func(l *Loader) {
		l.injector = inj
	}
}

// NewLoader cria uma nova instância.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		validator: NewValidator(),
		injector:  injector.New(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load lê a configuração usando o arquivo indicado em ITEMS_CONFIG_FILE, se houver.
func Load(ctx context.Context) (*ServiceConfig, error) {
	return NewLoader().Load(ctx, os.Getenv(EnvConfigFile))
}

// Load monta a configuração. source vazio significa "somente ambiente".
func (l *Loader) Load(ctx context.Context, source string) (*ServiceConfig, error) {
	cfg := &ServiceConfig{}

	if err := envloader.Defaults(cfg); err != nil {
		return nil, fmt.Errorf("defaults inválidos: %w", err)
	}

	if source != "" {
		raw, err := l.read(ctx, source)
		if err != nil {
			return nil, fmt.Errorf("falha leitura config (%s): %w", source, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("YAML malformado: %w", err)
		}
	}

	if err := envloader.Override(cfg); err != nil {
		return nil, fmt.Errorf("variável de ambiente inválida: %w", err)
	}

	if err := l.injector.Inject(ctx, cfg); err != nil {
		return nil, fmt.Errorf("falha na injeção de variáveis: %w", err)
	}

	if err := l.validator.Validate(cfg); err != nil {
		return nil, fmt.Errorf("validação da configuração falhou: %w", err)
	}

	return cfg, nil
}

func (l *Loader) read(ctx context.Context, source string) ([]byte, error) {
	if strings.HasPrefix(source, "s3://") {
		if l.s3 == nil {
			awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
			if err != nil {
				return nil, err
			}
			l.s3 = s3.NewFromConfig(awsCfg)
		}
		return l.loadFromS3(ctx, source)
	}
	// Suporta tanto "file://config.yaml" quanto apenas "config.yaml"
	return os.ReadFile(strings.TrimPrefix(source, "file://"))
}

func (l *Loader) loadFromS3(ctx context.Context, uri string) ([]byte, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("URL S3 inválida: %w", err)
	}
	bucket := u.Host
	key := strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return nil, fmt.Errorf("URL S3 inválida: %s", uri)
	}

	out, err := l.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}

// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// Package envloader carrega variáveis de ambiente diretamente para campos de
// uma struct Go, usando as tags `env` e `envDefault`.
//
// Além dos tipos básicos (string, int, uint, bool, float) o pacote entende
// time.Duration ("10s", "250ms") e []string separado por vírgulas, e processa
// structs aninhadas (inclusive ponteiros para struct).
//
// Camadas:
//
// Load aplica ambiente e default em uma única passada. Quando a configuração
// também vem de um arquivo, use Defaults antes de decodificar o arquivo e
// Override depois, para que a precedência fique default < arquivo < ambiente:
//
//	cfg := &Config{}
//	_ = envloader.Defaults(cfg)
//	_ = yaml.Unmarshal(raw, cfg)
//	_ = envloader.Override(cfg)
//
// Exemplo Básico:
//
//	type Config struct {
//		Table   string        `env:"DYNAMODB_TABLE" envDefault:"items"`
//		Timeout time.Duration `env:"SERVICE_TIMEOUT" envDefault:"10s"`
//	}
//
//	var cfg Config
//	if err := envloader.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
package envloader

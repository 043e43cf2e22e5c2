package transport

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"
)

// LambdaHandler adapta eventos do API Gateway para o mesmo http.Handler do servidor HTTP.
// Suporta REST API (payload v1) e HTTP API (payload v2).
type LambdaHandler struct {
	handler http.Handler
}

// NewLambdaHandler cria uma nova instância do adaptador
func NewLambdaHandler(handler http.Handler) *LambdaHandler {
	return &LambdaHandler{handler: handler}
}

// Handle é o ponto de entrada do lambda.Start: identifica a versão do
// payload e despacha para HandleREST ou HandleHTTP.
func (h *LambdaHandler) Handle(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	var probe struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(payload, &probe); err != nil {
		return nil, fmt.Errorf("evento inválido: %w", err)
	}

	if probe.Version == "2.0" {
		var req events.APIGatewayV2HTTPRequest
		if err := json.Unmarshal(payload, &req); err != nil {
			return nil, fmt.Errorf("evento HTTP API inválido: %w", err)
		}
		return h.HandleHTTP(ctx, req)
	}

	var req events.APIGatewayProxyRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return nil, fmt.Errorf("evento REST API inválido: %w", err)
	}
	return h.HandleREST(ctx, req)
}

// HandleREST processa eventos do API Gateway REST API (v1).
func (h *LambdaHandler) HandleREST(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	query := url.Values{}
	for k, values := range req.MultiValueQueryStringParameters {
		query[k] = append(query[k], values...)
	}
	for k, v := range req.QueryStringParameters {
		if _, ok := query[k]; !ok {
			query.Set(k, v)
		}
	}

	headers := http.Header{}
	for k, values := range req.MultiValueHeaders {
		for _, v := range values {
			headers.Add(k, v)
		}
	}
	for k, v := range req.Headers {
		if headers.Get(k) == "" {
			headers.Set(k, v)
		}
	}

	// No payload v1 o path já chega decodificado: não pode ser interpretado de novo
	u := &url.URL{Path: req.Path, RawQuery: query.Encode()}

	rec, err := h.dispatch(ctx, req.HTTPMethod, u, headers, req.Body, req.IsBase64Encoded)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return events.APIGatewayProxyResponse{
		StatusCode: rec.status,
		Headers:    rec.singleHeaders(),
		Body:       rec.body.String(),
	}, nil
}

// HandleHTTP processa eventos do API Gateway HTTP API (v2).
func (h *LambdaHandler) HandleHTTP(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	headers := http.Header{}
	for k, v := range req.Headers {
		// Headers repetidos chegam concatenados por vírgula no payload v2
		headers.Set(k, v)
	}
	if len(req.Cookies) > 0 {
		headers.Set("Cookie", strings.Join(req.Cookies, "; "))
	}

	u := &url.URL{Path: req.RequestContext.HTTP.Path, RawQuery: req.RawQueryString}
	if req.RawPath != "" {
		// rawPath vem codificado; Path recebe a forma decodificada e RawPath preserva a original
		u.Path = req.RawPath
		if decoded, err := url.PathUnescape(req.RawPath); err == nil {
			u.Path = decoded
			u.RawPath = req.RawPath
		}
	}

	rec, err := h.dispatch(ctx, req.RequestContext.HTTP.Method, u, headers, req.Body, req.IsBase64Encoded)
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, err
	}

	return events.APIGatewayV2HTTPResponse{
		StatusCode: rec.status,
		Headers:    rec.singleHeaders(),
		Body:       rec.body.String(),
	}, nil
}

// dispatch monta o *http.Request com a URL já resolvida, sem reparsear o path.
func (h *LambdaHandler) dispatch(ctx context.Context, method string, u *url.URL, headers http.Header, body string, isBase64 bool) (*responseRecorder, error) {
	payload := []byte(body)
	if isBase64 {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return nil, fmt.Errorf("body base64 inválido: %w", err)
		}
		payload = decoded
	}

	r, err := http.NewRequestWithContext(ctx, method, "/", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("requisição inválida: %w", err)
	}
	r.URL = u
	r.Header = headers
	r.RequestURI = u.RequestURI()

	rec := newResponseRecorder()
	h.handler.ServeHTTP(rec, r)

	log.Debug().Int("status", rec.status).Str("path", u.Path).Msg("lambda request completed")
	return rec, nil
}

// responseRecorder captura a resposta do http.Handler para devolvê-la ao API Gateway.
type responseRecorder struct {
	header      http.Header
	body        bytes.Buffer
	status      int
	wroteHeader bool
}

func newResponseRecorder() *responseRecorder {
	return &responseRecorder{header: http.Header{}, status: http.StatusOK}
}

func (r *responseRecorder) Header() http.Header {
	return r.header
}

func (r *responseRecorder) WriteHeader(code int) {
	if r.wroteHeader {
		return
	}
	r.status = code
	r.wroteHeader = true
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	return r.body.Write(b)
}

// singleHeaders achata os headers para o campo Headers do evento,
// mantendo os nomes em minúsculas como o API Gateway espera.
func (r *responseRecorder) singleHeaders() map[string]string {
	out := make(map[string]string, len(r.header))
	for k, values := range r.header {
		out[strings.ToLower(k)] = strings.Join(values, ",")
	}
	return out
}

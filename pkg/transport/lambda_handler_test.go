package transport

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/fast-items-service/pkg/models"
)

func TestLambdaHandler_REST(t *testing.T) {
	lh := NewLambdaHandler(newTestServer(t))
	ctx := context.Background()

	created, err := lh.HandleREST(ctx, events.APIGatewayProxyRequest{
		HTTPMethod: "POST",
		Path:       "/items/",
		Headers: map[string]string{
			"Content-Type":     "application/json",
			"x-correlation-id": "lambda-corr",
		},
		Body: `{"name":"Test Item","description":"sample"}`,
	})
	require.NoError(t, err)
	require.Equal(t, 200, created.StatusCode)
	assert.Equal(t, "lambda-corr", created.Headers[HeaderCorrelationID])
	assert.Equal(t, "application/json", created.Headers["content-type"])

	var item models.Item
	require.NoError(t, json.Unmarshal([]byte(created.Body), &item))

	got, err := lh.HandleREST(ctx, events.APIGatewayProxyRequest{
		HTTPMethod: "GET",
		Path:       "/items/" + item.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 200, got.StatusCode)
	assert.JSONEq(t, created.Body, got.Body)
	assert.NotEmpty(t, got.Headers[HeaderCorrelationID])

	list, err := lh.HandleREST(ctx, events.APIGatewayProxyRequest{
		HTTPMethod:            "GET",
		Path:                  "/items/",
		QueryStringParameters: map[string]string{"limit": "0"},
	})
	require.NoError(t, err)
	assert.Equal(t, 422, list.StatusCode)
}

func TestLambdaHandler_HTTPAPI(t *testing.T) {
	lh := NewLambdaHandler(newTestServer(t))

	req := events.APIGatewayV2HTTPRequest{
		Version:         "2.0",
		RawPath:         "/items/",
		Headers:         map[string]string{"content-type": "application/json"},
		Body:            base64.StdEncoding.EncodeToString([]byte(`{"id":"abc","name":"Widget"}`)),
		IsBase64Encoded: true,
	}
	req.RequestContext.HTTP.Method = "POST"

	resp, err := lh.HandleHTTP(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var item models.Item
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &item))
	assert.Equal(t, "abc", item.ID)
	assert.Equal(t, "Widget", item.Name)

	get := events.APIGatewayV2HTTPRequest{Version: "2.0", RawPath: "/items/missing"}
	get.RequestContext.HTTP.Method = "GET"
	notFound, err := lh.HandleHTTP(context.Background(), get)
	require.NoError(t, err)
	assert.Equal(t, 404, notFound.StatusCode)
	assert.JSONEq(t, `{"detail":"Item not found"}`, notFound.Body)
}

func TestLambdaHandler_Handle_DetectsPayloadVersion(t *testing.T) {
	lh := NewLambdaHandler(newTestServer(t))

	v1 := json.RawMessage(`{"httpMethod":"GET","path":"/health"}`)
	out, err := lh.Handle(context.Background(), v1)
	require.NoError(t, err)
	restResp, ok := out.(events.APIGatewayProxyResponse)
	require.True(t, ok, "esperado resposta REST, recebido %T", out)
	assert.Equal(t, 200, restResp.StatusCode)

	v2 := json.RawMessage(`{"version":"2.0","rawPath":"/health","requestContext":{"http":{"method":"GET"}}}`)
	out, err = lh.Handle(context.Background(), v2)
	require.NoError(t, err)
	httpResp, ok := out.(events.APIGatewayV2HTTPResponse)
	require.True(t, ok, "esperado resposta HTTP API, recebido %T", out)
	assert.JSONEq(t, `{"status":"ok"}`, httpResp.Body)
}

func TestLambdaHandler_InvalidInput(t *testing.T) {
	lh := NewLambdaHandler(newTestServer(t))

	_, err := lh.Handle(context.Background(), json.RawMessage(`not-json`))
	assert.Error(t, err)

	_, err = lh.HandleREST(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:      "POST",
		Path:            "/items/",
		Body:            "%%%",
		IsBase64Encoded: true,
	})
	assert.Error(t, err)
}

func TestLambdaHandler_REST_ReservedCharactersInID(t *testing.T) {
	lh := NewLambdaHandler(newTestServer(t))
	ctx := context.Background()

	for _, id := range []string{"50%off", "what?x"} {
		t.Run(id, func(t *testing.T) {
			created, err := lh.HandleREST(ctx, events.APIGatewayProxyRequest{
				HTTPMethod: "POST",
				Path:       "/items/",
				Body:       `{"id":"` + id + `","name":"n"}`,
			})
			require.NoError(t, err)
			require.Equal(t, 200, created.StatusCode)

			// API Gateway entrega o path do payload v1 já decodificado
			got, err := lh.HandleREST(ctx, events.APIGatewayProxyRequest{
				HTTPMethod: "GET",
				Path:       "/items/" + id,
			})
			require.NoError(t, err)
			require.Equal(t, 200, got.StatusCode, got.Body)
			assert.JSONEq(t, created.Body, got.Body)

			missing, err := lh.HandleREST(ctx, events.APIGatewayProxyRequest{
				HTTPMethod: "GET",
				Path:       "/items/" + id + "-missing",
			})
			require.NoError(t, err)
			assert.Equal(t, 404, missing.StatusCode)
		})
	}
}

func TestLambdaHandler_HTTPAPI_ReservedCharactersInID(t *testing.T) {
	lh := NewLambdaHandler(newTestServer(t))
	ctx := context.Background()

	tests := []struct {
		id      string
		rawPath string
	}{
		{id: "50%off", rawPath: "/items/50%25off"},
		{id: "what?x", rawPath: "/items/what%3Fx"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			post := events.APIGatewayV2HTTPRequest{
				Version: "2.0",
				RawPath: "/items/",
				Body:    `{"id":"` + tt.id + `","name":"n"}`,
			}
			post.RequestContext.HTTP.Method = "POST"
			created, err := lh.HandleHTTP(ctx, post)
			require.NoError(t, err)
			require.Equal(t, 200, created.StatusCode)

			get := events.APIGatewayV2HTTPRequest{
				Version:        "2.0",
				RawPath:        tt.rawPath,
				RawQueryString: "unused=1",
			}
			get.RequestContext.HTTP.Method = "GET"
			got, err := lh.HandleHTTP(ctx, get)
			require.NoError(t, err)
			require.Equal(t, 200, got.StatusCode, got.Body)
			assert.JSONEq(t, created.Body, got.Body)

			var item models.Item
			require.NoError(t, json.Unmarshal([]byte(got.Body), &item))
			assert.Equal(t, tt.id, item.ID)
		})
	}
}

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeOpenAPI3Spec(t *testing.T) {
	e := echo.New()
	RegisterDocs(e)

	req := httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var doc OpenAPIDocument
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "3.0.3", doc.OpenAPI)
	assert.Equal(t, "Finanzas API", doc.Info["title"])
	require.NotEmpty(t, doc.Servers)
	assert.Equal(t, "/api/v1", doc.Servers[0].URL)
	assert.Contains(t, doc.Paths, "/transactions")
	assert.Contains(t, doc.Components, "schemas")
	assert.NotContains(t, rec.Body.String(), swagger2RefPrefix)
}

func TestConvertSwagger2(t *testing.T) {
	raw := []byte(`{
		"swagger": "2.0",
		"info": {"title": "t"},
		"paths": {
			"/items": {
				"post": {
					"consumes": ["application/json"],
					"produces": ["application/json"],
					"parameters": [
						{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Item"}},
						{"name": "month", "in": "query", "type": "integer", "description": "Month"}
					],
					"responses": {
						"201": {"description": "Created", "schema": {"$ref": "#/definitions/Item"}},
						"204": {"description": "No Content"}
					}
				}
			},
			"/export": {
				"get": {
					"produces": ["application/octet-stream"],
					"responses": {"200": {"description": "OK", "schema": {"type": "file"}}}
				}
			}
		},
		"definitions": {"Item": {"type": "object"}}
	}`)

	doc, err := convertSwagger2(raw, docServers)
	require.NoError(t, err)

	post := doc.Paths["/items"].(map[string]interface{})["post"].(map[string]interface{})
	assert.NotContains(t, post, "consumes")

	body := post["requestBody"].(map[string]interface{})
	assert.Equal(t, true, body["required"])
	schema := body["content"].(map[string]interface{})["application/json"].(map[string]interface{})["schema"]
	assert.Equal(t, map[string]interface{}{"$ref": "#/components/schemas/Item"}, schema)

	params := post["parameters"].([]interface{})
	require.Len(t, params, 1)
	month := params[0].(map[string]interface{})
	assert.Equal(t, "month", month["name"])
	assert.Equal(t, map[string]interface{}{"type": "integer"}, month["schema"])

	responses := post["responses"].(map[string]interface{})
	assert.NotContains(t, responses["204"], "content")
	assert.Contains(t, responses["201"], "content")

	export := doc.Paths["/export"].(map[string]interface{})["get"].(map[string]interface{})
	file := export["responses"].(map[string]interface{})["200"].(map[string]interface{})["content"].(map[string]interface{})["application/octet-stream"].(map[string]interface{})
	assert.Equal(t, map[string]interface{}{"type": "string", "format": "binary"}, file["schema"])

	assert.Contains(t, doc.Components["schemas"], "Item")
}

func TestConvertSwagger2_InvalidJSON(t *testing.T) {
	_, err := convertSwagger2([]byte("{"), docServers)
	assert.Error(t, err)
}

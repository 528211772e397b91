package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/finanzas-app/finanzas-backend/docs"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

const (
	swagger2RefPrefix = "#/definitions/"
	openAPIRefPrefix  = "#/components/schemas/"
)

// OpenAPIDocument is the OpenAPI 3.0 rendition of the generated swagger doc
type OpenAPIDocument struct {
	OpenAPI    string                 `json:"openapi"`
	Info       map[string]interface{} `json:"info"`
	Servers    []Server               `json:"servers"`
	Paths      map[string]interface{} `json:"paths"`
	Components map[string]interface{} `json:"components,omitempty"`
}

// Server represents an OpenAPI 3.0 server
type Server struct {
	URL         string `json:"url"`
	Description string `json:"description"`
}

var docServers = []Server{
	{URL: "/api/v1", Description: "This server"},
	{URL: "http://localhost:8080/api/v1", Description: "Local Development"},
}

// convertSwagger2 turns a swag Swagger 2.0 document into OpenAPI 3.0. Body
// parameters become request bodies and response schemas move under content.
func convertSwagger2(raw []byte, servers []Server) (*OpenAPIDocument, error) {
	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse swagger doc: %w", err)
	}

	out := &OpenAPIDocument{
		OpenAPI:    "3.0.3",
		Servers:    servers,
		Paths:      map[string]interface{}{},
		Components: map[string]interface{}{},
	}
	out.Info, _ = doc["info"].(map[string]interface{})

	paths, _ := doc["paths"].(map[string]interface{})
	for path, item := range paths {
		operations, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		converted := make(map[string]interface{}, len(operations))
		for method, op := range operations {
			if opMap, ok := op.(map[string]interface{}); ok {
				converted[method] = convertOperation(opMap)
			}
		}
		out.Paths[path] = converted
	}

	if defs, ok := doc["definitions"].(map[string]interface{}); ok {
		out.Components["schemas"] = rewriteRefs(defs)
	}
	if sec, ok := doc["securityDefinitions"].(map[string]interface{}); ok {
		out.Components["securitySchemes"] = sec
	}
	return out, nil
}

func convertOperation(op map[string]interface{}) map[string]interface{} {
	consumes := firstString(op["consumes"], echo.MIMEApplicationJSON)
	produces := firstString(op["produces"], echo.MIMEApplicationJSON)

	out := make(map[string]interface{}, len(op))
	for key, value := range op {
		switch key {
		case "consumes", "produces", "parameters", "responses":
		default:
			out[key] = value
		}
	}

	if params, ok := op["parameters"].([]interface{}); ok {
		var converted []interface{}
		for _, p := range params {
			param, ok := p.(map[string]interface{})
			if !ok {
				continue
			}
			if param["in"] == "body" {
				out["requestBody"] = map[string]interface{}{
					"description": param["description"],
					"required":    param["required"] == true,
					"content": map[string]interface{}{
						consumes: map[string]interface{}{"schema": rewriteRefs(param["schema"])},
					},
				}
				continue
			}
			converted = append(converted, convertParameter(param))
		}
		if len(converted) > 0 {
			out["parameters"] = converted
		}
	}

	if responses, ok := op["responses"].(map[string]interface{}); ok {
		converted := make(map[string]interface{}, len(responses))
		for code, r := range responses {
			resp, ok := r.(map[string]interface{})
			if !ok {
				continue
			}
			entry := map[string]interface{}{"description": resp["description"]}
			if schema, ok := resp["schema"]; ok {
				entry["content"] = map[string]interface{}{
					produces: map[string]interface{}{"schema": responseSchema(schema)},
				}
			}
			converted[code] = entry
		}
		out["responses"] = converted
	}
	return out
}

// convertParameter moves type information of a non-body parameter into schema
func convertParameter(param map[string]interface{}) map[string]interface{} {
	out := map[string]interface{}{}
	for _, field := range []string{"name", "in", "description", "required"} {
		if v, ok := param[field]; ok {
			out[field] = v
		}
	}
	schema := map[string]interface{}{}
	for _, field := range []string{"type", "format", "enum", "default", "minimum", "maximum", "items"} {
		if v, ok := param[field]; ok {
			schema[field] = rewriteRefs(v)
		}
	}
	if len(schema) > 0 {
		out["schema"] = schema
	}
	return out
}

// responseSchema maps the Swagger 2.0 "file" type to a binary string
func responseSchema(schema interface{}) interface{} {
	if m, ok := schema.(map[string]interface{}); ok && m["type"] == "file" {
		return map[string]interface{}{"type": "string", "format": "binary"}
	}
	return rewriteRefs(schema)
}

// rewriteRefs points $ref values at components/schemas
func rewriteRefs(v interface{}) interface{} {
	switch node := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(node))
		for key, value := range node {
			if ref, ok := value.(string); ok && key == "$ref" {
				out[key] = strings.Replace(ref, swagger2RefPrefix, openAPIRefPrefix, 1)
				continue
			}
			out[key] = rewriteRefs(value)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(node))
		for i, item := range node {
			out[i] = rewriteRefs(item)
		}
		return out
	default:
		return v
	}
}

func firstString(v interface{}, fallback string) string {
	if list, ok := v.([]interface{}); ok && len(list) > 0 {
		if s, ok := list[0].(string); ok {
			return s
		}
	}
	return fallback
}

// ServeOpenAPI3Spec serves the swagger doc converted to OpenAPI 3.0
func ServeOpenAPI3Spec(c echo.Context) error {
	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		return NewInternalError(c, "Failed to read swagger doc")
	}

	doc, err := convertSwagger2([]byte(raw), docServers)
	if err != nil {
		return NewInternalError(c, "Failed to convert swagger doc")
	}
	return c.JSON(http.StatusOK, doc)
}

// RegisterDocs mounts the swagger UI and the OpenAPI 3 rendition of the doc
func RegisterDocs(e *echo.Echo) {
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/openapi.json", ServeOpenAPI3Spec)
}

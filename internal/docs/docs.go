// Package docs holds the OpenAPI document served at /swagger. Keep it in
// step with the @-annotations on the handlers.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/investments": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get every investment in insertion order. X-Store-Status is ok, empty, or unreadable.",
                "produces": ["application/json"],
                "tags": ["investments"],
                "summary": "List investments",
                "responses": {
                    "200": {
                        "description": "Investments",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Investment"}},
                        "headers": {"X-Store-Status": {"type": "string", "description": "ok | empty | unreadable"}}
                    },
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Store unreadable", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Add an investment. The server assigns id and dateAdded when absent.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["investments"],
                "summary": "Create investment",
                "parameters": [
                    {"description": "Investment", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.InvestmentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Investment"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Storage error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/investments/{id}": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Replace the investment with the given id. The path id and the stored dateAdded win.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["investments"],
                "summary": "Update investment",
                "parameters": [
                    {"type": "string", "description": "Investment ID", "name": "id", "in": "path", "required": true},
                    {"description": "Investment", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.InvestmentRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated", "schema": {"$ref": "#/definitions/models.Investment"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Remove every investment with the given id",
                "produces": ["application/json"],
                "tags": ["investments"],
                "summary": "Delete investment",
                "parameters": [
                    {"type": "string", "description": "Investment ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/handlers.DeleteResponse"}},
                    "500": {"description": "Storage error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/portfolio/summary": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": ["application/json"],
                "tags": ["portfolio"],
                "description": "Totals, distinct dimensions, and growth for the filtered records",
                "summary": "Portfolio summary",
                "parameters": [
                    {"type": "string", "description": "original (default) or USD", "name": "displayCurrency", "in": "query"},
                    {"type": "string", "description": "Currency filter or all", "name": "currency", "in": "query"},
                    {"type": "string", "description": "Country filter or all", "name": "country", "in": "query"},
                    {"type": "string", "description": "Asset class filter or all", "name": "assetClass", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Summary", "schema": {"$ref": "#/definitions/portfolio.Summary"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/portfolio/allocation": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": ["application/json"],
                "tags": ["portfolio"],
                "description": "Allocation entries grouped by asset class, country, or currency",
                "summary": "Portfolio allocation",
                "parameters": [
                    {"type": "string", "description": "assetClass (default), country, or currency", "name": "groupBy", "in": "query"},
                    {"type": "string", "description": "original (default) or USD", "name": "displayCurrency", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Allocation", "schema": {"$ref": "#/definitions/handlers.AllocationResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/portfolio/breakdown": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": ["application/json"],
                "tags": ["portfolio"],
                "description": "Records grouped by country, currency, and asset class, largest USD amount first",
                "summary": "Portfolio breakdown",
                "responses": {
                    "200": {"description": "Rows", "schema": {"$ref": "#/definitions/handlers.BreakdownResponse"}}
                }
            }
        },
        "/portfolio/maturity": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": ["application/json"],
                "tags": ["portfolio"],
                "description": "Simple-interest projection for Bond and Deposit records maturing after today",
                "summary": "Maturity earnings",
                "responses": {
                    "200": {"description": "Report", "schema": {"$ref": "#/definitions/portfolio.MaturityReport"}}
                }
            }
        },
        "/portfolio/growth": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": ["application/json"],
                "tags": ["portfolio"],
                "description": "Growth of each record against its original price. live=true revalues quoted holdings at market price.",
                "summary": "Investment growth",
                "parameters": [
                    {"type": "boolean", "description": "Use live prices", "name": "live", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Rows", "schema": {"type": "array", "items": {"$ref": "#/definitions/portfolio.GrowthRow"}}}
                }
            }
        },
        "/portfolio/filters": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": ["application/json"],
                "tags": ["portfolio"],
                "description": "Sorted distinct currencies, countries, and asset classes over every record",
                "summary": "Filter options",
                "responses": {
                    "200": {"description": "Options", "schema": {"$ref": "#/definitions/portfolio.Options"}}
                }
            }
        },
        "/prices/{symbol}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Current quote for a symbol. Cached for five minutes.",
                "produces": ["application/json"],
                "tags": ["prices"],
                "summary": "Get price",
                "parameters": [
                    {"type": "string", "description": "Ticker, coin symbol, or XAU", "name": "symbol", "in": "path", "required": true},
                    {"type": "string", "description": "ETF, Stock, Cryptocurrency, or Gold (XAU)", "name": "type", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "Quote", "schema": {"$ref": "#/definitions/pricing.PriceData"}},
                    "400": {"description": "Unsupported asset type", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Price unavailable", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/prices/batch": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["prices"],
                "description": "Quotes for several assets, in request order. Unavailable prices are skipped.",
                "summary": "Get prices",
                "parameters": [
                    {"description": "Assets", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.BatchPriceRequest"}}
                ],
                "responses": {
                    "200": {"description": "Quotes", "schema": {"$ref": "#/definitions/handlers.PriceListResponse"}}
                }
            }
        },
        "/prices/popular/etfs": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": ["application/json"],
                "tags": ["prices"],
                "summary": "Popular ETF prices",
                "responses": {"200": {"description": "Quotes", "schema": {"$ref": "#/definitions/handlers.PriceListResponse"}}}
            }
        },
        "/prices/popular/crypto": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": ["application/json"],
                "tags": ["prices"],
                "summary": "Popular crypto prices",
                "responses": {"200": {"description": "Quotes", "schema": {"$ref": "#/definitions/handlers.PriceListResponse"}}}
            }
        },
        "/prices/gold": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": ["application/json"],
                "tags": ["prices"],
                "summary": "Gold price",
                "responses": {
                    "200": {"description": "XAU/USD", "schema": {"$ref": "#/definitions/pricing.PriceData"}},
                    "404": {"description": "Price unavailable", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/prices/cache": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": ["application/json"],
                "tags": ["prices"],
                "summary": "Price cache status",
                "responses": {"200": {"description": "Cache status", "schema": {"$ref": "#/definitions/pricing.CacheStatus"}}}
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": ["application/json"],
                "tags": ["prices"],
                "summary": "Clear price cache",
                "responses": {"200": {"description": "Cache cleared", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}}}
            }
        },
        "/currencies/rates": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "USD value of one unit of each currency, with the table source and last refresh",
                "produces": ["application/json"],
                "tags": ["currencies"],
                "summary": "Currency rates",
                "responses": {"200": {"description": "Rates", "schema": {"$ref": "#/definitions/currency.Info"}}}
            }
        }
    },
    "definitions": {
        "currency.Info": {
            "type": "object",
            "properties": {
                "base": {"type": "string"},
                "source": {"type": "string"},
                "refreshedAt": {"type": "string"},
                "rates": {"type": "object", "additionalProperties": {"type": "number"}}
            }
        },
        "handlers.AllocationResponse": {
            "type": "object",
            "properties": {
                "groupBy": {"type": "string"},
                "entries": {"type": "array", "items": {"$ref": "#/definitions/portfolio.AllocationEntry"}}
            }
        },
        "handlers.BatchAsset": {
            "type": "object",
            "required": ["symbol", "type"],
            "properties": {
                "symbol": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "handlers.BatchPriceRequest": {
            "type": "object",
            "required": ["assets"],
            "properties": {
                "assets": {"type": "array", "maxItems": 50, "minItems": 1, "items": {"$ref": "#/definitions/handlers.BatchAsset"}}
            }
        },
        "handlers.BreakdownResponse": {
            "type": "object",
            "properties": {
                "rows": {"type": "array", "items": {"$ref": "#/definitions/portfolio.BreakdownRow"}}
            }
        },
        "handlers.DeleteResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Investment deleted successfully"},
                "deleted": {"type": "integer", "example": 1}
            }
        },
        "handlers.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "INVALID_INPUT"},
                "message": {"type": "string", "example": "Invalid input"}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/handlers.ErrorDetail"}
            }
        },
        "handlers.InvestmentRequest": {
            "type": "object",
            "required": ["assetClass", "country", "currency", "name"],
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "amount": {"type": "number"},
                "currency": {"type": "string", "example": "USD"},
                "country": {"type": "string"},
                "assetClass": {"type": "string", "example": "ETF"},
                "dateAdded": {"type": "string"},
                "transactionDate": {"type": "string", "example": "2024-01-15"},
                "originalPrice": {"type": "number"},
                "maturityDate": {"type": "string", "example": "2030-06-30"},
                "couponRate": {"type": "number"},
                "quantity": {"type": "number"},
                "pricePerUnit": {"type": "number"}
            }
        },
        "handlers.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "handlers.PriceListResponse": {
            "type": "object",
            "properties": {
                "prices": {"type": "array", "items": {"$ref": "#/definitions/pricing.PriceData"}}
            }
        },
        "models.Investment": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "amount": {"type": "number"},
                "currency": {"type": "string"},
                "country": {"type": "string"},
                "assetClass": {"type": "string"},
                "dateAdded": {"type": "string"},
                "transactionDate": {"type": "string"},
                "originalPrice": {"type": "number"},
                "maturityDate": {"type": "string"},
                "couponRate": {"type": "number"},
                "quantity": {"type": "number"},
                "pricePerUnit": {"type": "number"}
            }
        },
        "portfolio.AllocationEntry": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "value": {"type": "number"},
                "percentage": {"type": "number"},
                "colorIndex": {"type": "integer"},
                "color": {"type": "string"}
            }
        },
        "portfolio.BreakdownRow": {
            "type": "object"
        },
        "portfolio.GrowthRow": {
            "type": "object",
            "properties": {
                "investmentId": {"type": "string"},
                "name": {"type": "string"},
                "currency": {"type": "string"},
                "currentValue": {"type": "number"},
                "growth": {
                    "type": "object",
                    "properties": {
                        "amount": {"type": "number"},
                        "percentage": {"type": "number"}
                    }
                },
                "livePriceUsed": {"type": "boolean"}
            }
        },
        "portfolio.MaturityReport": {
            "type": "object",
            "properties": {
                "earnings": {"type": "array", "items": {"type": "object"}},
                "summary": {"type": "object"}
            }
        },
        "portfolio.Options": {
            "type": "object",
            "properties": {
                "currencies": {"type": "array", "items": {"type": "string"}},
                "countries": {"type": "array", "items": {"type": "string"}},
                "assetClasses": {"type": "array", "items": {"type": "string"}}
            }
        },
        "portfolio.Summary": {
            "type": "object",
            "properties": {
                "totalValue": {"type": "number"},
                "totalInvestments": {"type": "integer"},
                "countries": {"type": "array", "items": {"type": "string"}},
                "currencies": {"type": "array", "items": {"type": "string"}},
                "assetClasses": {"type": "array", "items": {"type": "string"}},
                "totalGrowth": {"type": "number"},
                "averageGrowth": {"type": "number"},
                "displayCurrency": {"type": "string"},
                "display": {"type": "string"}
            }
        },
        "pricing.CacheStatus": {
            "type": "object",
            "properties": {
                "size": {"type": "integer"},
                "keys": {"type": "array", "items": {"type": "string"}}
            }
        },
        "pricing.PriceData": {
            "type": "object",
            "properties": {
                "symbol": {"type": "string"},
                "price": {"type": "number"},
                "currency": {"type": "string"},
                "lastUpdated": {"type": "string"},
                "change24h": {"type": "number"},
                "changePercent24h": {"type": "number"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3001",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Financial Allocations API",
	Description:      "Backend for the personal investment allocation dashboard: investment records, portfolio analytics, currency rates, and live prices.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

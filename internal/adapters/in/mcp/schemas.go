package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

var orderIDProperty = map[string]any{
	"type":        "integer",
	"description": "Order id",
	"minimum":     1,
}

func listProductsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_products",
		Description: "List catalog products, optionally filtered",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"category": map[string]any{
					"type":        "string",
					"description": "Category, matched case-insensitively",
				},
				"kind": map[string]any{
					"type":        "string",
					"description": "Product kind",
					"enum":        []string{"PHYSICAL", "DIGITAL"},
				},
				"min_price": map[string]any{
					"type":        "string",
					"description": "Inclusive lower price bound, e.g. \"100.00\"",
				},
				"max_price": map[string]any{
					"type":        "string",
					"description": "Inclusive upper price bound",
				},
				"only_available": map[string]any{
					"type":        "boolean",
					"description": "If true, skip products marked unavailable",
					"default":     false,
				},
			},
		},
	}
}

func getOrderTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_order",
		Description: "Get an order with its items and totals",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]any{"order_id": orderIDProperty},
			Required:   []string{"order_id"},
		},
	}
}

func listOrdersTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_orders",
		Description: "List orders, optionally for one customer or in one status",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"customer_id": map[string]any{
					"type":        "integer",
					"description": "Customer user id",
					"minimum":     1,
				},
				"status": map[string]any{
					"type": "string",
					"enum": []string{"PENDING", "CONFIRMED", "PROCESSING", "SHIPPED", "DELIVERED", "CANCELLED"},
				},
			},
		},
	}
}

func createOrderTool() mcp.Tool {
	return mcp.Tool{
		Name:        "create_order",
		Description: "Create an order for a customer. Either every item is added or none is",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"customer_id": map[string]any{
					"type":        "integer",
					"description": "Customer user id",
					"minimum":     1,
				},
				"payment_method": map[string]any{
					"type":        "string",
					"description": "Payment method label, e.g. PIX or CREDIT_CARD",
				},
				"items": map[string]any{
					"type":        "array",
					"description": "Initial items",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"product_id": map[string]any{"type": "integer", "minimum": 1},
							"quantity":   map[string]any{"type": "integer", "minimum": 1},
						},
						"required": []string{"product_id", "quantity"},
					},
				},
			},
			Required: []string{"customer_id", "payment_method"},
		},
	}
}

func addOrderItemTool() mcp.Tool {
	return mcp.Tool{
		Name:        "add_order_item",
		Description: "Add a product to an editable order, reserving stock for physical products",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"order_id":   orderIDProperty,
				"product_id": map[string]any{"type": "integer", "minimum": 1},
				"quantity":   map[string]any{"type": "integer", "minimum": 1},
			},
			Required: []string{"order_id", "product_id", "quantity"},
		},
	}
}

func applyDiscountTool() mcp.Tool {
	return mcp.Tool{
		Name:        "apply_discount",
		Description: "Replace the order discount with a fixed amount or a percentage of the subtotal",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"order_id": orderIDProperty,
				"amount": map[string]any{
					"type":        "string",
					"description": "Fixed discount, e.g. \"5.00\"",
				},
				"percentage": map[string]any{
					"type":    "integer",
					"minimum": 0,
					"maximum": 100,
				},
			},
			Required: []string{"order_id"},
		},
	}
}

func advanceOrderTool() mcp.Tool {
	return mcp.Tool{
		Name:        "advance_order",
		Description: "Move an order forward. Transitions that are not allowed leave it unchanged",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"order_id": orderIDProperty,
				"action": map[string]any{
					"type": "string",
					"enum": []string{"confirm", "process", "ship", "deliver"},
				},
			},
			Required: []string{"order_id", "action"},
		},
	}
}

func cancelOrderTool() mcp.Tool {
	return mcp.Tool{
		Name:        "cancel_order",
		Description: "Cancel an order and return reserved stock",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]any{"order_id": orderIDProperty},
			Required:   []string{"order_id"},
		},
	}
}

func getStatisticsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_statistics",
		Description: "Store totals and revenue of delivered orders",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]any{},
		},
	}
}

package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerDishesResource(srv, svc)
	registerDishTemplate(srv, svc)
}

func registerDishesResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"confusion://dishes",
		"Dishes",
		mcp.WithResourceDescription("The restaurant menu with favorite flags and comment counts."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		dishes, err := svc.ListDishes(ctx)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"dishes": dishes,
			"count":  len(dishes),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerDishTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"confusion://dishes/{id}",
		"Dish Details",
		mcp.WithTemplateDescription("A single dish and its comments."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id, err := ParseDishID(request.Params.Arguments["id"])
		if err != nil {
			return nil, err
		}

		detail, err := svc.GetDish(ctx, id)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, detail)
	})
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

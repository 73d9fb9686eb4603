package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListDishesTool(srv, svc)
	registerGetDishTool(srv, svc)
	registerMarkFavoriteTool(srv, svc)
	registerListFavoritesTool(srv, svc)
	registerPostCommentTool(srv, svc)
	registerListCommentsTool(srv, svc)
}

func dishIDArgument(request mcp.CallToolRequest) (int, error) {
	return ParseDishID(request.GetArguments()["dishId"])
}

func registerListDishesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_dishes",
		mcp.WithDescription("List every dish on the menu."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dishes, err := svc.ListDishes(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"dishes": dishes, "count": len(dishes)})
	})
}

func registerGetDishTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_dish",
		mcp.WithDescription("Fetch a dish with its comments."),
		mcp.WithNumber("dishId",
			mcp.Required(),
			mcp.Description("Dish identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := dishIDArgument(request)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		detail, err := svc.GetDish(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(detail)
	})
}

func registerMarkFavoriteTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"mark_favorite",
		mcp.WithDescription("Add a dish to the favorites. Dishes that already are favorites are left untouched."),
		mcp.WithNumber("dishId",
			mcp.Required(),
			mcp.Description("Dish identifier to mark."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := dishIDArgument(request)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		res, err := svc.MarkFavorite(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(res)
	})
}

func registerListFavoritesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_favorites",
		mcp.WithDescription("List the favorite dishes in the order they were marked."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dishes, err := svc.ListFavorites(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"favorites": dishes, "count": len(dishes)})
	})
}

func registerPostCommentTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"post_comment",
		mcp.WithDescription("Post a rated comment on a dish."),
		mcp.WithNumber("dishId",
			mcp.Required(),
			mcp.Description("Dish identifier to comment on."),
		),
		mcp.WithNumber("rating",
			mcp.Description("Star rating from 1 to 5. Defaults to 5."),
		),
		mcp.WithString("author",
			mcp.Required(),
			mcp.Description("Name shown under the comment."),
		),
		mcp.WithString("comment",
			mcp.Required(),
			mcp.Description("Comment text."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Rating  *float64 `json:"rating"`
			Author  string   `json:"author"`
			Comment string   `json:"comment"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		id, err := dishIDArgument(request)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		rating := 5
		if args.Rating != nil {
			rating = int(*args.Rating)
		}

		dto, err := svc.PostComment(ctx, id, rating, args.Author, args.Comment)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerListCommentsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_comments",
		mcp.WithDescription("List the comments of a dish in posting order."),
		mcp.WithNumber("dishId",
			mcp.Required(),
			mcp.Description("Dish identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := dishIDArgument(request)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		comments, err := svc.ListComments(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"dishId": id, "comments": comments, "count": len(comments)})
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

package posts

import (
	"github.com/gofiber/fiber/v2"

	"github.com/waveline-social/waveline/internal/middleware/authjwt"
	"github.com/waveline-social/waveline/internal/middleware/constraints"
	platformconfig "github.com/waveline-social/waveline/internal/platform/config"
	"github.com/waveline-social/waveline/posts/handlers"
)

// PostsHandlers holds all the handlers this router needs.
type PostsHandlers struct {
	PostHandler *handlers.PostHandler
}

// RegisterRoutes is the single entry point for setting up post routes.
// Every route requires an authenticated user.
func RegisterRoutes(app *fiber.App, h *PostsHandlers, cfg *platformconfig.Config) {
	jwtMiddleware := authjwt.New(authjwt.Config{
		PublicKey: cfg.JWT.PublicKey,
	})

	// Home feed lives outside the /posts group
	app.Get("/feed", jwtMiddleware, h.PostHandler.GetFeed)

	group := app.Group("/posts", jwtMiddleware)

	// Base resource routes
	group.Post("/", h.PostHandler.CreatePost)

	// Static segment routes must come before the parameterized ones
	group.Get("/user/:username", h.PostHandler.GetUserPosts)

	// Parameterized routes for specific posts (MUST BE LAST)
	group.Get("/:postId", constraints.RequireUUID("postId"), h.PostHandler.GetPost)
	group.Delete("/:postId", constraints.RequireUUID("postId"), h.PostHandler.DeletePost)
	group.Put("/:postId/like", constraints.RequireUUID("postId"), h.PostHandler.ToggleLike)
	group.Post("/:postId/like", constraints.RequireUUID("postId"), h.PostHandler.ToggleLike)
	group.Post("/:postId/reply", constraints.RequireUUID("postId"), h.PostHandler.ReplyToPost)
}

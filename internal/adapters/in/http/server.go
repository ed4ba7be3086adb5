// Package http exposes the grouping view, label printing and batch status
// transitions over a REST API. It coordinates between echo handlers and the
// application use cases.
package http

import (
	"fmt"
	"net/http"

	"shipping/api"
	"shipping/internal/adapters/out/htmllabel"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/group"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/ports"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Server handles the HTTP surface of the service.
type Server struct {
	getOrderGroupsHandler   queries.GetOrderGroupsQueryHandler
	composeLabelsHandler    commands.ComposeLabelsCommandHandler
	transitionGroupsHandler commands.TransitionGroupsCommandHandler

	labelRenderer *htmllabel.Renderer
	codeRenderer  ports.CodeRenderer

	openapiDoc *openapi3.T
}

// NewServer creates the HTTP server. The embedded OpenAPI contract is loaded
// and validated here so a broken document fails startup, not a request.
func NewServer(
	getOrderGroupsHandler queries.GetOrderGroupsQueryHandler,
	composeLabelsHandler commands.ComposeLabelsCommandHandler,
	transitionGroupsHandler commands.TransitionGroupsCommandHandler,
	labelRenderer *htmllabel.Renderer,
	codeRenderer ports.CodeRenderer,
) (*Server, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(api.OpenAPISpec)
	if err != nil {
		return nil, fmt.Errorf("loading openapi document: %w", err)
	}
	if err = doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validating openapi document: %w", err)
	}

	return &Server{
		getOrderGroupsHandler:   getOrderGroupsHandler,
		composeLabelsHandler:    composeLabelsHandler,
		transitionGroupsHandler: transitionGroupsHandler,
		labelRenderer:           labelRenderer,
		codeRenderer:            codeRenderer,
		openapiDoc:              doc,
	}, nil
}

// RegisterRoutes attaches all endpoints to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/openapi.json", s.GetOpenAPISpec)

	v1 := e.Group("/api/v1")
	v1.GET("/groups", s.GetGroups)
	v1.POST("/groups/print", s.PrintGroups)
	v1.POST("/groups/ship", s.ShipGroups)
	v1.POST("/groups/revert", s.RevertGroups)
	v1.GET("/barcode/image/:code", s.GetBarcodeImage)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetOpenAPISpec handles GET /openapi.json - serves the validated contract.
func (s *Server) GetOpenAPISpec(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, s.openapiDoc)
}

// GetGroups handles GET /api/v1/groups - returns the grouping view for the
// requested status filter, PENDING by default.
func (s *Server) GetGroups(ctx echo.Context) error {
	statusFilter := order.Pending
	if ctx.QueryParams().Has("status") {
		var raw string
		if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &raw); err != nil {
			return badRequest(ctx, "Invalid status parameter: "+err.Error())
		}
		statusFilter = order.Status(raw)
	}

	query, err := queries.NewGetOrderGroupsQuery(statusFilter)
	if err != nil {
		return badRequest(ctx, "Invalid status filter: "+err.Error())
	}

	view, err := s.getOrderGroupsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to build grouping view")
	}

	return ctx.JSON(http.StatusOK, groupsViewFromDomain(view))
}

// PrintGroups handles POST /api/v1/groups/print - composes the printable
// label document for the selected pending groups and returns it as HTML.
func (s *Server) PrintGroups(ctx echo.Context) error {
	selected, selectErr := s.selectGroups(ctx, order.Pending)
	if selectErr != nil {
		return ctx.JSON(selectErr.Code, selectErr)
	}

	cmd, err := commands.NewComposeLabelsCommand(selected)
	if err != nil {
		return badRequest(ctx, "Invalid selection: "+err.Error())
	}

	doc, err := s.composeLabelsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "Failed to compose labels")
	}

	html, err := s.labelRenderer.Render(doc)
	if err != nil {
		return internalError(ctx, "Failed to render labels")
	}

	return ctx.HTMLBlob(http.StatusOK, html)
}

// ShipGroups handles POST /api/v1/groups/ship - marks the member orders of
// the selected pending groups as shipped.
func (s *Server) ShipGroups(ctx echo.Context) error {
	return s.transitionGroups(ctx, order.Pending, order.Shipped)
}

// RevertGroups handles POST /api/v1/groups/revert - reverts the member
// orders of the selected shipped groups back to pending.
func (s *Server) RevertGroups(ctx echo.Context) error {
	return s.transitionGroups(ctx, order.Shipped, order.Pending)
}

func (s *Server) transitionGroups(ctx echo.Context, viewFilter, targetStatus order.Status) error {
	selected, selectErr := s.selectGroups(ctx, viewFilter)
	if selectErr != nil {
		return ctx.JSON(selectErr.Code, selectErr)
	}

	cmd, err := commands.NewTransitionGroupsCommand(selected, targetStatus)
	if err != nil {
		return badRequest(ctx, "Invalid selection: "+err.Error())
	}

	report, err := s.transitionGroupsHandler.Handle(ctx.Request().Context(), cmd)
	if report == nil {
		return internalError(ctx, "Failed to run batch transition")
	}

	response := transitionReportFromDomain(report)
	if err != nil {
		// The per-order updates already stand; only the refresh read failed.
		response.Warning = err.Error()
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetBarcodeImage handles GET /api/v1/barcode/image/:code - renders a single
// barcode as PNG.
func (s *Server) GetBarcodeImage(ctx echo.Context) error {
	code := ctx.Param("code")

	symbology := ports.SymbologyCode128
	if ctx.QueryParams().Has("format") {
		var raw string
		if err := runtime.BindQueryParameter("form", true, false, "format", ctx.QueryParams(), &raw); err != nil {
			return badRequest(ctx, "Invalid format parameter: "+err.Error())
		}
		symbology = ports.Symbology(raw)
	}

	width := 350
	height := 80
	if ctx.QueryParams().Has("width") {
		if err := runtime.BindQueryParameter("form", true, false, "width", ctx.QueryParams(), &width); err != nil {
			return badRequest(ctx, "Invalid width parameter: "+err.Error())
		}
	}
	if ctx.QueryParams().Has("height") {
		if err := runtime.BindQueryParameter("form", true, false, "height", ctx.QueryParams(), &height); err != nil {
			return badRequest(ctx, "Invalid height parameter: "+err.Error())
		}
	}

	image, err := s.codeRenderer.RenderCodeImage(code, symbology, width, height)
	if err != nil {
		return badRequest(ctx, "Failed to render barcode: "+err.Error())
	}

	return ctx.Blob(http.StatusOK, "image/png", image)
}

// selectGroups rebuilds the grouping view for the given filter and picks the
// groups whose keys were named in the request body. Keys that no longer
// resolve are skipped silently: the view may legitimately have moved on
// between the read and the request.
//
// It never writes to the response itself; a non-nil ErrorResponse tells the
// caller what to send, so exactly one response goes out per request.
func (s *Server) selectGroups(ctx echo.Context, viewFilter order.Status) ([]*group.Group, *ErrorResponse) {
	var selection GroupSelection
	if err := ctx.Bind(&selection); err != nil {
		return nil, &ErrorResponse{Code: http.StatusBadRequest, Message: "Invalid request body"}
	}
	if len(selection.Keys) == 0 {
		return nil, &ErrorResponse{Code: http.StatusBadRequest, Message: "No groups selected"}
	}

	query, err := queries.NewGetOrderGroupsQuery(viewFilter)
	if err != nil {
		return nil, &ErrorResponse{Code: http.StatusBadRequest, Message: "Invalid view filter: " + err.Error()}
	}

	view, err := s.getOrderGroupsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return nil, &ErrorResponse{Code: http.StatusInternalServerError, Message: "Failed to build grouping view"}
	}

	byKey := make(map[string]*group.Group, len(view.Groups))
	for _, g := range view.Groups {
		byKey[g.Key().String()] = g
	}

	selected := make([]*group.Group, 0, len(selection.Keys))
	for _, key := range selection.Keys {
		if g, ok := byKey[key]; ok {
			selected = append(selected, g)
		}
	}
	if len(selected) == 0 {
		return nil, &ErrorResponse{Code: http.StatusBadRequest, Message: "None of the selected groups exist in the current view"}
	}

	return selected, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	adapterhttp "shipping/internal/adapters/in/http"
	"shipping/internal/adapters/out/htmllabel"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderSource struct{ mock.Mock }

func (m *MockOrderSource) ListOrders(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if orders, ok := args.Get(0).([]*order.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderSource) UpdateOrderStatus(
	ctx context.Context, id kernel.OrderID, status order.Status,
) (*order.Order, error) {
	args := m.Called(ctx, id, status)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

type stubCodeRenderer struct{}

func (stubCodeRenderer) RenderCodeImage(code string, _ ports.Symbology, _, _ int) ([]byte, error) {
	return []byte("png:" + code), nil
}

func makeOrder(t *testing.T, id int64, number, customerName, stockCode string, status order.Status) *order.Order {
	t.Helper()

	orderID, err := kernel.NewOrderID(id)
	require.NoError(t, err)
	orderNumber, err := kernel.NewOrderNumber(number)
	require.NoError(t, err)

	o, err := order.NewOrder(orderID, orderNumber, customerName, 1, 10, status, time.Now())
	require.NoError(t, err)
	o.WithShipmentCodes("KARGO"+number, "", stockCode)
	return o
}

func newTestServer(t *testing.T, source *MockOrderSource) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	grouper := services.NewOrderGrouper(nil)

	labelRenderer, err := htmllabel.NewRenderer()
	require.NoError(t, err)

	server, err := adapterhttp.NewServer(
		queries.NewGetOrderGroupsQueryHandler(source, grouper, services.NewTierClassifier()),
		commands.NewComposeLabelsCommandHandler(
			services.NewLabelComposer(stubCodeRenderer{}, ports.SymbologyCode128, "Beste Koku", logger),
		),
		commands.NewTransitionGroupsCommandHandler(source, grouper, logger),
		labelRenderer,
		stubCodeRenderer{},
	)
	require.NoError(t, err)

	e := echo.New()
	server.RegisterRoutes(e)
	return e
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestServer_GetGroups(t *testing.T) {
	source := new(MockOrderSource)
	source.On("ListOrders", mock.Anything).Return([]*order.Order{
		makeOrder(t, 1, "ORD_1", "Ayşe Yılmaz", "ABC1", order.Pending),
		makeOrder(t, 2, "ORD_2", "Ayşe Yılmaz", "ABC1", order.Pending),
		makeOrder(t, 3, "ORD_3", "Mehmet Kaya", "XYZ9", order.Shipped),
	}, nil)

	e := newTestServer(t, source)
	rec := doRequest(e, http.MethodGet, "/api/v1/groups", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var view adapterhttp.GroupsViewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	require.Len(t, view.Groups, 1)
	assert.Equal(t, "Ayşe Yılmaz_ABC1", view.Groups[0].Key)
	assert.Equal(t, "2li", view.Groups[0].Tier)
	assert.Len(t, view.Groups[0].Orders, 2)
	assert.Len(t, view.Buckets, 5)
	assert.Len(t, view.Buckets["2li"], 1)
}

// decodeError unmarshals the body as exactly one JSON error document. A second
// document written after the first would make the unmarshal fail.
func decodeError(t *testing.T, rec *httptest.ResponseRecorder) adapterhttp.ErrorResponse {
	t.Helper()

	var errResp adapterhttp.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	return errResp
}

func TestServer_GetGroups_UnknownStatus(t *testing.T) {
	e := newTestServer(t, new(MockOrderSource))
	rec := doRequest(e, http.MethodGet, "/api/v1/groups?status=DELIVERED", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	errResp := decodeError(t, rec)
	assert.Equal(t, http.StatusBadRequest, errResp.Code)
	assert.Contains(t, errResp.Message, "Invalid status filter")
}

func TestServer_PrintGroups(t *testing.T) {
	source := new(MockOrderSource)
	source.On("ListOrders", mock.Anything).Return([]*order.Order{
		makeOrder(t, 1, "ORD_1", "Ayşe Yılmaz", "ABC1", order.Pending),
		makeOrder(t, 2, "ORD_2", "Ayşe Yılmaz", "ABC1", order.Pending),
	}, nil)

	e := newTestServer(t, source)
	rec := doRequest(e, http.MethodPost, "/api/v1/groups/print", `{"keys":["Ayşe Yılmaz_ABC1"]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	html := rec.Body.String()
	assert.Contains(t, html, "Sipariş No: ORD_1")
	assert.Contains(t, html, "Sipariş No: ORD_2")
	assert.Contains(t, html, "window.print()")
}

func TestServer_PrintGroups_EmptySelection(t *testing.T) {
	e := newTestServer(t, new(MockOrderSource))
	rec := doRequest(e, http.MethodPost, "/api/v1/groups/print", `{"keys":[]}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	errResp := decodeError(t, rec)
	assert.Equal(t, http.StatusBadRequest, errResp.Code)
	assert.Equal(t, "No groups selected", errResp.Message)
}

func TestServer_PrintGroups_UnknownKey(t *testing.T) {
	source := new(MockOrderSource)
	source.On("ListOrders", mock.Anything).Return([]*order.Order{}, nil)

	e := newTestServer(t, source)
	rec := doRequest(e, http.MethodPost, "/api/v1/groups/print", `{"keys":["Nobody_NOPE"]}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	errResp := decodeError(t, rec)
	assert.Equal(t, http.StatusBadRequest, errResp.Code)
	assert.Equal(t, "None of the selected groups exist in the current view", errResp.Message)
}

func TestServer_ShipGroups(t *testing.T) {
	source := new(MockOrderSource)
	pending := []*order.Order{
		makeOrder(t, 1, "ORD_1", "Ayşe Yılmaz", "ABC1", order.Pending),
		makeOrder(t, 2, "ORD_2", "Ayşe Yılmaz", "ABC1", order.Pending),
	}
	// First read selects the groups, second read is the reconciliation pass.
	source.On("ListOrders", mock.Anything).Return(pending, nil).Once()
	source.On("UpdateOrderStatus", mock.Anything, mock.Anything, order.Shipped).Return(nil, nil).Times(2)
	source.On("ListOrders", mock.Anything).Return([]*order.Order{}, nil).Once()

	e := newTestServer(t, source)
	rec := doRequest(e, http.MethodPost, "/api/v1/groups/ship", `{"keys":["Ayşe Yılmaz_ABC1"]}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var report adapterhttp.TransitionReportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, "SHIPPED", report.TargetStatus)
	assert.Equal(t, 2, report.OrdersAttempted)
	assert.Equal(t, 0, report.OrdersFailed)
	assert.Empty(t, report.Warning)
	source.AssertExpectations(t)
}

func TestServer_ShipGroups_PartialFailureReportsCountsOnly(t *testing.T) {
	source := new(MockOrderSource)
	failing := makeOrder(t, 2, "ORD_2", "Ayşe Yılmaz", "ABC1", order.Pending)
	pending := []*order.Order{
		makeOrder(t, 1, "ORD_1", "Ayşe Yılmaz", "ABC1", order.Pending),
		failing,
	}
	source.On("ListOrders", mock.Anything).Return(pending, nil).Once()
	source.On("UpdateOrderStatus", mock.Anything, pending[0].ID(), order.Shipped).Return(nil, nil).Once()
	source.On("UpdateOrderStatus", mock.Anything, failing.ID(), order.Shipped).
		Return(nil, errors.New("carrier gateway timeout")).Once()
	source.On("ListOrders", mock.Anything).Return([]*order.Order{failing}, nil).Once()

	e := newTestServer(t, source)
	rec := doRequest(e, http.MethodPost, "/api/v1/groups/ship", `{"keys":["Ayşe Yılmaz_ABC1"]}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var report adapterhttp.TransitionReportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, 2, report.OrdersAttempted)
	assert.Equal(t, 1, report.OrdersFailed)

	// The caller sees aggregate counts only. Which orders failed, and why,
	// stays in the operational log.
	body := rec.Body.String()
	assert.NotContains(t, body, "failures")
	assert.NotContains(t, body, "carrier gateway timeout")
	source.AssertExpectations(t)
}

func TestServer_RevertGroups_SelectsFromShippedView(t *testing.T) {
	source := new(MockOrderSource)
	shipped := []*order.Order{makeOrder(t, 1, "ORD_1", "Ayşe Yılmaz", "ABC1", order.Shipped)}
	source.On("ListOrders", mock.Anything).Return(shipped, nil).Once()
	source.On("UpdateOrderStatus", mock.Anything, mock.Anything, order.Pending).Return(nil, nil).Once()
	source.On("ListOrders", mock.Anything).Return(shipped, nil).Once()

	e := newTestServer(t, source)
	rec := doRequest(e, http.MethodPost, "/api/v1/groups/revert", `{"keys":["Ayşe Yılmaz_ABC1"]}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var report adapterhttp.TransitionReportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, "PENDING", report.TargetStatus)
	source.AssertExpectations(t)
}

func TestServer_GetBarcodeImage(t *testing.T) {
	e := newTestServer(t, new(MockOrderSource))
	rec := doRequest(e, http.MethodGet, "/api/v1/barcode/image/KARGO123?width=200&height=60", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "png:KARGO123", rec.Body.String())
}

func TestServer_Health(t *testing.T) {
	e := newTestServer(t, new(MockOrderSource))
	rec := doRequest(e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_OpenAPISpec(t *testing.T) {
	e := newTestServer(t, new(MockOrderSource))
	rec := doRequest(e, http.MethodGet, "/openapi.json", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "3.0.3", doc["openapi"])
}

package http

import (
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/group"

	"github.com/google/uuid"
)

// ErrorResponse is the uniform error body of the API.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// GroupSelection names the groups a print or transition request acts on,
// by the keys from the grouping view.
type GroupSelection struct {
	Keys []string `json:"keys"`
}

// OrderResponse is the wire representation of a single order inside a group.
type OrderResponse struct {
	ID           int64  `json:"id"`
	Number       string `json:"number"`
	CustomerName string `json:"customerName"`
	Status       string `json:"status"`
	TotalItems   int    `json:"totalItems"`
	ShippingCode string `json:"shippingCode,omitempty"`
}

// GroupResponse is the wire representation of one group.
type GroupResponse struct {
	Key           string          `json:"key"`
	Name          string          `json:"name"`
	Tier          string          `json:"tier"`
	Count         int             `json:"count"`
	TotalQuantity int             `json:"totalQuantity"`
	TotalAmount   float64         `json:"totalAmount"`
	Barcodes      string          `json:"barcodes,omitempty"`
	StockCodes    string          `json:"stockCodes,omitempty"`
	Orders        []OrderResponse `json:"orders"`
}

// GroupsViewResponse is the full grouping view: the tier-sorted group list
// plus group names bucketed per tier.
type GroupsViewResponse struct {
	Groups  []GroupResponse     `json:"groups"`
	Buckets map[string][]string `json:"buckets"`
}

// TransitionReportResponse is the wire representation of a batch transition
// report. The caller only sees aggregate counts; which individual orders
// failed is surfaced to the operational log, never over the API.
type TransitionReportResponse struct {
	BatchID         uuid.UUID       `json:"batchId"`
	TargetStatus    string          `json:"targetStatus"`
	GroupsProcessed int             `json:"groupsProcessed"`
	OrdersAttempted int             `json:"ordersAttempted"`
	OrdersFailed    int             `json:"ordersFailed"`
	Groups          []GroupResponse `json:"groups"`
	Warning         string          `json:"warning,omitempty"`
}

func groupFromDomain(g *group.Group) GroupResponse {
	response := GroupResponse{
		Key:           g.Key().String(),
		Name:          g.Name(),
		Tier:          g.Tier().String(),
		Count:         g.Count(),
		TotalQuantity: g.TotalQuantity(),
		TotalAmount:   g.TotalAmount(),
		Barcodes:      g.BarcodeList(),
		StockCodes:    g.StockCodeList(),
		Orders:        make([]OrderResponse, 0, g.Count()),
	}

	for _, o := range g.Members() {
		response.Orders = append(response.Orders, OrderResponse{
			ID:           o.ID().Value(),
			Number:       o.Number().String(),
			CustomerName: o.CustomerName(),
			Status:       string(o.Status()),
			TotalItems:   o.TotalItems(),
			ShippingCode: o.ShippingCode(),
		})
	}

	return response
}

func groupsFromDomain(groups []*group.Group) []GroupResponse {
	responses := make([]GroupResponse, 0, len(groups))
	for _, g := range groups {
		responses = append(responses, groupFromDomain(g))
	}
	return responses
}

func groupsViewFromDomain(view queries.GetOrderGroupsQueryResponse) GroupsViewResponse {
	response := GroupsViewResponse{
		Groups:  groupsFromDomain(view.Groups),
		Buckets: make(map[string][]string, len(view.Buckets)),
	}

	for tier, groups := range view.Buckets {
		names := make([]string, 0, len(groups))
		for _, g := range groups {
			names = append(names, g.Name())
		}
		response.Buckets[tier.String()] = names
	}

	return response
}

func transitionReportFromDomain(report *commands.TransitionReport) TransitionReportResponse {
	return TransitionReportResponse{
		BatchID:         report.BatchID,
		TargetStatus:    string(report.TargetStatus),
		GroupsProcessed: report.GroupsProcessed,
		OrdersAttempted: report.OrdersAttempted,
		OrdersFailed:    report.OrdersFailed,
		Groups:          groupsFromDomain(report.Groups),
	}
}

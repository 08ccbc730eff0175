package transport

import (
	"encoding/json"
	"net/http"

	"github.com/xchain/logitrack/constant"
	"github.com/xchain/logitrack/model"
	"github.com/xchain/logitrack/utils/errors"
	validatorx "github.com/xchain/logitrack/utils/validator"
)

// CreateSalesOrder handler
// @Summary Create sales order
// @Description Create a sales order and run the reservation pass inline; partial outcomes come back as warnings
// @Tags SalesOrder
// @Accept json
// @Produce json
// @Param request body model.SalesOrderCreateRequest true "Sales Order Request"
// @Success 200 {object} model.SalesOrderWithWarnings
// @Failure 400 {object} errors.CustomError
// @Router /sales-orders [post]
func (s *RestHandler) CreateSalesOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.SalesOrderCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.SalesOrderApp.CreateOrder(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) ListSalesOrders(w http.ResponseWriter, r *http.Request) {
	res, err := s.SalesOrderApp.ListOrders(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) GetSalesOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.SalesOrderApp.GetOrder(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ReserveSalesOrder handler
// @Summary Reserve sales order
// @Description Re-run the reservation pass over the order's unfilled quantities
// @Tags SalesOrder
// @Produce json
// @Param id path int true "Sales Order ID"
// @Success 200 {object} model.SalesOrderWithWarnings
// @Failure 409 {object} errors.CustomError
// @Router /sales-orders/{id}/reserve [post]
func (s *RestHandler) ReserveSalesOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.SalesOrderApp.Reserve(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) UpdateSalesOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.OrderStatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.SalesOrderApp.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) DeleteSalesOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.SalesOrderApp.DeleteOrder(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

func (s *RestHandler) ListSalesOrderBackorders(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.BackorderApp.FindBySalesOrder(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

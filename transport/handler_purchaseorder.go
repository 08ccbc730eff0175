package transport

import (
	"encoding/json"
	"net/http"

	"github.com/xchain/logitrack/constant"
	"github.com/xchain/logitrack/model"
	"github.com/xchain/logitrack/utils/errors"
	validatorx "github.com/xchain/logitrack/utils/validator"
)

// CreatePurchaseOrder handler
// @Summary Create purchase order
// @Description Create a purchase order directly or derive one from an originating order
// @Tags PurchaseOrder
// @Accept json
// @Produce json
// @Param request body model.PurchaseOrderCreateRequest true "Purchase Order Request"
// @Success 200 {object} model.PurchaseOrder
// @Failure 409 {object} errors.CustomError
// @Router /purchase-orders [post]
func (s *RestHandler) CreatePurchaseOrder(w http.ResponseWriter, r *http.Request) {
	var req model.PurchaseOrderCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.PurchaseOrderApp.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreatePurchaseOrderFromBackorder handler
// @Summary Create purchase order from backorder
// @Description Cut a single-line purchase order for the backorder's outstanding quantity
// @Tags PurchaseOrder
// @Produce json
// @Param backorderId path int true "Backorder ID"
// @Param supplierId path int true "Supplier ID"
// @Success 200 {object} model.PurchaseOrder
// @Failure 409 {object} errors.CustomError
// @Router /purchase-orders/backorder/{backorderId}/supplier/{supplierId} [post]
func (s *RestHandler) CreatePurchaseOrderFromBackorder(w http.ResponseWriter, r *http.Request) {
	backorderID, err := pathID(r, "backorderId")
	if err != nil {
		writeError(w, err)
		return
	}
	supplierID, err := pathID(r, "supplierId")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PurchaseOrderApp.CreateFromBackorder(r.Context(), backorderID, supplierID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreatePurchaseOrderInternal serves the auto-purchase worker: same as
// CreatePurchaseOrderFromBackorder but against the configured default
// supplier, behind the API-key middleware.
func (s *RestHandler) CreatePurchaseOrderInternal(w http.ResponseWriter, r *http.Request) {
	backorderID, err := pathID(r, "backorderId")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PurchaseOrderApp.CreateFromBackorder(r.Context(), backorderID, s.defaultSupplierID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) ListPurchaseOrders(w http.ResponseWriter, r *http.Request) {
	res, err := s.PurchaseOrderApp.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) GetPurchaseOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PurchaseOrderApp.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) ListPurchaseOrdersBySupplier(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PurchaseOrderApp.FindBySupplier(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdatePurchaseOrderStatus handler
// @Summary Update purchase order status
// @Description Move an APPROVED purchase order to RECEIVED; receiving a backorder-derived one settles the backorder
// @Tags PurchaseOrder
// @Accept json
// @Produce json
// @Param id path int true "Purchase Order ID"
// @Param request body model.POStatusUpdateRequest true "Status Request"
// @Success 200 {object} model.PurchaseOrder
// @Failure 409 {object} errors.CustomError
// @Router /purchase-orders/{id}/status [patch]
func (s *RestHandler) UpdatePurchaseOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.POStatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.PurchaseOrderApp.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) DeletePurchaseOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.PurchaseOrderApp.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

package transport

import (
	"encoding/json"
	"net/http"

	"github.com/xchain/logitrack/constant"
	"github.com/xchain/logitrack/model"
	"github.com/xchain/logitrack/utils/errors"
	validatorx "github.com/xchain/logitrack/utils/validator"
)

// CreateInventory handler
// @Summary Create inventory
// @Description Register a stock row for a (product, warehouse) pair
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body model.InventoryCreateRequest true "Inventory Request"
// @Success 200 {object} model.Inventory
// @Failure 400 {object} errors.CustomError
// @Router /inventories [post]
func (s *RestHandler) CreateInventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.InventoryCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.InventoryApp.CreateInventory(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) ListInventories(w http.ResponseWriter, r *http.Request) {
	res, err := s.InventoryApp.ListInventories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.InventoryApp.GetInventory(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) DeleteInventory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.InventoryApp.DeleteInventory(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// AdjustInventory handler
// @Summary Adjust inventory
// @Description Apply a negative on-hand delta; rejects deltas that would dip below the reserved quantity
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path int true "Inventory ID"
// @Param request body model.AdjustRequest true "Adjust Request"
// @Success 200 {object} model.Inventory
// @Failure 400 {object} errors.CustomError
// @Router /inventories/{id}/adjust [post]
func (s *RestHandler) AdjustInventory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.AdjustRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.InventoryApp.Adjust(r.Context(), id, req.Delta)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// TransferInventory handler
// @Summary Transfer inventory
// @Description Move on-hand stock between warehouses for a product
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body model.TransferRequest true "Transfer Request"
// @Success 200 {object} response
// @Failure 409 {object} errors.CustomError
// @Router /inventories/transfer [post]
func (s *RestHandler) TransferInventory(w http.ResponseWriter, r *http.Request) {
	var req model.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.InventoryApp.Transfer(r.Context(), &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

func (s *RestHandler) ListInventoryMovements(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.InventoryApp.ListMovements(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

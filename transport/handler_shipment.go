package transport

import (
	"encoding/json"
	"net/http"

	"github.com/xchain/logitrack/constant"
	"github.com/xchain/logitrack/model"
	"github.com/xchain/logitrack/utils/errors"
	validatorx "github.com/xchain/logitrack/utils/validator"
)

// CreateShipment handler
// @Summary Create shipment
// @Description Create a shipment for a reserved sales order; the order transitions to SHIPPED
// @Tags Shipment
// @Accept json
// @Produce json
// @Param request body model.ShipmentCreateRequest true "Shipment Request"
// @Success 200 {object} model.Shipment
// @Failure 409 {object} errors.CustomError
// @Router /shipments [post]
func (s *RestHandler) CreateShipment(w http.ResponseWriter, r *http.Request) {
	var req model.ShipmentCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ShipmentApp.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) ListShipments(w http.ResponseWriter, r *http.Request) {
	res, err := s.ShipmentApp.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) GetShipment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ShipmentApp.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) UpdateShipment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.ShipmentUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ShipmentApp.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateShipmentStatus handler
// @Summary Update shipment status
// @Description Update the shipment status; DELIVERED also delivers the sales order
// @Tags Shipment
// @Accept json
// @Produce json
// @Param id path int true "Shipment ID"
// @Param request body model.ShipmentStatusUpdateRequest true "Status Request"
// @Success 200 {object} model.Shipment
// @Failure 409 {object} errors.CustomError
// @Router /shipments/{id}/status [patch]
func (s *RestHandler) UpdateShipmentStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.ShipmentStatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ShipmentApp.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) DeleteShipment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.ShipmentApp.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"

	"github.com/DuongHuynhTrung/Rental-Vehicle-sub000/internal/domain"
	"github.com/DuongHuynhTrung/Rental-Vehicle-sub000/internal/service"
	"github.com/DuongHuynhTrung/Rental-Vehicle-sub000/internal/storage"
)

const maxImageSize = 10 << 20 // 10 MiB

type VehicleHandler struct {
	vehicleService service.VehicleService
	storage        *storage.LocalStorageService
}

func NewVehicleHandler(vehicleService service.VehicleService, storage *storage.LocalStorageService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService, storage: storage}
}

type registerVehicleRequest struct {
	LicensePlate string `json:"license_plate"`
	Description  string `json:"description"`
	Price        int64  `json:"price"`
	Year         int32  `json:"year"`
	Insurance    string `json:"insurance"`
	Mortgage     bool   `json:"mortgage"`
}

func (h *VehicleHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}

	var req registerVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.Validationf("invalid request body"))
		return
	}

	vehicle := &domain.Vehicle{
		LicensePlate: req.LicensePlate,
		Description:  req.Description,
		Price:        req.Price,
		Year:         req.Year,
		Insurance:    req.Insurance,
		Mortgage:     req.Mortgage,
	}
	if err := h.vehicleService.RegisterVehicle(r.Context(), actor, vehicle); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, vehicle)
}

func (h *VehicleHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	plate := mux.Vars(r)["plate"]
	vehicle, err := h.vehicleService.GetVehicle(r.Context(), plate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) HandleListAvailable(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	vehicles, total, err := h.vehicleService.ListAvailableVehicles(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: vehicles, Total: total, Page: page, PageSize: pageSize})
}

func (h *VehicleHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}

	page, pageSize := pagination(r)
	vehicles, total, err := h.vehicleService.ListMyVehicles(r.Context(), actor, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: vehicles, Total: total, Page: page, PageSize: pageSize})
}

func (h *VehicleHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}

	vehicleID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req registerVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.Validationf("invalid request body"))
		return
	}

	vehicle := &domain.Vehicle{
		ID:           vehicleID,
		LicensePlate: req.LicensePlate,
		Description:  req.Description,
		Price:        req.Price,
		Year:         req.Year,
		Insurance:    req.Insurance,
		Mortgage:     req.Mortgage,
	}
	if err := h.vehicleService.UpdateVehicle(r.Context(), actor, vehicle); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}

	vehicleID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.vehicleService.DeleteVehicle(r.Context(), actor, vehicleID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *VehicleHandler) HandleUploadImage(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}

	vehicleID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		writeError(w, domain.Validationf("invalid multipart form"))
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, domain.Validationf("missing image file"))
		return
	}
	defer file.Close()

	key := h.storage.NewImageKey(header.Filename)
	if err := h.storage.SaveFile(key, io.LimitReader(file, maxImageSize)); err != nil {
		writeError(w, domain.Internalf(err, "save image"))
		return
	}

	if err := h.vehicleService.AttachImage(r.Context(), actor, vehicleID, key); err != nil {
		// Attachment failed, do not leave an orphaned file behind.
		_ = h.storage.DeleteFile(key)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"image_url": h.storage.DownloadURL(key)})
}

func (h *VehicleHandler) HandleDownloadImage(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	file, err := h.storage.ReadFile(key)
	if err != nil {
		writeError(w, domain.NotFoundf("image not found"))
		return
	}
	defer file.Close()

	switch filepath.Ext(key) {
	case ".png":
		w.Header().Set("Content-Type", "image/png")
	case ".gif":
		w.Header().Set("Content-Type", "image/gif")
	default:
		w.Header().Set("Content-Type", "image/jpeg")
	}
	_, _ = io.Copy(w, file)
}

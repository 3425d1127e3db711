package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/DuongHuynhTrung/Rental-Vehicle-sub000/internal/domain"
	"github.com/DuongHuynhTrung/Rental-Vehicle-sub000/internal/service"
)

type BookingHandler struct {
	bookingService service.BookingService
	detailService  service.BookingDetailService
	commentService service.CommentService
}

func NewBookingHandler(bookingService service.BookingService, detailService service.BookingDetailService, commentService service.CommentService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		detailService:  detailService,
		commentService: commentService,
	}
}

type createBookingRequest struct {
	LicensePlate string    `json:"license_plate"`
	BookingStart time.Time `json:"booking_start"`
	BookingEnd   time.Time `json:"booking_end"`
	// Pointer so an omitted field is rejected rather than defaulting to false.
	HasDriver *bool `json:"has_driver"`
}

func (h *BookingHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}

	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.Validationf("invalid request body"))
		return
	}
	if req.HasDriver == nil {
		writeError(w, domain.Validationf("has_driver is required"))
		return
	}

	booking, err := h.bookingService.CreateBooking(r.Context(), actor, service.CreateBookingInput{
		LicensePlate: req.LicensePlate,
		BookingStart: req.BookingStart,
		BookingEnd:   req.BookingEnd,
		HasDriver:    *req.HasDriver,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}

	bookingID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	booking, err := h.bookingService.GetBooking(r.Context(), actor, bookingID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}

	scope := service.BookingScope(r.URL.Query().Get("scope"))
	if scope == "" {
		scope = service.BookingScopeCustomer
	}

	page, pageSize := pagination(r)
	bookings, total, err := h.bookingService.ListBookings(r.Context(), actor, scope, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: bookings, Total: total, Page: page, PageSize: pageSize})
}

func (h *BookingHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.bookingService.CancelBooking)
}

func (h *BookingHandler) HandleReturn(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.bookingService.ReturnVehicle)
}

// transition runs a booking state change and reports the committed booking
// even when a follow-up step failed, so callers can see the new status.
func (h *BookingHandler) transition(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, actor domain.Actor, bookingID int32) (*domain.Booking, error)) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}

	bookingID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	booking, err := fn(r.Context(), actor, bookingID)
	if err != nil {
		if booking != nil && domain.KindOf(err) == domain.KindInconsistency {
			writeJSON(w, http.StatusOK, transitionResponse{Booking: booking, Warning: err.Error()})
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, transitionResponse{Booking: booking})
}

type transitionResponse struct {
	Booking *domain.Booking `json:"booking"`
	Warning string          `json:"warning,omitempty"`
}

func (h *BookingHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}

	bookingID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.bookingService.DeleteBooking(r.Context(), actor, bookingID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type createDetailRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	Address       string `json:"address"`
}

func (h *BookingHandler) HandleCreateDetail(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}

	bookingID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req createDetailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.Validationf("invalid request body"))
		return
	}

	detail, err := h.detailService.CreateDetail(r.Context(), actor, service.CreateBookingDetailInput{
		BookingID:     bookingID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Address:       req.Address,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, detail)
}

func (h *BookingHandler) HandleGetDetail(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}

	bookingID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	detail, err := h.detailService.GetDetail(r.Context(), actor, bookingID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *BookingHandler) HandleMarkDetailPaid(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}

	bookingID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.detailService.MarkPaid(r.Context(), actor, bookingID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type rateBookingRequest struct {
	Rate    int32  `json:"rate"`
	Content string `json:"content"`
}

func (h *BookingHandler) HandleRate(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}

	bookingID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req rateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.Validationf("invalid request body"))
		return
	}

	comment, err := h.commentService.RateBooking(r.Context(), actor, bookingID, req.Rate, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}

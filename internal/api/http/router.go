package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RouterDeps collects everything the router mounts.
type RouterDeps struct {
	Auth     *AuthHandler
	Users    *UserHandler
	Vehicles *VehicleHandler
	Bookings *BookingHandler
	AuthMW   *AuthMiddleware
}

// NewRouter builds the full API route table. Auth endpoints and vehicle
// browsing are public; everything else sits behind the auth middleware.
func NewRouter(deps RouterDeps) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/signup", deps.Auth.HandleSignup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", deps.Auth.HandleLogin).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", deps.Auth.HandleRefresh).Methods(http.MethodPost)

	api.HandleFunc("/vehicles", deps.Vehicles.HandleListAvailable).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/plate/{plate}", deps.Vehicles.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/images/{key}", deps.Vehicles.HandleDownloadImage).Methods(http.MethodGet)

	authed := api.NewRoute().Subrouter()
	authed.Use(deps.AuthMW.Handler)

	authed.HandleFunc("/users/me", deps.Users.HandleGetMe).Methods(http.MethodGet)
	authed.HandleFunc("/users/me", deps.Users.HandleUpdateMe).Methods(http.MethodPut)
	authed.HandleFunc("/users/{id}/profit", deps.Users.HandleGetProfit).Methods(http.MethodGet)
	authed.HandleFunc("/users/{id}/comments", deps.Users.HandleListComments).Methods(http.MethodGet)

	authed.HandleFunc("/vehicles", deps.Vehicles.HandleRegister).Methods(http.MethodPost)
	authed.HandleFunc("/vehicles/mine", deps.Vehicles.HandleListMine).Methods(http.MethodGet)
	authed.HandleFunc("/vehicles/{id}", deps.Vehicles.HandleUpdate).Methods(http.MethodPut)
	authed.HandleFunc("/vehicles/{id}", deps.Vehicles.HandleDelete).Methods(http.MethodDelete)
	authed.HandleFunc("/vehicles/{id}/image", deps.Vehicles.HandleUploadImage).Methods(http.MethodPost)

	authed.HandleFunc("/bookings", deps.Bookings.HandleCreate).Methods(http.MethodPost)
	authed.HandleFunc("/bookings", deps.Bookings.HandleList).Methods(http.MethodGet)
	authed.HandleFunc("/bookings/{id}", deps.Bookings.HandleGet).Methods(http.MethodGet)
	authed.HandleFunc("/bookings/{id}", deps.Bookings.HandleDelete).Methods(http.MethodDelete)
	authed.HandleFunc("/bookings/{id}/cancel", deps.Bookings.HandleCancel).Methods(http.MethodPost)
	authed.HandleFunc("/bookings/{id}/return", deps.Bookings.HandleReturn).Methods(http.MethodPost)
	authed.HandleFunc("/bookings/{id}/detail", deps.Bookings.HandleCreateDetail).Methods(http.MethodPost)
	authed.HandleFunc("/bookings/{id}/detail", deps.Bookings.HandleGetDetail).Methods(http.MethodGet)
	authed.HandleFunc("/bookings/{id}/detail/paid", deps.Bookings.HandleMarkDetailPaid).Methods(http.MethodPost)
	authed.HandleFunc("/bookings/{id}/rating", deps.Bookings.HandleRate).Methods(http.MethodPost)

	return r
}

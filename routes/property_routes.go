package routes

import (
	"github.com/Geraxi/tenant-rork-sub001/controllers"
	"github.com/Geraxi/tenant-rork-sub001/services"

	"github.com/gorilla/mux"
)

// RegisterPropertyRoutes sets up listing routes under /api/properties
func RegisterPropertyRoutes(r *mux.Router, properties *services.PropertyService) {
	controller := controllers.NewPropertyController(properties)

	propertyRouter := r.PathPrefix("/api/properties").Subrouter()
	propertyRouter.HandleFunc("", controller.GetPropertiesByOwner).Methods("GET")
	propertyRouter.HandleFunc("", controller.AddProperty).Methods("POST")
	propertyRouter.HandleFunc("/{propertyId}", controller.GetProperty).Methods("GET")
	propertyRouter.HandleFunc("/{propertyId}", controller.UpdateProperty).Methods("PUT")
	propertyRouter.HandleFunc("/{propertyId}", controller.DeleteProperty).Methods("DELETE")
}

package master

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type mastersResponse struct {
	Vehicles        []string         `json:"vehicles"`
	SlotsPerVehicle int              `json:"slotsPerVehicle"`
	PickupLocations []PickupLocation `json:"pickupLocations"`
	Destinations    []string         `json:"destinations"`
	CargoTypes      []string         `json:"cargoTypes"`
	TimeOptions     []string         `json:"timeOptions"`
}

func RegisterRoutes(r gin.IRoutes) {
	// GET /masters
	r.GET("/masters", func(c *gin.Context) {
		c.JSON(http.StatusOK, mastersResponse{
			Vehicles:        Vehicles,
			SlotsPerVehicle: SlotsPerVehicle,
			PickupLocations: PickupLocations,
			Destinations:    Destinations,
			CargoTypes:      CargoTypes,
			TimeOptions:     TimeOptions(),
		})
	})
}

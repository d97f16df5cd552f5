package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/james997788/monyfun/internal/httputil"
	"github.com/james997788/monyfun/internal/models"
	"github.com/james997788/monyfun/internal/store"
	"github.com/rs/zerolog/log"
)

type AttendanceController struct {
	store *store.AttendanceStore
}

func RegisterAttendanceRoutes(r *gin.RouterGroup, s *store.AttendanceStore) {
	ctrl := AttendanceController{store: s}

	{
		r.OPTIONS("", httputil.OptionsGet)
		r.GET("", ctrl.GetRecords)
	}
	{
		r.OPTIONS("/checkin", httputil.OptionsPost)
		r.POST("/checkin", ctrl.CheckIn)
	}
	{
		r.OPTIONS("/checkout", httputil.OptionsPost)
		r.POST("/checkout", ctrl.CheckOut)
	}
}

type AttendanceResponse struct {
	Data     *models.AttendanceRecord `json:"data"`     // The record for today
	Advisory *string                  `json:"advisory"` // Informational note, not an error
	Error    *string                  `json:"error"`    // The error, if any occurred
}

type AttendanceListResponse struct {
	Data    []models.AttendanceRecord `json:"data"`    // All records in insertion order
	Warning *string                   `json:"warning"` // Lateness warning for the current month
	Error   *string                   `json:"error"`   // The error, if any occurred
}

// GetRecords returns all attendance records. The absence sweep runs first so
// that a day without a check-in shows up as absent once the cutoff has
// passed. When the current month holds more than three late arrivals, the
// response carries a warning. The warning is re-evaluated on every listing.
func (ctrl AttendanceController) GetRecords(c *gin.Context) {
	_, err := ctrl.store.SweepAbsences()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AttendanceListResponse{Error: &e})
		return
	}

	response := AttendanceListResponse{Data: ctrl.store.All()}

	late := ctrl.store.LateCount(ctrl.store.Today())
	if late > store.LateWarningThreshold {
		warning := fmt.Sprintf("you have been late %d times this month, please arrive on time", late)
		response.Warning = &warning
		log.Warn().Int("late-count", late).Msg("lateness threshold exceeded")
	}

	c.JSON(http.StatusOK, response)
}

// CheckIn records the check-in for today.
func (ctrl AttendanceController) CheckIn(c *gin.Context) {
	record, err := ctrl.store.CheckIn()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AttendanceResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, AttendanceResponse{Data: &record})
}

// CheckOut records the check-out for today. A check-out before the end of
// the working day succeeds but carries an advisory note.
func (ctrl AttendanceController) CheckOut(c *gin.Context) {
	record, early, err := ctrl.store.CheckOut()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AttendanceResponse{Error: &e})
		return
	}

	response := AttendanceResponse{Data: &record}
	if early {
		advisory := "you are checking out before the end of the working day, make sure your tasks are finished"
		response.Advisory = &advisory
	}

	c.JSON(http.StatusOK, response)
}

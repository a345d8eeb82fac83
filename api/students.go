package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"food-api/services"
)

type studentListResponse struct {
	StudentList []string `json:"studentList"`
}

// ListStudents returns the names of all students.
// @Summary List students
// @Tags students
// @Produce json
// @Success 200 {object} studentListResponse
// @Failure 500 {object} errorResponse
// @Router /students [get]
func (h *Handler) ListStudents(c *gin.Context) {
	names, err := services.ListStudentNames(c.Request.Context(), conn(c))
	if err != nil {
		h.serverError(c, "list students", err)
		return
	}
	if names == nil {
		names = []string{}
	}
	c.JSON(http.StatusOK, studentListResponse{StudentList: names})
}

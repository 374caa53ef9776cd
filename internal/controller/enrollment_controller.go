package controller

import (
	"eduflow_backend/internal/service"
	"eduflow_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type EnrollmentController struct {
	EnrollmentService *service.EnrollmentService
}

func NewEnrollmentController(enrollmentService *service.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{EnrollmentService: enrollmentService}
}

// swagger:model EnrollRequest
type EnrollRequest struct {
	CourseID uint `json:"courseId" binding:"required"`
}

// Enroll godoc
// @Summary Enroll in a course
// @Tags enrollments
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body EnrollRequest true "Course to enroll in"
// @Success 201 {object} util.Response{data=model.Enrollment} "Enrolled"
// @Failure 404 {object} util.Response "Course not found"
// @Failure 409 {object} util.Response "Already enrolled"
// @Router /api/enrollments [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	enrollment, err := c.EnrollmentService.Enroll(claims.UserID, req.CourseID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCourseNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrCourseNotPublished):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrAlreadyEnrolled):
			ctx.JSON(409, util.Response{Code: 409, Message: err.Error(), Data: enrollment})
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, enrollment)
}

// ListMine godoc
// @Summary List the caller's enrollments
// @Tags enrollments
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Enrollment} "Success"
// @Router /api/enrollments [get]
func (c *EnrollmentController) ListMine(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	enrollments, err := c.EnrollmentService.ListByUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, enrollments)
}

// UpdateProgress godoc
// @Summary Report course progress
// @Description Progress is clamped to 0..100 and never decreases.
// @Tags enrollments
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   courseId path int true "Course ID"
// @Param   body body service.ProgressUpdate true "Progress report"
// @Success 200 {object} util.Response{data=model.Enrollment} "Success"
// @Failure 404 {object} util.Response "Enrollment not found"
// @Router /api/enrollments/{courseId}/progress [patch]
func (c *EnrollmentController) UpdateProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID, err := util.ParseUint(ctx.Param("courseId"))
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	var update service.ProgressUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	enrollment, err := c.EnrollmentService.UpdateProgress(claims.UserID, courseID, update)
	if err != nil {
		if errors.Is(err, util.ErrEnrollmentNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, enrollment)
}

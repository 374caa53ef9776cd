package controller

import (
	"eduflow_backend/internal/model"
	"eduflow_backend/internal/service"
	"eduflow_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// Catalog godoc
// @Summary Public course catalog
// @Tags courses
// @Produce  json
// @Param   page query int false "Page" default(1)
// @Param   limit query int false "Page size" default(20)
// @Param   search query string false "Search term"
// @Param   category query string false "Category filter"
// @Param   level query string false "Level filter"
// @Success 200 {object} util.Response{data=util.PageResponse} "Success"
// @Router /api/courses [get]
func (c *CourseController) Catalog(ctx *gin.Context) {
	page := util.QueryInt(ctx, "page", 1)
	limit := util.QueryInt(ctx, "limit", 20)

	courses, total, err := c.CourseService.Catalog(page, limit,
		ctx.Query("search"), ctx.Query("category"), ctx.Query("level"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  courses,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// Detail godoc
// @Summary Course detail with modules and lessons
// @Tags courses
// @Produce  json
// @Param   id path int true "Course ID"
// @Success 200 {object} util.Response{data=model.Course} "Success"
// @Failure 404 {object} util.Response "Course not found"
// @Router /api/courses/{id} [get]
func (c *CourseController) Detail(ctx *gin.Context) {
	id, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	course, err := c.CourseService.GetByID(id)
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, course)
}

// swagger:model CourseRequest
type CourseRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Instructor  string `json:"instructor"`
	Category    string `json:"category"`
	Level       string `json:"level" binding:"omitempty,oneof=beginner intermediate advanced"`
	CoverURL    string `json:"coverUrl"`
	Published   bool   `json:"published"`
}

// Create godoc
// @Summary Create a course
// @Tags courses
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CourseRequest true "Course"
// @Success 201 {object} util.Response{data=model.Course} "Created"
// @Router /api/admin/courses [post]
func (c *CourseController) Create(ctx *gin.Context) {
	var req CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course := &model.Course{
		Title:       req.Title,
		Description: req.Description,
		Instructor:  req.Instructor,
		Category:    req.Category,
		Level:       req.Level,
		CoverURL:    req.CoverURL,
		Published:   req.Published,
	}

	if err := c.CourseService.Create(course); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, course)
}

// Update godoc
// @Summary Update a course
// @Tags courses
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Course ID"
// @Param   body body CourseRequest true "Course"
// @Success 200 {object} util.Response "Success"
// @Failure 404 {object} util.Response "Course not found"
// @Router /api/admin/courses/{id} [put]
func (c *CourseController) Update(ctx *gin.Context) {
	id, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	var req CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course := &model.Course{
		Title:       req.Title,
		Description: req.Description,
		Instructor:  req.Instructor,
		Category:    req.Category,
		Level:       req.Level,
		CoverURL:    req.CoverURL,
		Published:   req.Published,
	}
	course.ID = id

	if err := c.CourseService.Update(course); err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, nil)
}

// Delete godoc
// @Summary Delete a course
// @Description Removes a course. Already issued certificates keep verifying through their stored course name.
// @Tags courses
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Course ID"
// @Success 200 {object} util.Response "Success"
// @Failure 404 {object} util.Response "Course not found"
// @Router /api/admin/courses/{id} [delete]
func (c *CourseController) Delete(ctx *gin.Context) {
	id, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	if err := c.CourseService.Delete(id); err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, nil)
}

// ListAll godoc
// @Summary List all courses including drafts (admin)
// @Tags courses
// @Produce  json
// @Security ApiKeyAuth
// @Param   page query int false "Page" default(1)
// @Param   limit query int false "Page size" default(20)
// @Param   search query string false "Search term"
// @Success 200 {object} util.Response{data=util.PageResponse} "Success"
// @Router /api/admin/courses [get]
func (c *CourseController) ListAll(ctx *gin.Context) {
	page := util.QueryInt(ctx, "page", 1)
	limit := util.QueryInt(ctx, "limit", 20)

	courses, total, err := c.CourseService.ListAll(page, limit, ctx.Query("search"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  courses,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

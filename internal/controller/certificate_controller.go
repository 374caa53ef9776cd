package controller

import (
	"eduflow_backend/internal/service"
	"eduflow_backend/internal/util"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
)

type CertificateController struct {
	CertService *service.CertificateService
}

func NewCertificateController(certService *service.CertificateService) *CertificateController {
	return &CertificateController{CertService: certService}
}

// IssueCertificateRequest names the course the caller completed.
// swagger:model IssueCertificateRequest
type IssueCertificateRequest struct {
	CourseID uint `json:"courseId" binding:"required"`
}

// Issue godoc
// @Summary Issue a completion certificate
// @Description Issues a certificate for a completed course enrollment. Repeated requests return the already issued certificate.
// @Tags certificates
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body IssueCertificateRequest true "Course to certify"
// @Success 201 {object} util.Response{data=model.Certificate} "Issued"
// @Success 409 {object} util.Response{data=model.Certificate} "Already issued, existing certificate returned"
// @Failure 400 {object} util.Response "Enrollment incomplete"
// @Failure 404 {object} util.Response "Course or enrollment not found"
// @Router /api/certificates [post]
func (c *CertificateController) Issue(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req IssueCertificateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	cert, existed, err := c.CertService.IssueCertificate(claims.UserID, req.CourseID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound),
			errors.Is(err, util.ErrCourseNotFound),
			errors.Is(err, util.ErrEnrollmentNotFound):
			util.Error(ctx, 404, err.Error())
		case errors.Is(err, util.ErrEnrollmentIncomplete):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	if existed {
		ctx.JSON(409, util.Response{
			Code:    409,
			Message: "certificate already issued",
			Data:    cert,
		})
		return
	}

	util.Created(ctx, cert)
}

// Verify godoc
// @Summary Verify a certificate
// @Description Public check whether a certificate number belongs to a real certificate. Unknown numbers are a normal negative result, not an error.
// @Tags certificates
// @Produce  json
// @Param   certificateNumber path string true "Certificate number"
// @Success 200 {object} util.Response{data=service.VerificationResult} "Valid or invalid"
// @Failure 400 {object} util.Response "Empty certificate number"
// @Router /api/certificates/verify/{certificateNumber} [get]
func (c *CertificateController) Verify(ctx *gin.Context) {
	number := strings.TrimSpace(ctx.Param("certificateNumber"))
	if number == "" {
		util.BadRequest(ctx, "certificate number is required")
		return
	}

	result, err := c.CertService.Verify(ctx.Request.Context(), number)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// ListMine godoc
// @Summary List the caller's certificates
// @Tags certificates
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Certificate} "Success"
// @Router /api/certificates [get]
func (c *CertificateController) ListMine(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	certs, err := c.CertService.ListByUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, certs)
}

// ListAll godoc
// @Summary List all certificates (admin)
// @Description Paginated list across all users, searchable by certificate number, holder or course.
// @Tags certificates
// @Produce  json
// @Security ApiKeyAuth
// @Param   page query int false "Page" default(1)
// @Param   limit query int false "Page size" default(20)
// @Param   search query string false "Search term"
// @Success 200 {object} util.Response{data=util.PageResponse} "Success"
// @Router /api/certificates/admin/all [get]
func (c *CertificateController) ListAll(ctx *gin.Context) {
	page := util.QueryInt(ctx, "page", 1)
	limit := util.QueryInt(ctx, "limit", 20)
	search := ctx.Query("search")

	certs, total, err := c.CertService.ListAll(page, limit, search)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  certs,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

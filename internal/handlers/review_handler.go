package handlers

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Dinesh9529/ResumeGuru/internal/models"
	"github.com/Dinesh9529/ResumeGuru/internal/services"
)

// minResumeLength is the acceptance threshold for the trimmed resume text;
// shorter submissions are rejected before any scoring or LLM work.
const minResumeLength = 50

type ReviewHandler struct {
	promptBuilder *services.PromptBuilder
	reviewService services.ReviewService
	pdfParser     services.PDFParserService
	maxFileSize   int64
	logger        *zap.SugaredLogger
}

func NewReviewHandler(
	reviewService services.ReviewService,
	pdfParser services.PDFParserService,
	maxFileSize int64,
	logger *zap.SugaredLogger,
) *ReviewHandler {
	return &ReviewHandler{
		promptBuilder: services.NewPromptBuilder(),
		reviewService: reviewService,
		pdfParser:     pdfParser,
		maxFileSize:   maxFileSize,
		logger:        logger,
	}
}

func (h *ReviewHandler) HandleReview(c *fiber.Ctx) error {
	var req models.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"ok":    false,
			"error": "invalid request body",
		})
	}

	return h.respondWithReview(c, req.Resume, req.JobDescription)
}

// HandleReviewUpload accepts a PDF resume as multipart field "resume" with an
// optional "jobDescription" form value, then runs the same review pipeline on
// the extracted text. The file is parsed in memory and never stored.
func (h *ReviewHandler) HandleReviewUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"ok":    false,
			"error": "resume file is required",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"ok":    false,
			"error": fmt.Sprintf("resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"ok":    false,
			"error": "failed to read resume file",
		})
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"ok":    false,
			"error": "failed to read resume file",
		})
	}

	text, err := h.pdfParser.ExtractText(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		h.logger.Warnw("resume pdf extraction failed", "filename", file.Filename, "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"ok":    false,
			"error": "failed to extract text from resume PDF",
		})
	}

	return h.respondWithReview(c, services.CleanText(text), c.FormValue("jobDescription"))
}

func (h *ReviewHandler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"ok":      true,
		"message": "resume review service is healthy",
	})
}

// respondWithReview runs the shared pipeline: validate, score, prompt, review.
// An upstream review failure degrades to the fallback text; the response is
// still a success with the score intact.
func (h *ReviewHandler) respondWithReview(c *fiber.Ctx, resume, jobDescription string) error {
	if len(strings.TrimSpace(resume)) < minResumeLength {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"ok":    false,
			"error": fmt.Sprintf("resume must be at least %d characters long", minResumeLength),
		})
	}

	atsScore := services.CalculateATSScore(resume, jobDescription)

	system, user := h.promptBuilder.Build(resume, jobDescription)
	review, err := h.reviewService.Review(c.UserContext(), system, user)
	if err != nil {
		h.logger.Warnw("ai review failed, serving fallback", "error", err)
		review = services.FallbackReview
	}

	return c.JSON(models.ReviewResponse{
		OK:       true,
		ATSScore: atsScore,
		AIReview: review,
	})
}

package handler

import (
	"neighborly/internal/delivery/http/response"
	"neighborly/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReviewHandler holds dependencies for review handlers.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(reviewUC usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{reviewUC: reviewUC}
}

// SubmitReview stores a review and returns the volunteer's new rating.
func (h *ReviewHandler) SubmitReview(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var input usecase.SubmitReviewInput
	if err := bindAndValidate(c, &input, "Invalid review input"); err != nil {
		return err
	}

	output, err := h.reviewUC.SubmitReview(c.Request().Context(), user.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, output, "Review submitted successfully")
}

// ListReviews returns the reviews a volunteer received, newest first.
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	volunteerID, err := uuidParam(c, "volunteerId")
	if err != nil {
		return errors.WithStack(err)
	}

	reviews, err := h.reviewUC.ListReviews(c.Request().Context(), volunteerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, reviews, "Reviews retrieved successfully")
}

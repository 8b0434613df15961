package booking

import (
	"context"

	domain "github.com/delacruzclinic/clinic-booking/internal/domain/booking"
	"github.com/delacruzclinic/clinic-booking/internal/models"
)

const (
	defaultPerPage = 50
	maxPerPage     = 200
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type ListBookingsInput struct {
	Page    int
	PerPage int

	Date      string
	StartDate string
	EndDate   string
}

type ListBookingsOutput struct {
	Page       int              `json:"page"`
	PerPage    int              `json:"perPage"`
	TotalRows  int64            `json:"totalRows"`
	TotalPages int              `json:"totalPages"`
	Data       []models.Booking `json:"data"`
}

// ======================================================
// USE CASE
// ======================================================

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

func (uc *ListBookings) Execute(
	ctx context.Context,
	in ListBookingsInput,
) (*ListBookingsOutput, error) {

	page := in.Page
	if page <= 0 {
		page = 1
	}

	perPage := in.PerPage
	if perPage <= 0 || perPage > maxPerPage {
		perPage = defaultPerPage
	}

	filter := domain.ListFilter{
		Date:      in.Date,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
	}

	totalRows, err := uc.repo.CountBookings(ctx, filter)
	if err != nil {
		return nil, err
	}

	rows, err := uc.repo.ListBookings(ctx, filter, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []models.Booking{}
	}

	totalPages := int((totalRows + int64(perPage) - 1) / int64(perPage))

	return &ListBookingsOutput{
		Page:       page,
		PerPage:    perPage,
		TotalRows:  totalRows,
		TotalPages: totalPages,
		Data:       rows,
	}, nil
}

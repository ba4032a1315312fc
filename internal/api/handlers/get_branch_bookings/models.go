package get_branch_bookings

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/internal/service/bookings/models"
)

const maxLimit = 200

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(branchID int64, query url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{
		BranchID: branchID,
		Search:   strings.TrimSpace(query.Get("search")),
	}

	// Парсим status если указан
	if status := query.Get("status"); status != "" {
		parsed, ok := domain.ParseBookingStatus(status)
		if !ok {
			return nil, fmt.Errorf("invalid status: %s", status)
		}
		status = string(parsed)
		req.Status = &status
	}

	if customerIDStr := query.Get("customerId"); customerIDStr != "" {
		customerID, err := strconv.ParseInt(customerIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.CustomerID = &customerID
	}

	// Одиночная дата задаёт оба конца диапазона
	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.DateFrom = &date
		req.DateTo = &date
	}

	if dateFromStr := query.Get("dateFrom"); dateFromStr != "" {
		dateFrom, err := time.Parse(domain.DateFormat, dateFromStr)
		if err != nil {
			return nil, err
		}
		req.DateFrom = &dateFrom
	}

	if dateToStr := query.Get("dateTo"); dateToStr != "" {
		dateTo, err := time.Parse(domain.DateFormat, dateToStr)
		if err != nil {
			return nil, err
		}
		req.DateTo = &dateTo
	}

	if req.DateFrom != nil && req.DateTo != nil && req.DateTo.Before(*req.DateFrom) {
		return nil, fmt.Errorf("dateTo is before dateFrom")
	}

	var err error
	if req.Limit, err = intParam(query, "limit", 0, maxLimit); err != nil {
		return nil, err
	}
	if req.Offset, err = intParam(query, "offset", 0, -1); err != nil {
		return nil, err
	}

	return req, nil
}

// intParam читает неотрицательное число; upper < 0 - без верхней границы
func intParam(query url.Values, name string, def, upper int) (int, error) {
	raw := query.Get(name)
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", name, err)
	}
	if value < 0 || (upper >= 0 && value > upper) {
		return 0, fmt.Errorf("%s out of range: %d", name, value)
	}
	return value, nil
}

package dto

import (
	"bytes"
	"encoding/json"
	"time"

	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// CreateRecordRequest adds an expense or an earning; the kind comes from the route.
type CreateRecordRequest struct {
	Category    string          `json:"category" validate:"required,max=50,category_code"`
	Amount      decimal.Decimal `json:"amount" validate:"non_negative_amount"`
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
	Description *string         `json:"description" validate:"omitempty,max=500"`
}

// UpdateRecordRequest is a partial update. Absent fields are left alone; an explicit
// "description": null clears the description.
type UpdateRecordRequest struct {
	Category    *string          `json:"category" validate:"omitempty,max=50,category_code"`
	Amount      *decimal.Decimal `json:"amount" validate:"omitempty,non_negative_amount"`
	Date        *string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Description *string          `json:"description" validate:"omitempty,max=500"`

	ClearDescription bool `json:"-"`
}

func (r *UpdateRecordRequest) UnmarshalJSON(data []byte) error {
	type fields UpdateRecordRequest
	var body fields
	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}

	var present map[string]json.RawMessage
	if err := json.Unmarshal(data, &present); err != nil {
		return err
	}

	*r = UpdateRecordRequest(body)
	if raw, ok := present["description"]; ok && bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		r.ClearDescription = true
	}
	return nil
}

// ListRecordsQuery contains list filters for one collection
type ListRecordsQuery struct {
	StartDate string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
	SortBy    string `query:"sort_by" validate:"omitempty,oneof=date amount category created_at"`
	Ascending *bool  `query:"ascending"`
	Limit     int    `query:"limit" validate:"omitempty,min=0,max=1000"`
}

// RecordResponse is a stored record as returned by the API
type RecordResponse struct {
	ID          string          `json:"id"`
	Kind        models.Kind     `json:"type"`
	Category    string          `json:"category"`
	Label       string          `json:"label"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description *string         `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ToRecord converts the request into a record payload. The date must already be validated.
func (r *CreateRecordRequest) ToRecord() (models.Record, error) {
	date, err := time.Parse(DateLayout, r.Date)
	if err != nil {
		return models.Record{}, err
	}
	return models.Record{
		Category:    r.Category,
		Amount:      r.Amount,
		Date:        date,
		Description: r.Description,
	}, nil
}

func (r *UpdateRecordRequest) ToUpdate() (models.RecordUpdate, error) {
	update := models.RecordUpdate{
		Category:         r.Category,
		Amount:           r.Amount,
		Description:      r.Description,
		ClearDescription: r.ClearDescription,
	}
	if r.Date != nil {
		date, err := time.Parse(DateLayout, *r.Date)
		if err != nil {
			return models.RecordUpdate{}, err
		}
		update.Date = &date
	}
	return update, nil
}

func NewRecordResponse(kind models.Kind, label string, record *models.Record) RecordResponse {
	return RecordResponse{
		ID:          record.ID.String(),
		Kind:        kind,
		Category:    record.Category,
		Label:       label,
		Amount:      record.Amount,
		Date:        record.Date.Format(DateLayout),
		Description: record.Description,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

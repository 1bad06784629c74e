package dto

import (
	"bytes"
	"encoding/json"

	"github.com/polkiloo/suitopia/internal/domain/model"
)

// CreateAdoptionRequest is the body of POST /api/orders/create-adoption.
type CreateAdoptionRequest struct {
	UserID          string                 `json:"userId" binding:"required"`
	Character       *model.Character       `json:"character" binding:"required"`
	ApplicationData *model.ApplicationData `json:"applicationData" binding:"required"`
}

// CreateCommissionRequest is the body of POST /api/orders/create-commission.
type CreateCommissionRequest struct {
	UserID          string                 `json:"userId" binding:"required"`
	CommissionStyle *model.CommissionStyle `json:"commissionStyle" binding:"required"`
	ApplicationData *model.ApplicationData `json:"applicationData" binding:"required"`
}

// CancelOrderRequest carries the customer's cancellation reason.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// UpdateOrderRequest is a partial admin edit of an order.
type UpdateOrderRequest struct {
	Total              *string                `json:"total"`
	Status             *model.OrderStatus     `json:"status"`
	ShippingTrackingID OptionalString         `json:"shippingTrackingId"`
	ApplicationData    *model.ApplicationData `json:"applicationData"`
	ShippingAddress    *string                `json:"shippingAddress"`
}

// Patch converts the request into a domain patch.
func (r UpdateOrderRequest) Patch() model.OrderPatch {
	patch := model.OrderPatch{
		Total:           r.Total,
		Status:          r.Status,
		ApplicationData: r.ApplicationData,
		ShippingAddress: r.ShippingAddress,
	}
	if r.ShippingTrackingID.Set {
		patch.ShippingTrackingID = &model.NullableString{Value: r.ShippingTrackingID.Value}
	}
	return patch
}

// OptionalString tells an absent field from an explicit null.
type OptionalString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON marks the field as present; null leaves Value nil.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

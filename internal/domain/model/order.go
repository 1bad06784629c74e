package model

import "time"

// OrderType tells which application flow produced an order.
type OrderType string

const (
	OrderTypeAdoption   OrderType = "adoption"
	OrderTypeCommission OrderType = "commission"
)

// Label returns the storefront display name of the order type.
func (t OrderType) Label() string {
	switch t {
	case OrderTypeAdoption:
		return "领养订单"
	case OrderTypeCommission:
		return "委托订单"
	default:
		return string(t)
	}
}

// OrderStatus describes order lifecycle.
type OrderStatus string

const (
	OrderStatusApplying            OrderStatus = "applying"
	OrderStatusPendingConfirmation OrderStatus = "pending_confirmation"
	OrderStatusConfirmed           OrderStatus = "confirmed"
	OrderStatusQueued              OrderStatus = "queued"
	OrderStatusInProduction        OrderStatus = "in_production"
	OrderStatusCancelling          OrderStatus = "cancelling"
	OrderStatusShipped             OrderStatus = "shipped"
	OrderStatusCompleted           OrderStatus = "completed"
	OrderStatusCancelled           OrderStatus = "cancelled"
)

// OrderStatuses lists every known status in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderStatusApplying,
	OrderStatusPendingConfirmation,
	OrderStatusConfirmed,
	OrderStatusQueued,
	OrderStatusInProduction,
	OrderStatusCancelling,
	OrderStatusShipped,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusApplying:            {OrderStatusPendingConfirmation, OrderStatusCancelling},
	OrderStatusPendingConfirmation: {OrderStatusConfirmed, OrderStatusCancelling},
	OrderStatusConfirmed:           {OrderStatusQueued},
	OrderStatusQueued:              {OrderStatusInProduction, OrderStatusCancelling},
	OrderStatusInProduction:        {OrderStatusShipped},
	OrderStatusShipped:             {OrderStatusCompleted},
	OrderStatusCancelling:          {OrderStatusCancelled, OrderStatusApplying},
	OrderStatusCompleted:           nil,
	OrderStatusCancelled:           nil,
}

var orderStatusLabels = map[OrderStatus]string{
	OrderStatusApplying:            "申请中",
	OrderStatusPendingConfirmation: "待确认",
	OrderStatusConfirmed:           "已确认",
	OrderStatusQueued:              "排队中",
	OrderStatusInProduction:        "制作中",
	OrderStatusCancelling:          "取消中",
	OrderStatusShipped:             "已发货",
	OrderStatusCompleted:           "已完成",
	OrderStatusCancelled:           "已取消",
}

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// Terminal reports whether no transition leaves s.
func (s OrderStatus) Terminal() bool {
	next, ok := orderTransitions[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether next is an allowed successor of s.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, candidate := range orderTransitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// Label returns the storefront display name of the status.
func (s OrderStatus) Label() string {
	if label, ok := orderStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// ApplicationData holds applicant details captured by the application forms.
type ApplicationData struct {
	UserName          string  `json:"userName"`
	Age               string  `json:"age"`
	Phone             string  `json:"phone"`
	QQ                string  `json:"qq"`
	Email             string  `json:"email"`
	Height            string  `json:"height"`
	Weight            string  `json:"weight"`
	Province          string  `json:"province"`
	City              string  `json:"city"`
	District          string  `json:"district"`
	AddressDetail     string  `json:"addressDetail"`
	ReferenceImageURL *string `json:"referenceImageUrl,omitempty"`
}

// ShippingAddress flattens address parts into a single line.
func (a ApplicationData) ShippingAddress() string {
	return a.Province + " " + a.City + " " + a.District + " " + a.AddressDetail
}

// Order is an adoption or commission application and its fulfilment state.
type Order struct {
	ID                 string           `json:"id"`
	UserID             string           `json:"userId"`
	ProductName        string           `json:"productName"`
	OrderNumber        string           `json:"orderNumber"`
	OrderType          OrderType        `json:"orderType"`
	Status             OrderStatus      `json:"status"`
	ImageURL           string           `json:"imageUrl"`
	OrderDate          time.Time        `json:"orderDate"`
	Total              string           `json:"total"`
	ShippingAddress    string           `json:"shippingAddress"`
	ApplicationData    *ApplicationData `json:"applicationData,omitempty"`
	CancellationReason string           `json:"cancellationReason,omitempty"`
	ShippingTrackingID *string          `json:"shippingTrackingId,omitempty"`
	ReferenceImageURL  *string          `json:"referenceImageUrl,omitempty"`
}

// OrderPatch carries the fields an administrator may edit. Nil means untouched.
type OrderPatch struct {
	Total              *string
	Status             *OrderStatus
	ShippingTrackingID *NullableString
	ApplicationData    *ApplicationData
	ShippingAddress    *string
}

// NullableString distinguishes an explicit null from a value.
type NullableString struct {
	Value *string
}

// Apply merges patch into o.
func (p OrderPatch) Apply(o *Order) {
	if p.Total != nil {
		o.Total = *p.Total
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.ShippingTrackingID != nil {
		o.ShippingTrackingID = p.ShippingTrackingID.Value
	}
	if p.ApplicationData != nil {
		data := *p.ApplicationData
		o.ApplicationData = &data
	}
	if p.ShippingAddress != nil {
		o.ShippingAddress = *p.ShippingAddress
	}
}
